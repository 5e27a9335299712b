package response_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"study-tracker/pkg/response"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK carries success flag and data", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]int{"count": 3})

		if w.Code != 200 {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if !resp.Success {
			t.Errorf("expected success=true")
		}
		if resp.Error != "" {
			t.Errorf("unexpected error field: %q", resp.Error)
		}
	})

	t.Run("Error keeps 200 with success=false", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("unknown action: frobnicate"))

		if w.Code != 200 {
			t.Fatalf("domain errors must answer 200, got %d", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if resp.Success {
			t.Errorf("expected success=false")
		}
		if resp.Error != "unknown action: frobnicate" {
			t.Errorf("unexpected error text: %q", resp.Error)
		}
	})

	t.Run("InternalError hides the cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c)

		if w.Code != 500 {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if resp.Error != response.DefaultErrorMessage {
			t.Errorf("expected generic message, got %q", resp.Error)
		}
	})
}
