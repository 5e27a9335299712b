package dispatch_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"study-tracker/internal/dispatch"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Aliases Share One Handler", func(t *testing.T) {
		reg := dispatch.NewRegistry()
		calls := 0
		reg.Read(func(ctx context.Context, req dispatch.Request) (any, error) {
			calls++
			return "tasks", nil
		}, "getTasks", "getStudyTasks")

		for _, action := range []string{"getTasks", "getStudyTasks"} {
			got, err := reg.DispatchRead(ctx, dispatch.Request{Action: action})
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", action, err)
			}
			if got != "tasks" {
				t.Errorf("%s: unexpected data %v", action, got)
			}
		}
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("Unknown Action", func(t *testing.T) {
		reg := dispatch.NewRegistry()
		if _, err := reg.DispatchRead(ctx, dispatch.Request{Action: "explode"}); !errors.Is(err, dispatch.ErrUnknownAction) {
			t.Errorf("expected ErrUnknownAction, got %v", err)
		}
	})

	t.Run("Missing Action", func(t *testing.T) {
		reg := dispatch.NewRegistry()
		if _, err := reg.DispatchWrite(ctx, dispatch.Request{}); err == nil {
			t.Error("expected an error for an empty action name")
		}
	})

	t.Run("Verbs Are Separate Namespaces", func(t *testing.T) {
		reg := dispatch.NewRegistry()
		reg.Write(func(ctx context.Context, req dispatch.Request) (any, error) {
			return nil, nil
		}, "addTask")
		if _, err := reg.DispatchRead(ctx, dispatch.Request{Action: "addTask"}); !errors.Is(err, dispatch.ErrUnknownAction) {
			t.Errorf("write actions must not dispatch on read, got %v", err)
		}
	})

	t.Run("Bind Decodes Payload", func(t *testing.T) {
		req := dispatch.Request{
			Action:  "addTask",
			Payload: json.RawMessage(`{"task_name":"algebra drill"}`),
		}
		var payload struct {
			TaskName string `json:"task_name"`
		}
		if err := req.Bind(&payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.TaskName != "algebra drill" {
			t.Errorf("unexpected payload: %+v", payload)
		}
	})

	t.Run("Bind Rejects Missing Payload", func(t *testing.T) {
		req := dispatch.Request{Action: "addTask"}
		var v map[string]any
		if err := req.Bind(&v); err == nil {
			t.Error("expected an error for a missing payload")
		}
	})

	t.Run("Param Reads Query Values", func(t *testing.T) {
		req := dispatch.Request{
			Action: "getCategoriesBySubject",
			Params: url.Values{"subject": {"Math"}},
		}
		if got := req.Param("subject"); got != "Math" {
			t.Errorf("expected Math, got %q", got)
		}
	})
}
