package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new successful envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// NewErrorResp returns a new failure envelope with the given error text.
func NewErrorResp(err error) Resp {
	return Resp{
		Success: false,
		Error:   err.Error(),
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Message sends 200 JSON with a human-readable message and no data.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Message: message,
	})
}

// Error sends a failure envelope. Domain failures still answer 200 so the
// legacy clients, which only inspect the success flag, keep working.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusOK, NewErrorResp(err))
}

// BadRequest sends 400 for transport-level problems (unreadable body, bad query).
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, NewErrorResp(err))
}

// TooManyRequests sends 429 when the caller exhausts its request budget.
func TooManyRequests(c *gin.Context, err error) {
	c.JSON(http.StatusTooManyRequests, NewErrorResp(err))
}

// InternalError sends 500 with a generic message, never the raw error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   DefaultErrorMessage,
	})
}
