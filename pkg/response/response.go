package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/mmw1984/timetable/pkg/errors"
)

// ErrorBody carries the human-readable failure message.
type ErrorBody struct {
	Message string `json:"message"`
}

// Envelope is the uniform payload wrapper returned by every query operation.
type Envelope struct {
	Success   bool        `json:"success"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
}

// Wrap builds a success envelope stamped with the current time.
func Wrap(data interface{}) Envelope {
	return Envelope{Success: true, Timestamp: time.Now().Format(time.RFC3339), Data: data}
}

// WrapError builds a failure envelope stamped with the current time.
func WrapError(message string) Envelope {
	return Envelope{Success: false, Timestamp: time.Now().Format(time.RFC3339), Error: &ErrorBody{Message: message}}
}

// OK sends a success envelope with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, Wrap(data))
}

// IndentedOK sends a success envelope rendered with indentation (raw mode).
func IndentedOK(c *gin.Context, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.IndentedJSON(http.StatusOK, Wrap(data))
}

// Error sends an error envelope converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, WrapError(appErr.Message))
}
