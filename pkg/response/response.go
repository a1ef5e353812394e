package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FieldError is one entry in the validation error list returned to clients.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// JSON writes the payload as-is. Success bodies are the domain objects
// themselves; the front end expects no envelope.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Msg writes a single-message body, e.g. {"msg":"Post not found"}.
func Msg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// ValidationErrors writes the structured error list for failed input
// validation, e.g. {"errors":[{"msg":"Status is required","param":"status"}]}.
func ValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// ServerError logs the internal fault and replies with the opaque body the
// original API sends. No internal detail reaches the client.
func ServerError(c *gin.Context, logger *logrus.Logger, err error) {
	if logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).Error("request failed")
	}
	c.String(http.StatusInternalServerError, "Server error")
}
