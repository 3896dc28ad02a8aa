package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope for the /api JSON endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   err,
	})
}

// SendValidationError reports a missing or malformed client field.
func SendValidationError(c *gin.Context, err string) {
	SendError(c, http.StatusBadRequest, err)
}

// SendServerError hides internal error detail behind a generic message.
func SendServerError(c *gin.Context) {
	SendError(c, http.StatusInternalServerError, "Server error")
}

func SendAction(c *gin.Context, action string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Action:  action,
	})
}
