package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Issue describes a single request-validation violation.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Message writes the plain `{message}` body used by every error in the API.
func Message(c *gin.Context, status int, msg string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"message": msg})
}

// AbortMessage is Message plus short-circuiting the handler chain.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// ValidationFailed writes a 400 enumerating every violation, not just the
// first, as `{message, issues:[{path,message}]}`.
func ValidationFailed(c *gin.Context, issues []Issue) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"issues":  issues,
	})
}
