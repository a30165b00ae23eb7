package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the uniform failure body {error, details?}. The
// message is safe for clients; err, when present, carries upstream detail.
func ErrorResponse(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(statusCode, body)
}
