package handlers

import (
	"net/http"

	"finlit-agent/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired rejects requests without a valid bearer token and stores the
// caller's identity on the context for downstream handlers.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Access token required", nil)
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(jwtSecret, utils.BearerToken(header))
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
