package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"unison/store"
	"unison/utils"
)

// RequireAuth resolves the caller identity from the bearer token. All
// failure modes collapse into a single 401 response.
func RequireAuth(tokens *store.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, utils.CodeUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Unauthorized(c, utils.CodeUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			utils.Unauthorized(c, utils.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
