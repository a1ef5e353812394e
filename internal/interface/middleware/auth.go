package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/devconnector-api/pkg/helpers"
	"github.com/devconnector/devconnector-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the bearer token from the Authorization header and injects
// the user id into the Gin context. The caller supplies the credential on
// every request; there is no ambient token lookup.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Msg(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(h)
}
