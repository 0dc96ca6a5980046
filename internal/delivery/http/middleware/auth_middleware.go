package middleware

import (
	"net/http"
	"strings"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves its subject to
// a stored user. Every failure mode yields the same 401 with a bearer
// challenge.
func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if authHeader == "" || tokenString == authHeader {
			unauthorized(c, "Authorization header required")
			return
		}

		subject, err := tokens.Validate(tokenString)
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), subject)
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(string(domain.KeyUserID), user.ID.String())
		c.Set(string(domain.KeyUserEmail), user.Email)

		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error(c, http.StatusUnauthorized, message, nil)
	c.Abort()
}
