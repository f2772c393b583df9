package middleware

import (
	"strings"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/config"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserStatusRepo reports whether the account behind a token is still active.
// Tokens of disabled accounts are rejected even before expiry.
type UserStatusRepo interface {
	IsActive(userID uint) (bool, error)
}

func AuthMiddleware(cfg *config.Config, users UserStatusRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		active, err := users.IsActive(claims.UserID)
		if err != nil || !active {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetClaims(c, claims)
		c.Next()
	}
}

// Authorize checks the caller's role against the policy table for one
// (resource, action) pair. No role inherits another's rights.
func Authorize(res authz.Resource, act authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.CurrentUser(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if !authz.Allowed(claims.Role, res, act) {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
