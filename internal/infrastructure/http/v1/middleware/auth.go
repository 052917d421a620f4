package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/appctx"
	"stockroom/internal/domain/auth"
)

// Auth validates the bearer token and places the user in the context.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			_ = c.Error(apperror.NewUnauthorized("missing authorization header"))
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			_ = c.Error(apperror.NewUnauthorized("authorization header must use Bearer scheme"))
			c.Abort()
			return
		}

		claims, err := jwtService.Parse(token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   claims.Role,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole refuses requests from users below the required role.
// The hierarchy is strict: admin covers staff, staff covers viewer.
func RequireRole(required auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if !auth.Role(user.Role).Allows(required) {
			_ = c.Error(apperror.NewForbidden("insufficient role").
				WithDetail("required", string(required)).
				WithDetail("role", user.Role))
			c.Abort()
			return
		}

		c.Next()
	}
}
