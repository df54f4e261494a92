package jwtmw

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"mtc_backend/internal/apperror"
	"mtc_backend/internal/feature/user/domain/entity"
)

// ContextUser is the gin context key holding the authenticated user.
const ContextUser = "currentUser"

// UnauthorizedRouteMessage is returned when a protected route is hit
// without a usable token.
const UnauthorizedRouteMessage = "This route requires authorization"

// RoleUnauthorizedSuffix follows the offending role in the detail message
// of a role check failure.
const RoleUnauthorizedSuffix = " role is unauthorized to access this route"

// UserLoader resolves the user behind a verified token. The auth feature
// supplies it so this package stays free of storage concerns.
type UserLoader func(ctx context.Context, id string) (*entity.User, error)

// AuthRequired validates the bearer token and loads the authenticated user
// into the context. Requests without a valid token and an existing user are
// rejected before the handler runs.
func AuthRequired(secret string, load UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c)
			return
		}
		userID, ok := claims["userId"].(string)
		if !ok || userID == "" {
			abortUnauthorized(c)
			return
		}

		user, err := load(c.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the allowed
// set. It must run after AuthRequired.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c)
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		_ = c.Error(apperror.NewForbidden(
			apperror.CodeInvalidAuthParams,
			string(user.Role)+RoleUnauthorizedSuffix,
		))
		c.Abort()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	value, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := value.(*entity.User)
	return user
}

func abortUnauthorized(c *gin.Context) {
	_ = c.Error(apperror.NewUnauthorized(
		apperror.CodeInvalidAuthParams,
		UnauthorizedRouteMessage,
	))
	c.Abort()
}
