package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const UserKey = "current_user"

type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

// Auth rejects requests without a valid bearer token and stores the
// freshly loaded user in the context.
func Auth(a Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearer(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := a.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Set("error", err.Error())
			if errors.Is(err, domain.ErrUnauthorized) {
				abort(c, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			abort(c, http.StatusInternalServerError, "internal server error")
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and lets
// anonymous requests through otherwise.
func OptionalAuth(a Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token := bearer(c); token != "" {
			if user, err := a.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(UserKey, user)
			}
		}
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if !user.Actor().HasRole(roles...) {
			abort(c, http.StatusForbidden, "you do not have permission to perform this action")
			return
		}
		c.Next()
	}
}

func CurrentUser(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}

func bearer(c *ginext.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func abort(c *ginext.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ginext.H{"success": false, "message": msg})
}
