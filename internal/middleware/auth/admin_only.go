package auth

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/mkohler/webshop/internal/logging"
	"github.com/mkohler/webshop/internal/models"
	"github.com/mkohler/webshop/internal/repo"
)

// RequireAdmin must run after RequireSignIn. The role is re-fetched from the
// store on every request rather than read from the token, so promotions and
// demotions apply without reissuing tokens.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := IdentityFrom(c)
		if !ok {
			return reject(c, MsgUnauthorized)
		}

		timeout := m.LookupTimeout
		if timeout <= 0 {
			timeout = defaultLookupTimeout
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		user, err := m.Store.UserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return reject(c, MsgUnauthorized)
			}
			l := logging.FromContext(c.Request().Context()).With("middleware", "require_admin")
			l.Error("store_lookup_failed", "status", 401, "user_id", userID, "error", err)
			return reject(c, MsgAdminMiddleware)
		}

		if user.Role != models.RoleAdmin {
			return reject(c, MsgUnauthorized)
		}

		return next(c)
	}
}
