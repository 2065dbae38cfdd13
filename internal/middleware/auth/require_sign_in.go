// Package auth holds the two request gates in front of protected routes:
// RequireSignIn resolves a bearer token into a per-request identity, and
// RequireAdmin re-checks the stored role of that identity. Each gate either
// calls the next stage or terminates the request with a 401 body, never both.
package auth

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkohler/webshop/internal/logging"
	"github.com/mkohler/webshop/internal/models"
	"github.com/mkohler/webshop/internal/token"
)

// UserStore is the slice of the record store the admin gate needs. Lookup
// errors must not be swallowed; a missing record is repo.ErrNotFound.
type UserStore interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

const defaultLookupTimeout = 3 * time.Second

type Middleware struct {
	Tokens *token.Service
	Store  UserStore

	// LookupTimeout bounds the role lookup in RequireAdmin so a slow store
	// cannot hold the request forever. Zero means defaultLookupTimeout.
	LookupTimeout time.Duration
}

func New(tokens *token.Service, store UserStore) *Middleware {
	return &Middleware{Tokens: tokens, Store: store}
}

// RequireSignIn reads the token from the Authorization header (the header
// value is the token itself, no Bearer prefix), verifies it and attaches the
// subject id to the request context. It does no store I/O.
func (m *Middleware) RequireSignIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(echo.HeaderAuthorization)
		if raw == "" {
			return reject(c, MsgTokenRequired)
		}

		claims, err := m.Tokens.Verify(raw)
		if err != nil {
			l := logging.FromContext(c.Request().Context()).With("middleware", "require_sign_in")
			l.Warn("token_rejected", "status", 401, "error", err)
			return reject(c, MsgUnauthorized)
		}

		userID, err := claims.UserID()
		if err != nil {
			return reject(c, MsgUnauthorized)
		}

		setIdentity(c, userID)
		return next(c)
	}
}
