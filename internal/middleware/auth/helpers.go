package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Rejection messages are part of the public contract: clients key off them,
// and "no such user" vs "wrong role" are collapsed on purpose so the response
// does not leak which check failed.
const (
	MsgTokenRequired   = "Authorization token is required"
	MsgUnauthorized    = "Unauthorized Access"
	MsgAdminMiddleware = "Error in admin middleware"
)

const identityKey = "userID"

func setIdentity(c echo.Context, userID uint) {
	c.Set(identityKey, userID)
}

// IdentityFrom returns the user id RequireSignIn attached to this request.
func IdentityFrom(c echo.Context) (uint, bool) {
	id, ok := c.Get(identityKey).(uint)
	return id, ok
}

func reject(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": message,
	})
}
