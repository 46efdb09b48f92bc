package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

// ctxActor assembles the authenticated identity injected by the Auth
// middleware and fast-fails before any service call:
//   - account_id must be non-empty (presence proves the middleware ran).
//   - role must be one of the defined roles; anything else means the token
//     is structurally valid but operationally unusable — reject with 401.
func ctxActor(c echo.Context) (domain.Actor, error) {
	accountID, _ := c.Get("account_id").(string)
	if accountID == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get("role").(string)
	if !domain.Role(role).Valid() {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing a valid role")
	}

	username, _ := c.Get("username").(string)
	email, _ := c.Get("email").(string)

	return domain.Actor{
		AccountID: accountID,
		Username:  username,
		Email:     email,
		Role:      domain.Role(role),
	}, nil
}
