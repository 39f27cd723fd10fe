package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Auth middleware and performs
// a fast-fail check before any service call: a zero id means the middleware
// did not run (route misconfiguration) or the token carried no identity.
func ctxUserID(c echo.Context) (int64, error) {
	userID, _ := c.Get("user_id").(int64)
	if userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
