package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/api/middleware"
)

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware. A missing id means the middleware did not run on this route;
// fail fast with 401 rather than querying with an empty id.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
