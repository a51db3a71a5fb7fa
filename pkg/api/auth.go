package api

import (
	"github.com/labstack/echo/v4"
)

// extractUserID extracts the authenticated principal from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email
// (oauth2-proxy) > X-User-Id (direct clients). Empty means anonymous.
func extractUserID(c echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	return c.Request().Header.Get("X-User-Id")
}
