package middleware

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireUser returns a middleware that enforces a logged-in session.  It
// assumes LoadSession has already run and placed the session in context.
// Anonymous requests are rejected with 403 before any handler or store
// access executes; there is no bypass.
func RequireUser() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !SessionFrom(c).LoggedIn() {
                return c.String(http.StatusForbidden, "Please log in first.")
            }
            return next(c)
        }
    }
}

// RequireAdmin returns a middleware that enforces the admin role.  Any
// session without the admin flag, logged in or not, is rejected with 403.
func RequireAdmin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !SessionFrom(c).IsAdmin {
                return c.String(http.StatusForbidden, "Access denied. Admins only.")
            }
            return next(c)
        }
    }
}
