package handler

import (
    "context"  // provides context with cancellation for store calls
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"     // timeouts for store calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/raelyaan/venue-booking/internal/config"     // app configuration
    "github.com/raelyaan/venue-booking/internal/middleware" // session extraction from context
    "github.com/raelyaan/venue-booking/internal/session"    // session store interface
)

// AuthHandler bundles dependencies for the login/logout endpoints and the
// role-based landing redirect.
type AuthHandler struct {
    Cfg      config.Config
    Sessions session.Store
}

func NewAuthHandler(cfg config.Config, s session.Store) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Sessions: s}
}

// ----- DTOs -----

type loginReq struct {
    Username string `form:"username" json:"username"`
    Password string `form:"password" json:"password"`
}

// Home handles GET /.  Logged-in users are redirected by role: admins to
// the full booking list, everyone else to the booking form.  Anonymous
// visitors get the landing page.
func (h *AuthHandler) Home(c echo.Context) error {
    sess := middleware.SessionFrom(c)
    if sess.LoggedIn() {
        if sess.IsAdmin {
            return c.Redirect(http.StatusFound, "/admin/bookings")
        }
        return c.Redirect(http.StatusFound, "/bookForm")
    }
    return c.Render(http.StatusOK, "intro", echo.Map{
        "Title": "Welcome to Venue Booking",
    })
}

// LoginForm handles GET /login and shows the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
    sess := middleware.SessionFrom(c)
    return c.Render(http.StatusOK, "login", echo.Map{
        "Title":    "Login",
        "Username": sess.Username,
        "IsAdmin":  sess.IsAdmin,
    })
}

// Login handles POST /login.  The admin credentials grant an admin session
// with the fixed admin identity; any other username is taken verbatim as a
// non-admin identity and the password is not checked.  Login has no
// failure path beyond a malformed body: only the resulting role differs.
// The open-door non-admin password is deliberate.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.String(http.StatusBadRequest, "Invalid request body.")
    }
    username := strings.TrimSpace(req.Username)

    sess := middleware.SessionFrom(c)
    if username == h.Cfg.AdminUser && req.Password == h.Cfg.AdminPass {
        sess.IsAdmin = true
        sess.Username = h.Cfg.AdminUser
    } else {
        sess.IsAdmin = false
        sess.Username = username
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Sessions.Save(ctx, sess); err != nil {
        return c.String(http.StatusInternalServerError, "Error saving session: "+err.Error())
    }

    if sess.IsAdmin {
        return c.Redirect(http.StatusFound, "/admin/bookings")
    }
    return c.Redirect(http.StatusFound, "/bookForm")
}

// Logout handles GET /logout.  It destroys the session record, expires the
// cookie and redirects to the login page.  Logout always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
    sess := middleware.SessionFrom(c)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    _ = h.Sessions.Delete(ctx, sess.ID) // best effort; the cookie is expired regardless

    c.SetCookie(&http.Cookie{
        Name:     middleware.CookieName,
        Value:    "",
        Path:     "/",
        MaxAge:   -1,
        HttpOnly: true,
    })
    return c.Redirect(http.StatusFound, "/login")
}
