package middleware // middleware provides shared request processing for handlers

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/raelyaan/venue-booking/internal/model"
    "github.com/raelyaan/venue-booking/internal/session"
)

// CookieName is the cookie that carries the opaque session identifier.
const CookieName = "session_id"

// sessionKey is the echo context key under which the loaded session is stored.
const sessionKey = "session"

// LoadSession returns a middleware that resolves the request's session and
// stores it in the echo context for downstream middleware and handlers.  A
// browser with no cookie, or a cookie whose record has expired, gets a
// fresh empty session created and saved immediately — a session exists from
// first contact and only becomes logged in once a login populates it.
func LoadSession(store session.Store) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ctx := c.Request().Context()

            if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
                sess, err := store.Get(ctx, cookie.Value)
                if err == nil {
                    c.Set(sessionKey, sess)
                    return next(c)
                }
                if !errors.Is(err, session.ErrNotFound) {
                    return c.String(http.StatusInternalServerError, "Error loading session: "+err.Error())
                }
                // Stale cookie: fall through and mint a new session.
            }

            sess := &model.Session{ID: session.NewID()}
            if err := store.Save(ctx, sess); err != nil {
                return c.String(http.StatusInternalServerError, "Error creating session: "+err.Error())
            }
            c.SetCookie(&http.Cookie{
                Name:     CookieName,
                Value:    sess.ID,
                Path:     "/",
                HttpOnly: true,
            })
            c.Set(sessionKey, sess)
            return next(c)
        }
    }
}

// SessionFrom retrieves the session placed in context by LoadSession.  It
// returns an empty session when the middleware did not run, so callers can
// always dereference the result.
func SessionFrom(c echo.Context) *model.Session {
    if v, ok := c.Get(sessionKey).(*model.Session); ok && v != nil {
        return v
    }
    return &model.Session{}
}
