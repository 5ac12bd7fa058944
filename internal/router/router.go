package router // package router defines how HTTP routes are registered for the application

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/raelyaan/venue-booking/internal/handler"    // import the handlers that implement the booking logic
    "github.com/raelyaan/venue-booking/internal/middleware" // import middleware for session loading and role enforcement
    "github.com/raelyaan/venue-booking/internal/session"    // session store threaded through the middleware
)

// Register wires every route of the application onto the provided Echo
// instance.  The session-loading middleware runs on all routes so a session
// exists from first contact; the role gates run before any handler on
// protected routes, so no store access can happen for a denied request.
func Register(e *echo.Echo, store session.Store, a *handler.AuthHandler, b *handler.BookingHandler) {
    // Resolve the session for every request, protected or not.
    e.Use(middleware.LoadSession(store))

    // Liveness probe for load balancers and monitoring.
    e.GET("/healthz", handler.Health)

    // Landing page and login/logout.  These are reachable by anyone; the
    // landing handler redirects by role itself.
    e.GET("/", a.Home)
    e.GET("/login", a.LoginForm)
    e.POST("/login", a.Login)
    e.GET("/logout", a.Logout)

    // The booking form redirects anonymous visitors to /login instead of
    // rejecting them, so it is registered without the role gate.
    e.GET("/bookForm", b.BookingForm)

    // Creating a booking requires a logged-in session: the owning name is
    // taken from the session and must be present.
    e.POST("/book", b.CreateBooking, middleware.RequireUser())

    // ---- User routes (owner-scoped) ----
    user := e.Group("/user", middleware.RequireUser())
    user.GET("/bookings", b.ListOwn)
    user.GET("/bookings/:id/edit", b.EditOwnForm)
    user.POST("/bookings/:id/edit", b.EditOwn)
    user.POST("/bookings/:id/delete", b.DeleteOwn)

    // ---- Admin routes (unscoped) ----
    admin := e.Group("/admin", middleware.RequireAdmin())
    admin.GET("/bookings", b.ListAll)
    admin.GET("/bookings/:id/edit", b.EditForm)
    admin.POST("/bookings/:id/edit", b.Edit)
    admin.POST("/bookings/:id/delete", b.Delete)
    admin.POST("/bookings/:id/confirm", b.Confirm)
    admin.POST("/bookings/:id/decline", b.Decline)
}
