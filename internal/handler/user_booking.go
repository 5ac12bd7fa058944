package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/raelyaan/venue-booking/internal/middleware"
    "github.com/raelyaan/venue-booking/internal/repository"
)

// BookingForm handles GET /bookForm and shows the new-booking form.
// Anonymous visitors are sent to the login page instead of receiving a
// 403; this is the one logged-in page that redirects.
func (h *BookingHandler) BookingForm(c echo.Context) error {
    sess := middleware.SessionFrom(c)
    if !sess.LoggedIn() {
        return c.Redirect(http.StatusFound, "/login")
    }
    return c.Render(http.StatusOK, "bookForm", echo.Map{
        "Title":    "Book a Venue",
        "Username": sess.Username,
        "IsAdmin":  sess.IsAdmin,
    })
}

// CreateBooking handles POST /book.  The owning name is always the session
// username; a name field in the request body is never consulted.  The new
// booking starts pending.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
    sess := middleware.SessionFrom(c)

    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.String(http.StatusBadRequest, "Invalid request body.")
    }
    venue := trimmed(req.Venue)
    date := trimmed(req.BookingDate)
    timeOfDay := trimmed(req.BookingTime)
    if venue == "" || date == "" || timeOfDay == "" {
        return c.String(http.StatusBadRequest, "Venue, date and time are required.")
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    if _, err := h.Bookings.Create(ctx, venue, date, sess.Username, timeOfDay); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": err.Error()})
    }
    return c.Redirect(http.StatusFound, "/user/bookings")
}

// ListOwn handles GET /user/bookings and lists the bookings owned by the
// session's username.  An empty list renders an empty page, not an error.
func (h *BookingHandler) ListOwn(c echo.Context) error {
    sess := middleware.SessionFrom(c)

    ctx, cancel := reqContext(c)
    defer cancel()
    bookings, err := h.Bookings.ListByName(ctx, sess.Username)
    if err != nil {
        return c.String(http.StatusInternalServerError, "Error retrieving bookings.")
    }
    return c.Render(http.StatusOK, "userBookings", echo.Map{
        "Title":    "Your Bookings",
        "Username": sess.Username,
        "IsAdmin":  sess.IsAdmin,
        "Bookings": bookings,
    })
}

// EditOwnForm handles GET /user/bookings/:id/edit.  The fetch is owner
// scoped: a booking that does not exist and one owned by someone else are
// both reported as not found with the same status.
func (h *BookingHandler) EditOwnForm(c echo.Context) error {
    sess := middleware.SessionFrom(c)
    id, err := bookingID(c)
    if err != nil {
        return invalidID(c)
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    booking, err := h.Bookings.GetByIDAndName(ctx, id, sess.Username)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.String(http.StatusNotFound, "Booking not found or not authorized to edit.")
        }
        return c.String(http.StatusInternalServerError, "Error retrieving booking: "+err.Error())
    }
    return c.Render(http.StatusOK, "editBooking", echo.Map{
        "Title":    "Edit Your Booking",
        "Username": sess.Username,
        "IsAdmin":  false,
        "Booking":  booking,
        "Action":   c.Request().URL.Path,
        "BackLink": "/user/bookings",
    })
}

// EditOwn handles POST /user/bookings/:id/edit.  The update carries the
// ownership filter in its WHERE clause, so a user can never change a
// booking owned by someone else, and the owning name itself is not an
// updatable field on this path.
func (h *BookingHandler) EditOwn(c echo.Context) error {
    sess := middleware.SessionFrom(c)
    id, err := bookingID(c)
    if err != nil {
        return invalidID(c)
    }

    var req editBookingReq
    if err := c.Bind(&req); err != nil {
        return c.String(http.StatusBadRequest, "Invalid request body.")
    }
    venue := trimmed(req.VenueID)
    date := trimmed(req.BookingDate)
    timeOfDay := trimmed(req.BookingTime)
    if venue == "" || date == "" || timeOfDay == "" {
        return c.String(http.StatusBadRequest, "Venue, date and time are required.")
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    err = h.Bookings.UpdateOwned(ctx, id, sess.Username, venue, date, timeOfDay)
    if errors.Is(err, repository.ErrNoRowsAffected) {
        return c.String(http.StatusBadRequest, "No booking updated. It may not exist or you may not be authorized to update it.")
    }
    if err != nil {
        return c.String(http.StatusInternalServerError, "Error updating booking: "+err.Error())
    }
    return c.Redirect(http.StatusFound, "/user/bookings")
}

// DeleteOwn handles POST /user/bookings/:id/delete.  The delete is owner
// scoped and performs no affected-row check: targeting a missing or
// foreign booking removes nothing and still redirects.
func (h *BookingHandler) DeleteOwn(c echo.Context) error {
    sess := middleware.SessionFrom(c)
    id, err := bookingID(c)
    if err != nil {
        return invalidID(c)
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    if err := h.Bookings.DeleteOwned(ctx, id, sess.Username); err != nil {
        return c.String(http.StatusInternalServerError, "Error deleting booking.")
    }
    return c.Redirect(http.StatusFound, "/user/bookings")
}
