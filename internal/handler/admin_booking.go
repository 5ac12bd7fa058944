package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/raelyaan/venue-booking/internal/middleware"
    "github.com/raelyaan/venue-booking/internal/model"
    "github.com/raelyaan/venue-booking/internal/queue"
    "github.com/raelyaan/venue-booking/internal/repository"
    queue_publisher "github.com/raelyaan/venue-booking/internal/service"
)

// ListAll handles GET /admin/bookings and lists every booking, unfiltered.
func (h *BookingHandler) ListAll(c echo.Context) error {
    sess := middleware.SessionFrom(c)

    ctx, cancel := reqContext(c)
    defer cancel()
    bookings, err := h.Bookings.ListAll(ctx)
    if err != nil {
        return c.String(http.StatusInternalServerError, "Error retrieving bookings.")
    }
    return c.Render(http.StatusOK, "adminBookings", echo.Map{
        "Title":    "Admin - All Bookings",
        "Username": sess.Username,
        "IsAdmin":  true,
        "Bookings": bookings,
    })
}

// EditForm handles GET /admin/bookings/:id/edit.  The fetch is by id alone;
// admin edits are not ownership scoped.
func (h *BookingHandler) EditForm(c echo.Context) error {
    sess := middleware.SessionFrom(c)
    id, err := bookingID(c)
    if err != nil {
        return invalidID(c)
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    booking, err := h.Bookings.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.String(http.StatusNotFound, "Booking not found.")
        }
        return c.String(http.StatusInternalServerError, "Error retrieving booking: "+err.Error())
    }
    return c.Render(http.StatusOK, "editBooking", echo.Map{
        "Title":    "Admin - Edit Booking",
        "Username": sess.Username,
        "IsAdmin":  true,
        "Booking":  booking,
        "Action":   c.Request().URL.Path,
        "BackLink": "/admin/bookings",
    })
}

// Edit handles POST /admin/bookings/:id/edit.  All four mutable columns
// are updated by id alone; changing the name field reassigns ownership.
func (h *BookingHandler) Edit(c echo.Context) error {
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
    name := trimmed(req.Name)
    timeOfDay := trimmed(req.BookingTime)
    if venue == "" || date == "" || name == "" || timeOfDay == "" {
        return c.String(http.StatusBadRequest, "Venue, date, name and time are required.")
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    err = h.Bookings.UpdateByID(ctx, id, venue, date, name, timeOfDay)
    if errors.Is(err, repository.ErrNoRowsAffected) {
        return c.String(http.StatusBadRequest, "No booking updated. It may not exist.")
    }
    if err != nil {
        return c.String(http.StatusInternalServerError, "Error updating booking: "+err.Error())
    }
    return c.Redirect(http.StatusFound, "/admin/bookings")
}

// Delete handles POST /admin/bookings/:id/delete.  The delete is by id
// alone and performs no affected-row check; a missing id still redirects.
func (h *BookingHandler) Delete(c echo.Context) error {
    id, err := bookingID(c)
    if err != nil {
        return invalidID(c)
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    if err := h.Bookings.DeleteByID(ctx, id); err != nil {
        return c.String(http.StatusInternalServerError, "Error deleting booking.")
    }
    return c.Redirect(http.StatusFound, "/admin/bookings")
}

// Confirm handles POST /admin/bookings/:id/confirm and sets the booking's
// status to confirmed unconditionally.  Repeating the action runs the same
// statement and never errors.
func (h *BookingHandler) Confirm(c echo.Context) error {
    return h.setStatus(c, model.StatusConfirmed, queue.StatusConfirmed, "Error confirming booking.")
}

// Decline handles POST /admin/bookings/:id/decline and sets the booking's
// status to declined unconditionally.
func (h *BookingHandler) Decline(c echo.Context) error {
    return h.setStatus(c, model.StatusDeclined, queue.StatusDeclined, "Error declining booking.")
}

// setStatus applies a status transition, publishes a best-effort status
// event, and redirects back to the admin list regardless of how many rows
// the update touched.
func (h *BookingHandler) setStatus(c echo.Context, status uint8, eventStatus, failMsg string) error {
    sess := middleware.SessionFrom(c)
    id, err := bookingID(c)
    if err != nil {
        return invalidID(c)
    }

    ctx, cancel := reqContext(c)
    defer cancel()
    if err := h.Bookings.SetStatus(ctx, id, status); err != nil {
        return c.String(http.StatusInternalServerError, failMsg)
    }

    // Publish outside the request lifetime; a broker outage must not delay
    // or fail the redirect.
    event := queue.BookingStatusEvent{
        BookingID:  id,
        Status:     eventStatus,
        ActedBy:    sess.Username,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer pubCancel()
        _ = queue_publisher.PublishBookingStatus(pubCtx, event)
    }()

    return c.Redirect(http.StatusFound, "/admin/bookings")
}
