package handler // handler defines http handlers

import (
    "context" // context carries request-scoped deadlines to the store
    "net/http"
    "strconv" // strconv parses string identifiers to numeric types
    "strings" // strings offers trimming utilities
    "time"

    "github.com/labstack/echo/v4"

    "github.com/raelyaan/venue-booking/internal/repository" // repository holds the data access layer
)

// storeTimeout bounds every database round trip made by a handler.
const storeTimeout = 5 * time.Second

// BookingHandler bundles the booking repository for the user- and
// admin-facing booking endpoints.
type BookingHandler struct {
    Bookings *repository.BookingRepo
}

// NewBookingHandler constructs a BookingHandler and panics if the
// repository is nil.
func NewBookingHandler(bookings *repository.BookingRepo) *BookingHandler {
    if bookings == nil {
        panic("nil repository passed to NewBookingHandler")
    }
    return &BookingHandler{Bookings: bookings}
}

// ----- input schemas -----

// createBookingReq is the POST /book body.  Field names follow the booking
// form.  Any client-submitted name field is ignored: ownership comes from
// the session only.
type createBookingReq struct {
    Venue       string `form:"venue" json:"venue"`
    BookingDate string `form:"bookingDate" json:"bookingDate"`
    BookingTime string `form:"bookingTime" json:"bookingTime"`
}

// editBookingReq is the edit form body.  Name is only honored on the admin
// path, where an admin may reassign ownership.
type editBookingReq struct {
    VenueID     string `form:"venue_id" json:"venue_id"`
    BookingDate string `form:"booking_date" json:"booking_date"`
    Name        string `form:"name" json:"name"`
    BookingTime string `form:"booking_time" json:"booking_time"`
}

// reqContext derives a bounded context for a single store round trip.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), storeTimeout)
}

// bookingID parses the :id route parameter.
func bookingID(c echo.Context) (uint64, error) {
    return strconv.ParseUint(c.Param("id"), 10, 64)
}

// trimmed returns s without surrounding whitespace.
func trimmed(s string) string { return strings.TrimSpace(s) }

// invalidID writes the 400 response for a non-numeric :id parameter.
func invalidID(c echo.Context) error {
    return c.String(http.StatusBadRequest, "Invalid booking id.")
}
