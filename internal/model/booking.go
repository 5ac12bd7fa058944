package model

// Confirmation status values stored in bookings.confirmed.  A new booking
// starts as pending; an admin moves it to confirmed or declined.  The
// update is unconditional, so repeating a transition or flipping between
// confirmed and declined is allowed.
const (
    StatusPending   uint8 = 0 // bookings.confirmed = 0
    StatusConfirmed uint8 = 1 // bookings.confirmed = 1
    StatusDeclined  uint8 = 2 // bookings.confirmed = 2
)

// Booking represents a row in the `bookings` table.  Venue, date and time
// are stored as opaque strings: the application performs no calendar or
// overlap validation, and venue_id is a free-form reference with no venue
// table behind it.  Name is a denormalized copy of the session username
// taken at creation time; there is no user table to reference.
//
// Fields:
//  ID          – primary key identifier.
//  VenueID     – venue reference, accepted from client input verbatim.
//  BookingDate – calendar date as submitted.
//  Name        – owning username, set from the session only.
//  BookingTime – time of day as submitted.
//  Confirmed   – tri-state status (see Status* constants).
type Booking struct {
    ID          uint64 // bookings.id
    VenueID     string // bookings.venue_id
    BookingDate string // bookings.booking_date
    Name        string // bookings.name
    BookingTime string // bookings.booking_time
    Confirmed   uint8  // bookings.confirmed
}

// StatusLabel returns a display string for the booking's confirmation
// status, used by the list views.
func (b Booking) StatusLabel() string {
    switch b.Confirmed {
    case StatusConfirmed:
        return "Confirmed"
    case StatusDeclined:
        return "Declined"
    default:
        return "Pending"
    }
}
