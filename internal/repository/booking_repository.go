package repository

import (
    "context"
    "database/sql"

    "github.com/raelyaan/venue-booking/internal/model"
)

// BookingRepo provides CRUD operations for booking records.  Venue, date
// and time values are stored as opaque strings; the repository performs no
// calendar validation.  Owner-scoped variants carry the owning name in the
// WHERE clause so ownership is enforced by the statement itself rather
// than by a separate check.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = "id, venue_id, booking_date, name, booking_time, confirmed"

// Create inserts a new booking owned by name.  The confirmed column takes
// its schema default of 0 (pending).  It returns the generated id.
func (r *BookingRepo) Create(ctx context.Context, venueID, bookingDate, name, bookingTime string) (uint64, error) {
    const q = `INSERT INTO bookings (venue_id, booking_date, name, booking_time) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, venueID, bookingDate, name, bookingTime)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// ListAll returns every booking, ordered by id.  Used by the admin list.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return scanBookings(rows)
}

// ListByName returns the bookings owned by name, ordered by id.  Used by
// the per-user list.  An empty result is a valid empty slice, not an error.
func (r *BookingRepo) ListByName(ctx context.Context, name string) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE name = ? ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q, name)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return scanBookings(rows)
}

// GetByID fetches a booking by id alone.  Used by admin edit, which is not
// ownership-scoped.  Returns ErrNotFound when no row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
    return r.getOne(ctx, q, id)
}

// GetByIDAndName fetches a booking by id restricted to its owner.  A
// missing row and an ownership mismatch are indistinguishable here; both
// return ErrNotFound.
func (r *BookingRepo) GetByIDAndName(ctx context.Context, id uint64, name string) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? AND name = ?`
    return r.getOne(ctx, q, id, name)
}

// UpdateByID updates all four mutable columns by id alone.  Admin use
// only: changing name reassigns ownership.  Returns ErrNoRowsAffected when
// the id matches nothing.
func (r *BookingRepo) UpdateByID(ctx context.Context, id uint64, venueID, bookingDate, name, bookingTime string) error {
    const q = `UPDATE bookings SET venue_id = ?, booking_date = ?, name = ?, booking_time = ? WHERE id = ?`
    return r.execChecked(ctx, q, venueID, bookingDate, name, bookingTime, id)
}

// UpdateOwned updates the venue, date and time columns for a booking owned
// by owner.  The owning name is not an updatable column on this path.
// Returns ErrNoRowsAffected when the id is missing or owned by someone else.
func (r *BookingRepo) UpdateOwned(ctx context.Context, id uint64, owner, venueID, bookingDate, bookingTime string) error {
    const q = `UPDATE bookings SET venue_id = ?, booking_date = ?, booking_time = ? WHERE id = ? AND name = ?`
    return r.execChecked(ctx, q, venueID, bookingDate, bookingTime, id, owner)
}

// DeleteByID deletes a booking by id alone.  No affected-row check is
// performed: deleting a missing id succeeds silently, matching the delete
// contract (asymmetric with update on purpose).
func (r *BookingRepo) DeleteByID(ctx context.Context, id uint64) error {
    const q = `DELETE FROM bookings WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, id)
    return err
}

// DeleteOwned deletes a booking by id restricted to its owner.  Like
// DeleteByID it performs no affected-row check, so targeting someone
// else's booking deletes nothing and still succeeds.
func (r *BookingRepo) DeleteOwned(ctx context.Context, id uint64, owner string) error {
    const q = `DELETE FROM bookings WHERE id = ? AND name = ?`
    _, err := r.db.ExecContext(ctx, q, id, owner)
    return err
}

// SetStatus sets the confirmed column unconditionally by id.  Repeating
// the same transition, or flipping between confirmed and declined, runs
// the identical statement and never errors.
func (r *BookingRepo) SetStatus(ctx context.Context, id uint64, status uint8) error {
    const q = `UPDATE bookings SET confirmed = ? WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, status, id)
    return err
}

// getOne runs a single-row query and maps sql.ErrNoRows to ErrNotFound.
func (r *BookingRepo) getOne(ctx context.Context, q string, args ...any) (*model.Booking, error) {
    var b model.Booking
    err := r.db.QueryRowContext(ctx, q, args...).Scan(
        &b.ID, &b.VenueID, &b.BookingDate, &b.Name, &b.BookingTime, &b.Confirmed,
    )
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// execChecked runs an UPDATE and maps a zero affected-row count to
// ErrNoRowsAffected.
func (r *BookingRepo) execChecked(ctx context.Context, q string, args ...any) error {
    res, err := r.db.ExecContext(ctx, q, args...)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrNoRowsAffected
    }
    return nil
}

// scanBookings drains rows into a slice of bookings.
func scanBookings(rows *sql.Rows) ([]model.Booking, error) {
    items := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := rows.Scan(&b.ID, &b.VenueID, &b.BookingDate, &b.Name, &b.BookingTime, &b.Confirmed); err != nil {
            return nil, err
        }
        items = append(items, b)
    }
    return items, rows.Err()
}
