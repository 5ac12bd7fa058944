package repository

import (
    "context"
    "errors"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"

    "github.com/raelyaan/venue-booking/internal/model"
)

func newMockRepo(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
    if err != nil {
        t.Fatalf("sqlmock: %v", err)
    }
    t.Cleanup(func() { _ = db.Close() })
    return NewBookingRepo(db), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
    t.Helper()
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("unmet expectations: %v", err)
    }
}

func TestCreateInsertsOwnerName(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectExec("INSERT INTO bookings (venue_id, booking_date, name, booking_time) VALUES (?, ?, ?, ?)").
        WithArgs("12", "2026-09-01", "alice", "18:00").
        WillReturnResult(sqlmock.NewResult(7, 1))

    id, err := repo.Create(context.Background(), "12", "2026-09-01", "alice", "18:00")
    if err != nil {
        t.Fatalf("create failed: %v", err)
    }
    if id != 7 {
        t.Fatalf("expected id 7, got %d", id)
    }
    expectationsMet(t, mock)
}

func TestGetByIDAndNameNotFound(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectQuery("SELECT id, venue_id, booking_date, name, booking_time, confirmed FROM bookings WHERE id = ? AND name = ?").
        WithArgs(uint64(5), "alice").
        WillReturnRows(sqlmock.NewRows([]string{"id", "venue_id", "booking_date", "name", "booking_time", "confirmed"}))

    _, err := repo.GetByIDAndName(context.Background(), 5, "alice")
    if !errors.Is(err, ErrNotFound) {
        t.Fatalf("expected ErrNotFound, got %v", err)
    }
    expectationsMet(t, mock)
}

func TestListByNameScansRows(t *testing.T) {
    repo, mock := newMockRepo(t)

    rows := sqlmock.NewRows([]string{"id", "venue_id", "booking_date", "name", "booking_time", "confirmed"}).
        AddRow(1, "12", "2026-09-01", "alice", "18:00", 0).
        AddRow(2, "3", "2026-09-02", "alice", "09:30", 1)
    mock.ExpectQuery("SELECT id, venue_id, booking_date, name, booking_time, confirmed FROM bookings WHERE name = ? ORDER BY id").
        WithArgs("alice").
        WillReturnRows(rows)

    items, err := repo.ListByName(context.Background(), "alice")
    if err != nil {
        t.Fatalf("list failed: %v", err)
    }
    if len(items) != 2 {
        t.Fatalf("expected 2 bookings, got %d", len(items))
    }
    if items[0].VenueID != "12" || items[0].Confirmed != model.StatusPending {
        t.Fatalf("unexpected first row: %+v", items[0])
    }
    if items[1].Confirmed != model.StatusConfirmed {
        t.Fatalf("unexpected status on second row: %+v", items[1])
    }
    expectationsMet(t, mock)
}

func TestListByNameEmptyIsNotError(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectQuery("SELECT id, venue_id, booking_date, name, booking_time, confirmed FROM bookings WHERE name = ? ORDER BY id").
        WithArgs("nobody").
        WillReturnRows(sqlmock.NewRows([]string{"id", "venue_id", "booking_date", "name", "booking_time", "confirmed"}))

    items, err := repo.ListByName(context.Background(), "nobody")
    if err != nil {
        t.Fatalf("list failed: %v", err)
    }
    if len(items) != 0 {
        t.Fatalf("expected empty slice, got %d items", len(items))
    }
    expectationsMet(t, mock)
}

func TestUpdateOwnedCarriesOwnerFilter(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectExec("UPDATE bookings SET venue_id = ?, booking_date = ?, booking_time = ? WHERE id = ? AND name = ?").
        WithArgs("4", "2026-10-01", "20:00", uint64(3), "alice").
        WillReturnResult(sqlmock.NewResult(0, 1))

    if err := repo.UpdateOwned(context.Background(), 3, "alice", "4", "2026-10-01", "20:00"); err != nil {
        t.Fatalf("update failed: %v", err)
    }
    expectationsMet(t, mock)
}

func TestUpdateOwnedZeroRows(t *testing.T) {
    repo, mock := newMockRepo(t)

    // Booking 3 belongs to someone else: the owner filter excludes it and
    // the update touches nothing.
    mock.ExpectExec("UPDATE bookings SET venue_id = ?, booking_date = ?, booking_time = ? WHERE id = ? AND name = ?").
        WithArgs("4", "2026-10-01", "20:00", uint64(3), "alice").
        WillReturnResult(sqlmock.NewResult(0, 0))

    err := repo.UpdateOwned(context.Background(), 3, "alice", "4", "2026-10-01", "20:00")
    if !errors.Is(err, ErrNoRowsAffected) {
        t.Fatalf("expected ErrNoRowsAffected, got %v", err)
    }
    expectationsMet(t, mock)
}

func TestUpdateByIDZeroRows(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectExec("UPDATE bookings SET venue_id = ?, booking_date = ?, name = ?, booking_time = ? WHERE id = ?").
        WithArgs("4", "2026-10-01", "bob", "20:00", uint64(99)).
        WillReturnResult(sqlmock.NewResult(0, 0))

    err := repo.UpdateByID(context.Background(), 99, "4", "2026-10-01", "bob", "20:00")
    if !errors.Is(err, ErrNoRowsAffected) {
        t.Fatalf("expected ErrNoRowsAffected, got %v", err)
    }
    expectationsMet(t, mock)
}

func TestDeleteOwnedIgnoresRowCount(t *testing.T) {
    repo, mock := newMockRepo(t)

    // Zero affected rows is still success on the delete path.
    mock.ExpectExec("DELETE FROM bookings WHERE id = ? AND name = ?").
        WithArgs(uint64(5), "alice").
        WillReturnResult(sqlmock.NewResult(0, 0))

    if err := repo.DeleteOwned(context.Background(), 5, "alice"); err != nil {
        t.Fatalf("delete should ignore row count, got %v", err)
    }
    expectationsMet(t, mock)
}

func TestSetStatusIdempotent(t *testing.T) {
    repo, mock := newMockRepo(t)

    // Confirming twice runs the identical statement; the second run
    // affects zero rows (the value is already 1) and still succeeds.
    mock.ExpectExec("UPDATE bookings SET confirmed = ? WHERE id = ?").
        WithArgs(model.StatusConfirmed, uint64(8)).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec("UPDATE bookings SET confirmed = ? WHERE id = ?").
        WithArgs(model.StatusConfirmed, uint64(8)).
        WillReturnResult(sqlmock.NewResult(0, 0))

    if err := repo.SetStatus(context.Background(), 8, model.StatusConfirmed); err != nil {
        t.Fatalf("first confirm failed: %v", err)
    }
    if err := repo.SetStatus(context.Background(), 8, model.StatusConfirmed); err != nil {
        t.Fatalf("repeated confirm failed: %v", err)
    }
    expectationsMet(t, mock)
}
