package view

import (
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/raelyaan/venue-booking/internal/model"
)

func TestRendererParsesAllPages(t *testing.T) {
    if _, err := New(); err != nil {
        t.Fatalf("template parse failed: %v", err)
    }
}

func TestRenderUserBookings(t *testing.T) {
    r, err := New()
    if err != nil {
        t.Fatalf("template parse failed: %v", err)
    }
    var sb strings.Builder
    data := echo.Map{
        "Title":    "Your Bookings",
        "Username": "alice",
        "IsAdmin":  false,
        "Bookings": []model.Booking{
            {ID: 1, VenueID: "12", BookingDate: "2026-09-01", Name: "alice", BookingTime: "18:00"},
        },
    }
    if err := r.Render(&sb, "userBookings", data, nil); err != nil {
        t.Fatalf("render failed: %v", err)
    }
    out := sb.String()
    for _, want := range []string{"Your Bookings", "alice", "2026-09-01", "Pending", "/user/bookings/1/edit"} {
        if !strings.Contains(out, want) {
            t.Fatalf("rendered page missing %q:\n%s", want, out)
        }
    }
}

func TestRenderEditBookingAdminShowsNameField(t *testing.T) {
    r, err := New()
    if err != nil {
        t.Fatalf("template parse failed: %v", err)
    }
    booking := &model.Booking{ID: 2, VenueID: "3", BookingDate: "2026-09-02", Name: "bob", BookingTime: "10:00"}

    var admin strings.Builder
    if err := r.Render(&admin, "editBooking", echo.Map{
        "Title": "Admin - Edit Booking", "Username": "admin", "IsAdmin": true,
        "Booking": booking, "Action": "/admin/bookings/2/edit", "BackLink": "/admin/bookings",
    }, nil); err != nil {
        t.Fatalf("render failed: %v", err)
    }
    if !strings.Contains(admin.String(), `name="name"`) {
        t.Fatal("admin edit form should include the name field")
    }

    var user strings.Builder
    if err := r.Render(&user, "editBooking", echo.Map{
        "Title": "Edit Your Booking", "Username": "bob", "IsAdmin": false,
        "Booking": booking, "Action": "/user/bookings/2/edit", "BackLink": "/user/bookings",
    }, nil); err != nil {
        t.Fatalf("render failed: %v", err)
    }
    if strings.Contains(user.String(), `name="name"`) {
        t.Fatal("user edit form must not include the name field")
    }
}

func TestRenderUnknownPage(t *testing.T) {
    r, err := New()
    if err != nil {
        t.Fatalf("template parse failed: %v", err)
    }
    var sb strings.Builder
    if err := r.Render(&sb, "nope", nil, nil); err == nil {
        t.Fatal("expected error for unknown template name")
    }
}
