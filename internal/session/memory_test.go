package session

import (
    "context"
    "errors"
    "testing"

    "github.com/raelyaan/venue-booking/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
    store := NewMemoryStore()
    ctx := context.Background()

    sess := &model.Session{ID: NewID(), Username: "alice"}
    if err := store.Save(ctx, sess); err != nil {
        t.Fatalf("save failed: %v", err)
    }

    got, err := store.Get(ctx, sess.ID)
    if err != nil {
        t.Fatalf("get failed: %v", err)
    }
    if got.Username != "alice" || got.IsAdmin {
        t.Fatalf("unexpected session: %+v", got)
    }

    // The returned record is a copy; mutating it must not affect the store.
    got.Username = "mallory"
    again, err := store.Get(ctx, sess.ID)
    if err != nil {
        t.Fatalf("second get failed: %v", err)
    }
    if again.Username != "alice" {
        t.Fatalf("stored session mutated through returned copy: %+v", again)
    }
}

func TestMemoryStoreGetMissing(t *testing.T) {
    store := NewMemoryStore()
    if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
        t.Fatalf("expected ErrNotFound, got %v", err)
    }
}

func TestMemoryStoreDelete(t *testing.T) {
    store := NewMemoryStore()
    ctx := context.Background()

    sess := &model.Session{ID: "abc", Username: "bob"}
    if err := store.Save(ctx, sess); err != nil {
        t.Fatalf("save failed: %v", err)
    }
    if err := store.Delete(ctx, "abc"); err != nil {
        t.Fatalf("delete failed: %v", err)
    }
    if _, err := store.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
        t.Fatalf("expected ErrNotFound after delete, got %v", err)
    }
    // Deleting an absent session is not an error.
    if err := store.Delete(ctx, "abc"); err != nil {
        t.Fatalf("double delete errored: %v", err)
    }
}

func TestSessionLoggedIn(t *testing.T) {
    s := model.Session{ID: "x"}
    if s.LoggedIn() {
        t.Fatal("empty username should not count as logged in")
    }
    s.Username = "alice"
    if !s.LoggedIn() {
        t.Fatal("session with username should count as logged in")
    }
}
