package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/testutil"
)

func TestContactStoreCreateUnread(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := store.NewContactStore(db)
	ctx := context.Background()

	sub, err := s.Create(ctx, "Pat", "pat@example.com", "555-0100", "mowing", "quote please")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub.Read {
		t.Fatal("new submission must start unread")
	}

	n, err := s.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if n != 1 {
		t.Fatalf("unread count = %d, want 1", n)
	}
}

func TestContactStoreMarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := store.NewContactStore(db)
	ctx := context.Background()

	sub, err := s.Create(ctx, "Pat", "pat@example.com", "", "", "hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	marked, err := s.MarkRead(ctx, sub.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !marked.Read {
		t.Fatal("submission should be read after mark")
	}

	// Idempotent: marking again is a no-op success.
	again, err := s.MarkRead(ctx, sub.ID)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if !again.Read {
		t.Fatal("submission should stay read")
	}

	if _, err := s.MarkRead(ctx, 9999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("mark missing: got %v, want ErrNotFound", err)
	}

	n, _ := s.UnreadCount(ctx)
	if n != 0 {
		t.Fatalf("unread count = %d, want 0", n)
	}
}

func TestContactStoreListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := store.NewContactStore(db)
	ctx := context.Background()

	for _, name := range []string{"one", "two", "three"} {
		if _, err := s.Create(ctx, name, name+"@example.com", "", "", "msg"); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	subs, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(subs))
	}
	// Same-timestamp rows fall back to id descending, so the latest insert
	// leads either way.
	if subs[0].Name != "three" {
		t.Fatalf("expected newest first, got %q", subs[0].Name)
	}
}

func TestContactStoreDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := store.NewContactStore(db)
	ctx := context.Background()

	sub, err := s.Create(ctx, "gone", "gone@example.com", "", "", "bye")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetByID(ctx, sub.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("get after delete: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, sub.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}
