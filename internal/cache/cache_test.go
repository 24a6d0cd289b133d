package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordUse_UpsertsAndCounts(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	chat := beeper.Chat{ID: "c1", Title: "Mom", Network: "whatsapp_bridge"}
	if err := s.RecordUse(ctx, chat); err != nil {
		t.Fatalf("RecordUse() error: %v", err)
	}
	if err := s.RecordUse(ctx, chat); err != nil {
		t.Fatalf("RecordUse() second error: %v", err)
	}

	chats, err := s.RecentChats(ctx, 10)
	if err != nil {
		t.Fatalf("RecentChats() error: %v", err)
	}
	if len(chats) != 1 {
		t.Fatalf("got %d rows, want 1 (upsert)", len(chats))
	}
	if chats[0].OpenCount != 2 {
		t.Errorf("OpenCount = %d, want 2", chats[0].OpenCount)
	}
	if chats[0].Service != "whatsapp" {
		t.Errorf("Service = %q, want normalized whatsapp", chats[0].Service)
	}
}

func TestRecentChats_OrderAndLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		chat := beeper.Chat{ID: id, Title: "Chat " + id, Network: "telegram"}
		if err := s.RecordUse(ctx, chat); err != nil {
			t.Fatalf("RecordUse(%s) error: %v", id, err)
		}
	}

	chats, err := s.RecentChats(ctx, 2)
	if err != nil {
		t.Fatalf("RecentChats() error: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("got %d rows, want 2", len(chats))
	}
}

func TestRecordSend(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	chat := beeper.Chat{ID: "c1", Title: "Dad", Network: "signal"}
	if err := s.RecordSend(ctx, chat, "happy birthday"); err != nil {
		t.Fatalf("RecordSend() error: %v", err)
	}

	msgs, err := s.SentMessages(ctx, 10)
	if err != nil {
		t.Fatalf("SentMessages() error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Body != "happy birthday" || msgs[0].ChatTitle != "Dad" {
		t.Errorf("unexpected message: %+v", msgs[0])
	}
	if msgs[0].ID == "" {
		t.Error("message ID not assigned")
	}

	// Sending also marks the chat recently used.
	chats, err := s.RecentChats(ctx, 10)
	if err != nil {
		t.Fatalf("RecentChats() error: %v", err)
	}
	if len(chats) != 1 || chats[0].ChatID != "c1" {
		t.Errorf("send did not record chat use: %+v", chats)
	}
}
