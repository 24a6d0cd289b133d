package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
)

// pagedServer serves message pages newest-first, one page per cursor value.
func pagedServer(t *testing.T, pages [][]beeper.Message) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idx := 0
		if c := r.URL.Query().Get("cursor"); c != "" {
			var err error
			idx, err = strconv.Atoi(c)
			if err != nil || idx >= len(pages) {
				http.Error(w, "bad cursor", http.StatusBadRequest)
				return
			}
		}

		page := beeper.MessagePage{Items: pages[idx]}
		if idx+1 < len(pages) {
			page.Cursor = strconv.Itoa(idx + 1)
			page.HasMore = true
		}
		json.NewEncoder(w).Encode(page)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func msg(id, chatID, title, text string, age time.Duration, unread bool) beeper.Message {
	return beeper.Message{
		ID:        id,
		ChatID:    chatID,
		ChatTitle: title,
		Network:   "whatsapp",
		Text:      text,
		Timestamp: time.Now().Add(-age),
		IsUnread:  unread,
	}
}

func TestWindow_DrainsCursorsAndGroups(t *testing.T) {
	pages := [][]beeper.Message{
		{
			msg("m1", "c1", "Mom", "see you soon", time.Hour, true),
			msg("m2", "c2", "Work", "standup moved", 2*time.Hour, false),
		},
		{
			msg("m3", "c1", "Mom", "call me", 3*time.Hour, true),
		},
	}
	srv := pagedServer(t, pages)

	s := New(beeper.New(srv.URL, "tok", time.Second))
	digest, err := s.Window(context.Background(), time.Now().Add(-24*time.Hour), "")
	if err != nil {
		t.Fatalf("Window() error: %v", err)
	}

	if digest.Total != 3 {
		t.Errorf("Total = %d, want 3 (both pages drained)", digest.Total)
	}
	if len(digest.Chats) != 2 {
		t.Fatalf("got %d chat digests, want 2", len(digest.Chats))
	}

	// Newest chat first.
	if digest.Chats[0].Title != "Mom" {
		t.Errorf("first chat = %q, want Mom", digest.Chats[0].Title)
	}
	if digest.Chats[0].Count != 2 || digest.Chats[0].Unread != 2 {
		t.Errorf("Mom digest = %+v, want count 2 unread 2", digest.Chats[0])
	}
	if !strings.Contains(digest.Chats[0].Latest, "see you soon") {
		t.Errorf("latest preview = %q, want newest message", digest.Chats[0].Latest)
	}
	if digest.Chats[0].Service != "whatsapp" {
		t.Errorf("service = %q, want whatsapp", digest.Chats[0].Service)
	}
}

func TestWindow_StopsAtWindowBoundary(t *testing.T) {
	pages := [][]beeper.Message{
		{
			msg("m1", "c1", "Mom", "recent", time.Hour, false),
			msg("m2", "c1", "Mom", "ancient", 48*time.Hour, false),
		},
		{
			// Never fetched: the boundary hit ends the drain.
			msg("m3", "c1", "Mom", "older still", 72*time.Hour, false),
		},
	}
	srv := pagedServer(t, pages)

	s := New(beeper.New(srv.URL, "tok", time.Second))
	digest, err := s.Window(context.Background(), time.Now().Add(-24*time.Hour), "")
	if err != nil {
		t.Fatalf("Window() error: %v", err)
	}

	if digest.Total != 1 {
		t.Errorf("Total = %d, want 1 (messages outside window excluded)", digest.Total)
	}
}

func TestUnread_CountsPerChat(t *testing.T) {
	pages := [][]beeper.Message{
		{
			msg("m1", "c1", "Mom", "hi", time.Hour, true),
			msg("m2", "c1", "Mom", "hello?", 2*time.Hour, true),
		},
	}
	srv := pagedServer(t, pages)

	s := New(beeper.New(srv.URL, "tok", time.Second))
	digest, err := s.Unread(context.Background(), time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Unread() error: %v", err)
	}

	if len(digest.Chats) != 1 || digest.Chats[0].Unread != 2 {
		t.Errorf("unexpected digest: %+v", digest.Chats)
	}
}

func TestDigest_Format(t *testing.T) {
	d := &Digest{Since: time.Now().Add(-24 * time.Hour)}
	if got := d.Format(); !strings.Contains(got, "All caught up") {
		t.Errorf("empty digest format = %q", got)
	}

	d = &Digest{
		Since: time.Now().Add(-24 * time.Hour),
		Total: 2,
		Chats: []ChatDigest{
			{Title: "Mom", Service: "whatsapp", Count: 2, Unread: 1, Latest: "Mom: call me"},
		},
	}
	got := d.Format()
	for _, want := range []string{"Mom", "whatsapp", "1 unread", "call me"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() = %q, missing %q", got, want)
		}
	}
}
