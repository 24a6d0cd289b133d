package beeper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSearchChats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/search-chats" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "sarah" {
			t.Errorf("query = %q, want sarah", got)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("limit = %q, want 20", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q", got)
		}

		json.NewEncoder(w).Encode(searchChatsResponse{Items: []Chat{
			{ID: "c1", Title: "Sarah", Network: "whatsapp"},
			{ID: "c2", Title: "Sarah Connor", Network: "telegram"},
		}})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123", 5*time.Second)
	chats, err := c.SearchChats(context.Background(), "sarah", 20)
	if err != nil {
		t.Fatalf("SearchChats() error: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("got %d chats, want 2", len(chats))
	}
	if chats[0].ID != "c1" || chats[1].Network != "telegram" {
		t.Errorf("unexpected chats: %+v", chats)
	}
}

func TestSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v0/send-message" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["chatID"] != "c1" || body["text"] != "hello" {
			t.Errorf("unexpected body: %v", body)
		}
		if body["pendingMessageID"] == "" {
			t.Error("missing pendingMessageID")
		}

		json.NewEncoder(w).Encode(SentMessage{
			PendingMessageID: body["pendingMessageID"],
			ChatID:           body["chatID"],
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", 5*time.Second)
	sent, err := c.SendMessage(context.Background(), "c1", "hello")
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if sent.ChatID != "c1" || sent.PendingMessageID == "" {
		t.Errorf("unexpected ack: %+v", sent)
	}
}

func TestSearchMessages_Pagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("cursor")
		if cursor == "" {
			json.NewEncoder(w).Encode(MessagePage{
				Items:   []Message{{ID: "m1", Text: "first"}},
				Cursor:  "page2",
				HasMore: true,
			})
			return
		}
		json.NewEncoder(w).Encode(MessagePage{
			Items: []Message{{ID: "m2", Text: "second"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", 5*time.Second)

	page, err := c.SearchMessages(context.Background(), SearchMessagesParams{ChatID: "c1"})
	if err != nil {
		t.Fatalf("SearchMessages() error: %v", err)
	}
	if !page.HasMore || page.Cursor != "page2" {
		t.Fatalf("unexpected first page: %+v", page)
	}

	page, err = c.SearchMessages(context.Background(), SearchMessagesParams{ChatID: "c1", Cursor: page.Cursor})
	if err != nil {
		t.Fatalf("SearchMessages() page 2 error: %v", err)
	}
	if page.HasMore || len(page.Items) != 1 || page.Items[0].ID != "m2" {
		t.Errorf("unexpected second page: %+v", page)
	}
}

func TestUnauthorizedErrorMentionsLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "stale", 5*time.Second)
	_, err := c.ListAccounts(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "beeper login") {
		t.Errorf("error %q does not point at 'beeper login'", err)
	}
}

func TestEnsureRunning_Unreachable(t *testing.T) {
	// A closed server makes the health check fail fast.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "", time.Second)
	err := c.EnsureRunning(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable desktop app")
	}
	if !strings.Contains(err.Error(), "Beeper Desktop") {
		t.Errorf("error %q does not mention Beeper Desktop", err)
	}
}
