package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
)

func fakeSearchServer(t *testing.T, chats []beeper.Chat) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/search-chats" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(struct {
			Items []beeper.Chat `json:"items"`
		}{chats})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolve_ConfidentBestMatch(t *testing.T) {
	srv := fakeSearchServer(t, []beeper.Chat{
		{ID: "c1", Title: "John Smith", Network: "whatsapp"},
		{ID: "c2", Title: "Family Group", Network: "whatsapp"},
	})

	r := New(beeper.New(srv.URL, "tok", time.Second), nil, Options{})
	chat, err := r.Resolve(context.Background(), "John", "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if chat.ID != "c1" {
		t.Errorf("resolved chat = %q, want c1", chat.ID)
	}
}

func TestResolve_SingleWeakMatchStillWins(t *testing.T) {
	srv := fakeSearchServer(t, []beeper.Chat{
		{ID: "c1", Title: "Jonathan Smythe", Network: "signal"},
	})

	// "Jonatan" only fuzzy-matches, well under the confidence bar, but a
	// lone surviving candidate is still returned.
	r := New(beeper.New(srv.URL, "tok", time.Second), nil, Options{MinScore: 0.2})
	chat, err := r.Resolve(context.Background(), "Jonatan", "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if chat.ID != "c1" {
		t.Errorf("resolved chat = %q, want c1", chat.ID)
	}
}

func TestResolve_AmbiguousCarriesSuggestions(t *testing.T) {
	srv := fakeSearchServer(t, []beeper.Chat{
		{ID: "c1", Title: "Samwise Gamgee", Network: "whatsapp"},
		{ID: "c2", Title: "Samson Jones", Network: "whatsapp"},
	})

	// Both are fuzzy/weak matches for "Samm" with scores under the
	// confidence bar, so resolution must refuse and name alternatives.
	r := New(beeper.New(srv.URL, "tok", time.Second), nil, Options{MinScore: 0.2})
	_, err := r.Resolve(context.Background(), "Samm", "")
	if err == nil {
		t.Fatal("expected ambiguity error")
	}

	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("error type = %T, want *NoMatchError", err)
	}
	if len(noMatch.Suggestions) == 0 {
		t.Error("ambiguity error carries no suggestions")
	}
	if !strings.Contains(err.Error(), "Samwise Gamgee") {
		t.Errorf("error %q does not name the top alternative", err)
	}
}

func TestResolve_NoMatches(t *testing.T) {
	srv := fakeSearchServer(t, []beeper.Chat{
		{ID: "c1", Title: "Completely Unrelated", Network: "discord"},
	})

	r := New(beeper.New(srv.URL, "tok", time.Second), nil, Options{})
	_, err := r.Resolve(context.Background(), "Zebra", "")
	if err == nil {
		t.Fatal("expected error")
	}

	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("error type = %T, want *NoMatchError", err)
	}
	if len(noMatch.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %d", len(noMatch.Suggestions))
	}
	if !strings.Contains(err.Error(), "No chat found") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestResolve_ServiceFilterExcludesPerfectTitles(t *testing.T) {
	srv := fakeSearchServer(t, []beeper.Chat{
		{ID: "c1", Title: "Sarah", Network: "whatsapp"},
		{ID: "c2", Title: "Sarah Connor", Network: "telegram"},
	})

	r := New(beeper.New(srv.URL, "tok", time.Second), nil, Options{})
	chat, err := r.Resolve(context.Background(), "Sarah", "telegram")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if chat.ID != "c2" {
		t.Errorf("resolved chat = %q, want c2 (whatsapp exact match must be filtered out)", chat.ID)
	}
}
