// Package summarize builds plain-text digests of recent or unread messages
// by draining the desktop app's paginated message search.
package summarize

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
	"github.com/MrGHPrice/raycast-extensions/internal/service"
)

// Caps on cursor draining so a huge backlog cannot run away.
const (
	maxPages    = 10
	pageSize    = 50
	maxMessages = 500
)

// Summarizer drains message pages from the Beeper Desktop API and groups
// them into per-chat digests.
type Summarizer struct {
	client *beeper.Client
}

// New creates a Summarizer.
func New(client *beeper.Client) *Summarizer {
	return &Summarizer{client: client}
}

// ChatDigest aggregates the messages of one chat inside a digest.
type ChatDigest struct {
	ChatID   string    `json:"chat_id"`
	Title    string    `json:"title"`
	Service  string    `json:"service"`
	Count    int       `json:"count"`
	Unread   int       `json:"unread"`
	Latest   string    `json:"latest"`
	LatestAt time.Time `json:"latest_at"`
}

// Digest is a grouped summary of messages in a time window.
type Digest struct {
	Since     time.Time    `json:"since"`
	Total     int          `json:"total"`
	Truncated bool         `json:"truncated"`
	Chats     []ChatDigest `json:"chats"`
}

// Window summarizes all messages since the given time, optionally limited to
// one chat. Pages are drained newest-first until the window is exhausted or a
// cap is hit.
func (s *Summarizer) Window(ctx context.Context, since time.Time, chatID string) (*Digest, error) {
	return s.drain(ctx, since, beeper.SearchMessagesParams{ChatID: chatID, Limit: pageSize})
}

// Unread summarizes unread messages since the given time across all chats.
func (s *Summarizer) Unread(ctx context.Context, since time.Time) (*Digest, error) {
	return s.drain(ctx, since, beeper.SearchMessagesParams{UnreadOnly: true, Limit: pageSize})
}

func (s *Summarizer) drain(ctx context.Context, since time.Time, params beeper.SearchMessagesParams) (*Digest, error) {
	digest := &Digest{Since: since}
	byChat := make(map[string]*ChatDigest)

	cursor := ""
	for page := 0; page < maxPages; page++ {
		params.Cursor = cursor
		result, err := s.client.SearchMessages(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch messages: %w", err)
		}

		done := false
		for _, msg := range result.Items {
			// Pages arrive newest-first; the first message older than
			// the window ends the drain.
			if msg.Timestamp.Before(since) {
				done = true
				break
			}
			s.add(digest, byChat, msg)
			if digest.Total >= maxMessages {
				digest.Truncated = true
				done = true
				break
			}
		}

		if done || !result.HasMore || result.Cursor == "" {
			if !done && result.HasMore {
				digest.Truncated = true
			}
			break
		}
		cursor = result.Cursor
	}

	for _, cd := range byChat {
		digest.Chats = append(digest.Chats, *cd)
	}
	sort.Slice(digest.Chats, func(i, j int) bool {
		return digest.Chats[i].LatestAt.After(digest.Chats[j].LatestAt)
	})

	return digest, nil
}

func (s *Summarizer) add(digest *Digest, byChat map[string]*ChatDigest, msg beeper.Message) {
	digest.Total++

	cd, ok := byChat[msg.ChatID]
	if !ok {
		title := msg.ChatTitle
		if title == "" {
			title = msg.ChatID
		}
		cd = &ChatDigest{
			ChatID:  msg.ChatID,
			Title:   title,
			Service: service.Normalize(msg.Network),
		}
		byChat[msg.ChatID] = cd
	}

	cd.Count++
	if msg.IsUnread {
		cd.Unread++
	}
	if msg.Timestamp.After(cd.LatestAt) {
		cd.LatestAt = msg.Timestamp
		cd.Latest = previewText(msg)
	}
}

func previewText(msg beeper.Message) string {
	text := strings.TrimSpace(msg.Text)
	if len(text) > 80 {
		text = text[:77] + "..."
	}
	if msg.SenderName != "" {
		return msg.SenderName + ": " + text
	}
	return text
}

// Format renders the digest as plain text for terminals and AI callers.
func (d *Digest) Format() string {
	if d.Total == 0 {
		return "No messages in this window. All caught up!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d message(s) across %d chat(s) since %s\n",
		d.Total, len(d.Chats), d.Since.Local().Format("Jan 02 15:04"))
	if d.Truncated {
		b.WriteString("(truncated - there may be more)\n")
	}
	b.WriteString("\n")

	for _, c := range d.Chats {
		unread := ""
		if c.Unread > 0 {
			unread = fmt.Sprintf(", %d unread", c.Unread)
		}
		fmt.Fprintf(&b, "- %s [%s] %d message(s)%s\n", c.Title, c.Service, c.Count, unread)
		if c.Latest != "" {
			fmt.Fprintf(&b, "    %s\n", c.Latest)
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
