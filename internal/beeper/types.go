package beeper

import "time"

// Chat represents a chat aggregated by Beeper Desktop. A chat belongs to a
// bridged messaging account (WhatsApp, Telegram, Signal, ...) identified by
// the free-form Network field.
type Chat struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Network      string     `json:"network"`
	AccountID    string     `json:"accountID,omitempty"`
	Type         string     `json:"type,omitempty"` // "single" or "group"
	LastActivity *time.Time `json:"lastActivity,omitempty"`
	UnreadCount  int        `json:"unreadCount,omitempty"`
	IsMuted      bool       `json:"isMuted,omitempty"`
	IsArchived   bool       `json:"isArchived,omitempty"`
}

// Account represents a messaging account connected to Beeper Desktop.
type Account struct {
	ID      string `json:"accountID"`
	Network string `json:"network"`
	User    string `json:"user,omitempty"`
}

// Message represents a single message in a chat.
type Message struct {
	ID         string    `json:"id"`
	ChatID     string    `json:"chatID"`
	ChatTitle  string    `json:"chatTitle,omitempty"`
	Network    string    `json:"network,omitempty"`
	SenderName string    `json:"senderName,omitempty"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsUnread   bool      `json:"isUnread,omitempty"`
	IsSender   bool      `json:"isSender,omitempty"`
}

// MessagePage is one page of a paginated message search.
type MessagePage struct {
	Items   []Message `json:"items"`
	Cursor  string    `json:"cursor,omitempty"`
	HasMore bool      `json:"hasMore"`
}

// SentMessage is the acknowledgement returned after sending a message.
type SentMessage struct {
	PendingMessageID string `json:"pendingMessageID"`
	ChatID           string `json:"chatID"`
}
