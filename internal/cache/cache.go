package cache

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
	"github.com/MrGHPrice/raycast-extensions/internal/service"
)

//go:embed migrations/001_initial.sql
var initialMigration string

// Store is a small local SQLite cache of chats this tool has interacted
// with. It exists so `beeper recent` works offline; it is never consulted
// during matching.
type Store struct {
	*sql.DB
}

// RecentChat is one row of the recently-used chat list.
type RecentChat struct {
	ChatID     string    `json:"chat_id"`
	Title      string    `json:"title"`
	Network    string    `json:"network"`
	Service    string    `json:"service"`
	OpenCount  int       `json:"open_count"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// SentMessage is one row of the locally recorded send history.
type SentMessage struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	ChatTitle string    `json:"chat_title"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

// Open opens or creates the cache database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	// SQLite doesn't support concurrent writes
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	s := &Store{sqlDB}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	var tableCount int
	err := s.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='recent_chats'
	`).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	if tableCount == 0 {
		if _, err := s.Exec(initialMigration); err != nil {
			return fmt.Errorf("failed to run initial migration: %w", err)
		}
	}

	return nil
}

// RecordUse upserts the chat into the recent list and bumps its use count.
func (s *Store) RecordUse(ctx context.Context, chat beeper.Chat) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO recent_chats (chat_id, title, network, service, open_count, last_used_at)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			title = excluded.title,
			network = excluded.network,
			service = excluded.service,
			open_count = open_count + 1,
			last_used_at = excluded.last_used_at
	`, chat.ID, chat.Title, chat.Network, service.Normalize(chat.Network), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record chat use: %w", err)
	}
	return nil
}

// RecordSend appends a sent message to the local history and marks the chat
// as recently used.
func (s *Store) RecordSend(ctx context.Context, chat beeper.Chat, body string) error {
	if err := s.RecordUse(ctx, chat); err != nil {
		return err
	}

	_, err := s.ExecContext(ctx, `
		INSERT INTO sent_messages (id, chat_id, chat_title, body, sent_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.New().String(), chat.ID, chat.Title, body, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record sent message: %w", err)
	}
	return nil
}

// RecentChats returns up to limit chats ordered by most recent use.
func (s *Store) RecentChats(ctx context.Context, limit int) ([]RecentChat, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.QueryContext(ctx, `
		SELECT chat_id, title, network, service, open_count, last_used_at
		FROM recent_chats
		ORDER BY last_used_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent chats: %w", err)
	}
	defer rows.Close()

	var chats []RecentChat
	for rows.Next() {
		var rc RecentChat
		if err := rows.Scan(&rc.ChatID, &rc.Title, &rc.Network, &rc.Service, &rc.OpenCount, &rc.LastUsedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent chat: %w", err)
		}
		chats = append(chats, rc)
	}
	return chats, rows.Err()
}

// SentMessages returns up to limit locally recorded sends, newest first.
func (s *Store) SentMessages(ctx context.Context, limit int) ([]SentMessage, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.QueryContext(ctx, `
		SELECT id, chat_id, chat_title, body, sent_at
		FROM sent_messages
		ORDER BY sent_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sent messages: %w", err)
	}
	defer rows.Close()

	var msgs []SentMessage
	for rows.Next() {
		var m SentMessage
		if err := rows.Scan(&m.ID, &m.ChatID, &m.ChatTitle, &m.Body, &m.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan sent message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
