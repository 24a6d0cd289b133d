package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

func (s *Server) registerHandlers() {
	s.handlers["search_chats"] = s.handleSearchChats
	s.handlers["open_chat"] = s.handleOpenChat
	s.handlers["send_message"] = s.handleSendMessage
	s.handlers["summarize_messages"] = s.handleSummarizeMessages
	s.handlers["get_unread_summary"] = s.handleUnreadSummary
	s.handlers["list_accounts"] = s.handleListAccounts
}

type searchChatsParams struct {
	Name       string `json:"name"`
	Service    string `json:"service"`
	MaxResults int    `json:"max_results"`
}

func (s *Server) handleSearchChats(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p searchChatsParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	results, err := s.resolver.Candidates(ctx, p.Name, p.Service)
	if err != nil {
		return nil, err
	}
	if p.MaxResults > 0 && len(results) > p.MaxResults {
		results = results[:p.MaxResults]
	}
	return results, nil
}

type openChatParams struct {
	Name    string `json:"name"`
	Service string `json:"service"`
}

func (s *Server) handleOpenChat(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p openChatParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	chat, err := s.resolver.Resolve(ctx, p.Name, p.Service)
	if err != nil {
		return nil, err
	}

	if err := s.client.OpenChat(ctx, chat.ID); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Opened %q", chat.Title), nil
}

type sendMessageParams struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Service string `json:"service"`
}

func (s *Server) handleSendMessage(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p sendMessageParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.Name == "" || p.Text == "" {
		return nil, fmt.Errorf("name and text are required")
	}

	chat, err := s.resolver.Resolve(ctx, p.Name, p.Service)
	if err != nil {
		return nil, err
	}

	if _, err := s.client.SendMessage(ctx, chat.ID, p.Text); err != nil {
		return nil, err
	}

	if s.store != nil {
		_ = s.store.RecordSend(ctx, *chat, p.Text)
	}
	return fmt.Sprintf("Sent to %q", chat.Title), nil
}

type summarizeParams struct {
	SinceHours int    `json:"since_hours"`
	Chat       string `json:"chat"`
}

func (s *Server) handleSummarizeMessages(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p summarizeParams
	if params != nil {
		json.Unmarshal(params, &p)
	}

	since := sinceFromHours(p.SinceHours)

	chatID := ""
	if p.Chat != "" {
		chat, err := s.resolver.Resolve(ctx, p.Chat, "")
		if err != nil {
			return nil, err
		}
		chatID = chat.ID
	}

	digest, err := s.summarizer.Window(ctx, since, chatID)
	if err != nil {
		return nil, err
	}
	return digest.Format(), nil
}

func (s *Server) handleUnreadSummary(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p summarizeParams
	if params != nil {
		json.Unmarshal(params, &p)
	}

	digest, err := s.summarizer.Unread(ctx, sinceFromHours(p.SinceHours))
	if err != nil {
		return nil, err
	}
	return digest.Format(), nil
}

func (s *Server) handleListAccounts(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.client.ListAccounts(ctx)
}

func sinceFromHours(hours int) time.Time {
	if hours <= 0 {
		hours = 24
	}
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}
