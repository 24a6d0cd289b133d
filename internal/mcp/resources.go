package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MrGHPrice/raycast-extensions/internal/service"
)

// Resource represents an MCP resource definition
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

// ResourceDefinitions contains all available MCP resources
var ResourceDefinitions = []Resource{
	{
		URI:         "beeper://accounts",
		Name:        "Connected accounts",
		Description: "Messaging accounts connected to Beeper Desktop",
		MimeType:    "text/plain",
	},
	{
		URI:         "beeper://unread",
		Name:        "Unread summary",
		Description: "Summary of unread messages from the last 24 hours",
		MimeType:    "text/plain",
	},
	{
		URI:         "beeper://recent",
		Name:        "Recently used chats",
		Description: "Chats recently opened or messaged through this tool",
		MimeType:    "text/plain",
	},
}

type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

type readResourceParams struct {
	URI string `json:"uri"`
}

type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "beeper://accounts":
		return s.getResourceAccounts(ctx)
	case "beeper://unread":
		return s.getResourceUnread(ctx)
	case "beeper://recent":
		return s.getResourceRecent(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceAccounts(ctx context.Context) (string, error) {
	accounts, err := s.client.ListAccounts(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Connected Accounts\n==================\n\n")

	if len(accounts) == 0 {
		b.WriteString("No accounts connected.\n")
		return b.String(), nil
	}

	for _, a := range accounts {
		user := a.User
		if user == "" {
			user = "-"
		}
		fmt.Fprintf(&b, "- %s | %s | %s\n", a.ID, service.Normalize(a.Network), user)
	}

	return b.String(), nil
}

func (s *Server) getResourceUnread(ctx context.Context) (string, error) {
	digest, err := s.summarizer.Unread(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return "", err
	}
	return digest.Format(), nil
}

func (s *Server) getResourceRecent(ctx context.Context) (string, error) {
	var b strings.Builder
	b.WriteString("Recently Used Chats\n===================\n\n")

	if s.store == nil {
		b.WriteString("Local cache unavailable.\n")
		return b.String(), nil
	}

	chats, err := s.store.RecentChats(ctx, 20)
	if err != nil {
		return "", err
	}
	if len(chats) == 0 {
		b.WriteString("No chats used yet.\n")
		return b.String(), nil
	}

	for _, c := range chats {
		days := int(time.Since(c.LastUsedAt).Hours() / 24)
		fmt.Fprintf(&b, "- %s [%s] used %d time(s), last %d day(s) ago\n",
			c.Title, c.Service, c.OpenCount, days)
	}

	return b.String(), nil
}
