package beeper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Client talks to the Beeper Desktop API on localhost. It is explicitly
// constructed with its credentials; there is no process-wide singleton.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the Beeper Desktop API at baseURL, authenticating
// every request with the given access token.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchMessagesParams narrows a message search. Zero values mean no filter.
type SearchMessagesParams struct {
	Query      string
	ChatID     string
	Cursor     string
	Limit      int
	UnreadOnly bool
}

type searchChatsResponse struct {
	Items []Chat `json:"items"`
}

type accountsResponse struct {
	Items []Account `json:"items"`
}

// Health checks if Beeper Desktop is reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/v0/health", nil, nil)
}

// EnsureRunning checks connectivity and returns a helpful error if the
// desktop app is not reachable.
func (c *Client) EnsureRunning(ctx context.Context) error {
	if err := c.Health(ctx); err != nil {
		return fmt.Errorf(
			"Beeper Desktop API not reachable at %s\n\n"+
				"Make sure the Beeper Desktop app is running and the local API is enabled\n"+
				"(Settings -> Developer -> Desktop API)",
			c.baseURL,
		)
	}
	return nil
}

// SearchChats returns up to limit chats loosely matching query. Relevance of
// the remote ordering is not trusted; callers re-rank locally.
func (c *Client) SearchChats(ctx context.Context, query string, limit int) ([]Chat, error) {
	q := url.Values{}
	q.Set("query", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp searchChatsResponse
	if err := c.get(ctx, "/v0/search-chats", q, &resp); err != nil {
		return nil, fmt.Errorf("chat search failed: %w", err)
	}
	return resp.Items, nil
}

// SearchMessages returns one page of messages; follow MessagePage.Cursor for
// more.
func (c *Client) SearchMessages(ctx context.Context, params SearchMessagesParams) (*MessagePage, error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.ChatID != "" {
		q.Set("chatID", params.ChatID)
	}
	if params.Cursor != "" {
		q.Set("cursor", params.Cursor)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.UnreadOnly {
		q.Set("unread", "true")
	}

	var page MessagePage
	if err := c.get(ctx, "/v0/search-messages", q, &page); err != nil {
		return nil, fmt.Errorf("message search failed: %w", err)
	}
	return &page, nil
}

// ListAccounts returns the messaging accounts connected to Beeper Desktop.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var resp accountsResponse
	if err := c.get(ctx, "/v0/get-accounts", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return resp.Items, nil
}

// SendMessage sends text to the chat. A fresh pending message ID makes the
// request idempotent on the desktop side.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) (*SentMessage, error) {
	body := map[string]string{
		"chatID":           chatID,
		"text":             text,
		"pendingMessageID": uuid.New().String(),
	}

	var sent SentMessage
	if err := c.post(ctx, "/v0/send-message", body, &sent); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &sent, nil
}

// OpenChat focuses the chat in the Beeper Desktop app.
func (c *Client) OpenChat(ctx context.Context, chatID string) error {
	body := map[string]string{"chatID": chatID}
	if err := c.post(ctx, "/v0/open-chat", body, nil); err != nil {
		return fmt.Errorf("failed to open chat: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("unauthorized: run 'beeper login' to obtain a new access token")
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
