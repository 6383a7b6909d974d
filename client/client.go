// Package client is the Go consumer of the messaging API: a thin HTTP
// client plus a thread controller that keeps sends feeling instantaneous
// while the authoritative record is still in flight.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"name"`
	ImageURL *string   `json:"image"`
	UserType *string   `json:"userType"`
}

type Message struct {
	ID         uuid.UUID    `json:"id"`
	SenderID   uuid.UUID    `json:"senderId"`
	ReceiverID uuid.UUID    `json:"receiverId"`
	Content    string       `json:"content"`
	IsRead     bool         `json:"isRead"`
	Sender     *UserSummary `json:"sender,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type Conversation struct {
	ID          uuid.UUID   `json:"id"`
	User        UserSummary `json:"user"`
	LastMessage *Message    `json:"lastMessage"`
	UnreadCount int         `json:"unreadCount"`
}

type ThreadResponse struct {
	Messages      []Message `json:"messages"`
	CurrentUserID uuid.UUID `json:"currentUserId"`
}

// APIError carries the server's status code and JSON error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) FetchConversations(ctx context.Context) ([]Conversation, error) {
	var out struct {
		Conversations []Conversation `json:"conversations"`
	}
	if err := c.do(ctx, http.MethodGet, "/messages", nil, &out); err != nil {
		return nil, err
	}
	return out.Conversations, nil
}

func (c *Client) FetchThread(ctx context.Context, counterpartID uuid.UUID) (*ThreadResponse, error) {
	var out ThreadResponse
	if err := c.do(ctx, http.MethodGet, "/messages/"+counterpartID.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, receiverID uuid.UUID, content string) (*Message, error) {
	body := map[string]string{
		"receiverId": receiverID.String(),
		"content":    content,
	}
	var out struct {
		Message *Message `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/messages", body, &out); err != nil {
		return nil, err
	}
	return out.Message, nil
}

// do issues one JSON request. The context doubles as the cancellation
// handle: a poll or send abandoned mid-flight never touches caller state.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %v", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		msg := errBody.Error
		if msg == "" {
			msg = errBody.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %v", err)
		}
	}
	return nil
}
