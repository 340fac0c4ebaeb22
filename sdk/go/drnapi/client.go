// Package drnapi provides the Go client for the drn registry and chat API.
package drnapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client is a drn registry client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	log        *zap.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithAPIKey sets the bearer credential attached to every request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets a logger for request-level debug output.
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// NewClient creates a new drn client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Profile is the authenticated user's registry profile.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ChatReply is the response to a chat message.
type ChatReply struct {
	Reply string `json:"reply"`
}

// PublishRequest is the input for publishing a package.
type PublishRequest struct {
	Name        string
	Version     string
	Description string
	ArchiveName string
	Archive     []byte
}

// PublishResult is the server's acknowledgement of a publish.
type PublishResult struct {
	Message string `json:"message"`
}

// Whoami returns the profile of the credential's owner.
func (c *Client) Whoami(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.get(ctx, "/user/me", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Chat sends one message to the chat endpoint and returns the reply.
func (c *Client) Chat(ctx context.Context, message string) (*ChatReply, error) {
	var r ChatReply
	body := map[string]string{"message": message}
	if err := c.post(ctx, "/chat-direct", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Publish uploads a package archive with its manifest fields as one
// multipart form.
func (c *Client) Publish(ctx context.Context, req *PublishRequest) (*PublishResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"packageName": req.Name,
		"version":     req.Version,
		"description": req.Description,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	fw, err := mw.CreateFormFile("package", req.ArchiveName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := fw.Write(req.Archive); err != nil {
		return nil, fmt.Errorf("write archive: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/packages/publish", &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var result PublishResult
	if err := c.do(httpReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// apiError is the registry's error envelope.
type apiError struct {
	Error string `json:"error"`
}

// do executes the request and classifies failures: transport failures become
// *NetworkError, 401/403 become *AuthError, other non-2xx become
// *ServerError. Exactly one bucket applies per failure.
func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
		)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("request done",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &ServerError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func errorMessage(body io.Reader) string {
	var e apiError
	if err := json.NewDecoder(body).Decode(&e); err == nil && e.Error != "" {
		return e.Error
	}
	return "unknown server error"
}
