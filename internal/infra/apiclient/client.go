package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/infra"
	"parking-portal/internal/infra/converter"
	"parking-portal/internal/pkg/config"

	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	maxBodyBytes    = 4 << 20
)

// SessionSource supplies the bearer token for the authenticated channel.
type SessionSource interface {
	Current(ctx context.Context) (session.Session, error)
}

type channel int

const (
	public channel = iota
	private
)

func (c channel) String() string {
	if c == private {
		return "private"
	}
	return "public"
}

// Client is the only component that talks to the parking REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionSource
	conv       *converter.Converter
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, sessions SessionSource, loc *time.Location, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		sessions: sessions,
		conv:     converter.New(loc),
		logger:   logger,
	}
}

// do sends one request and decodes a 2xx body into out. A nil out discards
// the body; no request is ever retried.
func (c *Client) do(ctx context.Context, ch channel, method, path string, in, out any) error {
	status, raw, err := c.send(ctx, ch, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return infra.NewAPIError(status, "malformed response: empty body")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("Parking API response could not be decoded",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return infra.NewAPIError(status, "malformed response")
	}
	return nil
}

// doCommand is for admin commands answered with free text. The parking API
// reports some refusals as a 2xx "error" body.
func (c *Client) doCommand(ctx context.Context, method, path string, in any) error {
	status, raw, err := c.send(ctx, private, method, path, in)
	if err != nil {
		return err
	}
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if strings.EqualFold(text, "error") {
		return infra.NewAPIError(status, "the parking API refused the operation")
	}
	return nil
}

func (c *Client) send(ctx context.Context, ch channel, method, path string, in any) (int, []byte, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, nil, infra.WrapClientErr(c.logger, infra.KindFormat, "encoding request", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, ch, method, path, body)
	if err != nil {
		return 0, nil, err
	}
	requestID := req.Header.Get(headerRequestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Parking API request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("channel", ch.String()),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return 0, nil, infra.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, infra.NewTransportError(err)
	}

	c.logger.Debug("Parking API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("channel", ch.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(started)),
		slog.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(raw, resp.StatusCode)
		c.logger.Warn("Parking API error response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
			slog.String("request_id", requestID),
		)
		return resp.StatusCode, nil, infra.NewAPIError(resp.StatusCode, msg)
	}

	return resp.StatusCode, raw, nil
}

func (c *Client) newRequest(ctx context.Context, ch channel, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindFormat, "creating request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())

	if ch == private {
		if token := c.bearerToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// bearerToken sends the request without a token when the session cannot be
// read; the parking API then answers 401 as for any anonymous call.
func (c *Client) bearerToken(ctx context.Context) string {
	if c.sessions == nil {
		return ""
	}
	s, err := c.sessions.Current(ctx)
	if err != nil {
		c.logger.Warn("Session unavailable for authenticated request", slog.Any("error", err))
		return ""
	}
	return s.Token()
}

// errorMessage prefers the server's message field, then its error field,
// then a short plain-text body, then the HTTP status text.
func errorMessage(raw []byte, status int) string {
	trimmed := bytes.TrimSpace(raw)

	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if len(trimmed) > 0 && trimmed[0] == '{' && json.Unmarshal(trimmed, &payload) == nil {
		if m := strings.TrimSpace(payload.Message); m != "" {
			return m
		}
		if m := nestedErrorMessage(payload.Error); m != "" {
			return m
		}
	} else if len(trimmed) > 0 && len(trimmed) <= 200 && !json.Valid(trimmed) {
		return string(trimmed)
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected response status"
}

func nestedErrorMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if json.Unmarshal(raw, &text) == nil {
		return strings.TrimSpace(text)
	}
	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		return strings.TrimSpace(obj.Message)
	}
	return ""
}
