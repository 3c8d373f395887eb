// Package portalapi is a typed REST client for the KU Healthcare backend.
// The backend exposes two calling conventions: query-string GETs (some of
// which mutate server state) and JSON-body POSTs. Mutations answer with a
// {"message"} or {"error"} envelope; reads answer with bare JSON arrays.
package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kuhealthcare/portal/pkg/logging"
)

const (
	defaultBaseURL = "https://salemalkaabi.pythonanywhere.com"
	defaultTimeout = 15 * time.Second
)

// Client wraps REST calls against the healthcare backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New constructs a backend client. An empty baseURL falls back to the
// production host.
func New(baseURL string, logger *logging.Logger, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and returns the raw status and body. Callers decide
// how status codes map onto the error taxonomy; the registration endpoints
// branch on 201/409 while everything else treats non-2xx uniformly.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body any) (int, []byte, error) {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug("backend call", "method", method, "path", path, "status", resp.StatusCode)
	return resp.StatusCode, respBody, nil
}

// getJSON fetches path and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	status, body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return newStatusError(status, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// fetchList is the shared shape of every read endpoint: GET a path, decode
// a bare JSON array of the entity type.
func fetchList[T any](ctx context.Context, c *Client, path string, q url.Values) ([]T, error) {
	var out []T
	if err := c.getJSON(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// submitGET runs a query-string mutation and interprets the envelope.
// The backend mutates state on some GETs; that convention is preserved
// for compatibility.
func (c *Client) submitGET(ctx context.Context, path string, q url.Values) (string, error) {
	status, body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return "", err
	}
	return interpretEnvelope(status, body)
}

// submitPOST runs a JSON-body mutation and interprets the envelope.
func (c *Client) submitPOST(ctx context.Context, path string, body any) (string, error) {
	status, respBody, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return "", err
	}
	return interpretEnvelope(status, respBody)
}

type envelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// interpretEnvelope applies the backend's response convention: a message
// key means success, an error key means a recoverable server-side
// validation failure, anything else is unknown. Body keys win over the
// status code because the original service is loose about both.
func interpretEnvelope(status int, body []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status < 200 || status > 299 {
			return "", newStatusError(status, body)
		}
		return "", fmt.Errorf("decode response: %w", err)
	}
	switch {
	case env.Message != "":
		return env.Message, nil
	case env.Error != "":
		return "", &ServerError{Message: env.Error}
	case status < 200 || status > 299:
		return "", newStatusError(status, body)
	default:
		return "", &UnknownResponseError{Body: snippet(body)}
	}
}

// register covers the two status-sensitive signup endpoints: 201 created,
// 409 duplicate email, anything else a server failure.
func (c *Client) register(ctx context.Context, path string, q url.Values) error {
	status, body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return &ConflictError{Email: q.Get("email")}
	default:
		return newStatusError(status, body)
	}
}

func snippet(body []byte) string {
	s := string(body)
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}
