package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCookieName     = "token"
	defaultRequestTimeout = 30 * time.Second
	maxResponseBytes      = 1 << 20
)

// Client talks to the TechSillies REST backend. One Client is shared by every
// service; it attaches the stored session cookie and captures refreshed ones.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Credentials    ports.CredentialStore
	CookieName     string
	UserAgent      string
	RequestTimeout time.Duration
	Logger         logrus.FieldLogger
}

// ErrResponseTooLarge is returned instead of decoding a truncated body.
var ErrResponseTooLarge = errors.New("response exceeds 1 MiB")

var (
	_ ports.ProfileAPI      = (*Client)(nil)
	_ ports.FeedAPI         = (*Client)(nil)
	_ ports.ConnectionAPI   = (*Client)(nil)
	_ ports.ReferralAPI     = (*Client)(nil)
	_ ports.ChatHistoryAPI  = (*Client)(nil)
	_ ports.NotificationAPI = (*Client)(nil)
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotAuthenticated && e.Status == http.StatusUnauthorized
}

type request struct {
	method string
	path   string
	query  url.Values
	body   io.Reader
	header http.Header
	op     string
}

func jsonRequest(method, path, op string, payload any) (request, error) {
	req := request{method: method, path: path, op: op, header: http.Header{}}
	if payload == nil {
		return req, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("encode %s request: %w", op, err)
	}
	req.body = bytes.NewReader(data)
	req.header.Set("Content-Type", "application/json")
	return req, nil
}

// do sends req and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint, err := c.endpoint(req.path, req.query)
	if err != nil {
		return err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, req.body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", req.op, err)
	}
	for key, values := range req.header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	if err := c.attachCredential(ctx, httpReq); err != nil {
		return err
	}

	log := c.logger().WithFields(logrus.Fields{"method": req.method, "path": req.path})
	started := time.Now()

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": time.Since(started).Round(time.Millisecond)}).Debug("api call")

	if err := c.captureCredential(ctx, resp); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("read %s response: %w", req.op, err)
	}
	if len(body) > maxResponseBytes {
		return fmt.Errorf("read %s response: %w", req.op, ErrResponseTooLarge)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
		log.WithField("status", resp.StatusCode).WithError(apiErr).Info("api call rejected")
		return fmt.Errorf("%s: %w", req.op, apiErr)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.op, err)
	}

	return nil
}

func (c *Client) attachCredential(ctx context.Context, req *http.Request) error {
	if c.Credentials == nil {
		return nil
	}

	token, err := c.Credentials.Read(ctx, domain.SessionCredentialKey(c.BaseURL))
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return nil
		}
		return fmt.Errorf("read session credential: %w", err)
	}
	if token == "" {
		return nil
	}

	req.AddCookie(&http.Cookie{Name: c.cookieName(), Value: token})
	return nil
}

// captureCredential stores a refreshed session cookie. An expired cookie clears it.
func (c *Client) captureCredential(ctx context.Context, resp *http.Response) error {
	if c.Credentials == nil {
		return nil
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name != c.cookieName() {
			continue
		}

		key := domain.SessionCredentialKey(c.BaseURL)
		if cookie.Value == "" || cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(time.Now())) {
			if err := c.Credentials.Remove(ctx, key); err != nil {
				return fmt.Errorf("remove session credential: %w", err)
			}
			return nil
		}
		if err := c.Credentials.Write(ctx, key, cookie.Value); err != nil {
			return fmt.Errorf("store session credential: %w", err)
		}
		return nil
	}

	return nil
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	if c.BaseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(strings.TrimRight(c.BaseURL, "/") + path)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (c *Client) cookieName() string {
	if c.CookieName != "" {
		return c.CookieName
	}
	return DefaultCookieName
}

func (c *Client) logger() logrus.FieldLogger {
	return logging.OrDiscard(c.Logger)
}

func errorMessage(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	text := strings.TrimSpace(string(body))
	if text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		return text
	}

	return http.StatusText(status)
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
