package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	closeGracePeriod        = time.Second
	maxFrameBytes           = 1 << 20
	defaultPath             = "/ws"
	defaultCookieName       = "token"
)

var ErrMalformedFrame = errors.New("malformed realtime frame")

// envelope is the frame shape on the wire: {"event": "...", "data": {...}}.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Dialer opens authenticated websocket connections to the realtime endpoint.
type Dialer struct {
	URL              string
	BaseURL          string
	Credentials      ports.CredentialStore
	CookieName       string
	HandshakeTimeout time.Duration
	Logger           logrus.FieldLogger
}

var _ ports.RealtimeDialer = (*Dialer)(nil)

// DeriveURL maps the API base URL onto the realtime endpoint: http becomes ws,
// https becomes wss and the path is /ws.
func DeriveURL(baseURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}

	switch parsed.Scheme {
	case "http":
		parsed.Scheme = "ws"
	case "https":
		parsed.Scheme = "wss"
	default:
		return "", fmt.Errorf("api base url must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + defaultPath
	parsed.RawQuery = ""
	return parsed.String(), nil
}

func (d *Dialer) Dial(ctx context.Context) (ports.RealtimeConn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := d.URL
	if target == "" {
		derived, err := DeriveURL(d.BaseURL)
		if err != nil {
			return nil, err
		}
		target = derived
	}

	header := http.Header{}
	if err := d.attachCredential(ctx, header); err != nil {
		return nil, err
	}

	timeout := d.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
	}

	log := logging.OrDiscard(d.Logger).WithField("url", target)
	conn, resp, err := dialer.DialContext(ctx, target, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("dial realtime channel: %w", domain.ErrNotAuthenticated)
		}
		return nil, fmt.Errorf("dial realtime channel: %w", err)
	}
	conn.SetReadLimit(maxFrameBytes)
	log.Debug("realtime channel connected")

	return &Conn{conn: conn, log: log}, nil
}

func (d *Dialer) attachCredential(ctx context.Context, header http.Header) error {
	if d.Credentials == nil {
		return nil
	}

	token, err := d.Credentials.Read(ctx, domain.SessionCredentialKey(d.BaseURL))
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return nil
		}
		return fmt.Errorf("read session credential: %w", err)
	}

	name := d.CookieName
	if name == "" {
		name = defaultCookieName
	}
	header.Set("Cookie", (&http.Cookie{Name: name, Value: token}).String())
	return nil
}

// Conn is one websocket connection. Writes are serialized; a single reader
// is expected to call Receive.
type Conn struct {
	conn      *websocket.Conn
	log       logrus.FieldLogger
	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

var _ ports.RealtimeConn = (*Conn)(nil)

func (c *Conn) Emit(ctx context.Context, event string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	if err := c.conn.WriteJSON(envelope{Event: event, Data: data}); err != nil {
		return fmt.Errorf("emit %s: %w", event, err)
	}
	c.log.WithField("event", event).Debug("realtime event sent")

	return nil
}

// Receive blocks for the next well-formed event. Frames that do not decode
// as an envelope are logged and skipped.
func (c *Conn) Receive() (ports.RealtimeEvent, error) {
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return ports.RealtimeEvent{}, fmt.Errorf("read realtime frame: %w", err)
		}

		var frame envelope
		if err := json.Unmarshal(raw, &frame); err != nil || frame.Event == "" {
			c.log.WithError(errors.Join(ErrMalformedFrame, err)).Warn("skipping realtime frame")
			continue
		}

		return ports.RealtimeEvent{Name: frame.Event, Data: frame.Data}, nil
	}
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod),
		)
		c.writeMu.Unlock()

		c.closeErr = c.conn.Close()
		c.log.Debug("realtime channel closed")
	})
	return c.closeErr
}
