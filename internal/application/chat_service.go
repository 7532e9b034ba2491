package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	EventJoinChat        = "joinChat"
	EventSendMessage     = "sendMessage"
	EventMessageReceived = "messageReceived"

	DefaultChatSendRate  = 5
	DefaultChatSendBurst = 5
)

var ErrChatClosed = errors.New("chat is closed")

type ChatState int

const (
	ChatDisconnected ChatState = iota
	ChatConnecting
	ChatJoined
	ChatActive
)

func (s ChatState) String() string {
	switch s {
	case ChatConnecting:
		return "connecting"
	case ChatJoined:
		return "joined"
	case ChatActive:
		return "active"
	default:
		return "disconnected"
	}
}

type ChatOptions struct {
	SendRate  float64
	SendBurst int
}

type ChatService struct {
	history ports.ChatHistoryAPI
	dialer  ports.RealtimeDialer
	store   *SessionStore
	clock   ports.Clock
	opts    ChatOptions
	log     logrus.FieldLogger
}

func NewChatService(history ports.ChatHistoryAPI, dialer ports.RealtimeDialer, store *SessionStore, clock ports.Clock, opts ChatOptions, log logrus.FieldLogger) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if opts.SendRate <= 0 {
		opts.SendRate = DefaultChatSendRate
	}
	if opts.SendBurst <= 0 {
		opts.SendBurst = DefaultChatSendBurst
	}

	return &ChatService{history: history, dialer: dialer, store: store, clock: clock, opts: opts, log: logging.OrDiscard(log)}
}

type joinPayload struct {
	TargetUserID string `json:"targetUserId"`
	UserID       string `json:"userId"`
}

type sendPayload struct {
	FirstName    string `json:"firstName"`
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
	Text         string `json:"text"`
}

type receivedPayload struct {
	FirstName string `json:"firstName"`
	Text      string `json:"text"`
}

// Open loads the conversation history, connects and joins the conversation
// with target. The caller owns the handle and must Close it.
func (s *ChatService) Open(ctx context.Context, target domain.UserID) (*ChatHandle, error) {
	current := s.store.Snapshot().CurrentUser
	if current == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if target == "" {
		return nil, fmt.Errorf("%w: chat target", domain.ErrMissingField)
	}

	log := s.log.WithField("target_user_id", target)
	handle := &ChatHandle{
		self:     *current,
		target:   target,
		clock:    s.clock,
		limiter:  rate.NewLimiter(rate.Limit(s.opts.SendRate), s.opts.SendBurst),
		log:      log,
		state:    ChatConnecting,
		out:      make(chan domain.ChatMessage),
		done:     make(chan struct{}),
		readerUp: make(chan struct{}),
	}

	history, err := s.history.ChatHistory(ctx, target)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return nil, fmt.Errorf("load chat history: %w", err)
		}
		log.WithError(err).Warn("chat history unavailable")
	}
	handle.messages = history

	conn, err := s.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("open chat with %s: %w", target, err)
	}
	handle.conn = conn

	if err := conn.Emit(ctx, EventJoinChat, joinPayload{TargetUserID: string(target), UserID: string(current.ID)}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("join chat with %s: %w", target, err)
	}

	handle.state = ChatJoined
	go handle.read()

	log.Debug("chat joined")
	return handle, nil
}

// With opens a chat, runs fn and always closes the chat afterwards.
func (s *ChatService) With(ctx context.Context, target domain.UserID, fn func(*ChatHandle) error) error {
	handle, err := s.Open(ctx, target)
	if err != nil {
		return err
	}

	fnErr := fn(handle)
	closeErr := handle.Close()
	if fnErr != nil {
		return fnErr
	}
	return closeErr
}

// ChatHandle is one open conversation. Received messages are appended in
// arrival order and published on Messages until the handle closes.
type ChatHandle struct {
	self    domain.UserProfile
	target  domain.UserID
	clock   ports.Clock
	limiter *rate.Limiter
	log     logrus.FieldLogger
	conn    ports.RealtimeConn

	mu       sync.Mutex
	state    ChatState
	messages []domain.ChatMessage
	closed   bool
	err      error

	out       chan domain.ChatMessage
	done      chan struct{}
	readerUp  chan struct{}
	closeOnce sync.Once
	closeErr  error
}

func (h *ChatHandle) Target() domain.UserID {
	return h.target
}

func (h *ChatHandle) State() ChatState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Messages delivers each received message once. It is closed when the
// handle closes or the transport fails; consumers must keep draining it.
func (h *ChatHandle) Messages() <-chan domain.ChatMessage {
	return h.out
}

// History returns the loaded history followed by every message received so far.
func (h *ChatHandle) History() []domain.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.messages)
}

// Err reports why the transport stopped, if it failed.
func (h *ChatHandle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Send emits one message. There is no local echo and no delivery guarantee.
// Bursts beyond the send rate wait for the limiter.
func (h *ChatHandle) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: message text", domain.ErrMissingField)
	}
	if h.State() == ChatDisconnected {
		return ErrChatClosed
	}

	if err := h.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait to send: %w", err)
	}

	payload := sendPayload{
		FirstName:    h.self.FirstName,
		UserID:       string(h.self.ID),
		TargetUserID: string(h.target),
		Text:         text,
	}
	if err := h.conn.Emit(ctx, EventSendMessage, payload); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	h.mu.Lock()
	if h.state == ChatJoined {
		h.state = ChatActive
	}
	h.mu.Unlock()
	return nil
}

// Close tears the transport down. After Close returns no further message is
// applied to the handle. Calling it again is a no-op.
func (h *ChatHandle) Close() error {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.state = ChatDisconnected
		h.mu.Unlock()

		close(h.done)
		h.closeErr = h.conn.Close()
		<-h.readerUp
		h.log.Debug("chat closed")
	})
	return h.closeErr
}

func (h *ChatHandle) read() {
	defer close(h.readerUp)
	defer close(h.out)

	for {
		event, err := h.conn.Receive()
		if err != nil {
			h.mu.Lock()
			if !h.closed {
				h.err = err
				h.state = ChatDisconnected
				h.log.WithError(err).Warn("chat transport stopped")
			}
			h.mu.Unlock()
			return
		}

		if event.Name != EventMessageReceived {
			continue
		}

		var payload receivedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			h.log.WithError(err).Warn("skipping undecodable chat message")
			continue
		}
		msg := domain.ChatMessage{SenderName: payload.FirstName, Text: payload.Text, Timestamp: h.clock.Now()}

		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			return
		}
		h.messages = append(h.messages, msg)
		if h.state == ChatJoined {
			h.state = ChatActive
		}
		h.mu.Unlock()

		select {
		case h.out <- msg:
		case <-h.done:
			return
		}
	}
}
