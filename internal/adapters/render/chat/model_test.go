package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/techsillies-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversation struct {
	mu       sync.Mutex
	history  []domain.ChatMessage
	messages chan domain.ChatMessage
	sent     []string
	sendErr  error
}

func newFakeConversation(history ...domain.ChatMessage) *fakeConversation {
	return &fakeConversation{history: history, messages: make(chan domain.ChatMessage, 4)}
}

func (f *fakeConversation) Target() domain.UserID               { return "u2" }
func (f *fakeConversation) History() []domain.ChatMessage       { return f.history }
func (f *fakeConversation) Messages() <-chan domain.ChatMessage { return f.messages }

func (f *fakeConversation) Send(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return f.sendErr
}

func typeText(t *testing.T, m model, text string) model {
	t.Helper()

	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(model)
	}
	return m
}

func TestModelShowsHistory(t *testing.T) {
	conv := newFakeConversation(domain.ChatMessage{SenderName: "Ada", Text: "hello grace", Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)})
	m := newModel(context.Background(), conv, Options{Title: "Ada Lovelace", SelfName: "Grace"})

	view := m.View()
	assert.Contains(t, view, "Chat with Ada Lovelace")
	assert.Contains(t, view, "Ada:")
	assert.Contains(t, view, "hello grace")
}

func TestModelEmptyConversation(t *testing.T) {
	m := newModel(context.Background(), newFakeConversation(), Options{})

	assert.Contains(t, m.View(), "Chat with u2")
	assert.Contains(t, m.View(), "No messages yet")
}

func TestModelAppendsIncomingAndKeepsListening(t *testing.T) {
	conv := newFakeConversation()
	m := newModel(context.Background(), conv, Options{SelfName: "Grace"})

	conv.messages <- domain.ChatMessage{SenderName: "Ada", Text: "ping"}
	msg := listenForMessages(conv.Messages())()
	require.IsType(t, incomingMsg{}, msg)

	updated, cmd := m.Update(msg)
	m = updated.(model)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "ping")

	close(conv.messages)
	assert.Equal(t, disconnectedMsg{}, cmd())
}

func TestModelEnterSendsWithoutEcho(t *testing.T) {
	conv := newFakeConversation()
	m := newModel(context.Background(), conv, Options{SelfName: "Grace"})
	m = typeText(t, m, "hi there")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	require.NotNil(t, cmd)

	result := cmd()
	assert.Equal(t, sentMsg{}, result)
	assert.Equal(t, []string{"hi there"}, conv.sent)
	assert.Empty(t, m.input.Value())
	assert.NotContains(t, m.View(), "hi there")
}

func TestModelShowsSendFailure(t *testing.T) {
	conv := newFakeConversation()
	m := newModel(context.Background(), conv, Options{})

	updated, _ := m.Update(sentMsg{err: errors.New("chat is closed")})
	assert.Contains(t, updated.(model).View(), "not sent: chat is closed")
}

func TestModelIgnoresInputAfterDisconnect(t *testing.T) {
	conv := newFakeConversation()
	m := newModel(context.Background(), conv, Options{})

	updated, _ := m.Update(disconnectedMsg{})
	m = updated.(model)
	assert.Contains(t, m.View(), "disconnected")

	m.input.SetValue("anyone?")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, conv.sent)
}

func TestModelEscQuits(t *testing.T) {
	m := newModel(context.Background(), newFakeConversation(), Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
