package application

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	filestore "github.com/bnema/techsillies-cli/internal/adapters/credentials/file"
	tomlrepo "github.com/bnema/techsillies-cli/internal/adapters/repo/toml"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCredentialKey = "session/api.test/token"

func mockAnyContext() interface{} {
	return mock.Anything
}

type storeFixture struct {
	store       *SessionStore
	repo        *tomlrepo.Repository
	credentials *filestore.Store
	path        string
}

func newStoreFixture(t *testing.T) storeFixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.toml")
	repo := newRepo(t, path)
	credentials := filestore.NewStore(t.TempDir())
	store := NewSessionStore(repo, credentials, testCredentialKey, nil)
	require.NoError(t, store.Load(context.Background()))

	return storeFixture{store: store, repo: repo, credentials: credentials, path: path}
}

func newRepo(t *testing.T, path string) *tomlrepo.Repository {
	t.Helper()

	config := viper.New()
	config.Set(tomlrepo.SessionPathKey, path)
	repo, err := tomlrepo.NewRepository(config)
	require.NoError(t, err)
	return repo
}

func signedIn(t *testing.T, f storeFixture) domain.UserProfile {
	t.Helper()

	me := domain.UserProfile{ID: "me", FirstName: "Grace", LastName: "Hopper", Headline: "Admiral", Company: "Navy"}
	require.NoError(t, f.store.SetCurrentUser(context.Background(), me))
	require.NoError(t, f.credentials.Write(context.Background(), testCredentialKey, "opaque-token"))
	return me
}

func feedEntries(ids ...domain.UserID) []domain.FeedEntry {
	entries := make([]domain.FeedEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, domain.FeedEntry{User: domain.UserProfile{ID: id, FirstName: string(id)}, Status: domain.StatusNone})
	}
	return entries
}

func displayedIDs(entries []domain.FeedEntry) []domain.UserID {
	ids := make([]domain.UserID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.User.ID)
	}
	return ids
}

var errTransportLost = errors.New("transport lost")

// fakeConn is an in-memory realtime connection driven by the test.
type fakeConn struct {
	mu        sync.Mutex
	emitted   []ports.RealtimeEvent
	incoming  chan ports.RealtimeEvent
	closed    chan struct{}
	closeOnce sync.Once
	emitErr   error
}

func newFakeConn() *fakeConn {
	return &fakeConn{incoming: make(chan ports.RealtimeEvent, 16), closed: make(chan struct{})}
}

func (c *fakeConn) Emit(_ context.Context, event string, payload any) error {
	if c.emitErr != nil {
		return c.emitErr
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.emitted = append(c.emitted, ports.RealtimeEvent{Name: event, Data: data})
	return nil
}

func (c *fakeConn) Receive() (ports.RealtimeEvent, error) {
	select {
	case event, ok := <-c.incoming:
		if !ok {
			return ports.RealtimeEvent{}, errTransportLost
		}
		return event, nil
	case <-c.closed:
		return ports.RealtimeEvent{}, errors.New("use of closed connection")
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) push(t *testing.T, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	c.incoming <- ports.RealtimeEvent{Name: event, Data: data}
}

func (c *fakeConn) events() []ports.RealtimeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ports.RealtimeEvent, len(c.emitted))
	copy(out, c.emitted)
	return out
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

type fakeDialer struct {
	conn  *fakeConn
	err   error
	dials int
}

func (d *fakeDialer) Dial(ctx context.Context) (ports.RealtimeConn, error) {
	d.dials++
	if d.err != nil {
		return nil, d.err
	}
	return d.conn, nil
}
