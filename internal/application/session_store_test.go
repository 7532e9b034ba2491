package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRehydratesLastPersistedState(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	me := signedIn(t, f)
	require.NoError(t, f.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		feed.AppendPage(feedEntries("u1", "u2"), 2)
		return feed.ApplyStatus("u2", domain.StatusInterested)
	}))
	require.NoError(t, f.store.SetConnections(ctx, []domain.UserProfile{{ID: "c1", FirstName: "Ada"}}))
	require.NoError(t, f.store.SetRequests(ctx, []domain.ConnectionRequest{{ID: "r1", From: domain.UserProfile{ID: "u9"}, ToUserID: me.ID, Status: domain.RequestPending}}))
	require.NoError(t, f.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		feed.BeginSearch("ada", feedEntries("u3"))
		return nil
	}))

	reloaded := NewSessionStore(newRepo(t, f.path), f.credentials, testCredentialKey, nil)
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, f.store.Snapshot(), reloaded.Snapshot())
	assert.True(t, reloaded.Snapshot().Authenticated())
}

func TestSessionStoreFailedSaveLeavesMemoryUnchanged(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	store := NewSessionStore(repo, nil, "", nil)
	ctx := context.Background()

	me := domain.UserProfile{ID: "me", FirstName: "Grace"}
	repo.EXPECT().Save(mockAnyContext(), domain.Session{CurrentUser: &me}).Return(nil).Once()
	require.NoError(t, store.SetCurrentUser(ctx, me))

	repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(errors.New("disk full")).Once()
	err := store.SetConnections(ctx, []domain.UserProfile{{ID: "c1"}})
	require.ErrorContains(t, err, "set connections: persist session: disk full")

	assert.Nil(t, store.Snapshot().Connections)
	assert.Equal(t, &me, store.Snapshot().CurrentUser)
}

func TestSessionStoreUpdateFeedErrorChangesNothing(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		feed.AppendPage(feedEntries("u1"), 2)
		return nil
	}))
	before := f.store.Snapshot()

	err := f.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		feed.AppendPage(feedEntries("u2"), 3)
		return feed.ApplyStatus("missing", domain.StatusIgnored)
	})
	require.ErrorIs(t, err, domain.ErrUserNotInFeed)
	assert.Equal(t, before, f.store.Snapshot())
}

func TestSessionStoreClearSessionForgetsCredential(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	signedIn(t, f)
	require.NoError(t, f.store.SetConnections(ctx, []domain.UserProfile{{ID: "c1"}}))

	require.NoError(t, f.store.ClearSession(ctx))

	assert.Equal(t, domain.Session{}, f.store.Snapshot())
	_, err := f.credentials.Read(ctx, testCredentialKey)
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)

	reloaded := NewSessionStore(newRepo(t, f.path), f.credentials, testCredentialKey, nil)
	require.NoError(t, reloaded.Load(ctx))
	assert.False(t, reloaded.Snapshot().Authenticated())
}

func TestSessionStoreClearSessionReportsCredentialError(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	credentials := mocks.NewMockCredentialStore(t)
	store := NewSessionStore(repo, credentials, testCredentialKey, nil)

	repo.EXPECT().Save(mockAnyContext(), domain.Session{}).Return(nil)
	credentials.EXPECT().Remove(mockAnyContext(), testCredentialKey).Return(errors.New("pass locked"))

	err := store.ClearSession(context.Background())
	require.ErrorContains(t, err, "forget session credential: pass locked")
}

func TestSessionStoreSwitchingUserDropsCaches(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	signedIn(t, f)
	require.NoError(t, f.store.SetConnections(ctx, []domain.UserProfile{{ID: "c1"}}))

	require.NoError(t, f.store.SetCurrentUser(ctx, domain.UserProfile{ID: "me", FirstName: "Grace B."}))
	assert.Len(t, f.store.Snapshot().Connections, 1)

	other := domain.UserProfile{ID: "someone-else", FirstName: "Linus"}
	require.NoError(t, f.store.SetCurrentUser(ctx, other))
	assert.Equal(t, domain.Session{CurrentUser: &other}, f.store.Snapshot())
}

func TestSessionStoreSnapshotIsACopy(t *testing.T) {
	f := newStoreFixture(t)
	require.NoError(t, f.store.SetConnections(context.Background(), []domain.UserProfile{{ID: "c1", Skills: []string{"go"}}}))

	snapshot := f.store.Snapshot()
	snapshot.Connections[0].Skills[0] = "rust"

	assert.Equal(t, []string{"go"}, f.store.Snapshot().Connections[0].Skills)
}
