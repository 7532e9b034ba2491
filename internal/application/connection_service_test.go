package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequests(ids ...domain.RequestID) []domain.ConnectionRequest {
	requests := make([]domain.ConnectionRequest, 0, len(ids))
	for _, id := range ids {
		requests = append(requests, domain.ConnectionRequest{
			ID:       id,
			From:     domain.UserProfile{ID: domain.UserID("from-" + id), FirstName: string(id)},
			ToUserID: "me",
			Status:   domain.RequestPending,
		})
	}
	return requests
}

func TestConnectionServiceServesCachedConnections(t *testing.T) {
	f := newStoreFixture(t)
	api := mocks.NewMockConnectionAPI(t)
	service := NewConnectionService(api, f.store, nil)
	ctx := context.Background()

	connections := []domain.UserProfile{{ID: "c1", FirstName: "Ada"}}
	api.EXPECT().Connections(mockAnyContext()).Return(connections, nil).Once()

	got, err := service.Connections(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, connections, got)

	got, err = service.Connections(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, connections, got)
}

func TestConnectionServiceRefreshBypassesCache(t *testing.T) {
	f := newStoreFixture(t)
	api := mocks.NewMockConnectionAPI(t)
	service := NewConnectionService(api, f.store, nil)
	ctx := context.Background()
	require.NoError(t, f.store.SetConnections(ctx, []domain.UserProfile{{ID: "c1"}}))

	api.EXPECT().Connections(mockAnyContext()).Return([]domain.UserProfile{{ID: "c1"}, {ID: "c2"}}, nil).Once()

	got, err := service.Connections(ctx, true)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, f.store.Snapshot().Connections, 2)
}

func TestConnectionServiceFetchFailureKeepsCache(t *testing.T) {
	f := newStoreFixture(t)
	api := mocks.NewMockConnectionAPI(t)
	service := NewConnectionService(api, f.store, nil)
	ctx := context.Background()
	require.NoError(t, f.store.SetRequests(ctx, pendingRequests("r1")))

	api.EXPECT().ReceivedRequests(mockAnyContext()).Return(nil, errors.New("bad gateway"))

	_, err := service.PendingRequests(ctx, true)
	require.ErrorContains(t, err, "load connection requests: bad gateway")
	assert.Len(t, f.store.Snapshot().Requests, 1)
}

func TestConnectionServiceReviewRemovesExactlyOne(t *testing.T) {
	f := newStoreFixture(t)
	api := mocks.NewMockConnectionAPI(t)
	service := NewConnectionService(api, f.store, nil)
	ctx := context.Background()
	require.NoError(t, f.store.SetRequests(ctx, pendingRequests("r1", "r2", "r3")))

	api.EXPECT().ReviewRequest(mockAnyContext(), domain.ReviewAccept, domain.RequestID("r2")).Return(nil)

	require.NoError(t, service.Review(ctx, domain.ReviewAccept, "r2"))

	var ids []domain.RequestID
	for _, request := range f.store.Snapshot().Requests {
		ids = append(ids, request.ID)
	}
	assert.Equal(t, []domain.RequestID{"r1", "r3"}, ids)
}

func TestConnectionServiceReviewRefreshesBeforeGivingUp(t *testing.T) {
	f := newStoreFixture(t)
	api := mocks.NewMockConnectionAPI(t)
	service := NewConnectionService(api, f.store, nil)
	ctx := context.Background()
	require.NoError(t, f.store.SetRequests(ctx, pendingRequests("r1")))

	api.EXPECT().ReceivedRequests(mockAnyContext()).Return(pendingRequests("r1", "r7"), nil).Once()
	api.EXPECT().ReviewRequest(mockAnyContext(), domain.ReviewReject, domain.RequestID("r7")).Return(nil)

	require.NoError(t, service.Review(ctx, domain.ReviewReject, "r7"))
	assert.Len(t, f.store.Snapshot().Requests, 1)
}

func TestConnectionServiceReviewUnknownRequest(t *testing.T) {
	f := newStoreFixture(t)
	api := mocks.NewMockConnectionAPI(t)
	service := NewConnectionService(api, f.store, nil)
	ctx := context.Background()

	api.EXPECT().ReceivedRequests(mockAnyContext()).Return(pendingRequests("r1"), nil).Twice()

	err := service.Review(ctx, domain.ReviewAccept, "missing")
	require.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestConnectionServiceReviewFailureKeepsRequest(t *testing.T) {
	f := newStoreFixture(t)
	api := mocks.NewMockConnectionAPI(t)
	service := NewConnectionService(api, f.store, nil)
	ctx := context.Background()
	require.NoError(t, f.store.SetRequests(ctx, pendingRequests("r1")))

	api.EXPECT().ReviewRequest(mockAnyContext(), domain.ReviewAccept, domain.RequestID("r1")).Return(errors.New("conflict"))

	err := service.Review(ctx, domain.ReviewAccept, "r1")
	require.ErrorContains(t, err, "accept request r1: conflict")
	assert.Len(t, f.store.Snapshot().Requests, 1)
}

func TestConnectionServiceReviewRejectsUnknownVerb(t *testing.T) {
	f := newStoreFixture(t)
	service := NewConnectionService(mocks.NewMockConnectionAPI(t), f.store, nil)

	err := service.Review(context.Background(), domain.ReviewVerb("maybe"), "r1")
	require.ErrorContains(t, err, `unsupported review action "maybe"`)
}
