package application

import (
	"context"
	"errors"
	"testing"
	"time"

	filestore "github.com/bnema/techsillies-cli/internal/adapters/credentials/file"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/ports/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPushTokenKey = "device/api.test/push_token"

func TestNotificationServiceRegisterReusesToken(t *testing.T) {
	api := mocks.NewMockNotificationAPI(t)
	credentials := filestore.NewStore(t.TempDir())
	service := NewNotificationService(api, nil, credentials, testPushTokenKey, nil)
	ctx := context.Background()

	var sent []string
	api.EXPECT().RegisterPushToken(mockAnyContext(), mockAnyContext()).RunAndReturn(func(_ context.Context, token string) error {
		sent = append(sent, token)
		return nil
	}).Twice()

	first, err := service.Register(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	require.NoError(t, err)

	second, err := service.Register(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{first, first}, sent)
}

func TestNotificationServiceRegisterFailure(t *testing.T) {
	api := mocks.NewMockNotificationAPI(t)
	credentials := mocks.NewMockCredentialStore(t)
	service := NewNotificationService(api, nil, credentials, testPushTokenKey, nil)

	credentials.EXPECT().Read(mockAnyContext(), testPushTokenKey).Return("device-token", nil)
	api.EXPECT().RegisterPushToken(mockAnyContext(), "device-token").Return(domain.ErrNotAuthenticated)

	_, err := service.Register(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestNotificationServiceRegisterReadFailure(t *testing.T) {
	credentials := mocks.NewMockCredentialStore(t)
	service := NewNotificationService(mocks.NewMockNotificationAPI(t), nil, credentials, testPushTokenKey, nil)

	credentials.EXPECT().Read(mockAnyContext(), testPushTokenKey).Return("", errors.New("pass locked"))

	_, err := service.Register(context.Background())
	require.ErrorContains(t, err, "read push token: pass locked")
}

func TestNotificationServiceListenDeliversWithDefaults(t *testing.T) {
	conn := newFakeConn()
	service := NewNotificationService(nil, &fakeDialer{conn: conn}, nil, testPushTokenKey, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan domain.Notification, 4)
	done := make(chan error, 1)
	go func() {
		done <- service.Listen(ctx, func(n domain.Notification) { received <- n })
	}()

	conn.push(t, EventMessageReceived, receivedPayload{Text: "not for us"})
	conn.push(t, EventNotification, notificationPayload{Title: "Referral", Body: "Ada accepted"})
	conn.push(t, EventNotification, map[string]string{})

	assert.Equal(t, domain.Notification{Title: "Referral", Body: "Ada accepted"}, <-received)
	assert.Equal(t, "New Notification: You have a new message.", (<-received).Toast())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("listen did not stop after cancel")
	}
	assert.True(t, conn.isClosed())
}

func TestNotificationServiceListenTransportFailure(t *testing.T) {
	conn := newFakeConn()
	service := NewNotificationService(nil, &fakeDialer{conn: conn}, nil, testPushTokenKey, nil)
	close(conn.incoming)

	err := service.Listen(context.Background(), func(domain.Notification) {})
	require.ErrorIs(t, err, errTransportLost)
}
