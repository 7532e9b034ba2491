package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const EventNotification = "notification"

type NotificationService struct {
	api         ports.NotificationAPI
	dialer      ports.RealtimeDialer
	credentials ports.CredentialStore
	tokenKey    string
	log         logrus.FieldLogger
}

func NewNotificationService(api ports.NotificationAPI, dialer ports.RealtimeDialer, credentials ports.CredentialStore, tokenKey string, log logrus.FieldLogger) *NotificationService {
	return &NotificationService{api: api, dialer: dialer, credentials: credentials, tokenKey: tokenKey, log: logging.OrDiscard(log)}
}

// Register sends this device's push token to the backend. The token is
// generated once and reused on later runs.
func (s *NotificationService) Register(ctx context.Context) (string, error) {
	token, err := s.credentials.Read(ctx, s.tokenKey)
	switch {
	case err == nil && token != "":
	case err == nil || errors.Is(err, domain.ErrCredentialNotFound):
		token = uuid.NewString()
		if err := s.credentials.Write(ctx, s.tokenKey, token); err != nil {
			return "", fmt.Errorf("store push token: %w", err)
		}
	default:
		return "", fmt.Errorf("read push token: %w", err)
	}

	if err := s.api.RegisterPushToken(ctx, token); err != nil {
		return "", fmt.Errorf("register push token: %w", err)
	}

	s.log.WithField("token", token).Debug("push token registered")
	return token, nil
}

type notificationPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Listen surfaces foreground notifications to sink until ctx is done or the
// transport fails.
func (s *NotificationService) Listen(ctx context.Context, sink func(domain.Notification)) error {
	conn, err := s.dialer.Dial(ctx)
	if err != nil {
		return fmt.Errorf("open notification channel: %w", err)
	}

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	for {
		event, err := conn.Receive()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("receive notification: %w", err)
		}
		if event.Name != EventNotification {
			continue
		}

		var payload notificationPayload
		if len(event.Data) > 0 {
			if err := json.Unmarshal(event.Data, &payload); err != nil {
				s.log.WithError(err).Warn("skipping undecodable notification")
				continue
			}
		}

		sink(domain.Notification{Title: payload.Title, Body: payload.Body}.WithDefaults())
	}
}
