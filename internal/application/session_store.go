package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

// SessionStore owns the one Session of this process. Every mutation is
// mirrored to the repository; a failed save leaves memory unchanged.
type SessionStore struct {
	repo          ports.SessionRepository
	credentials   ports.CredentialStore
	credentialKey string
	log           logrus.FieldLogger

	mu      sync.RWMutex
	session domain.Session
}

func NewSessionStore(repo ports.SessionRepository, credentials ports.CredentialStore, credentialKey string, log logrus.FieldLogger) *SessionStore {
	return &SessionStore{
		repo:          repo,
		credentials:   credentials,
		credentialKey: credentialKey,
		log:           logging.OrDiscard(log),
	}
}

func (s *SessionStore) Load(ctx context.Context) error {
	session, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	s.session = session.Normalized()
	s.mu.Unlock()

	s.log.WithField("authenticated", session.Authenticated()).Debug("session loaded")
	return nil
}

func (s *SessionStore) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Normalized()
}

// SetCurrentUser replaces the signed-in user. Caches that belonged to a
// different user are dropped.
func (s *SessionStore) SetCurrentUser(ctx context.Context, profile domain.UserProfile) error {
	return s.mutate(ctx, "set current user", func(session *domain.Session) error {
		if session.CurrentUser != nil && session.CurrentUser.ID != profile.ID {
			*session = domain.Session{}
		}
		session.CurrentUser = &profile
		return nil
	})
}

// ClearSession drops the user and every cache, then forgets the credential.
func (s *SessionStore) ClearSession(ctx context.Context) error {
	if err := s.mutate(ctx, "clear session", func(session *domain.Session) error {
		*session = domain.Session{}
		return nil
	}); err != nil {
		return err
	}

	if s.credentials == nil || s.credentialKey == "" {
		return nil
	}
	if err := s.credentials.Remove(ctx, s.credentialKey); err != nil {
		return fmt.Errorf("forget session credential: %w", err)
	}

	s.log.Debug("session cleared")
	return nil
}

func (s *SessionStore) SetFeed(ctx context.Context, feed domain.FeedState) error {
	return s.mutate(ctx, "set feed", func(session *domain.Session) error {
		session.Feed = feed
		return nil
	})
}

// UpdateFeed applies fn to the feed and persists the result. If fn fails
// nothing changes.
func (s *SessionStore) UpdateFeed(ctx context.Context, fn func(feed *domain.FeedState) error) error {
	return s.mutate(ctx, "update feed", func(session *domain.Session) error {
		return fn(&session.Feed)
	})
}

func (s *SessionStore) SetConnections(ctx context.Context, connections []domain.UserProfile) error {
	return s.mutate(ctx, "set connections", func(session *domain.Session) error {
		session.Connections = connections
		return nil
	})
}

func (s *SessionStore) SetRequests(ctx context.Context, requests []domain.ConnectionRequest) error {
	return s.mutate(ctx, "set requests", func(session *domain.Session) error {
		session.Requests = requests
		return nil
	})
}

func (s *SessionStore) mutate(ctx context.Context, op string, fn func(session *domain.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.session.Normalized()
	if err := fn(&next); err != nil {
		return err
	}
	next = next.Normalized()

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("%s: persist session: %w", op, err)
	}

	s.session = next
	return nil
}
