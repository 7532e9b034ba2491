package application

import (
	"context"
	"fmt"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type ConnectionService struct {
	api   ports.ConnectionAPI
	store *SessionStore
	log   logrus.FieldLogger
}

func NewConnectionService(api ports.ConnectionAPI, store *SessionStore, log logrus.FieldLogger) *ConnectionService {
	return &ConnectionService{api: api, store: store, log: logging.OrDiscard(log)}
}

// Connections serves the cached list unless it is empty or refresh is set.
func (s *ConnectionService) Connections(ctx context.Context, refresh bool) ([]domain.UserProfile, error) {
	if cached := s.store.Snapshot().Connections; len(cached) > 0 && !refresh {
		return cached, nil
	}

	connections, err := s.api.Connections(ctx)
	if err != nil {
		return nil, fmt.Errorf("load connections: %w", err)
	}

	if err := s.store.SetConnections(ctx, connections); err != nil {
		return nil, err
	}
	return connections, nil
}

// PendingRequests serves the cached requests unless they are empty or refresh is set.
func (s *ConnectionService) PendingRequests(ctx context.Context, refresh bool) ([]domain.ConnectionRequest, error) {
	if cached := s.store.Snapshot().Requests; len(cached) > 0 && !refresh {
		return cached, nil
	}

	requests, err := s.api.ReceivedRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("load connection requests: %w", err)
	}

	if err := s.store.SetRequests(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Review accepts or rejects a pending request and drops it from the list.
// An id that is not pending even after a refresh is rejected without a call.
func (s *ConnectionService) Review(ctx context.Context, verb domain.ReviewVerb, requestID domain.RequestID) error {
	if _, err := domain.ParseReviewVerb(string(verb)); err != nil {
		return err
	}

	requests, err := s.PendingRequests(ctx, false)
	if err != nil {
		return err
	}
	if !containsRequest(requests, requestID) {
		requests, err = s.PendingRequests(ctx, true)
		if err != nil {
			return err
		}
		if !containsRequest(requests, requestID) {
			return fmt.Errorf("%w: %s", domain.ErrRequestNotFound, requestID)
		}
	}

	if err := s.api.ReviewRequest(ctx, verb, requestID); err != nil {
		return fmt.Errorf("%s request %s: %w", verb, requestID, err)
	}

	remaining, _ := domain.WithoutRequest(s.store.Snapshot().Requests, requestID)
	if err := s.store.SetRequests(ctx, remaining); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"request_id": requestID, "outcome": verb.Outcome()}).Info("connection request reviewed")
	return nil
}

func containsRequest(requests []domain.ConnectionRequest, id domain.RequestID) bool {
	for _, request := range requests {
		if request.ID == id {
			return true
		}
	}
	return false
}
