package application

import (
	"context"
	"fmt"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type ReferralService struct {
	api    ports.ReferralAPI
	policy domain.LinkPolicy
	log    logrus.FieldLogger
}

func NewReferralService(api ports.ReferralAPI, policy domain.LinkPolicy, log logrus.FieldLogger) *ReferralService {
	return &ReferralService{api: api, policy: policy, log: logging.OrDiscard(log)}
}

// Send validates both links against the policy before anything goes out.
func (s *ReferralService) Send(ctx context.Context, cmd SendReferralCommand) error {
	if cmd.ReceiverID == "" {
		return fmt.Errorf("%w: receiver", domain.ErrMissingField)
	}

	draft := domain.ReferralDraft{JobLink: cmd.JobLink, ResumeLink: cmd.ResumeLink}
	if err := s.policy.ValidateDraft(draft); err != nil {
		return err
	}

	if err := s.api.SendReferral(ctx, cmd.ReceiverID, draft); err != nil {
		return fmt.Errorf("send referral to %s: %w", cmd.ReceiverID, err)
	}

	s.log.WithField("receiver_id", cmd.ReceiverID).Info("referral sent")
	return nil
}

// Board fetches received and sent referrals concurrently.
func (s *ReferralService) Board(ctx context.Context) (domain.ReferralBoard, error) {
	var board domain.ReferralBoard

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		received, err := s.api.ReceivedReferrals(groupCtx)
		if err != nil {
			return fmt.Errorf("load received referrals: %w", err)
		}
		board.Received = received
		return nil
	})
	group.Go(func() error {
		sent, err := s.api.SentReferrals(groupCtx)
		if err != nil {
			return fmt.Errorf("load sent referrals: %w", err)
		}
		board.Sent = sent
		return nil
	})

	if err := group.Wait(); err != nil {
		return domain.ReferralBoard{}, err
	}
	return board, nil
}

// Review accepts or rejects one received referral and updates it in place.
func (s *ReferralService) Review(ctx context.Context, board *domain.ReferralBoard, cmd ReviewReferralCommand) error {
	if cmd.Status != domain.ReferralAccepted && cmd.Status != domain.ReferralRejected {
		return fmt.Errorf("referral can only be Accepted or Rejected, got %q", cmd.Status)
	}

	found := false
	for _, referral := range board.Received {
		if referral.ID == cmd.ID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrReferralNotFound, cmd.ID)
	}

	if err := s.api.UpdateReferral(ctx, cmd.ID, cmd.Status); err != nil {
		return fmt.Errorf("update referral %s: %w", cmd.ID, err)
	}

	return board.SetStatus(cmd.ID, cmd.Status)
}

func (s *ReferralService) List(ctx context.Context, query ReferralQuery) ([]domain.ReferralRequest, error) {
	board, err := s.Board(ctx)
	if err != nil {
		return nil, err
	}
	return board.Filter(query.View, query.Status), nil
}
