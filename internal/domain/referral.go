package domain

import (
	"fmt"
	"strings"
	"time"
)

type ReferralID string

type ReferralStatus string

const (
	ReferralPending  ReferralStatus = "Pending"
	ReferralAccepted ReferralStatus = "Accepted"
	ReferralRejected ReferralStatus = "Rejected"
)

func ParseReferralStatus(raw string) (ReferralStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pending":
		return ReferralPending, nil
	case "accepted", "accept":
		return ReferralAccepted, nil
	case "rejected", "reject":
		return ReferralRejected, nil
	default:
		return "", fmt.Errorf("unsupported referral status %q", raw)
	}
}

type ReferralRequest struct {
	ID         ReferralID
	Sender     UserProfile
	Receiver   UserProfile
	JobLink    string
	ResumeLink string
	Status     ReferralStatus
	Message    string
	CreatedAt  time.Time
}

type ReferralDraft struct {
	JobLink    string
	ResumeLink string
}

type ReferralView string

const (
	ReferralsReceived ReferralView = "received"
	ReferralsSent     ReferralView = "sent"
)

type ReferralBoard struct {
	Received []ReferralRequest
	Sent     []ReferralRequest
}

// SetStatus updates the matching received referral in place.
func (b *ReferralBoard) SetStatus(id ReferralID, status ReferralStatus) error {
	for i := range b.Received {
		if b.Received[i].ID == id {
			b.Received[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrReferralNotFound, id)
}

// Filter returns the sent list as-is; received referrals are narrowed to one status tab.
func (b ReferralBoard) Filter(view ReferralView, status ReferralStatus) []ReferralRequest {
	if view == ReferralsSent {
		return b.Sent
	}
	if status == "" {
		return b.Received
	}

	filtered := make([]ReferralRequest, 0, len(b.Received))
	for _, referral := range b.Received {
		current := referral.Status
		if current == "" {
			current = ReferralPending
		}
		if current == status {
			filtered = append(filtered, referral)
		}
	}
	return filtered
}
