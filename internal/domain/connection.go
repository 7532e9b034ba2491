package domain

import (
	"fmt"
	"strings"
)

type RequestID string

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

type ReviewVerb string

const (
	ReviewAccept ReviewVerb = "accept"
	ReviewReject ReviewVerb = "reject"
)

func ParseReviewVerb(raw string) (ReviewVerb, error) {
	switch ReviewVerb(strings.ToLower(strings.TrimSpace(raw))) {
	case ReviewAccept:
		return ReviewAccept, nil
	case ReviewReject:
		return ReviewReject, nil
	default:
		return "", fmt.Errorf("unsupported review action %q (accept|reject)", raw)
	}
}

func (v ReviewVerb) Outcome() RequestStatus {
	if v == ReviewAccept {
		return RequestAccepted
	}
	return RequestRejected
}

type ConnectionRequest struct {
	ID       RequestID
	From     UserProfile
	ToUserID UserID
	Status   RequestStatus
}

// WithoutRequest drops exactly the request with the given id.
func WithoutRequest(requests []ConnectionRequest, id RequestID) ([]ConnectionRequest, bool) {
	kept := make([]ConnectionRequest, 0, len(requests))
	found := false
	for _, request := range requests {
		if request.ID == id {
			found = true
			continue
		}
		kept = append(kept, request)
	}
	return kept, found
}

// FilterConnections matches first or last name, case-insensitively.
func FilterConnections(connections []UserProfile, term string) []UserProfile {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return connections
	}

	matched := make([]UserProfile, 0, len(connections))
	for _, user := range connections {
		if strings.Contains(strings.ToLower(user.FirstName), needle) || strings.Contains(strings.ToLower(user.LastName), needle) {
			matched = append(matched, user)
		}
	}
	return matched
}
