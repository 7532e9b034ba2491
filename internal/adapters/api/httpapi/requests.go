package httpapi

import (
	"context"
	"net/http"

	"github.com/bnema/techsillies-cli/internal/domain"
)

func (c *Client) Connections(ctx context.Context) ([]domain.UserProfile, error) {
	var out connectionsResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/myConnections", op: "load connections"}, &out); err != nil {
		return nil, err
	}

	connections := make([]domain.UserProfile, 0, len(out.Connections))
	for _, user := range out.Connections {
		connections = append(connections, user.toDomain())
	}
	return connections, nil
}

func (c *Client) ReceivedRequests(ctx context.Context) ([]domain.ConnectionRequest, error) {
	var out connectionRequestsResponse
	// The backend route is spelled "recieved".
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/requests/recieved", op: "load connection requests"}, &out); err != nil {
		return nil, err
	}

	requests := make([]domain.ConnectionRequest, 0, len(out.Requests))
	for _, item := range out.Requests {
		requests = append(requests, item.toDomain())
	}
	return requests, nil
}

func (c *Client) ReviewRequest(ctx context.Context, verb domain.ReviewVerb, requestID domain.RequestID) error {
	req, err := jsonRequest(http.MethodPost, "/review/request/"+escape(string(verb))+"/"+escape(string(requestID)), "review connection request", struct{}{})
	if err != nil {
		return err
	}
	return c.do(ctx, req, nil)
}

func (c *Client) SendReferral(ctx context.Context, receiverID domain.UserID, draft domain.ReferralDraft) error {
	req, err := jsonRequest(http.MethodPost, "/referral/send/"+escape(string(receiverID)), "send referral", referralDraftPayload{
		JobLink:    draft.JobLink,
		ResumeLink: draft.ResumeLink,
	})
	if err != nil {
		return err
	}
	return c.do(ctx, req, nil)
}

func (c *Client) ReceivedReferrals(ctx context.Context) ([]domain.ReferralRequest, error) {
	return c.referrals(ctx, "/received", "load received referrals")
}

func (c *Client) SentReferrals(ctx context.Context) ([]domain.ReferralRequest, error) {
	return c.referrals(ctx, "/sent", "load sent referrals")
}

func (c *Client) referrals(ctx context.Context, path, op string) ([]domain.ReferralRequest, error) {
	var out referralsResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: path, op: op}, &out); err != nil {
		return nil, err
	}

	referrals := make([]domain.ReferralRequest, 0, len(out.Requests))
	for _, referral := range out.Requests {
		referrals = append(referrals, referral.toDomain())
	}
	return referrals, nil
}

func (c *Client) UpdateReferral(ctx context.Context, id domain.ReferralID, status domain.ReferralStatus) error {
	req, err := jsonRequest(http.MethodPost, "/update/"+escape(string(id)), "update referral", referralStatusPayload{Status: string(status)})
	if err != nil {
		return err
	}
	return c.do(ctx, req, nil)
}
