package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/ports"
)

func (c *Client) FeedPage(ctx context.Context, page, limit int) (ports.FeedPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var out feedResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/feed", query: query, op: "load feed page"}, &out); err != nil {
		return ports.FeedPage{}, err
	}

	nextPage := 0
	if out.Pagination.NextPage != nil {
		nextPage = *out.Pagination.NextPage
	}

	return ports.FeedPage{Entries: toFeedEntries(out.FeedUsers), NextPage: nextPage}, nil
}

func (c *Client) SearchFeed(ctx context.Context, term string) ([]domain.FeedEntry, error) {
	query := url.Values{}
	query.Set("search", term)

	var out feedResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/feed", query: query, op: "search feed"}, &out); err != nil {
		return nil, err
	}
	return toFeedEntries(out.FeedUsers), nil
}

func (c *Client) SendConnectionRequest(ctx context.Context, status domain.ConnectionStatus, userID domain.UserID) error {
	req, err := jsonRequest(http.MethodPost, "/send/request/"+escape(wireStatus(status))+"/"+escape(string(userID)), "send connection request", struct{}{})
	if err != nil {
		return err
	}
	return c.do(ctx, req, nil)
}

func (c *Client) Stats(ctx context.Context) (domain.FeedStats, error) {
	var out statsResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/stats", op: "load stats"}, &out); err != nil {
		return domain.FeedStats{}, err
	}

	return domain.FeedStats{
		TotalUsers:     out.TotalUsers,
		TotalReferrals: out.TotalReferrals,
		TotalAccepted:  out.TotalAccepted,
		TotalPending:   out.TotalPending,
		ActiveUsers:    out.ActiveUsers,
	}, nil
}
