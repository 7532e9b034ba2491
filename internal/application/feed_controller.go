package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const DefaultFeedPageSize = 20

type FeedOptions struct {
	PageSize       int
	RemoveOnAction bool
}

// FeedController drives the discovery feed. State lives in the SessionStore;
// fetches are serialized so a page is never requested twice.
type FeedController struct {
	api   ports.FeedAPI
	store *SessionStore
	opts  FeedOptions
	log   logrus.FieldLogger

	fetchMu sync.Mutex
}

func NewFeedController(api ports.FeedAPI, store *SessionStore, opts FeedOptions, log logrus.FieldLogger) *FeedController {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultFeedPageSize
	}

	return &FeedController{api: api, store: store, opts: opts, log: logging.OrDiscard(log)}
}

// NextPage loads one more page. It reports false without a request while a
// search is active or once the feed is exhausted.
func (c *FeedController) NextPage(ctx context.Context) (bool, error) {
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	feed := c.store.Snapshot().Feed
	if !feed.CanPaginate() {
		return false, nil
	}

	cursor := feed.Cursor()
	page, err := c.api.FeedPage(ctx, cursor, c.opts.PageSize)
	if err != nil {
		return false, fmt.Errorf("load feed page %d: %w", cursor, err)
	}

	appended := false
	err = c.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		if !feed.CanPaginate() || feed.Cursor() != cursor {
			return nil
		}
		feed.AppendPage(page.Entries, page.NextPage)
		appended = true
		return nil
	})
	if err != nil {
		return false, err
	}

	c.log.WithFields(logrus.Fields{"page": cursor, "users": len(page.Entries), "next_page": page.NextPage}).Debug("feed page loaded")
	return appended, nil
}

// Search replaces the displayed list with the server's results. A blank term
// leaves search mode. On failure the feed is unchanged.
func (c *FeedController) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return c.ClearSearch(ctx)
	}

	results, err := c.api.SearchFeed(ctx, term)
	if err != nil {
		return fmt.Errorf("search feed for %q: %w", term, err)
	}

	return c.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		feed.BeginSearch(term, results)
		return nil
	})
}

func (c *FeedController) ClearSearch(ctx context.Context) error {
	return c.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		feed.EndSearch()
		return nil
	})
}

// SendRequest records interest in, or ignores, a feed user. The transition is
// checked before the request and applied once the server accepts it.
func (c *FeedController) SendRequest(ctx context.Context, status domain.ConnectionStatus, userID domain.UserID) error {
	if !status.Acted() {
		return fmt.Errorf("%w %q", domain.ErrUnknownStatus, status)
	}

	entry, ok := c.store.Snapshot().Feed.Entry(userID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotInFeed, userID)
	}
	if !entry.Status.CanTransition(status) {
		return fmt.Errorf("%w: %s is already %s", domain.ErrStatusTransition, userID, entry.Status)
	}

	if err := c.api.SendConnectionRequest(ctx, status, userID); err != nil {
		return fmt.Errorf("send %s request to %s: %w", status, userID, err)
	}

	return c.store.UpdateFeed(ctx, func(feed *domain.FeedState) error {
		return feed.ApplyStatus(userID, status)
	})
}

func (c *FeedController) Displayed() []domain.FeedEntry {
	return domain.ProjectFeed(c.store.Snapshot().Feed, domain.ProjectionOptions{RemoveOnAction: c.opts.RemoveOnAction})
}

func (c *FeedController) View() FeedView {
	feed := c.store.Snapshot().Feed
	view := FeedView{
		Entries:   domain.ProjectFeed(feed, domain.ProjectionOptions{RemoveOnAction: c.opts.RemoveOnAction}),
		Searching: feed.Searching(),
		Exhausted: feed.Exhausted,
		NextPage:  feed.Cursor(),
	}
	if feed.Search != nil {
		view.SearchTerm = feed.Search.Term
	}
	return view
}

func (c *FeedController) Stats(ctx context.Context) (domain.FeedStats, error) {
	stats, err := c.api.Stats(ctx)
	if err != nil {
		return domain.FeedStats{}, fmt.Errorf("load feed stats: %w", err)
	}
	return stats, nil
}
