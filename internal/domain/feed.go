package domain

import (
	"fmt"
	"strings"
)

type ConnectionStatus string

const (
	StatusNone       ConnectionStatus = "none"
	StatusInterested ConnectionStatus = "interested"
	StatusIgnored    ConnectionStatus = "ignored"
)

func ParseConnectionStatus(raw string) (ConnectionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return StatusNone, nil
	case "interested":
		return StatusInterested, nil
	case "ignored", "ignore":
		return StatusIgnored, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownStatus, raw)
	}
}

func (s ConnectionStatus) Acted() bool {
	return s == StatusInterested || s == StatusIgnored
}

// CanTransition reports whether a feed entry in status s may move to next.
// Status only ever leaves none, and never returns to it.
func (s ConnectionStatus) CanTransition(next ConnectionStatus) bool {
	return (s == "" || s == StatusNone) && next.Acted()
}

type FeedEntry struct {
	User   UserProfile
	Status ConnectionStatus
}

type FeedSearch struct {
	Term    string
	Results []UserID
}

// FeedState is the single authoritative list behind both feed views.
// Paged and Search.Results only order IDs into Entries.
type FeedState struct {
	Entries   []FeedEntry
	Paged     []UserID
	NextPage  int
	Exhausted bool
	Search    *FeedSearch
}

type FeedStats struct {
	TotalUsers     int
	TotalReferrals int
	TotalAccepted  int
	TotalPending   int
	ActiveUsers    int
}

func (s FeedState) Searching() bool {
	return s.Search != nil
}

func (s FeedState) CanPaginate() bool {
	return !s.Searching() && !s.Exhausted
}

func (s FeedState) Cursor() int {
	if s.NextPage < 1 {
		return 1
	}
	return s.NextPage
}

func (s FeedState) Entry(id UserID) (FeedEntry, bool) {
	for _, entry := range s.Entries {
		if entry.User.ID == id {
			return entry, true
		}
	}
	return FeedEntry{}, false
}

// AppendPage adds one server page in order. A nextPage below 1 marks the feed exhausted.
func (s *FeedState) AppendPage(entries []FeedEntry, nextPage int) {
	paged := make(map[UserID]struct{}, len(s.Paged))
	for _, id := range s.Paged {
		paged[id] = struct{}{}
	}

	for _, entry := range entries {
		s.upsert(entry)
		if _, ok := paged[entry.User.ID]; ok {
			continue
		}
		paged[entry.User.ID] = struct{}{}
		s.Paged = append(s.Paged, entry.User.ID)
	}

	if nextPage > 0 {
		s.NextPage = nextPage
		return
	}
	s.Exhausted = true
}

func (s *FeedState) BeginSearch(term string, results []FeedEntry) {
	ids := make([]UserID, 0, len(results))
	for _, entry := range results {
		s.upsert(entry)
		ids = append(ids, entry.User.ID)
	}
	s.Search = &FeedSearch{Term: term, Results: ids}
}

func (s *FeedState) EndSearch() {
	s.Search = nil
}

func (s *FeedState) ApplyStatus(id UserID, status ConnectionStatus) error {
	for i := range s.Entries {
		if s.Entries[i].User.ID != id {
			continue
		}
		if !s.Entries[i].Status.CanTransition(status) {
			return fmt.Errorf("%w: %s is already %s", ErrStatusTransition, id, s.Entries[i].Status)
		}
		s.Entries[i].Status = status
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUserNotInFeed, id)
}

// upsert refreshes user details from the server but never regresses a local status.
func (s *FeedState) upsert(entry FeedEntry) {
	if entry.Status == "" {
		entry.Status = StatusNone
	}
	for i := range s.Entries {
		if s.Entries[i].User.ID != entry.User.ID {
			continue
		}
		s.Entries[i].User = entry.User
		if s.Entries[i].Status.CanTransition(entry.Status) {
			s.Entries[i].Status = entry.Status
		}
		return
	}
	s.Entries = append(s.Entries, entry)
}

type ProjectionOptions struct {
	RemoveOnAction bool
}

// ProjectFeed derives the displayed list: search results while searching,
// otherwise the paginated list.
func ProjectFeed(s FeedState, opts ProjectionOptions) []FeedEntry {
	order := s.Paged
	if s.Search != nil {
		order = s.Search.Results
	}

	index := make(map[UserID]FeedEntry, len(s.Entries))
	for _, entry := range s.Entries {
		index[entry.User.ID] = entry
	}

	displayed := make([]FeedEntry, 0, len(order))
	for _, id := range order {
		entry, ok := index[id]
		if !ok {
			continue
		}
		if opts.RemoveOnAction && entry.Status.Acted() {
			continue
		}
		displayed = append(displayed, entry)
	}

	return displayed
}
