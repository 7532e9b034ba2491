package application

import "github.com/bnema/techsillies-cli/internal/domain"

// FeedView is what the feed screen renders.
type FeedView struct {
	Entries    []domain.FeedEntry
	Searching  bool
	SearchTerm string
	Exhausted  bool
	NextPage   int
}

type ReferralQuery struct {
	View   domain.ReferralView
	Status domain.ReferralStatus
}
