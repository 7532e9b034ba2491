package ports

import (
	"context"

	"github.com/bnema/techsillies-cli/internal/domain"
)

type FeedPage struct {
	Entries  []domain.FeedEntry
	NextPage int
}

type ProfileAPI interface {
	SignIn(ctx context.Context, email, password string) (domain.UserProfile, error)
	SignUp(ctx context.Context, form domain.SignUp) (domain.UserProfile, error)
	SignOut(ctx context.Context) error
	Profile(ctx context.Context) (domain.UserProfile, error)
	EditProfile(ctx context.Context, edit domain.ProfileEdit) (domain.UserProfile, error)
	OAuthURL(redirectURI, state string) string
}

type FeedAPI interface {
	FeedPage(ctx context.Context, page, limit int) (FeedPage, error)
	SearchFeed(ctx context.Context, term string) ([]domain.FeedEntry, error)
	SendConnectionRequest(ctx context.Context, status domain.ConnectionStatus, userID domain.UserID) error
	Stats(ctx context.Context) (domain.FeedStats, error)
}

type ConnectionAPI interface {
	Connections(ctx context.Context) ([]domain.UserProfile, error)
	ReceivedRequests(ctx context.Context) ([]domain.ConnectionRequest, error)
	ReviewRequest(ctx context.Context, verb domain.ReviewVerb, requestID domain.RequestID) error
}

type ReferralAPI interface {
	SendReferral(ctx context.Context, receiverID domain.UserID, draft domain.ReferralDraft) error
	ReceivedReferrals(ctx context.Context) ([]domain.ReferralRequest, error)
	SentReferrals(ctx context.Context) ([]domain.ReferralRequest, error)
	UpdateReferral(ctx context.Context, id domain.ReferralID, status domain.ReferralStatus) error
}

type ChatHistoryAPI interface {
	ChatHistory(ctx context.Context, targetUserID domain.UserID) ([]domain.ChatMessage, error)
}

type NotificationAPI interface {
	RegisterPushToken(ctx context.Context, token string) error
}
