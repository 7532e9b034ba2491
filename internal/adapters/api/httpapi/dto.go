package httpapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/bnema/techsillies-cli/internal/domain"
)

// userDTO accepts either a populated user document or a bare id string.
type userDTO struct {
	ID        string   `json:"_id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Headline  string   `json:"headline"`
	Company   string   `json:"company"`
	About     string   `json:"about"`
	Skills    []string `json:"skills"`
	ImageURL  string   `json:"imageURL"`
	Email     string   `json:"email"`

	ConnectionStatus string `json:"connectionStatus"`
}

func (u *userDTO) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &u.ID)
	}

	type plain userDTO
	var decoded plain
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return err
	}
	*u = userDTO(decoded)
	return nil
}

func (u userDTO) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:        domain.UserID(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Headline:  u.Headline,
		Company:   u.Company,
		About:     u.About,
		Skills:    u.Skills,
		ImageURL:  u.ImageURL,
		Email:     u.Email,
	}
}

// profileEnvelope decodes both {"user": {...}} and a flat user object.
type profileEnvelope struct {
	user userDTO
}

func (e *profileEnvelope) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		User *userDTO `json:"user"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.User != nil {
		e.user = *wrapped.User
		return nil
	}
	return json.Unmarshal(data, &e.user)
}

func (e profileEnvelope) profile() domain.UserProfile {
	return e.user.toDomain()
}

type signInPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type feedResponse struct {
	FeedUsers  []userDTO `json:"feedUsers"`
	Pagination struct {
		NextPage *int `json:"nextPage"`
	} `json:"pagination"`
}

func toFeedEntries(users []userDTO) []domain.FeedEntry {
	entries := make([]domain.FeedEntry, 0, len(users))
	for _, user := range users {
		status, err := domain.ParseConnectionStatus(user.ConnectionStatus)
		if err != nil {
			status = domain.StatusNone
		}
		entries = append(entries, domain.FeedEntry{User: user.toDomain(), Status: status})
	}
	return entries
}

type statsResponse struct {
	TotalUsers     int `json:"totalUsers"`
	TotalReferrals int `json:"totalReferrals"`
	TotalAccepted  int `json:"totalAccepted"`
	TotalPending   int `json:"totalPending"`
	ActiveUsers    int `json:"activeUsers"`
}

type connectionsResponse struct {
	Connections []userDTO `json:"connections"`
}

type connectionRequestDTO struct {
	ID     string  `json:"_id"`
	From   userDTO `json:"fromUserId"`
	To     userDTO `json:"toUserId"`
	Status string  `json:"status"`
}

type connectionRequestsResponse struct {
	Requests []connectionRequestDTO `json:"connectionsRequests"`
}

func (r connectionRequestDTO) toDomain() domain.ConnectionRequest {
	status := domain.RequestPending
	switch strings.ToLower(r.Status) {
	case string(domain.RequestAccepted):
		status = domain.RequestAccepted
	case string(domain.RequestRejected):
		status = domain.RequestRejected
	}

	return domain.ConnectionRequest{
		ID:       domain.RequestID(r.ID),
		From:     r.From.toDomain(),
		ToUserID: domain.UserID(r.To.ID),
		Status:   status,
	}
}

type referralDraftPayload struct {
	JobLink    string `json:"jobLink"`
	ResumeLink string `json:"resumeLink"`
}

type referralStatusPayload struct {
	Status string `json:"status"`
}

type referralDTO struct {
	ID         string    `json:"_id"`
	Sender     userDTO   `json:"sender"`
	Receiver   userDTO   `json:"receiver"`
	JobLink    string    `json:"jobLink"`
	ResumeLink string    `json:"resumeLink"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

type referralsResponse struct {
	Requests []referralDTO `json:"requests"`
}

func (r referralDTO) toDomain() domain.ReferralRequest {
	status, err := domain.ParseReferralStatus(r.Status)
	if err != nil {
		status = domain.ReferralPending
	}

	return domain.ReferralRequest{
		ID:         domain.ReferralID(r.ID),
		Sender:     r.Sender.toDomain(),
		Receiver:   r.Receiver.toDomain(),
		JobLink:    r.JobLink,
		ResumeLink: r.ResumeLink,
		Status:     status,
		Message:    r.Message,
		CreatedAt:  r.CreatedAt,
	}
}

type chatMessageDTO struct {
	Sender    userDTO   `json:"senderId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type chatHistoryResponse struct {
	Message  []chatMessageDTO `json:"message"`
	Messages []chatMessageDTO `json:"messages"`
}

func (r chatHistoryResponse) toDomain() []domain.ChatMessage {
	source := r.Message
	if len(source) == 0 {
		source = r.Messages
	}

	messages := make([]domain.ChatMessage, 0, len(source))
	for _, msg := range source {
		messages = append(messages, domain.ChatMessage{
			SenderName: strings.TrimSpace(msg.Sender.FirstName + " " + msg.Sender.LastName),
			Text:       msg.Text,
			Timestamp:  msg.CreatedAt,
		})
	}
	return messages
}

// wireStatus is the path segment the backend expects for a feed action.
func wireStatus(status domain.ConnectionStatus) string {
	if status == domain.StatusIgnored {
		return "ignore"
	}
	return string(status)
}

type pushTokenPayload struct {
	Token string `json:"token"`
}
