package application

import "github.com/bnema/techsillies-cli/internal/domain"

// EditProfileCommand carries only the fields the user changed; nil keeps the
// current value.
type EditProfileCommand struct {
	FirstName   *string
	LastName    *string
	About       *string
	Company     *string
	Headline    *string
	AddSkills    string
	RemoveSkills []string
	ClearSkills  bool
	Image        *domain.ProfileImage
}

type SendReferralCommand struct {
	ReceiverID domain.UserID
	JobLink    string
	ResumeLink string
}

type ReviewReferralCommand struct {
	ID     domain.ReferralID
	Status domain.ReferralStatus
}
