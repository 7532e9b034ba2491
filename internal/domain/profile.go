package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	MaxSkills        = 25
	MaxSkillLength   = 30
	MaxProfileImage  = 10 << 20
	skillSeparatorRE = `[,;]`
)

var skillSeparator = regexp.MustCompile(skillSeparatorRE)

type UserID string

type UserProfile struct {
	ID        UserID
	FirstName string
	LastName  string
	Headline  string
	Company   string
	About     string
	Skills    []string
	ImageURL  string
	Email     string
}

func (p UserProfile) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ParseSkills merges comma or semicolon separated input into existing skills.
// Blank, over-long and duplicate skills are dropped.
func ParseSkills(existing []string, input string) ([]string, error) {
	merged := slices.Clone(existing)
	added := 0
	for _, raw := range skillSeparator.Split(input, -1) {
		skill := strings.TrimSpace(raw)
		if skill == "" || utf8.RuneCountInString(skill) >= MaxSkillLength {
			continue
		}
		if slices.Contains(merged, skill) {
			continue
		}
		merged = append(merged, skill)
		added++
	}

	if added > 0 && len(merged) > MaxSkills {
		return existing, fmt.Errorf("%w: maximum %d skills allowed", ErrTooManySkills, MaxSkills)
	}

	return merged, nil
}

// RemoveSkills drops every skill equal to one of remove, keeping order.
func RemoveSkills(existing []string, remove []string) []string {
	return slices.DeleteFunc(slices.Clone(existing), func(skill string) bool {
		return slices.ContainsFunc(remove, func(r string) bool {
			return strings.TrimSpace(r) == skill
		})
	})
}

type SignUp struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (s SignUp) Validate() error {
	switch {
	case strings.TrimSpace(s.FirstName) == "":
		return fmt.Errorf("%w: first name", ErrMissingField)
	case strings.TrimSpace(s.Email) == "":
		return fmt.Errorf("%w: email", ErrMissingField)
	case s.Password == "":
		return fmt.Errorf("%w: password", ErrMissingField)
	}
	return nil
}

type ProfileImage struct {
	Filename string
	Content  []byte
}

type ProfileEdit struct {
	FirstName string
	LastName  string
	About     string
	Company   string
	Headline  string
	Skills    []string
	Image     *ProfileImage
}

func (e ProfileEdit) Validate() error {
	if strings.TrimSpace(e.FirstName) == "" || strings.TrimSpace(e.Headline) == "" || strings.TrimSpace(e.Company) == "" {
		return fmt.Errorf("%w: first name, headline and company/college are required", ErrMissingField)
	}
	if len(e.Skills) > MaxSkills {
		return fmt.Errorf("%w: maximum %d skills allowed", ErrTooManySkills, MaxSkills)
	}
	if e.Image != nil && len(e.Image.Content) > MaxProfileImage {
		return fmt.Errorf("%w: %s is over 10 MB", ErrImageTooLarge, e.Image.Filename)
	}
	return nil
}

// EditFrom seeds an edit with the profile's current values.
func EditFrom(p UserProfile) ProfileEdit {
	return ProfileEdit{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		About:     p.About,
		Company:   p.Company,
		Headline:  p.Headline,
		Skills:    slices.Clone(p.Skills),
	}
}
