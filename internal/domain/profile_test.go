package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillsSplitsTrimsAndDeduplicates(t *testing.T) {
	t.Parallel()

	skills, err := ParseSkills([]string{"Go"}, " Kubernetes, Go;  ; React ,"+strings.Repeat("x", 30))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes", "React"}, skills)
}

func TestParseSkillsRejectsOverflow(t *testing.T) {
	t.Parallel()

	existing := make([]string, 0, MaxSkills)
	for i := 0; i < MaxSkills; i++ {
		existing = append(existing, fmt.Sprintf("skill-%d", i))
	}

	got, err := ParseSkills(existing, "one-more")
	assert.ErrorIs(t, err, ErrTooManySkills)
	assert.Equal(t, existing, got)

	got, err = ParseSkills(existing, "skill-1")
	require.NoError(t, err)
	assert.Len(t, got, MaxSkills)
}

func TestRemoveSkillsKeepsOrderAndSource(t *testing.T) {
	t.Parallel()

	existing := []string{"Go", "React", "Go", "Rust"}
	got := RemoveSkills(existing, []string{" Go ", "Haskell"})
	assert.Equal(t, []string{"React", "Rust"}, got)
	assert.Equal(t, []string{"Go", "React", "Go", "Rust"}, existing)
	assert.Empty(t, RemoveSkills(nil, []string{"Go"}))
}

func TestProfileEditValidate(t *testing.T) {
	t.Parallel()

	valid := ProfileEdit{FirstName: "Ada", Headline: "Engineer", Company: "Analytical Engines"}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Company = " "
	assert.ErrorIs(t, missing.Validate(), ErrMissingField)

	big := valid
	big.Image = &ProfileImage{Filename: "me.png", Content: make([]byte, MaxProfileImage+1)}
	assert.ErrorIs(t, big.Validate(), ErrImageTooLarge)
}

func TestSignUpValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, SignUp{FirstName: "Ada", Email: "ada@example.com", Password: "pw"}.Validate())
	assert.ErrorContains(t, SignUp{FirstName: "Ada", Password: "pw"}.Validate(), "email")
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada Lovelace", UserProfile{FirstName: "Ada", LastName: "Lovelace"}.DisplayName())
	assert.Equal(t, "Ada", UserProfile{FirstName: "Ada"}.DisplayName())
}
