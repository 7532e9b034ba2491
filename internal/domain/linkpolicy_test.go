package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkPolicyValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "drive link", url: "https://drive.google.com/abc"},
		{name: "job board", url: "https://careers.example.com/jobs/42"},
		{name: "plain http", url: "http://example.com", wantErr: "scheme must be https"},
		{name: "no dot host", url: "https://localhost/resume", wantErr: "real domain"},
		{name: "not a url", url: "resume.pdf", wantErr: "not an absolute URL"},
		{name: "banned keyword in path", url: "https://example.com/casino-jobs", wantErr: "blocked keyword casino"},
		{name: "banned tld", url: "https://jobs.example.xyz/1", wantErr: ".xyz"},
		{name: "shortener", url: "https://bit.ly/abc", wantErr: "bit.ly"},
		{name: "social", url: "https://www.instagram.com/me", wantErr: "instagram.com"},
		{name: "host ending like a banned host", url: "https://www.dropbox.com/s/cv.pdf"},
		{name: "bare host containing a banned host", url: "https://dropbox.com/resume"},
		{name: "host containing a shortener", url: "https://careers.microsoft.com/job/1"},
		{name: "subdomain of a banned host", url: "https://m.facebook.com/jobs/1", wantErr: "facebook.com"},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", 340), wantErr: "longer than 350"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := DefaultLinkPolicy.Validate(tc.url)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLink)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidateDraftNamesFailingField(t *testing.T) {
	t.Parallel()

	err := DefaultLinkPolicy.ValidateDraft(ReferralDraft{
		JobLink:    "https://careers.example.com/jobs/42",
		ResumeLink: "http://example.com/cv.pdf",
	})
	require.Error(t, err)

	var linkErr *LinkError
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, "resume link", linkErr.Field)
	assert.Contains(t, err.Error(), "enter a valid resume link")
}

func TestValidateDraftRequiresBothLinks(t *testing.T) {
	t.Parallel()

	err := DefaultLinkPolicy.ValidateDraft(ReferralDraft{JobLink: "https://careers.example.com/jobs/42"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestCustomPolicyTable(t *testing.T) {
	t.Parallel()

	policy := LinkPolicy{Schemes: []string{"https", "http"}, MaxLength: 30}

	assert.NoError(t, policy.Validate("http://intranet/cv"))
	assert.ErrorContains(t, policy.Validate("https://example.com/a/very/long/path"), "longer than 30")
}
