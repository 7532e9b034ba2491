package domain

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var ErrInvalidLink = errors.New("invalid link")

// LinkPolicy decides which job and resume URLs may be attached to a referral.
type LinkPolicy struct {
	Schemes        []string
	BannedWords    []string
	BannedTLDs     []string
	BannedHosts    []string
	MaxLength      int
	RequireDotHost bool
}

var DefaultLinkPolicy = LinkPolicy{
	Schemes: []string{"https"},
	BannedWords: []string{
		"porn", "xxx", "sex", "adult", "escort", "fetish", "bdsm", "onlyfans", "nude", "hotgirl", "mms", "xvideos", "pornhub",
		"casino", "bet", "gambling", "lottery", "stake",
		"drug", "pill", "viagra", "pharma", "steroid",
		"scam", "fraud", "hacker", "crack", "hacktool",
	},
	BannedTLDs: []string{
		"xyz", "top", "click", "zip", "kim", "win", "bid", "loan", "download", "gq", "ml", "cf", "ga", "mom", "adult",
	},
	BannedHosts: []string{
		"bit.ly", "tinyurl.com", "t.co", "goo.gl", "shorturl.at", "rebrand.ly", "is.gd", "buff.ly", "cutt.ly",
		"instagram.com", "facebook.com", "tiktok.com", "snapchat.com", "x.com",
	},
	MaxLength:      350,
	RequireDotHost: true,
}

type LinkError struct {
	Field  string
	URL    string
	Reason string
}

func (e *LinkError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid link %q: %s", e.URL, e.Reason)
	}
	return fmt.Sprintf("enter a valid %s: %s", e.Field, e.Reason)
}

func (e *LinkError) Unwrap() error {
	return ErrInvalidLink
}

func (p LinkPolicy) Validate(raw string) error {
	fail := func(reason string) error {
		return &LinkError{URL: raw, Reason: reason}
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return fail("not an absolute URL")
	}

	if !slices.Contains(p.Schemes, strings.ToLower(parsed.Scheme)) {
		return fail("scheme must be " + strings.Join(p.Schemes, " or "))
	}

	host := strings.ToLower(parsed.Hostname())
	if p.RequireDotHost && !strings.Contains(host, ".") {
		return fail("host must be a real domain")
	}

	full := strings.ToLower(raw)
	for _, word := range p.BannedWords {
		if strings.Contains(full, word) {
			return fail("contains blocked keyword " + word)
		}
	}

	tld := host[strings.LastIndex(host, ".")+1:]
	if slices.Contains(p.BannedTLDs, tld) {
		return fail("top-level domain ." + tld + " is not allowed")
	}

	for _, banned := range p.BannedHosts {
		if host == banned || strings.HasSuffix(host, "."+banned) {
			return fail("links to " + banned + " are not allowed")
		}
	}

	if p.MaxLength > 0 && len(raw) > p.MaxLength {
		return fail(fmt.Sprintf("longer than %d characters", p.MaxLength))
	}

	return nil
}

// ValidateDraft checks both referral links, job link first.
func (p LinkPolicy) ValidateDraft(draft ReferralDraft) error {
	fields := []struct {
		name  string
		value string
	}{
		{name: "job link", value: draft.JobLink},
		{name: "resume link", value: draft.ResumeLink},
	}

	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
		if err := p.Validate(field.value); err != nil {
			var linkErr *LinkError
			if errors.As(err, &linkErr) {
				linkErr.Field = field.name
			}
			return err
		}
	}
	return nil
}
