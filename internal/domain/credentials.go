package domain

import (
	"net/url"
	"strings"
)

// SessionCredentialKey names the stored session token for one backend.
func SessionCredentialKey(baseURL string) string {
	return "session/" + credentialHost(baseURL) + "/token"
}

// PushTokenKey names the device registration token for one backend.
func PushTokenKey(baseURL string) string {
	return "device/" + credentialHost(baseURL) + "/push_token"
}

func credentialHost(baseURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || parsed.Host == "" {
		return "default"
	}
	return strings.NewReplacer(":", "_", "/", "_").Replace(strings.ToLower(parsed.Host))
}
