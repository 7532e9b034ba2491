package domain

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrStatusTransition   = errors.New("connection status cannot change")
	ErrUnknownStatus      = errors.New("unknown connection status")
	ErrUserNotInFeed      = errors.New("user is not in the feed")
	ErrRequestNotFound    = errors.New("connection request not found")
	ErrReferralNotFound   = errors.New("referral request not found")
	ErrTooManySkills      = errors.New("too many skills")
	ErrImageTooLarge      = errors.New("profile image too large")
	ErrMissingField       = errors.New("required field is missing")
)
