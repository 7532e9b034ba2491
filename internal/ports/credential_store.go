package ports

import "context"

// CredentialStore keeps opaque secrets such as the session token.
// Read returns domain.ErrCredentialNotFound when the key was never written.
type CredentialStore interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
