package ports

import (
	"context"

	"github.com/bnema/techsillies-cli/internal/domain"
)

type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}
