package out

import (
	"context"

	"projectbrain/internal/modules/auth/domain"
)

type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}
