package out

import (
	"context"

	"projectbrain/internal/modules/schedule/domain"
)

// Extractor is the backend behind POST /extract.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.Door, error)
}
