package out

import (
	"context"

	"projectbrain/internal/modules/chat/domain"
)

// Backend is the question-answering service behind POST /chat.
type Backend interface {
	Ask(ctx context.Context, query string) (domain.Answer, error)
}
