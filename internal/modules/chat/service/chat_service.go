package service

import (
	"context"
	"fmt"

	"projectbrain/internal/modules/chat/domain"
	chatout "projectbrain/internal/modules/chat/port/out"
	apperrors "projectbrain/internal/platform/errors"
)

type ChatService struct {
	backend chatout.Backend
}

func NewChatService(backend chatout.Backend) *ChatService {
	return &ChatService{backend: backend}
}

// Ask forwards the query verbatim; the text the user typed is what the
// backend sees, surrounding whitespace included.
func (s *ChatService) Ask(ctx context.Context, query string) (domain.Answer, error) {
	if query == "" {
		return domain.Answer{}, fmt.Errorf("%w: query is required", apperrors.ErrInvalidInput)
	}
	answer, err := s.backend.Ask(ctx, query)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("ask backend: %w", err)
	}
	return answer, nil
}
