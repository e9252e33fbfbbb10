package usecase_test

import (
	"context"
	"errors"
	"testing"

	"projectbrain/internal/modules/chat/domain"
	chatdto "projectbrain/internal/modules/chat/dto"
	"projectbrain/internal/modules/chat/service"
	"projectbrain/internal/modules/chat/usecase"
	apperrors "projectbrain/internal/platform/errors"
)

type fakeBackend struct {
	answer  domain.Answer
	err     error
	queries []string
}

func (f *fakeBackend) Ask(_ context.Context, query string) (domain.Answer, error) {
	f.queries = append(f.queries, query)
	return f.answer, f.err
}

func TestAskMapsAnswerInOrder(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{answer: domain.Answer{
		Text: "2 hours",
		Citations: []domain.Citation{
			{File: "spec.pdf", Page: 12},
			{File: "doors.pdf", Page: 1},
		},
	}}
	uc := usecase.NewInteractor(service.NewChatService(backend))

	out, err := uc.Ask(context.Background(), chatdto.AskInput{Query: "What is the fire rating?"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if out.Answer != "2 hours" {
		t.Fatalf("unexpected answer %q", out.Answer)
	}
	if len(out.Sources) != 2 || out.Sources[0].File != "spec.pdf" || out.Sources[0].Page != 12 || out.Sources[1].File != "doors.pdf" {
		t.Fatalf("sources must keep server order, got %+v", out.Sources)
	}
	if len(backend.queries) != 1 || backend.queries[0] != "What is the fire rating?" {
		t.Fatalf("unexpected backend queries %v", backend.queries)
	}
}

func TestAskRejectsEmptyQueryWithoutCallingBackend(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{}
	uc := usecase.NewInteractor(service.NewChatService(backend))

	if _, err := uc.Ask(context.Background(), chatdto.AskInput{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if len(backend.queries) != 0 {
		t.Fatalf("backend must not be called for an empty query")
	}
}

func TestAskWrapsBackendErrors(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{err: apperrors.ErrBackendUnavailable}
	uc := usecase.NewInteractor(service.NewChatService(backend))

	_, err := uc.Ask(context.Background(), chatdto.AskInput{Query: "q"})
	if !errors.Is(err, apperrors.ErrBackendUnavailable) {
		t.Fatalf("expected backend unavailable, got %v", err)
	}
}
