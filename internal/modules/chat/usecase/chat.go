package usecase

import (
	"context"

	chatdto "projectbrain/internal/modules/chat/dto"
	chatin "projectbrain/internal/modules/chat/port/in"
	"projectbrain/internal/modules/chat/service"
)

type Interactor struct {
	svc *service.ChatService
}

func NewInteractor(svc *service.ChatService) chatin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Ask(ctx context.Context, input chatdto.AskInput) (chatdto.AskOutput, error) {
	answer, err := i.svc.Ask(ctx, input.Query)
	if err != nil {
		return chatdto.AskOutput{}, err
	}
	out := chatdto.AskOutput{Answer: answer.Text}
	if len(answer.Citations) > 0 {
		out.Sources = make([]chatdto.SourceOutput, len(answer.Citations))
		for idx, c := range answer.Citations {
			out.Sources[idx] = chatdto.SourceOutput{File: c.File, Page: c.Page}
		}
	}
	return out, nil
}
