package in

import (
	"context"

	chatdto "projectbrain/internal/modules/chat/dto"
	chatin "projectbrain/internal/modules/chat/port/in"
)

type Handler struct {
	usecase chatin.Usecase
}

func NewHandler(usecase chatin.Usecase) Handler {
	return Handler{usecase: usecase}
}

func (h Handler) Ask(ctx context.Context, query string) (chatdto.AskOutput, error) {
	return h.usecase.Ask(ctx, chatdto.AskInput{Query: query})
}
