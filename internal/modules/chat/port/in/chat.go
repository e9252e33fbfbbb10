package in

import (
	"context"

	"projectbrain/internal/modules/chat/dto"
)

type Usecase interface {
	Ask(ctx context.Context, input dto.AskInput) (dto.AskOutput, error)
}
