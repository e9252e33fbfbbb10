package in

import (
	"context"

	"projectbrain/internal/modules/schedule/dto"
)

type Usecase interface {
	Generate(ctx context.Context) (dto.ScheduleOutput, error)
	Export(ctx context.Context, input dto.ExportInput) ([]byte, error)
}
