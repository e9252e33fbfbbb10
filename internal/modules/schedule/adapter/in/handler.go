package in

import (
	"context"

	scheduledto "projectbrain/internal/modules/schedule/dto"
	schedulein "projectbrain/internal/modules/schedule/port/in"
)

type Handler struct {
	usecase schedulein.Usecase
}

func NewHandler(usecase schedulein.Usecase) Handler {
	return Handler{usecase: usecase}
}

func (h Handler) Generate(ctx context.Context) (scheduledto.ScheduleOutput, error) {
	return h.usecase.Generate(ctx)
}

func (h Handler) Export(ctx context.Context, doors []scheduledto.DoorOutput, format string) ([]byte, error) {
	return h.usecase.Export(ctx, scheduledto.ExportInput{Doors: doors, Format: format})
}
