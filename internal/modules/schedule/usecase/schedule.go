package usecase

import (
	"context"

	"projectbrain/internal/modules/schedule/domain"
	scheduledto "projectbrain/internal/modules/schedule/dto"
	schedulein "projectbrain/internal/modules/schedule/port/in"
	"projectbrain/internal/modules/schedule/service"
)

type Interactor struct {
	svc *service.ScheduleService
}

func NewInteractor(svc *service.ScheduleService) schedulein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Generate(ctx context.Context) (scheduledto.ScheduleOutput, error) {
	doors, err := i.svc.Generate(ctx)
	if err != nil {
		return scheduledto.ScheduleOutput{}, err
	}
	out := scheduledto.ScheduleOutput{}
	if len(doors) > 0 {
		out.Doors = make([]scheduledto.DoorOutput, len(doors))
		for idx, d := range doors {
			out.Doors[idx] = scheduledto.DoorOutput(d)
		}
	}
	return out, nil
}

func (i *Interactor) Export(_ context.Context, input scheduledto.ExportInput) ([]byte, error) {
	format, err := domain.ParseExportFormat(input.Format)
	if err != nil {
		return nil, err
	}
	doors := make([]domain.Door, len(input.Doors))
	for idx, d := range input.Doors {
		doors[idx] = domain.Door(d)
	}
	return service.Export(doors, format)
}
