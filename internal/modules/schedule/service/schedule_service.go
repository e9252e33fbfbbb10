package service

import (
	"context"
	"fmt"

	"projectbrain/internal/modules/schedule/domain"
	scheduleout "projectbrain/internal/modules/schedule/port/out"
)

type ScheduleService struct {
	extractor scheduleout.Extractor
}

func NewScheduleService(extractor scheduleout.Extractor) *ScheduleService {
	return &ScheduleService{extractor: extractor}
}

// Generate returns the doors in the order the extractor produced them. An
// empty result is not an error.
func (s *ScheduleService) Generate(ctx context.Context) ([]domain.Door, error) {
	doors, err := s.extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract door schedule: %w", err)
	}
	return doors, nil
}
