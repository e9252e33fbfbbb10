package in

import (
	"context"

	"projectbrain/internal/modules/workspace/domain"
)

type Usecase interface {
	// Ask and Extract perform the network half of an action, for callers
	// that split submission and completion across events.
	Ask(ctx context.Context, query string) (domain.Reply, error)
	Extract(ctx context.Context) ([]domain.Door, error)

	// Send and GenerateSchedule run a whole action synchronously.
	Send(ctx context.Context, ws *domain.Workspace, text string) bool
	GenerateSchedule(ctx context.Context, ws *domain.Workspace)
}
