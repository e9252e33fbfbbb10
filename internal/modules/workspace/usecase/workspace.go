package usecase

import (
	"context"

	"go.uber.org/zap"

	chatdto "projectbrain/internal/modules/chat/dto"
	chatin "projectbrain/internal/modules/chat/port/in"
	schedulein "projectbrain/internal/modules/schedule/port/in"
	"projectbrain/internal/modules/workspace/domain"
	workspacein "projectbrain/internal/modules/workspace/port/in"
)

type Interactor struct {
	chat     chatin.Usecase
	schedule schedulein.Usecase
	log      *zap.Logger
}

func NewInteractor(chat chatin.Usecase, schedule schedulein.Usecase, log *zap.Logger) workspacein.Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{chat: chat, schedule: schedule, log: log.Named("workspace")}
}

func (i *Interactor) Ask(ctx context.Context, query string) (domain.Reply, error) {
	out, err := i.chat.Ask(ctx, chatdto.AskInput{Query: query})
	if err != nil {
		i.log.Warn("chat failed", zap.Error(err))
		return domain.Reply{}, err
	}
	reply := domain.Reply{Answer: out.Answer}
	for _, s := range out.Sources {
		reply.Sources = append(reply.Sources, domain.Source{File: s.File, Page: s.Page})
	}
	return reply, nil
}

func (i *Interactor) Extract(ctx context.Context) ([]domain.Door, error) {
	out, err := i.schedule.Generate(ctx)
	if err != nil {
		i.log.Warn("schedule extraction failed", zap.Error(err))
		return nil, err
	}
	doors := make([]domain.Door, len(out.Doors))
	for idx, d := range out.Doors {
		doors[idx] = domain.Door(d)
	}
	i.log.Info("schedule extracted", zap.Int("doors", len(doors)))
	return doors, nil
}

// Send reports whether a request was issued; the empty string is ignored.
func (i *Interactor) Send(ctx context.Context, ws *domain.Workspace, text string) bool {
	query, ok := ws.Submit(text)
	if !ok {
		return false
	}
	reply, err := i.Ask(ctx, query)
	ws.CompleteChat(reply, err)
	return true
}

func (i *Interactor) GenerateSchedule(ctx context.Context, ws *domain.Workspace) {
	ws.BeginSchedule()
	doors, err := i.Extract(ctx)
	ws.CompleteSchedule(doors, err)
}
