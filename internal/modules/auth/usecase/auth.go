package usecase

import (
	"context"

	"projectbrain/internal/modules/auth/domain"
	authdto "projectbrain/internal/modules/auth/dto"
	authin "projectbrain/internal/modules/auth/port/in"
	authout "projectbrain/internal/modules/auth/port/out"
	"projectbrain/internal/modules/auth/service"
)

type Interactor struct {
	svc   *service.AuthService
	store authout.SessionStore
}

func NewInteractor(svc *service.AuthService, store authout.SessionStore) authin.Usecase {
	return &Interactor{svc: svc, store: store}
}

// Login leaves the stored session untouched when the email is rejected.
func (i *Interactor) Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error) {
	session, err := i.svc.Authenticate(ctx, input.Email)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	if err := i.store.Save(ctx, session); err != nil {
		return authdto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.store.Save(ctx, domain.Session{})
}

func (i *Interactor) Current(ctx context.Context) (authdto.SessionOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func toOutput(s domain.Session) authdto.SessionOutput {
	return authdto.SessionOutput{
		Email:           s.Email,
		Authenticated:   s.Authenticated,
		AuthenticatedAt: s.AuthenticatedAt,
	}
}
