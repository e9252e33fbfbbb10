package in

import (
	"context"

	authdto "projectbrain/internal/modules/auth/dto"
	authin "projectbrain/internal/modules/auth/port/in"
)

type TUIHandler struct {
	usecase authin.Usecase
}

func NewTUIHandler(usecase authin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Login(ctx context.Context, email string) (authdto.SessionOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Email: email})
}

func (h TUIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h TUIHandler) Current(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}
