package out

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"projectbrain/internal/modules/chat/domain"
	chatout "projectbrain/internal/modules/chat/port/out"
	apperrors "projectbrain/internal/platform/errors"
)

const chatPath = "/chat"

// JSONPoster is satisfied by *backend.Client.
type JSONPoster interface {
	PostJSON(ctx context.Context, path string, body any, out any) (int, error)
}

type HTTPBackend struct {
	client JSONPoster
}

func NewHTTPBackend(client JSONPoster) chatout.Backend {
	return &HTTPBackend{client: client}
}

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Answer  string         `json:"answer"`
	Sources []sourceRecord `json:"sources"`
	Detail  any            `json:"detail"`
}

type sourceRecord struct {
	File string  `json:"file"`
	Page float64 `json:"page"`
}

func (b *HTTPBackend) Ask(ctx context.Context, query string) (domain.Answer, error) {
	var resp chatResponse
	status, err := b.client.PostJSON(ctx, chatPath, chatRequest{Query: query}, &resp)
	if err != nil {
		return domain.Answer{}, err
	}
	// A failing status with an answer still counts as an answer; only an
	// empty error body (e.g. {"detail": "..."}) is treated as a failure.
	if status >= http.StatusMultipleChoices && resp.Answer == "" {
		return domain.Answer{}, fmt.Errorf("%w: %s returned status %d: %v", apperrors.ErrBackendUnavailable, chatPath, status, resp.Detail)
	}

	answer := domain.Answer{Text: resp.Answer}
	for _, s := range resp.Sources {
		answer.Citations = append(answer.Citations, domain.Citation{
			File: s.File,
			Page: int(math.Round(s.Page)),
		})
	}
	return answer, nil
}
