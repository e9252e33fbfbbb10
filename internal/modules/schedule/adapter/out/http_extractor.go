package out

import (
	"context"
	"fmt"
	"net/http"

	"projectbrain/internal/modules/schedule/domain"
	scheduleout "projectbrain/internal/modules/schedule/port/out"
	apperrors "projectbrain/internal/platform/errors"
)

const extractPath = "/extract"

// JSONPoster is satisfied by *backend.Client.
type JSONPoster interface {
	PostJSON(ctx context.Context, path string, body any, out any) (int, error)
}

type HTTPExtractor struct {
	client JSONPoster
}

func NewHTTPExtractor(client JSONPoster) scheduleout.Extractor {
	return &HTTPExtractor{client: client}
}

// The extraction model marks every field optional, so nulls are expected.
type doorRecord struct {
	Mark       *string `json:"mark"`
	Location   *string `json:"location"`
	FireRating *string `json:"fire_rating"`
	Material   *string `json:"material"`
	WidthMM    *string `json:"width_mm"`
	HeightMM   *string `json:"height_mm"`
}

type extractResponse struct {
	Doors  []doorRecord `json:"doors"`
	Detail any          `json:"detail"`
}

func (e *HTTPExtractor) Extract(ctx context.Context) ([]domain.Door, error) {
	var resp extractResponse
	status, err := e.client.PostJSON(ctx, extractPath, nil, &resp)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusMultipleChoices && len(resp.Doors) == 0 {
		return nil, fmt.Errorf("%w: %s returned status %d: %v", apperrors.ErrBackendUnavailable, extractPath, status, resp.Detail)
	}
	doors := make([]domain.Door, 0, len(resp.Doors))
	for _, r := range resp.Doors {
		doors = append(doors, domain.Door{
			Mark:       deref(r.Mark),
			Location:   deref(r.Location),
			FireRating: deref(r.FireRating),
			Material:   deref(r.Material),
			WidthMM:    deref(r.WidthMM),
			HeightMM:   deref(r.HeightMM),
		})
	}
	return doors, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
