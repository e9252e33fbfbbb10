package out_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	scheduleadapter "projectbrain/internal/modules/schedule/adapter/out"
	"projectbrain/internal/modules/schedule/domain"
	scheduleout "projectbrain/internal/modules/schedule/port/out"
	"projectbrain/internal/platform/backend"
	"projectbrain/internal/platform/clock"
	apperrors "projectbrain/internal/platform/errors"
	"projectbrain/internal/platform/id"
	"projectbrain/internal/platform/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newExtractor(t *testing.T, status int, body string) scheduleout.Extractor {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	client := backend.NewClient(srv.URL, 0, clock.SystemClock{}, id.UUID{}, logger.Nop())
	t.Cleanup(client.Close)
	return scheduleadapter.NewHTTPExtractor(client)
}

func TestExtractKeepsServerOrderAndToleratesNulls(t *testing.T) {
	ex := newExtractor(t, http.StatusOK, `{"doors":[
		{"mark":"D-102","location":"Stair 1","fire_rating":"1 HR","material":"Steel","width_mm":"900","height_mm":"2100"},
		{"mark":"D-101","location":null,"fire_rating":"-","material":"Timber"}
	]}`)

	doors, err := ex.Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Door{
		{Mark: "D-102", Location: "Stair 1", FireRating: "1 HR", Material: "Steel", WidthMM: "900", HeightMM: "2100"},
		{Mark: "D-101", Location: "", FireRating: "-", Material: "Timber"},
	}, doors)
}

func TestExtractEmptyAndMissingDoors(t *testing.T) {
	for _, body := range []string{`{"doors":[]}`, `{}`, `{"doors":null}`} {
		doors, err := newExtractor(t, http.StatusOK, body).Extract(context.Background())
		require.NoError(t, err, body)
		assert.Empty(t, doors, body)
	}
}

func TestExtractFailures(t *testing.T) {
	_, err := newExtractor(t, http.StatusInternalServerError, `{"detail":"llm crashed"}`).Extract(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBackendUnavailable))

	_, err = newExtractor(t, http.StatusOK, `not json`).Extract(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedResponse))
}
