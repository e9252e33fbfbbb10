package bootstrap

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"projectbrain/internal/modules/workspace/domain"
	"projectbrain/internal/platform/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		API:  config.APIConfig{BaseURL: baseURL},
		Auth: config.AuthConfig{AuthorizedEmail: "testingcheckuser1234@gmail.com"},
		UI:   config.UIConfig{GlamourStyle: "notty"},
	}
}

func TestNewWiresModulesAgainstBackend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"answer":"2 hours","sources":[{"file":"spec.pdf","page":12}]}`)
	})
	mux.HandleFunc("/extract", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"doors":[{"mark":"D-01","location":"Lobby","fire_rating":"FD30","material":"Timber"}]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, err := New(testConfig(srv.URL))
	require.NoError(t, err)
	defer app.Close()

	ctx := context.Background()
	session, err := app.AuthTUI.Login(ctx, "testingcheckuser1234@gmail.com")
	require.NoError(t, err)
	assert.True(t, session.Authenticated)

	ws := domain.New()
	require.True(t, app.Workspace.Send(ctx, ws, "What is the fire rating?"))
	app.Workspace.GenerateSchedule(ctx, ws)

	transcript := ws.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, "2 hours", transcript[1].Content)
	assert.Equal(t, []domain.Source{{File: "spec.pdf", Page: 12}}, transcript[1].Sources)
	assert.Equal(t, domain.ScheduleReadyNotice, transcript[2].Content)
	require.Len(t, ws.Schedule(), 1)
	assert.Equal(t, "D-01", ws.Schedule()[0].Mark)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(testConfig("not a url"))
	require.Error(t, err)
}
