package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectbrain/internal/modules/workspace/domain"
)

type scriptedDriver struct {
	reply domain.Reply
	doors []domain.Door
	sent  []string
}

func (d *scriptedDriver) Send(_ context.Context, ws *domain.Workspace, text string) bool {
	query, ok := ws.Submit(text)
	if !ok {
		return false
	}
	d.sent = append(d.sent, query)
	ws.CompleteChat(d.reply, nil)
	return true
}

func (d *scriptedDriver) GenerateSchedule(_ context.Context, ws *domain.Workspace) {
	ws.BeginSchedule()
	ws.CompleteSchedule(d.doors, nil)
}

func TestReplPrintsAnswersAndSchedule(t *testing.T) {
	driver := &scriptedDriver{
		reply: domain.Reply{Answer: "2 hours", Sources: []domain.Source{{File: "spec.pdf", Page: 12}}},
		doors: []domain.Door{{Mark: "D-01", Location: "Lobby", FireRating: "FD30", Material: "Timber"}},
	}
	in := strings.NewReader("What is the fire rating?\n\n/schedule\n/quit\nignored\n")
	var out bytes.Buffer

	require.NoError(t, repl(context.Background(), driver, in, &out))

	assert.Equal(t, []string{"What is the fire rating?"}, driver.sent)
	text := out.String()
	assert.Contains(t, text, "2 hours")
	assert.Contains(t, text, "🔍 spec.pdf (Pg 12)")
	assert.Contains(t, text, domain.ScheduleReadyNotice)
	assert.Contains(t, text, "D-01  Lobby  FD30  Timber")
}

func TestReplEmptyScheduleKeepsQuiet(t *testing.T) {
	driver := &scriptedDriver{}
	var out bytes.Buffer
	require.NoError(t, repl(context.Background(), driver, strings.NewReader("/schedule\n"), &out))
	assert.Contains(t, out.String(), domain.ScheduleEmptyNotice)
}

func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NEXT_PUBLIC_API_URL", "BRAIN_API_URL", "BRAIN_CONFIG_FILE", "BRAIN_AUTHORIZED_EMAIL"} {
		t.Setenv(key, "")
	}
	t.Setenv("BRAIN_LOG_FILE", filepath.Join(t.TempDir(), "brain.log"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScheduleCommandExportsCSV(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract", r.URL.Path)
		_, _ = io.WriteString(w, `{"doors":[{"mark":"D-01","location":"Lobby","fire_rating":"FD30","material":"Timber","width_mm":"926","height_mm":null}]}`)
	}))
	defer srv.Close()

	out, err := run(t, "schedule", "--api-url", srv.URL, "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "mark,location,fire_rating,material,width_mm,height_mm\nD-01,Lobby,FD30,Timber,926,\n", out)
}

func TestAskCommandPrintsCitations(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"answer":"2 hours","sources":[{"file":"spec.pdf","page":12}]}`)
	}))
	defer srv.Close()

	out, err := run(t, "ask", "--api-url", srv.URL, "--plain", "What", "is", "the", "fire", "rating?")
	require.NoError(t, err)
	assert.Equal(t, "2 hours\n🔍 spec.pdf (Pg 12)\n", out)
}

func TestAskCommandFailsWhenBackendIsDown(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := run(t, "ask", "--api-url", url, "hello")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "brain dev\n", out)
}
