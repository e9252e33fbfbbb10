package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "projectbrain/internal/modules/auth/adapter/in"
	authoutadapter "projectbrain/internal/modules/auth/adapter/out"
	authdomain "projectbrain/internal/modules/auth/domain"
	authservice "projectbrain/internal/modules/auth/service"
	authusecase "projectbrain/internal/modules/auth/usecase"
	chatinadapter "projectbrain/internal/modules/chat/adapter/in"
	chatoutadapter "projectbrain/internal/modules/chat/adapter/out"
	chatservice "projectbrain/internal/modules/chat/service"
	chatusecase "projectbrain/internal/modules/chat/usecase"
	scheduleinadapter "projectbrain/internal/modules/schedule/adapter/in"
	scheduleoutadapter "projectbrain/internal/modules/schedule/adapter/out"
	scheduleservice "projectbrain/internal/modules/schedule/service"
	scheduleusecase "projectbrain/internal/modules/schedule/usecase"
	workspacein "projectbrain/internal/modules/workspace/port/in"
	workspaceusecase "projectbrain/internal/modules/workspace/usecase"
	"projectbrain/internal/platform/backend"
	"projectbrain/internal/platform/clock"
	"projectbrain/internal/platform/config"
	"projectbrain/internal/platform/id"
	"projectbrain/internal/platform/logger"
	uiapp "projectbrain/internal/ui/app"
)

type App struct {
	Config      config.Config
	Log         *zap.Logger
	AuthTUI     authinadapter.TUIHandler
	ChatCLI     chatinadapter.Handler
	ScheduleCLI scheduleinadapter.Handler
	Workspace   workspacein.Usecase

	client *backend.Client
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	clk := clock.SystemClock{}

	client := backend.NewClient(cfg.API.BaseURL, cfg.Timeout(), clk, id.UUID{}, log)

	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(clk, authdomain.NewGate(cfg.Auth.AuthorizedEmail), log),
		authoutadapter.NewMemorySessionStore(),
	)
	chatUC := chatusecase.NewInteractor(chatservice.NewChatService(chatoutadapter.NewHTTPBackend(client)))
	scheduleUC := scheduleusecase.NewInteractor(scheduleservice.NewScheduleService(scheduleoutadapter.NewHTTPExtractor(client)))

	log.Info("client configured",
		zap.String("base_url", client.BaseURL()),
		zap.Duration("timeout", cfg.Timeout()),
	)

	return &App{
		Config:      cfg,
		Log:         log,
		AuthTUI:     authinadapter.NewTUIHandler(authUC),
		ChatCLI:     chatinadapter.NewHandler(chatUC),
		ScheduleCLI: scheduleinadapter.NewHandler(scheduleUC),
		Workspace:   workspaceusecase.NewInteractor(chatUC, scheduleUC, log),
		client:      client,
	}, nil
}

// Close releases pooled connections and flushes the log.
func (a *App) Close() {
	a.client.Close()
	_ = a.Log.Sync()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.AuthTUI, app.Workspace, app.Config.UI.GlamourStyle)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
