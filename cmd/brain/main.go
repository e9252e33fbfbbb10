package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"projectbrain/internal/bootstrap"
	"projectbrain/internal/modules/workspace/domain"
	"projectbrain/internal/platform/config"
	"projectbrain/internal/ui/components"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts config.Options

	tui := newTUICmd(&opts)
	root := &cobra.Command{
		Use:           "brain",
		Short:         "Project Brain: ask questions about project documents and extract door schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          tui.RunE,
	}
	root.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a TOML config file (default configs/brain.toml)")
	root.PersistentFlags().StringVar(&opts.APIURL, "api-url", "", "backend base URL, overrides BRAIN_API_URL")

	root.AddCommand(tui)
	root.AddCommand(newAskCmd(&opts))
	root.AddCommand(newScheduleCmd(&opts))
	root.AddCommand(newReplCmd(&opts))
	root.AddCommand(newVersionCmd())
	return root
}

func loadApp(opts *config.Options) (*bootstrap.App, error) {
	cfg, err := config.Load(*opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			app.Log.Info("tui started")
			return bootstrap.RunTUI(app)
		},
	}
}

func newAskCmd(opts *config.Options) *cobra.Command {
	var plain bool
	var width int

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask one question and print the answer with its citations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.ChatCLI.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			answer := out.Answer
			if !plain {
				r, err := components.NewMarkdownRenderer(app.Config.UI.GlamourStyle, width)
				if err != nil {
					app.Log.Warn("markdown renderer unavailable", zap.Error(err))
				}
				answer = components.RenderMarkdown(r, answer)
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, answer)
			for _, s := range out.Sources {
				_, _ = fmt.Fprintf(w, "🔍 %s (Pg %d)\n", s.File, s.Page)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the answer without markdown rendering")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width for rendered answers")
	return cmd
}

func newScheduleCmd(opts *config.Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Extract the door schedule from the project documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.ScheduleCLI.Generate(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Doors) == 0 {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), domain.ScheduleEmptyNotice)
				return nil
			}
			data, err := app.ScheduleCLI.Export(cmd.Context(), out.Doors, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format: table|csv|json|yaml")
	return cmd
}

func newReplCmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Chat line by line on stdin (/schedule extracts doors, /quit exits)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return runRepl(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// replDriver is the slice of the workspace use case the REPL needs.
type replDriver interface {
	Send(ctx context.Context, ws *domain.Workspace, text string) bool
	GenerateSchedule(ctx context.Context, ws *domain.Workspace)
}

func runRepl(ctx context.Context, app *bootstrap.App, in io.Reader, out io.Writer) error {
	return repl(ctx, app.Workspace, in, out)
}

func repl(ctx context.Context, driver replDriver, in io.Reader, out io.Writer) error {
	ws := domain.New()
	scanner := bufio.NewScanner(in)
	_, _ = fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		seen := ws.Len()
		switch strings.TrimSpace(line) {
		case "/quit", "/exit":
			return nil
		case "/schedule":
			driver.GenerateSchedule(ctx, ws)
		default:
			driver.Send(ctx, ws, line)
		}
		for _, msg := range ws.Transcript()[seen:] {
			if msg.Role != domain.RoleAI {
				continue
			}
			printMessage(out, msg)
			if msg.Content == domain.ScheduleReadyNotice {
				printDoors(out, ws.Schedule())
			}
		}
		_, _ = fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func printMessage(w io.Writer, msg domain.Message) {
	_, _ = fmt.Fprintln(w, msg.Content)
	for _, s := range msg.Sources {
		_, _ = fmt.Fprintf(w, "  🔍 %s (Pg %d)\n", s.File, s.Page)
	}
}

func printDoors(w io.Writer, doors []domain.Door) {
	for _, d := range doors {
		_, _ = fmt.Fprintf(w, "  %s  %s  %s  %s\n", d.Mark, d.Location, d.FireRating, d.Material)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "brain "+version)
		},
	}
}
