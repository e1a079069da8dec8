package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/orgstamp/internal/files"
	"github.com/faizmokh/orgstamp/internal/plugin"
	"github.com/faizmokh/orgstamp/internal/render"
	"github.com/faizmokh/orgstamp/internal/timestamp"
	"github.com/faizmokh/orgstamp/internal/ui"
	"github.com/faizmokh/orgstamp/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "orgstamp [file]",
		Short:   "Write and move org-style timestamps in Markdown notes.",
		Long:    "orgstamp opens a note in a small terminal editor (today's day note by default) with commands to insert timestamps and nudge the time under the cursor.",
		Version: version.Info(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := notePath(manager, args)
			if err != nil {
				return err
			}

			m, p, _, err := newEditorModel(ctx, manager, path, timestamp.NewStamper())
			if err != nil {
				return err
			}
			defer p.Unload()

			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newRenderCommand(ctx, manager),
		newStampCommand(ctx, manager),
		newShiftCommand(ctx, manager),
		newConfigCommand(ctx, manager),
	)

	return cmd
}

// newEditorModel builds the terminal editor for path. The model is the
// plugin's only registrar, so hooks and commands are registered once.
func newEditorModel(ctx context.Context, manager *files.Manager, path string, stamper *timestamp.Stamper) (ui.Model, *plugin.Plugin, *render.Pipeline, error) {
	pipeline := render.NewPipeline(render.WithLinkResolver(manager.DayLink))
	p := newPlugin(manager, stamper)
	m, err := ui.NewModel(ctx, path, p, pipeline)
	if err != nil {
		return ui.Model{}, nil, nil, err
	}
	return m, p, pipeline, nil
}

func notePath(manager *files.Manager, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return manager.EnsureDayNote(time.Now())
}

func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/orgstamp/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
