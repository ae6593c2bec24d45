// Package cli wires the cobra command tree. Bare `sift` starts the TUI;
// subcommands cover scripting (add/list/next/export/clear).
package cli

import (
	"os"
	"strings"

	"sift-cli/internal/action"
	"sift-cli/internal/config"
	"sift-cli/internal/persist"
	"sift-cli/internal/store"
	"sift-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "sift",
		Short:        "Capture thoughts, arrange them, surface the next action",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI (capture -> arrange -> act)
  sift

  # Scriptable commands
  sift add "buy milk" "call the bank"
  sift list
  sift next
  sift export --copy
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("SIFT_DIR", ""), "Path to data dir (default: ~/.sift)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newNextCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newClearCmd(app))

	return cmd
}

// session bundles the opened store + gateway for one command invocation.
type session struct {
	store   *store.Store
	gateway *persist.Gateway
	policy  action.Policy
}

func openSession(app *App) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		dir, err = config.Dir()
		if err != nil {
			return nil, err
		}
	}

	var kv persist.KV
	switch cfg.StorageBackend() {
	case config.StorageFiles:
		kv, err = persist.NewFileKV(dir)
	default:
		kv, err = persist.OpenSQLiteKV(dir)
	}
	if err != nil {
		return nil, err
	}

	gw := persist.NewGateway(kv, cfg.SaveDebounce())
	st := store.New(gw, cfg.UndoWindow())
	st.Seed(gw.Load())

	return &session{store: st, gateway: gw, policy: cfg.Policy()}, nil
}

// Close flushes any pending debounced save before the process exits.
func (s *session) Close() error {
	return s.gateway.Close()
}

func runTUI(app *App) error {
	sess, err := openSession(app)
	if err != nil {
		return err
	}
	defer sess.Close()
	return tui.Run(sess.store, sess.policy)
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
