package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "add [thought ...]",
		Short:        "Capture thoughts (one per argument, or lines from stdin)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := strings.Join(args, "\n")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				draft = string(b)
			}

			sess, err := openSession(app)
			if err != nil {
				return err
			}
			defer sess.Close()

			// Committing goes through the draft; an in-progress draft from a
			// previous TUI session must survive a scripted add.
			prev := sess.store.Draft()
			before := sess.store.Len()
			sess.store.SetDraft(draft)
			committed := sess.store.CommitDraft()
			sess.store.SetDraft(prev)
			if !committed {
				return fmt.Errorf("nothing to capture")
			}
			n := sess.store.Len() - before
			fmt.Fprintf(cmd.OutOrStdout(), "Captured %d thought(s).\n", n)
			return nil
		},
	}
	return cmd
}
