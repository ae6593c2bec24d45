package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "clear",
		Short:        "Delete the draft, all thoughts and all persisted state",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Irreversible; the confirmation gate is mandatory.
			if !yes {
				return errors.New("refusing to clear without --yes")
			}

			sess, err := openSession(app)
			if err != nil {
				return err
			}
			defer sess.Close()

			sess.store.ClearAll()
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the irreversible clear")
	return cmd
}
