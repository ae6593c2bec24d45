package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "next",
		Short:        "Print the suggested next action",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(app)
			if err != nil {
				return err
			}
			defer sess.Close()

			// Empty output when there is nothing captured keeps this
			// scriptable.
			if a := sess.policy.Select(sess.store.Texts()); a != "" {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}
	return cmd
}
