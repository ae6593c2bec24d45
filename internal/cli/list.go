package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List captured thoughts in arrange order",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(app)
			if err != nil {
				return err
			}
			defer sess.Close()

			for i, it := range sess.store.Items() {
				if showIDs {
					fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s  (%s)\n", i+1, it.Text, it.ID)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, it.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show thought ids")
	return cmd
}
