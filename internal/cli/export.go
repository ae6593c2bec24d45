package cli

import (
	"fmt"

	"sift-cli/internal/share"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export the action and thought list as markdown",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(app)
			if err != nil {
				return err
			}
			defer sess.Close()

			texts := sess.store.Texts()
			md := share.Markdown(sess.policy.Select(texts), texts)

			if toClipboard {
				if err := share.CopyToClipboard(md); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy to the system clipboard instead of printing")
	return cmd
}
