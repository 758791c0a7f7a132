package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server status and the active model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := root.client().Health(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render("Status: "+h.Status))
			fmt.Fprintln(w, "Model: "+h.Model)
			if h.APIConfigured {
				fmt.Fprintln(w, successStyle.Render("API key configured"))
			} else {
				fmt.Fprintln(w, errorStyle.Render("API key not configured"))
			}
			return nil
		},
	}
}
