package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/kiranshivaraju/symptomchecker/internal/client"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up and show its model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, _ := cmd.Flags().GetString("server")
			api := client.NewHTTPClient(server, 10*time.Second)

			status, err := api.Health(commandContext(cmd))
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", color.GreenString("✓"), status.Status)
			fmt.Fprintf(out, "   Provider: %s\n", status.Provider)
			fmt.Fprintf(out, "   Model:    %s\n", status.Model)
			return nil
		},
	}
}
