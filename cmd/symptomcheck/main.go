// Command symptomcheck is a terminal client for the symptom checker API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

const defaultServer = "http://localhost:8080"

func main() {
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "symptomcheck",
		Short: "AI-assisted symptom triage from the terminal",
		Long: `symptomcheck sends a free-text description of how you feel to a symptom
checker server and prints a structured, non-diagnostic analysis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("server", serverFromEnv(), "Symptom checker server URL (env SYMPTOMCHECK_SERVER)")

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newHealthCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func serverFromEnv() string {
	if v := os.Getenv("SYMPTOMCHECK_SERVER"); v != "" {
		return v
	}
	return defaultServer
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "symptomcheck version %s\n", version)
		},
	}
}
