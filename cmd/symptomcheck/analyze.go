package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/kiranshivaraju/symptomchecker/internal/client"
	"github.com/kiranshivaraju/symptomchecker/internal/formatter"
	"github.com/kiranshivaraju/symptomchecker/internal/narration"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	language     string
	outputFormat string
	speak        bool
	timeout      time.Duration
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [TEXT...]",
		Short: "Analyze a description of your symptoms",
		Long: `Send a symptom description to the server and print the analysis.
Text is taken from the arguments, or from stdin when none are given.

Examples:
  # Describe symptoms inline
  symptomcheck analyze "I have had a headache and a runny nose since yesterday"

  # Answer in Arabic and read it aloud
  symptomcheck analyze -l ar --speak "عندي صداع وحمى"

  # Pipe from a file, machine-readable output
  cat notes.txt | symptomcheck analyze -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", models.LanguageEnglish, "Answer language (en, ar)")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&opts.speak, "speak", false, "Read the analysis aloud with espeak-ng")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 90*time.Second, "Request timeout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	if !formatter.ValidFormat(opts.outputFormat) {
		return fmt.Errorf("unknown output format %q: use human, json or yaml", opts.outputFormat)
	}

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) == "" {
		return errors.New("describe your symptoms as arguments or on stdin")
	}

	server, _ := cmd.Flags().GetString("server")
	api := client.NewHTTPClient(server, opts.timeout)
	human := opts.outputFormat == formatter.FormatHuman

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " Analyzing symptoms..."
	if human {
		s.Start()
	}

	result, err := api.Analyze(commandContext(cmd), models.AnalysisRequest{UserInput: input, Language: opts.language})
	s.Stop()
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	if err := formatter.DisplayResult(cmd.OutOrStdout(), result, opts.outputFormat); err != nil {
		return err
	}

	if opts.speak {
		return speak(cmd, api, result, opts.language)
	}
	return nil
}

// readInput joins the arguments, or reads everything from r when there are none.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

func reportError(w io.Writer, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		formatter.DisplayAPIError(w, apiErr.Message, apiErr.RawContent)
		return fmt.Errorf("analysis failed with status %d", apiErr.Status)
	}
	if errors.Is(err, client.ErrServerUnreachable) {
		return fmt.Errorf("%w (is the server running?)", err)
	}
	return err
}

func speak(cmd *cobra.Command, api client.Client, result *models.AnalysisResult, lang string) error {
	script, err := api.Narration(commandContext(cmd), result, lang)
	if err != nil {
		return fmt.Errorf("building narration: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	player := narration.NewPlayer(narration.NewESpeakSynthesizer(), func(s narration.State) {
		fmt.Fprintln(stderr, color.HiBlackString("🔊 narration %s", s))
	})
	if !player.Supported() {
		fmt.Fprintln(stderr, color.YellowString("⚠️  Speech is not available: install espeak-ng to use --speak"))
		return nil
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	done, err := player.Speak(*script)
	if err != nil {
		return fmt.Errorf("starting narration: %w", err)
	}

	select {
	case <-done:
	case <-ctx.Done():
		_ = player.Stop()
		<-done
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
