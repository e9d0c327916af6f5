// ABOUTME: Entry point for the coach CLI.
// ABOUTME: Runs the root command and reports any failure once, with a hint for generator errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fitcoach/internal/coach"
	"github.com/harperreed/fitcoach/internal/llm"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err and, for failures from the text generator, how to configure an API key.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, color.RedString("✗ An error occurred: %v", err))

	var stageErr *coach.StageError
	if errors.As(err, &stageErr) || errors.Is(err, llm.ErrMissingAPIKey) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Note: This system requires a valid API key to function properly.")
		fmt.Fprintln(w, "Please ensure your OPENAI_API_KEY (or GEMINI_API_KEY with --provider gemini)")
		fmt.Fprintln(w, "environment variable is set correctly, or use --provider offline for a dry run.")
	}
}
