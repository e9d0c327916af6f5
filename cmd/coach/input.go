// ABOUTME: Snapshot sources shared by the run and summary commands.
// ABOUTME: Sample data, a JSON file of raw values, or the interactive questionnaire.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/harperreed/fitcoach/internal/intake"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/models"
	"github.com/spf13/cobra"
)

// errNoInput means stdin closed before the sample question was answered.
var errNoInput = errors.New("no input on stdin: answer the prompt, or use --sample or --input")

// inputFlags selects where a snapshot comes from.
type inputFlags struct {
	sample bool
	file   string
	full   bool
	// ask offers the sample data before the questionnaire.
	ask bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.sample, "sample", false, "use the built-in sample health data")
	cmd.Flags().StringVarP(&f.file, "input", "i", "", "read raw values from a JSON file (- for stdin)")
	cmd.Flags().BoolVar(&f.full, "full", false, "ask for every metric in the questionnaire")
}

func (f *inputFlags) reset() {
	f.sample = false
	f.file = ""
	f.full = false
}

// loadSnapshot returns the snapshot chosen by the flags and where it came from.
func loadSnapshot(cmd *cobra.Command, f *inputFlags, now time.Time) (*models.Snapshot, models.RunSource, error) {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if f.sample && f.file != "" {
		return nil, "", fmt.Errorf("--sample and --input cannot be used together")
	}

	if f.sample {
		return models.SampleSnapshot(now), models.SourceSample, nil
	}

	builder := &intake.Builder{OnInvalid: func(key, raw string) {
		logger.Warn("ignoring value that is not a number", "field", key, "value", raw)
	}}

	if f.file != "" {
		data, err := readInput(in, f.file)
		if err != nil {
			return nil, "", err
		}
		raw, err := intake.Decode(data)
		if err != nil {
			return nil, "", err
		}
		for _, k := range intake.Unknown(raw) {
			logger.Warn("ignoring unknown field", "field", k)
		}
		return builder.Build(raw, now), models.SourceFile, nil
	}

	reader := bufio.NewReader(in)
	if f.ask {
		fmt.Fprint(out, "Would you like to use sample health data for demo? (y/n): ")
		answer, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(answer) == "" {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return nil, "", errNoInput
			}
			return nil, "", fmt.Errorf("failed to read answer: %w", err)
		}
		if strings.ToLower(strings.TrimSpace(answer)) == "y" {
			fmt.Fprintln(out, "\nUsing sample health data for demonstration...")
			return models.SampleSnapshot(now), models.SourceSample, nil
		}
		fmt.Fprintln(out, "\nLet's collect your comprehensive health data:")
	}

	c := &intake.Collector{In: reader, Out: out}
	if f.full {
		c.Keys = intake.AllKeys()
	}
	raw, err := c.Collect()
	if err != nil {
		return nil, "", err
	}
	return builder.Build(raw, now), models.SourceInteractive, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
