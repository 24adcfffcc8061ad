package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"canviewtools/internal/cargo"
	"canviewtools/internal/diagfmt"
	"canviewtools/internal/observ"
)

// defaultInput is the capture file name the original workflow produces with
// `cargo check --message-format=json > check_errors.json` in PowerShell,
// hence the UTF-16 encoding.
const defaultInput = "check_errors.json"

type scanOptions struct {
	format       string
	withWarnings bool
	maxErrors    int
}

// runScan executes the summarizer. The scan itself has no failure mode:
// undecodable lines and unrelated records produce no output and no error.
// Only an unopenable input or an unknown flag value returns an error.
func runScan(cmd *cobra.Command, args []string) error {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("failed to get input flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withWarnings, err := cmd.Flags().GetBool("warnings")
	if err != nil {
		return fmt.Errorf("failed to get warnings flag: %w", err)
	}
	maxErrors, err := cmd.Flags().GetInt("max-errors")
	if err != nil {
		return fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	color.NoColor = !(colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)))

	switch format {
	case "text", "json", "msgpack":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be text, json or msgpack)", format)
	}

	timer := observ.NewTimer()
	phase := timer.Begin("open")
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", input, err)
	}
	defer func() {
		_ = f.Close()
	}()
	timer.End(phase, input)

	opts := scanOptions{format: format, withWarnings: withWarnings, maxErrors: maxErrors}
	phase = timer.Begin("scan")
	count, err := scanStream(cargo.NewReader(f), cmd.OutOrStdout(), opts)
	timer.End(phase, fmt.Sprintf("%d diagnostics", count))
	if err != nil {
		return err
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// scanStream walks the decoded stream and renders matching diagnostics.
// Text output streams per record; the machine formats collect a Report and
// encode it once at the end.
func scanStream(r io.Reader, out io.Writer, opts scanOptions) (int, error) {
	var rep diagfmt.Report
	var renderErr error

	err := cargo.Scan(r, func(rec cargo.Record) bool {
		if !rec.IsCompilerMessage() {
			return true
		}
		if !levelSelected(rec.Message.Level, opts.withWarnings) {
			return true
		}
		s := diagfmt.Summarize(rec.Message)
		if opts.format == "text" {
			if renderErr = diagfmt.Text(out, s); renderErr != nil {
				return false
			}
		} else {
			rep.Errors = append(rep.Errors, s)
		}
		rep.Count++
		return opts.maxErrors == 0 || rep.Count < opts.maxErrors
	})
	if err != nil {
		return rep.Count, err
	}
	if renderErr != nil {
		return rep.Count, renderErr
	}

	switch opts.format {
	case "json":
		return rep.Count, diagfmt.JSON(out, rep)
	case "msgpack":
		return rep.Count, diagfmt.Msgpack(out, rep)
	}
	return rep.Count, nil
}

func levelSelected(level string, withWarnings bool) bool {
	if level == cargo.LevelError {
		return true
	}
	return withWarnings && level == cargo.LevelWarning
}
