package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"canviewtools/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "checkerrors",
	Short: "Summarize compiler errors from a cargo check JSON stream",
	Long: `checkerrors reads a UTF-16 encoded cargo check --message-format=json capture
(check_errors.json by default) and prints a short summary per compiler error:
message text, error code, and source locations. Lines that are not valid JSON
or belong to unrelated record kinds are skipped without complaint.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

// main wires up flags and executes the root command. Running with no
// arguments scans ./check_errors.json.
func main() {
	rootCmd.Version = version.Version

	rootCmd.Flags().String("input", defaultInput, "diagnostic stream to read")
	rootCmd.Flags().String("format", "text", "output format (text|json|msgpack)")
	rootCmd.Flags().Bool("warnings", false, "include warning-level diagnostics")
	rootCmd.Flags().Int("max-errors", 0, "stop after this many diagnostics (0 = unlimited)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
