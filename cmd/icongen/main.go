package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"canviewtools/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "Generate the canview application icon set",
	Long:  `icongen renders the canview node graphic as PNG icons at fixed sizes and assembles a multi-resolution ICO bundle from them`,
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

// main wires up flags and executes the root command. There are no
// subcommands: running the binary with no arguments performs a full
// generation with defaults.
func main() {
	rootCmd.Version = version.Version

	rootCmd.Flags().String("config", "", "path to an icons.toml manifest (default: ./icons.toml when present)")
	rootCmd.Flags().String("png-dir", "", "override the png output directory")
	rootCmd.Flags().String("ico-dir", "", "override the ico output directory")
	rootCmd.Flags().Bool("ui", false, "show interactive progress while generating")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
