package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"canviewtools/internal/icon"
	"canviewtools/internal/observ"
)

const bannerWidth = 60

var (
	okMark   = color.New(color.FgGreen, color.Bold)
	failMark = color.New(color.FgRed, color.Bold)
)

// runGenerate executes the generator: it resolves flags and the optional
// manifest, validates the configuration before anything touches the
// filesystem, renders the PNG set, and assembles the ICO bundle. A bundle
// failure is reported and recovered; the command still exits 0 because the
// PNG outputs remain valid.
func runGenerate(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	pngDir, err := cmd.Flags().GetString("png-dir")
	if err != nil {
		return fmt.Errorf("failed to get png-dir flag: %w", err)
	}
	icoDir, err := cmd.Flags().GetString("ico-dir")
	if err != nil {
		return fmt.Errorf("failed to get ico-dir flag: %w", err)
	}
	useUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
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

	cfg, err := resolveConfig(configPath, pngDir, icoDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "nothing was generated; fix the manifest and re-run")
		return err
	}

	out := cmd.OutOrStdout()
	timer := observ.NewTimer()

	if !quiet && !useUI {
		banner(out, "CANVIEW Icon Generator")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Generating PNG icons...")
		fmt.Fprintln(out)
	}

	gen := &icon.Generator{Config: cfg}
	if !quiet && !useUI {
		gen.Progress = consoleSink(out)
	}

	phase := timer.Begin("generate")
	var res icon.Result
	if useUI {
		res, err = runGenerateWithUI("generating canview icons", outputNames(cfg), gen)
	} else {
		res, err = gen.Run()
	}
	timer.End(phase, fmt.Sprintf("%d png, %d bundle frames", len(res.PNGs), res.BundleFrames))

	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(out)
		banner(out, okMark.Sprint("✓")+" Conversion complete!")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Output files:")
		fmt.Fprintf(out, "  PNG files: %s%c\n", absPath(cfg.PNGDir), filepath.Separator)
		if res.BundleErr == nil {
			fmt.Fprintf(out, "  ICO file:  %s\n", absPath(res.BundlePath))
		}
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// resolveConfig layers the manifest and flag overrides over the defaults and
// validates the outcome before any side effects happen.
func resolveConfig(configPath, pngDir, icoDir string) (icon.Config, error) {
	cfg := icon.DefaultConfig()

	if configPath == "" {
		found, ok, err := icon.FindManifest()
		if err != nil {
			return cfg, err
		}
		if ok {
			configPath = found
		}
	}
	if configPath != "" {
		if err := icon.LoadManifest(configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	if pngDir != "" {
		cfg.PNGDir = pngDir
	}
	if icoDir != "" {
		cfg.ICODir = icoDir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// consoleSink prints the classic per-file progress lines.
func consoleSink(out io.Writer) icon.ProgressSink {
	return icon.SinkFunc(func(ev icon.Event) {
		switch {
		case ev.Stage == icon.StageEncode && ev.Status == icon.StatusDone:
			fmt.Fprintf(out, "%s Generated %s (%dx%d)\n", okMark.Sprint("✓"), ev.Name, ev.Size, ev.Size)
		case ev.Stage == icon.StageBundle && ev.Status == icon.StatusWorking:
			fmt.Fprintf(out, "\nCreating ICO file...\n")
		case ev.Stage == icon.StageBundle && ev.Status == icon.StatusDone:
			fmt.Fprintf(out, "%s Created %s\n", okMark.Sprint("✓"), ev.Name)
		case ev.Stage == icon.StageBundle && ev.Status == icon.StatusError:
			fmt.Fprintf(out, "%s Error creating ICO: %v\n", failMark.Sprint("✗"), ev.Err)
			fmt.Fprintf(out, "  PNG files are still available in the png directory\n")
		}
	})
}

func outputNames(cfg icon.Config) []string {
	names := make([]string, 0, len(cfg.Sizes)+1)
	for _, size := range cfg.Sizes {
		names = append(names, icon.PNGName(size))
	}
	return append(names, icon.BundleName)
}

func banner(out io.Writer, title string) {
	line := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, line)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
