package icon

import (
	"errors"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// ManifestName is the optional config file looked up in the working directory.
const ManifestName = "icons.toml"

// BundleName is the multi-resolution icon file written into ICODir.
const BundleName = "canview.ico"

// Config holds everything the generator needs. Zero values are not usable;
// start from DefaultConfig and layer overrides on top.
type Config struct {
	// PNGDir and ICODir are created relative to the working directory.
	PNGDir string
	ICODir string

	// Sizes are the square PNG resolutions to render, in output order.
	Sizes []int

	// BundleSizes are the PNGs re-read from disk into the bundle, joined by
	// the hand-drawn 16px frame. Missing files are skipped, not errors.
	BundleSizes []int

	Palette Palette
}

// DefaultConfig mirrors the stock canview icon set.
func DefaultConfig() Config {
	return Config{
		PNGDir:      "png",
		ICODir:      "ico",
		Sizes:       []int{512, 256, 128, 64, 48, 32},
		BundleSizes: []int{32, 48, 64, 128, 256},
		Palette:     DefaultPalette(),
	}
}

type manifest struct {
	Sizes   []int           `toml:"sizes"`
	Output  manifestOutput  `toml:"output"`
	Palette manifestPalette `toml:"palette"`
}

type manifestOutput struct {
	PNGDir string `toml:"png_dir"`
	ICODir string `toml:"ico_dir"`
}

type manifestPalette struct {
	Background []int64 `toml:"background"`
	Outer      []int64 `toml:"outer"`
	Inner      []int64 `toml:"inner"`
	Center     []int64 `toml:"center"`
}

// FindManifest reports the manifest path in the working directory, if any.
func FindManifest() (string, bool, error) {
	if _, err := os.Stat(ManifestName); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to stat %q: %w", ManifestName, err)
	}
	return ManifestName, true, nil
}

// LoadManifest merges the TOML manifest at path over cfg.
// Fields absent from the file keep their current values.
func LoadManifest(path string, cfg *Config) error {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return fmt.Errorf("failed to decode %q: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("unknown key %q in %q", undec[0].String(), path)
	}
	if len(m.Sizes) > 0 {
		cfg.Sizes = append([]int(nil), m.Sizes...)
	}
	if m.Output.PNGDir != "" {
		cfg.PNGDir = m.Output.PNGDir
	}
	if m.Output.ICODir != "" {
		cfg.ICODir = m.Output.ICODir
	}
	for _, entry := range []struct {
		name string
		raw  []int64
		dst  *RGB
	}{
		{"background", m.Palette.Background, &cfg.Palette.Background},
		{"outer", m.Palette.Outer, &cfg.Palette.Outer},
		{"inner", m.Palette.Inner, &cfg.Palette.Inner},
		{"center", m.Palette.Center, &cfg.Palette.Center},
	} {
		if entry.raw == nil {
			continue
		}
		c, err := parseChannels(entry.raw)
		if err != nil {
			return fmt.Errorf("palette.%s: %w", entry.name, err)
		}
		*entry.dst = c
	}
	return nil
}

func parseChannels(raw []int64) (RGB, error) {
	if len(raw) != 3 {
		return RGB{}, fmt.Errorf("expected 3 channels, got %d", len(raw))
	}
	var out [3]uint8
	for i, v := range raw {
		ch, err := safecast.Conv[uint8](v)
		if err != nil {
			return RGB{}, fmt.Errorf("channel %d out of range: %d", i, v)
		}
		out[i] = ch
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// Validate rejects configs that must not touch the filesystem.
// It runs before any directory or file is created.
func (c Config) Validate() error {
	if c.PNGDir == "" {
		return errors.New("png output directory is empty")
	}
	if c.ICODir == "" {
		return errors.New("ico output directory is empty")
	}
	if len(c.Sizes) == 0 {
		return errors.New("no png sizes configured")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("invalid png size %d", s)
		}
	}
	for _, s := range c.BundleSizes {
		if s <= 0 {
			return fmt.Errorf("invalid bundle size %d", s)
		}
	}
	return nil
}
