package icon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	wantSizes := []int{512, 256, 128, 64, 48, 32}
	if len(cfg.Sizes) != len(wantSizes) {
		t.Fatalf("Sizes = %v, want %v", cfg.Sizes, wantSizes)
	}
	for i, s := range wantSizes {
		if cfg.Sizes[i] != s {
			t.Errorf("Sizes[%d] = %d, want %d", i, cfg.Sizes[i], s)
		}
	}
	if cfg.PNGDir != "png" || cfg.ICODir != "ico" {
		t.Errorf("dirs = %q/%q, want png/ico", cfg.PNGDir, cfg.ICODir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadManifest(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "icons.toml")
	data := `# test manifest
sizes = [64, 32]

[output]
png_dir = "out/png"

[palette]
center = [255, 0, 0]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write icons.toml: %v", err)
	}

	cfg := DefaultConfig()
	if err := LoadManifest(path, &cfg); err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(cfg.Sizes) != 2 || cfg.Sizes[0] != 64 || cfg.Sizes[1] != 32 {
		t.Errorf("Sizes = %v, want [64 32]", cfg.Sizes)
	}
	if cfg.PNGDir != "out/png" {
		t.Errorf("PNGDir = %q, want out/png", cfg.PNGDir)
	}
	if cfg.ICODir != "ico" {
		t.Errorf("ICODir = %q, want ico (untouched)", cfg.ICODir)
	}
	want := RGB{255, 0, 0}
	if cfg.Palette.Center != want {
		t.Errorf("Palette.Center = %v, want %v", cfg.Palette.Center, want)
	}
	if cfg.Palette.Background != DefaultPalette().Background {
		t.Errorf("Palette.Background changed: %v", cfg.Palette.Background)
	}
}

func TestLoadManifestBadChannel(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "icons.toml")
	data := `[palette]
background = [300, 0, 0]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write icons.toml: %v", err)
	}

	cfg := DefaultConfig()
	if err := LoadManifest(path, &cfg); err == nil {
		t.Fatalf("LoadManifest accepted channel 300, want error")
	}
}

func TestLoadManifestUnknownKey(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "icons.toml")
	if err := os.WriteFile(path, []byte("shapes = 3\n"), 0o600); err != nil {
		t.Fatalf("write icons.toml: %v", err)
	}

	cfg := DefaultConfig()
	if err := LoadManifest(path, &cfg); err == nil {
		t.Fatalf("LoadManifest accepted unknown key, want error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty png dir", func(c *Config) { c.PNGDir = "" }},
		{"empty ico dir", func(c *Config) { c.ICODir = "" }},
		{"no sizes", func(c *Config) { c.Sizes = nil }},
		{"zero size", func(c *Config) { c.Sizes = []int{64, 0} }},
		{"negative bundle size", func(c *Config) { c.BundleSizes = []int{-1} }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}
