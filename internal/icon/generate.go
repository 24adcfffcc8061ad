package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// PNGName returns the file name used for a rendered size.
func PNGName(size int) string {
	return fmt.Sprintf("icon_%d.png", size)
}

// Result reports what a generator run produced. BundleErr is non-nil when
// ICO assembly failed; the PNG outputs listed in PNGs are valid regardless.
type Result struct {
	PNGs         []string
	BundlePath   string
	BundleFrames int
	BundleErr    error
}

// Generator renders the icon set and assembles the ICO bundle.
// PNG generation and bundle assembly are independent stages: a bundle
// failure is recorded in Result, never returned as the run error.
type Generator struct {
	Config   Config
	Progress ProgressSink
}

func (g *Generator) emit(ev Event) {
	if g.Progress != nil {
		g.Progress.OnEvent(ev)
	}
}

// Run creates the output directories, renders every configured PNG, then
// assembles the bundle. The caller is expected to have validated the config
// before Run touches the filesystem.
func (g *Generator) Run() (Result, error) {
	var res Result

	if err := os.MkdirAll(g.Config.PNGDir, 0o755); err != nil {
		return res, fmt.Errorf("failed to create %q: %w", g.Config.PNGDir, err)
	}
	if err := os.MkdirAll(g.Config.ICODir, 0o755); err != nil {
		return res, fmt.Errorf("failed to create %q: %w", g.Config.ICODir, err)
	}

	for _, size := range g.Config.Sizes {
		path, err := g.generatePNG(size)
		if err != nil {
			return res, err
		}
		res.PNGs = append(res.PNGs, path)
	}

	res.BundlePath, res.BundleFrames, res.BundleErr = g.assembleBundle()
	return res, nil
}

func (g *Generator) generatePNG(size int) (string, error) {
	name := PNGName(size)
	path := filepath.Join(g.Config.PNGDir, name)

	g.emit(Event{Name: name, Stage: StageRender, Status: StatusWorking, Size: size})
	img := Render(size, g.Config.Palette)

	g.emit(Event{Name: name, Stage: StageEncode, Status: StatusWorking, Size: size})
	if err := gg.SavePNG(path, img); err != nil {
		err = fmt.Errorf("failed to write %q: %w", path, err)
		g.emit(Event{Name: name, Stage: StageEncode, Status: StatusError, Size: size, Err: err})
		return "", err
	}

	g.emit(Event{Name: name, Stage: StageEncode, Status: StatusDone, Size: size})
	return path, nil
}
