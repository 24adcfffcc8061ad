package icon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
)

// assembleBundle builds the multi-resolution ICO: the hand-drawn 16px frame
// first, then every bundle-size PNG that exists on disk. PNGs rendered by an
// earlier stage are re-read rather than kept in memory, so the bundle works
// against whatever the png directory actually holds.
func (g *Generator) assembleBundle() (string, int, error) {
	path := filepath.Join(g.Config.ICODir, BundleName)
	g.emit(Event{Name: BundleName, Stage: StageBundle, Status: StatusWorking})

	frames := []image.Image{RenderSmall(g.Config.Palette)}
	for _, size := range g.Config.BundleSizes {
		img, err := loadPNG(filepath.Join(g.Config.PNGDir, PNGName(size)))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			g.emit(Event{Name: BundleName, Stage: StageBundle, Status: StatusError, Err: err})
			return "", 0, err
		}
		frames = append(frames, img)
	}

	if err := writeICO(path, frames); err != nil {
		g.emit(Event{Name: BundleName, Stage: StageBundle, Status: StatusError, Err: err})
		return "", 0, err
	}

	g.emit(Event{Name: BundleName, Stage: StageBundle, Status: StatusDone})
	return path, len(frames), nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return img, nil
}

func writeICO(path string, frames []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	if err := ico.EncodeAll(f, frames); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", path, err)
	}
	return nil
}
