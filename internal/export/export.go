// internal/export/export.go
package export

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"go-skewrect/internal/config"
	"go-skewrect/internal/event"
	"go-skewrect/internal/render"
	"go-skewrect/internal/scene"
	"go-skewrect/pkg/raster"
)

// Options controls a headless render.
type Options struct {
	Dir    string
	Frames int
	// Label stamps the seed in the top-left corner with this face.
	Label font.Face
	// Thumb, when positive, also writes a copy scaled to this width.
	Thumb int
}

// FrameName is the file name of frame i of the run started from seed.
func FrameName(seed int64, i int) string {
	return fmt.Sprintf("%d-%04d.png", seed, i)
}

// ThumbName is the thumbnail file name matching FrameName.
func ThumbName(seed int64, i int) string {
	return fmt.Sprintf("%d-%04d.thumb.png", seed, i)
}

// Frames renders the scene to PNG files and returns their paths. Animated
// scenes advance before every frame, like the live window; static scenes
// always produce a single frame. Each written frame is announced on
// sc.Events as FrameWritten.
func Frames(ctx context.Context, sc *scene.Scene, opts Options) ([]string, error) {
	n := opts.Frames
	if !sc.Profile.Animate || n < 1 {
		n = 1
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	canvas := raster.NewCanvas(sc.Profile.Width, sc.Profile.Height)
	renderer := render.NewRenderer()
	paths := make([]string, 0, n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		sc.Advance()

		img, err := renderer.Render(canvas, sc)
		if err != nil {
			return paths, fmt.Errorf("frame %d: %w", i, err)
		}

		path := filepath.Join(opts.Dir, FrameName(sc.Seed(), i))
		if err := WritePNG(path, img, sc.Seed(), opts.Label); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		sc.Events.Dispatch(event.Event{Type: event.FrameWritten, Data: path})

		if opts.Thumb > 0 {
			thumb := filepath.Join(opts.Dir, ThumbName(sc.Seed(), i))
			if err := WriteThumb(thumb, img, opts.Thumb); err != nil {
				return paths, err
			}
		}
	}
	return paths, nil
}

// WritePNG saves img to path. With a face, the seed label is stamped on a
// copy; img itself is never modified.
func WritePNG(path string, img image.Image, seed int64, face font.Face) error {
	if face == nil {
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}

	dc := gg.NewContextForImage(img)
	StampSeed(dc, seed, face)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// StampSeed draws the seed on a white box, the way the sketch names its runs.
func StampSeed(dc *gg.Context, seed int64, face font.Face) {
	dc.Push()
	defer dc.Pop()

	dc.SetColor(config.LabelBackground)
	dc.DrawRectangle(config.LabelX, config.LabelY, config.LabelWidth, config.LabelHeight)
	dc.Fill()

	dc.SetFontFace(face)
	dc.SetColor(config.LabelTextColor)
	dc.DrawString(strconv.FormatInt(seed, 10), config.LabelX+2, config.LabelY+42)
}

// WriteThumb saves a copy of img scaled to width pixels, keeping the aspect.
func WriteThumb(path string, img image.Image, width int) error {
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, path); err != nil {
		return fmt.Errorf("failed to write thumbnail %s: %w", path, err)
	}
	return nil
}
