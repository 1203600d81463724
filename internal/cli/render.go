// internal/cli/render.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"go-skewrect/internal/assets"
	"go-skewrect/internal/config"
	"go-skewrect/internal/export"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	scene  sceneFlags
	out    string // output directory
	frames int    // frames to write; static scenes always write one
	label  bool   // stamp the seed label
	thumb  int    // thumbnail width, 0 disables thumbnails
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{out: "out", frames: 1}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to PNG files without a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.frames < 1 {
				return fmt.Errorf("--frames must be at least 1, got %d", opts.frames)
			}
			if opts.thumb < 0 {
				return fmt.Errorf("--thumb must not be negative, got %d", opts.thumb)
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output directory")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", opts.frames, "number of animation frames to write")
	cmd.Flags().BoolVar(&opts.label, "label", false, "stamp the seed in the top-left corner")
	cmd.Flags().IntVar(&opts.thumb, "thumb", 0, "also write thumbnails this many pixels wide")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := opts.scene.buildScene(logger)
	if err != nil {
		return err
	}

	exportOpts := export.Options{
		Dir:    opts.out,
		Frames: opts.frames,
		Thumb:  opts.thumb,
	}
	if opts.label {
		fonts := assets.NewFontManager()
		defer fonts.Close()
		face, err := fonts.Face(config.LabelFontSize)
		if err != nil {
			return err
		}
		exportOpts.Label = face
	}

	paths, err := export.Frames(ctx, sc, exportOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d frame(s) of seed %d to %s", len(paths), sc.Seed(), opts.out))
	return nil
}
