// Package cli implements the skewrect command-line interface.
//
// The run command opens the sketch window, render writes frames to PNG
// files without a window, palette lists the ink swatches and profile prints
// the effective run profile as TOML. Every command accepts --verbose (-v);
// the logger travels to the commands through the context.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-skewrect/internal/config"
	"go-skewrect/internal/event"
	"go-skewrect/internal/scene"
	"go-skewrect/internal/utils"
	"go-skewrect/pkg/palette"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "skewrect",
		Short:        "Skewrect draws seeded skewed-rectangle compositions",
		Long:         `Skewrect renders a seeded generative sketch: skewed, drop-shadowed rectangles in two riso inks, clipped to a triangle and blended over each other. It runs as an animated window or writes frames to PNG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.profileCommand())

	return root
}

// sceneFlags are the flags every scene-building command shares.
type sceneFlags struct {
	variant  string // animated or static
	profile  string // optional TOML overlay
	swatches string // optional JSON swatch list
	seed     int64  // 0 picks a fresh seed
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.variant, "variant", "animated", "sketch variant: animated, static")
	cmd.Flags().StringVar(&f.profile, "profile", "", "TOML file overriding profile fields")
	f.registerSwatches(cmd)
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
}

func (f *sceneFlags) registerSwatches(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.swatches, "swatches", "", "JSON swatch list replacing the riso inks")
}

// resolveProfile starts from the variant preset and overlays the profile file.
func (f *sceneFlags) resolveProfile() (config.Profile, error) {
	p, err := config.Preset(f.variant)
	if err != nil {
		return config.Profile{}, err
	}
	if f.profile == "" {
		return p, nil
	}
	return config.LoadProfile(f.profile, p)
}

func (f *sceneFlags) loadSwatches() ([]palette.Swatch, error) {
	if f.swatches == "" {
		return palette.Riso()
	}
	data, err := os.ReadFile(f.swatches)
	if err != nil {
		return nil, err
	}
	return palette.LoadSwatches(data)
}

// buildScene resolves the profile and swatches and builds the opening scene.
// Scene events are logged from then on.
func (f *sceneFlags) buildScene(logger *log.Logger) (*scene.Scene, error) {
	p, err := f.resolveProfile()
	if err != nil {
		return nil, err
	}
	if p.WidthRangeInverted() {
		logger.Warn("rect width range is inverted; widths fall between the two bounds",
			"min", p.MinWidth, "max", p.MaxWidth())
	}

	swatches, err := f.loadSwatches()
	if err != nil {
		return nil, err
	}

	sc, err := scene.New(p, utils.NewPRNGService(f.seed), swatches)
	if err != nil {
		return nil, err
	}
	sc.Events = event.NewDispatcher()
	sc.Events.Subscribe(event.LogListener(logger), event.AllTypes...)

	logger.Debug("built scene",
		"profile", p.Name,
		"seed", sc.Seed(),
		"rects", len(sc.Rects),
		"inks", sc.Palette.Swatches[0].Name+" / "+sc.Palette.Swatches[1].Name)
	return sc, nil
}
