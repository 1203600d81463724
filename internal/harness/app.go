// internal/harness/app.go
package harness

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-skewrect/internal/assets"
	"go-skewrect/internal/config"
	"go-skewrect/internal/event"
	"go-skewrect/internal/export"
	"go-skewrect/internal/render"
	"go-skewrect/internal/scene"
	"go-skewrect/internal/state"
	"go-skewrect/pkg/raster"
)

// Options configures the sketch window.
type Options struct {
	// SnapshotDir receives PNGs saved with the S key.
	SnapshotDir string
	// ShowLabel starts with the seed label visible.
	ShowLabel bool
	Logger    *log.Logger
}

// App adapts a scene to ebiten's Game loop.
type App struct {
	ctx          context.Context
	scene        *scene.Scene
	renderer     *render.Renderer
	canvas       *raster.Canvas
	frameImg     *ebiten.Image // last rendered frame
	dirty        bool
	label        font.Face
	showLabel    bool
	snapshotDir  string
	logger       *log.Logger
	stateMachine *state.StateMachine
}

var _ ebiten.Game = (*App)(nil)

// NewApp wires a scene into a window-ready game.
func NewApp(ctx context.Context, sc *scene.Scene, fonts *assets.FontManager, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	face, err := fonts.Face(config.LabelFontSize)
	if err != nil {
		return nil, err
	}
	if sc.Events == nil {
		sc.Events = event.NewDispatcher()
		sc.Events.Subscribe(event.LogListener(logger), event.AllTypes...)
	}

	p := sc.Profile
	a := &App{
		ctx:         ctx,
		scene:       sc,
		renderer:    render.NewRenderer(),
		canvas:      raster.NewCanvas(p.Width, p.Height),
		frameImg:    ebiten.NewImage(p.Width, p.Height),
		dirty:       true,
		label:       face,
		showLabel:   opts.ShowLabel,
		snapshotDir: opts.SnapshotDir,
		logger:      logger,
	}
	a.stateMachine = state.NewStateMachine(logger)
	a.stateMachine.SetState(NewPlayState(a))
	return a, nil
}

func (a *App) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	return a.stateMachine.Update()
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.scene.Profile.Width, a.scene.Profile.Height
}

// step advances animated scenes by one tick.
func (a *App) step() {
	if !a.scene.Profile.Animate {
		return
	}
	a.scene.Advance()
	a.dirty = true
}

// drawFrame renders the scene into the canvas when it changed and uploads it.
// Static scenes are rasterised once and then only blitted.
func (a *App) drawFrame(screen *ebiten.Image) {
	if a.dirty {
		img, err := a.renderer.Render(a.canvas, a.scene)
		if err != nil {
			a.logger.Error("render failed", "err", err)
			return
		}
		a.frameImg.WritePixels(img.Pix)
		a.dirty = false
	}
	screen.DrawImage(a.frameImg, nil)
	if a.showLabel {
		drawSeedLabel(screen, a.label, a.scene.Seed())
	}
}

func (a *App) reseed() {
	if err := a.scene.Reset(0); err != nil {
		a.logger.Error("reseed failed", "err", err)
		return
	}
	a.dirty = true
	ebiten.SetWindowTitle(windowTitle(a.scene))
}

func (a *App) emit(t event.EventType, data interface{}) {
	a.scene.Events.Dispatch(event.Event{Type: t, Data: data})
}

func (a *App) snapshot() {
	if err := os.MkdirAll(a.snapshotDir, 0o755); err != nil {
		a.logger.Error("snapshot failed", "err", err)
		return
	}
	name := export.FrameName(a.scene.Seed(), a.scene.Frame())
	path := filepath.Join(a.snapshotDir, name)

	var face font.Face
	if a.showLabel {
		face = a.label
	}
	if err := export.WritePNG(path, a.canvas.Image(), a.scene.Seed(), face); err != nil {
		a.logger.Error("snapshot failed", "err", err)
		return
	}
	a.emit(event.SnapshotSaved, path)
}

func windowTitle(sc *scene.Scene) string {
	return fmt.Sprintf("skewrect %s · %s", sc.Profile.Name, strconv.FormatInt(sc.Seed(), 10))
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, sc *scene.Scene, opts Options) error {
	fonts := assets.NewFontManager()
	defer fonts.Close()

	app, err := NewApp(ctx, sc, fonts, opts)
	if err != nil {
		return err
	}

	p := sc.Profile
	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowTitle(windowTitle(sc))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	tps := p.FPS
	if tps <= 0 {
		tps = config.TargetFPS
	}
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("sketch window: %w", err)
	}
	return ctx.Err()
}
