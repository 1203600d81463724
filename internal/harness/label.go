// internal/harness/label.go
package harness

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-skewrect/internal/config"
)

// drawSeedLabel paints the run seed on a white box in the top-left corner.
func drawSeedLabel(screen *ebiten.Image, face font.Face, seed int64) {
	vector.DrawFilledRect(screen,
		config.LabelX, config.LabelY, config.LabelWidth, config.LabelHeight,
		config.LabelBackground, false)
	text.Draw(screen, strconv.FormatInt(seed, 10), face, config.LabelX+2, config.LabelY+42, config.LabelTextColor)
}
