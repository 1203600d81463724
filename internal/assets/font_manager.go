// internal/assets/font_manager.go
package assets

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager parses the bundled label font once and caches faces by size.
type FontManager struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager creates an empty manager; the font is parsed on first use.
func NewFontManager() *FontManager {
	return &FontManager{
		faces: make(map[float64]font.Face),
	}
}

// Face returns the label face at the given point size.
func (m *FontManager) Face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	if m.font == nil {
		tt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse label font: %w", err)
		}
		m.font = tt
	}

	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %gpt face: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (m *FontManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for size, face := range m.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.faces, size)
	}
	return firstErr
}
