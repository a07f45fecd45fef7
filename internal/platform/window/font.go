package window

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// hudFontSize is the score text size in pixels.
const hudFontSize = 20

// LoadFace loads a TTF font for the HUD. An empty path selects the bundled
// Go Regular font.
func LoadFace(path string, size float64) (*text.GoTextFace, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
