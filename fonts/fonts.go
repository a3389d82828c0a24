package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Greeting FontName = "greeting"
	Overlay  FontName = "overlay"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Loaded reports whether a face has been registered under the name
func (f FontName) Loaded() bool {
	_, ok := fonts[f]
	return ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go fonts: a bold greeting face and a
// small regular face for overlays.
func LoadDefaults(greetingSize float64) error {
	if err := LoadFontWithSize(Greeting, gobold.TTF, greetingSize); err != nil {
		return err
	}
	return LoadFontWithSize(Overlay, goregular.TTF, 13)
}

// LoadFontWithSize parses a TrueType font and registers a face at the given size
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadFontFile registers a face from a TTF on disk, e.g. a CJK font for a
// non-Latin greeting.
func LoadFontFile(name FontName, path string, size float64) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", path, err)
	}
	return LoadFontWithSize(name, ttf, size)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
