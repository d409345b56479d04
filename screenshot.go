package logscreen

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how the screen is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Cols forces the image width in cells. If zero, the widest line wins.
	Cols int

	// Palette is the 256-color palette. If nil, uses DefaultPalette.
	Palette *[256]color.RGBA

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA

	// ShowCursor controls whether to render the cursor as an inverted cell. Default false.
	ShowCursor bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

// Screenshot renders the screen to an RGBA image using default settings (basicfont, default palette).
func (s *Screen) Screenshot() *image.RGBA {
	return s.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the screen to an RGBA image with custom font, colors, and cursor settings.
func (s *Screen) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &DefaultPalette
	}

	defaultFG := DefaultForeground
	if cfg.DefaultFG != nil {
		defaultFG = *cfg.DefaultFG
	}

	defaultBG := DefaultBackground
	if cfg.DefaultBG != nil {
		defaultBG = *cfg.DefaultBG
	}

	cols := cfg.Cols
	if cols == 0 {
		for _, line := range s.lines {
			if w := line.DisplayWidth(); w > cols {
				cols = w
			}
		}
	}
	if cols == 0 {
		cols = 1
	}
	rows := len(s.lines)
	if rows == 0 {
		rows = 1
	}

	imgWidth := cols * cellWidth
	imgHeight := rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	// Fill background
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, defaultBG)
		}
	}

	baseline := face.Metrics().Ascent.Ceil()

	for row, line := range s.lines {
		x := 0
		y := row * cellHeight

		for _, chunk := range line {
			fg := resolveColor(chunk.Style.Foreground, true, palette, defaultFG, defaultBG)
			bg := resolveColor(chunk.Style.Background, false, palette, defaultFG, defaultBG)

			if chunk.Style.Inverted {
				fg, bg = bg, fg
			}

			if chunk.Style.Faint {
				fg = color.RGBA{
					R: uint8(float64(fg.R) * 0.66),
					G: uint8(float64(fg.G) * 0.66),
					B: uint8(float64(fg.B) * 0.66),
					A: fg.A,
				}
			}

			if chunk.Style.Hidden {
				fg = bg
			}

			for _, r := range chunk.Text {
				w := runeWidth(r)
				if w == 0 {
					continue
				}

				// Cell background
				for py := 0; py < cellHeight; py++ {
					for px := 0; px < cellWidth*w; px++ {
						if x+px < imgWidth {
							img.Set(x+px, y+py, bg)
						}
					}
				}

				if r != ' ' {
					d := &font.Drawer{
						Dst:  img,
						Src:  image.NewUniform(fg),
						Face: face,
						Dot:  fixed.P(x, y+baseline),
					}
					d.DrawString(string(r))
				}

				if chunk.Style.Underline {
					underlineY := y + baseline + 2
					for px := 0; px < cellWidth*w; px++ {
						if x+px < imgWidth && underlineY < imgHeight {
							img.Set(x+px, underlineY, fg)
						}
					}
				}

				if chunk.Style.Strike {
					strikeY := y + cellHeight/2
					for px := 0; px < cellWidth*w; px++ {
						if x+px < imgWidth {
							img.Set(x+px, strikeY, fg)
						}
					}
				}

				x += cellWidth * w
			}
		}
	}

	if cfg.ShowCursor && s.cursor.Row >= 0 && s.cursor.Col >= 0 {
		cursorX := s.cursor.Col * cellWidth
		cursorY := s.cursor.Row * cellHeight

		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				cx, cy := cursorX+px, cursorY+py
				if cx < imgWidth && cy < imgHeight {
					existing := img.RGBAAt(cx, cy)
					img.Set(cx, cy, color.RGBA{
						R: 255 - existing.R,
						G: 255 - existing.G,
						B: 255 - existing.B,
						A: 255,
					})
				}
			}
		}
	}

	return img
}

// ScreenshotPNG renders the screen with the given config and encodes it as
// PNG to w. A nil config uses defaults.
func (s *Screen) ScreenshotPNG(w io.Writer, cfg *ScreenshotConfig) error {
	if cfg == nil {
		cfg = &ScreenshotConfig{}
	}
	return png.Encode(w, s.ScreenshotWithConfig(cfg))
}
