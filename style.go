package logscreen

import "github.com/danielgatis/go-logscreen/ansi"

// Style holds the character attributes in effect when text is written.
// Modified by SGR (Select Graphic Rendition) escape sequences. It is a pure
// value: each written chunk takes a copy, so later changes never affect text
// already on screen.
type Style struct {
	Foreground ansi.Color
	Background ansi.Color
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
	Blink      bool
	Inverted   bool
	Hidden     bool
	Strike     bool
}

// IsDefault returns true if the style carries no colors and no attributes.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// apply folds an attribute action into the style. Actions that are not
// attribute actions leave the style unchanged.
func (s Style) apply(action ansi.Action) Style {
	switch a := action.(type) {
	case ansi.Reset:
		return Style{}
	case ansi.SetBold:
		s.Bold = bool(a)
	case ansi.SetFaint:
		s.Faint = bool(a)
	case ansi.SetItalic:
		s.Italic = bool(a)
	case ansi.SetUnderline:
		s.Underline = bool(a)
	case ansi.SetBlink:
		s.Blink = bool(a)
	case ansi.SetInverted:
		s.Inverted = bool(a)
	case ansi.SetHidden:
		s.Hidden = bool(a)
	case ansi.SetStrike:
		s.Strike = bool(a)
	case ansi.SetForeground:
		s.Foreground = a.Color
	case ansi.SetBackground:
		s.Background = a.Color
	}
	return s
}
