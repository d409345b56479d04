// Package ansi tokenizes text interleaved with ANSI escape sequences into a
// closed set of discrete actions.
//
// The tokenizer never fails: unrecognized sequences are consumed and dropped,
// and input that ends in the middle of an escape sequence produces a final
// Remainder action carrying the unconsumed suffix so the caller can prefix it
// to the next chunk of input.
package ansi

// Action is a discrete instruction decoded from a text stream: printable
// text, a cursor movement, an erase operation, a character attribute change,
// or the trailing remainder of an incomplete sequence.
//
// The set of implementations is closed; consumers are expected to type-switch
// over it with an explicit default arm for actions they do not handle.
type Action interface {
	isAction()
}

// Print is a run of printable text with no control characters.
type Print string

// Remainder is the unconsumed suffix of the input, emitted as the final
// action when the input ends in the middle of an escape sequence. It must be
// prefixed to the next input chunk and re-tokenized, never rendered.
type Remainder string

// CarriageReturn moves the cursor to column 0 of the current line.
type CarriageReturn struct{}

// Linebreak moves the cursor to the next line. The column is not changed.
type Linebreak struct{}

// CursorUp moves the cursor up by the given number of lines.
type CursorUp int

// CursorDown moves the cursor down by the given number of lines.
type CursorDown int

// CursorForward moves the cursor right by the given number of columns.
type CursorForward int

// CursorBack moves the cursor left by the given number of columns.
type CursorBack int

// CursorPosition moves the cursor to an absolute position. Row and Col are
// 1-based, as they appear on the wire.
type CursorPosition struct {
	Row int
	Col int
}

// CursorColumn moves the cursor to an absolute column on the current line.
// The value is 1-based, as it appears on the wire.
type CursorColumn int

// SaveCursorPosition saves the current cursor position.
type SaveCursorPosition struct{}

// RestoreCursorPosition restores the most recently saved cursor position.
type RestoreCursorPosition struct{}

// LineClearMode selects which part of the line an erase affects.
type LineClearMode int

const (
	// LineClearModeRight erases from the cursor to the end of the line.
	LineClearModeRight LineClearMode = iota
	// LineClearModeLeft erases from the beginning of the line to the cursor.
	LineClearModeLeft
	// LineClearModeAll erases the whole line.
	LineClearModeAll
)

// ClearLine erases part of the current line.
type ClearLine struct {
	Mode LineClearMode
}

// ClearMode selects which part of the screen an erase affects.
type ClearMode int

const (
	// ClearModeBelow erases from the cursor to the end of the screen.
	ClearModeBelow ClearMode = iota
	// ClearModeAbove erases from the beginning of the screen to the cursor.
	ClearModeAbove
	// ClearModeAll erases the whole screen.
	ClearModeAll
)

// ClearScreen erases part of the screen.
type ClearScreen struct {
	Mode ClearMode
}

// Reset clears all character attributes back to the default state.
type Reset struct{}

// SetBold enables or disables bold.
type SetBold bool

// SetFaint enables or disables faint (dim).
type SetFaint bool

// SetItalic enables or disables italic.
type SetItalic bool

// SetUnderline enables or disables underline.
type SetUnderline bool

// SetBlink enables or disables blinking.
type SetBlink bool

// SetInverted enables or disables reverse video.
type SetInverted bool

// SetHidden enables or disables concealed text.
type SetHidden bool

// SetStrike enables or disables strikethrough.
type SetStrike bool

// SetForeground sets the foreground color. A nil Color resets it to the
// default.
type SetForeground struct {
	Color Color
}

// SetBackground sets the background color. A nil Color resets it to the
// default.
type SetBackground struct {
	Color Color
}

func (Print) isAction()                 {}
func (Remainder) isAction()             {}
func (CarriageReturn) isAction()        {}
func (Linebreak) isAction()             {}
func (CursorUp) isAction()              {}
func (CursorDown) isAction()            {}
func (CursorForward) isAction()         {}
func (CursorBack) isAction()            {}
func (CursorPosition) isAction()        {}
func (CursorColumn) isAction()          {}
func (SaveCursorPosition) isAction()    {}
func (RestoreCursorPosition) isAction() {}
func (ClearLine) isAction()             {}
func (ClearScreen) isAction()           {}
func (Reset) isAction()                 {}
func (SetBold) isAction()               {}
func (SetFaint) isAction()              {}
func (SetItalic) isAction()             {}
func (SetUnderline) isAction()          {}
func (SetBlink) isAction()              {}
func (SetInverted) isAction()           {}
func (SetHidden) isAction()             {}
func (SetStrike) isAction()             {}
func (SetForeground) isAction()         {}
func (SetBackground) isAction()         {}

// Color is an opaque color value attached to SetForeground/SetBackground.
// Concrete kinds are IndexedColor, NamedColor, and RGBColor. Consumers decide
// how to resolve them to displayable colors.
type Color interface {
	isColor()
}

// IndexedColor is a color from the 256-color palette. Indices 0-7 are the
// standard colors, 8-15 the bright variants, 16-231 the color cube, and
// 232-255 the grayscale ramp.
type IndexedColor struct {
	Index int
}

// NamedColor is a semantic color resolved by the renderer.
type NamedColor int

const (
	// NamedColorForeground is the default text color.
	NamedColorForeground NamedColor = iota
	// NamedColorBackground is the default background color.
	NamedColorBackground
)

// RGBColor is a 24-bit truecolor value.
type RGBColor struct {
	R uint8
	G uint8
	B uint8
}

func (IndexedColor) isColor() {}
func (NamedColor) isColor()   {}
func (RGBColor) isColor()     {}
