package logscreen

import (
	"strings"
	"sync"

	"github.com/danielgatis/go-logscreen/ansi"
)

// ParseFunc tokenizes a chunk of text into actions, invoking the handler once
// per action in order. If the text ends in the middle of an escape sequence,
// the unconsumed suffix must be reported as a final ansi.Remainder action.
// ansi.ParseInto is the default implementation.
type ParseFunc func(handler func(ansi.Action), text string)

// Screen is an in-memory image of text produced by a stream interleaved with
// ANSI control sequences. Lines grow without bound as input arrives; there is
// no viewport, no wrapping, and no scrollback eviction. Bounding growth is
// the caller's responsibility.
//
// Accessors are safe for concurrent use, but Write calls on the same Screen
// must be strictly sequential: each call consumes the remainder left by the
// previous one.
type Screen struct {
	mu sync.RWMutex

	lines  []Line
	cursor Cursor
	saved  *Cursor
	style  Style

	// Trailing unconsumed text from the previous Write, prefixed to the
	// next input before tokenizing.
	remainder string

	parse     ParseFunc
	recording RecordingProvider
}

// Option configures a Screen during construction.
type Option func(*Screen)

// WithParser sets the tokenizer used to decode input into actions.
// Defaults to ansi.ParseInto.
func WithParser(parse ParseFunc) Option {
	return func(s *Screen) {
		s.parse = parse
	}
}

// WithRecording sets the handler for capturing raw input bytes before ANSI
// parsing. Useful for replay, debugging, or regression testing.
func WithRecording(p RecordingProvider) Option {
	return func(s *Screen) {
		s.recording = p
	}
}

// New creates an empty screen: no lines, cursor at (0, 0), no saved cursor,
// default style, empty remainder.
func New(opts ...Option) *Screen {
	s := &Screen{
		parse:     ansi.ParseInto,
		recording: NoopRecording{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NumLines returns the number of lines on the screen.
func (s *Screen) NumLines() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// Line returns the line at the given row. A row that does not exist is an
// empty line. The returned chunks are a read-only view; they must not be
// modified.
func (s *Screen) Line(row int) Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if row < 0 || row >= len(s.lines) {
		return nil
	}
	return s.lines[row]
}

// Lines returns all lines in order. The returned slice is a read-only view;
// it must not be modified.
func (s *Screen) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lines
}

// CursorPos returns the current cursor position (0-based). Values may be
// negative or past the buffer extent after unclamped relative moves.
func (s *Screen) CursorPos() (row, col int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.Row, s.cursor.Col
}

// Style returns the character attributes currently in effect.
func (s *Screen) Style() Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style
}

// Remainder returns the trailing unconsumed text carried over from the last
// Write, empty when the input ended on a sequence boundary.
func (s *Screen) Remainder() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remainder
}

// LineContent returns the text content of a line, trimming trailing spaces.
// Returns empty string if the line contains only spaces or does not exist.
func (s *Screen) LineContent(row int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if row < 0 || row >= len(s.lines) {
		return ""
	}
	return strings.TrimRight(s.lines[row].Text(), " ")
}

// String returns the screen content as a newline-separated string.
// Trailing empty lines are omitted. Implements fmt.Stringer.
func (s *Screen) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lastNonEmpty := -1
	lines := make([]string, len(s.lines))
	for row := range s.lines {
		lines[row] = strings.TrimRight(s.lines[row].Text(), " ")
		if lines[row] != "" {
			lastNonEmpty = row
		}
	}

	if lastNonEmpty < 0 {
		return ""
	}
	return strings.Join(lines[:lastNonEmpty+1], "\n")
}

// Position identifies a screen location (0-based).
type Position struct {
	Row int
	Col int
}

// Search finds all occurrences of pattern in the screen content.
// Returns positions of the first character of each match.
func (s *Screen) Search(pattern string) []Position {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pattern == "" {
		return nil
	}

	var matches []Position
	patternRunes := []rune(pattern)

	for row := range s.lines {
		lineRunes := []rune(s.lines[row].Text())

		for col := 0; col+len(patternRunes) <= len(lineRunes); col++ {
			found := true
			for i, pr := range patternRunes {
				if lineRunes[col+i] != pr {
					found = false
					break
				}
			}
			if found {
				matches = append(matches, Position{Row: row, Col: col})
			}
		}
	}

	return matches
}
