package logscreen

import (
	"encoding/json"
	"fmt"

	"github.com/danielgatis/go-logscreen/ansi"
)

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
)

// Snapshot represents a complete screen capture.
type Snapshot struct {
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotCursor holds cursor state.
type SnapshotCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
}

// SnapshotSegment represents a styled text segment within a line.
type SnapshotSegment struct {
	Text  string        `json:"text"`
	Fg    string        `json:"fg,omitempty"`
	Bg    string        `json:"bg,omitempty"`
	Attrs SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Faint         bool `json:"faint,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Snapshot creates a snapshot of the current screen state.
// The detail parameter controls how much information is included.
func (s *Screen) Snapshot(detail SnapshotDetail) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Cursor: SnapshotCursor{
			Row: s.cursor.Row,
			Col: s.cursor.Col,
		},
		Lines: make([]SnapshotLine, len(s.lines)),
	}

	for row, line := range s.lines {
		snap.Lines[row] = snapshotLine(line, detail)
	}

	return snap
}

// JSON serializes the snapshot.
func (sn *Snapshot) JSON() ([]byte, error) {
	return json.Marshal(sn)
}

// snapshotLine converts one line. At styled detail, the stored chunks map
// directly onto segments.
func snapshotLine(line Line, detail SnapshotDetail) SnapshotLine {
	out := SnapshotLine{Text: line.Text()}
	if detail != SnapshotDetailStyled {
		return out
	}

	for _, chunk := range line {
		out.Segments = append(out.Segments, SnapshotSegment{
			Text: chunk.Text,
			Fg:   colorString(chunk.Style.Foreground),
			Bg:   colorString(chunk.Style.Background),
			Attrs: SnapshotAttrs{
				Bold:          chunk.Style.Bold,
				Faint:         chunk.Style.Faint,
				Italic:        chunk.Style.Italic,
				Underline:     chunk.Style.Underline,
				Blink:         chunk.Style.Blink,
				Reverse:       chunk.Style.Inverted,
				Hidden:        chunk.Style.Hidden,
				Strikethrough: chunk.Style.Strike,
			},
		})
	}
	return out
}

// colorString renders a style color for the snapshot: palette indices as
// decimal, truecolor as hex, defaults as empty.
func colorString(c ansi.Color) string {
	switch v := c.(type) {
	case ansi.IndexedColor:
		return fmt.Sprintf("%d", v.Index)
	case ansi.RGBColor:
		return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
	case ansi.NamedColor:
		if v == ansi.NamedColorBackground {
			return "background"
		}
		return "foreground"
	default:
		return ""
	}
}
