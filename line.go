package logscreen

import (
	"strings"
	"unicode/utf8"
)

// Chunk is a maximal run of text sharing one style. Its text is never empty,
// and its style is frozen at write time: attribute changes after a chunk is
// stored never reach it.
type Chunk struct {
	Text  string
	Style Style
}

// Width returns the chunk width in columns (rune count).
func (c Chunk) Width() int {
	return utf8.RuneCountInString(c.Text)
}

// Line is one screen row, stored as ordered, non-overlapping style runs from
// column 0 to the right. An empty line is a blank row. Gaps left of written
// content are explicit space-filled chunks, never holes.
type Line []Chunk

// Width returns the rendered width of the line in columns.
func (l Line) Width() int {
	w := 0
	for _, c := range l {
		w += c.Width()
	}
	return w
}

// Text returns the rendered text of the line, without styles.
func (l Line) Text() string {
	var b strings.Builder
	for _, c := range l {
		b.WriteString(c.Text)
	}
	return b.String()
}

// prefix returns the chunks covering columns [0, n). If n falls inside a
// chunk, the chunk is split and the retained fragment keeps its style. If n
// is at or past the end of the line, the whole line is returned unchanged:
// prefix never pads.
func (l Line) prefix(n int) Line {
	if n <= 0 {
		return nil
	}

	taken := 0
	for i, c := range l {
		if taken == n {
			return l[:i]
		}
		w := c.Width()
		if taken+w > n {
			out := make(Line, 0, i+1)
			out = append(out, l[:i]...)
			runes := []rune(c.Text)
			out = append(out, Chunk{Text: string(runes[:n-taken]), Style: c.Style})
			return out
		}
		taken += w
	}
	return l
}

// suffix returns the chunks covering columns [n, end). If n falls inside a
// chunk, the chunk is split and the retained fragment keeps its style.
// Dropping at or past the end of the line yields an empty line.
func (l Line) suffix(n int) Line {
	if n <= 0 {
		return l
	}

	dropped := 0
	for i, c := range l {
		w := c.Width()
		if dropped+w > n {
			runes := []rune(c.Text)
			out := make(Line, 0, len(l)-i)
			out = append(out, Chunk{Text: string(runes[n-dropped:]), Style: c.Style})
			out = append(out, l[i+1:]...)
			return out
		}
		dropped += w
	}
	return nil
}

// write overlays a chunk at the given column and returns the new line.
// Content left of the column is kept; a gap between the line end and the
// column is padded with spaces carrying the incoming chunk's style; content
// past the end of the new chunk is kept with its original styles.
func (l Line) write(col int, chunk Chunk) Line {
	if chunk.Text == "" {
		return l
	}
	if col < 0 {
		col = 0
	}

	before := l.prefix(col)
	after := l.suffix(col + chunk.Width())

	out := make(Line, 0, len(before)+2+len(after))
	out = append(out, before...)
	if gap := col - before.Width(); gap > 0 {
		out = append(out, Chunk{Text: spaces(gap), Style: chunk.Style})
	}
	out = append(out, chunk)
	out = append(out, after...)
	return out
}

// eraseLeft overwrites columns [0, col) with spaces in the given style,
// preserving the rest of the line.
func (l Line) eraseLeft(col int, style Style) Line {
	if col <= 0 {
		return l
	}
	return l.write(0, Chunk{Text: spaces(col), Style: style})
}

// eraseRight truncates the line at the given column. The erased tail is
// discarded, and the line is never padded out to the column.
func (l Line) eraseRight(col int) Line {
	return l.prefix(col)
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
