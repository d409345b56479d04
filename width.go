package logscreen

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string (sum of rune widths).
//
// Note that the line buffer addresses columns by rune count, not display
// width; StringWidth is for renderers laying out cells on a real grid.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// DisplayWidth returns the display width of the line as a renderer would lay
// it out, accounting for wide and zero-width runes.
func (l Line) DisplayWidth() int {
	w := 0
	for _, c := range l {
		w += uniwidth.StringWidth(c.Text)
	}
	return w
}
