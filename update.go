package logscreen

import "github.com/danielgatis/go-logscreen/ansi"

// Write processes raw bytes, tokenizing ANSI escape sequences and updating
// the screen. Any remainder left by the previous call is prefixed to the
// input first; an incomplete trailing sequence becomes the new remainder.
// Implements io.Writer and never returns an error.
func (s *Screen) Write(data []byte) (int, error) {
	s.recording.Record(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	text := s.remainder + string(data)
	s.remainder = ""
	s.parse(s.apply, text)

	return len(data), nil
}

// WriteString is a convenience method that converts the string to bytes and calls Write.
func (s *Screen) WriteString(text string) (int, error) {
	return s.Write([]byte(text))
}

// apply dispatches one action to the cursor, the style, or the line buffer.
//
// The action set is closed: every kind is matched here or falls through to
// the style tracker, whose own default arm makes unrecognized actions a
// silent no-op.
func (s *Screen) apply(action ansi.Action) {
	switch a := action.(type) {
	case ansi.Print:
		s.print(string(a))
	case ansi.CarriageReturn:
		s.cursor.Col = 0
	case ansi.Linebreak:
		// The column is intentionally preserved across linebreaks; a
		// producer emits \r\n to reach column 0.
		s.cursor.Row++
	case ansi.CursorUp:
		s.cursor.move(-int(a), 0)
	case ansi.CursorDown:
		s.cursor.move(int(a), 0)
	case ansi.CursorForward:
		s.cursor.move(0, int(a))
	case ansi.CursorBack:
		s.cursor.move(0, -int(a))
	case ansi.CursorPosition:
		// Wire coordinates are 1-based.
		s.cursor.moveTo(a.Row-1, a.Col-1)
	case ansi.CursorColumn:
		s.cursor.Col = int(a) - 1
	case ansi.SaveCursorPosition:
		saved := s.cursor
		s.saved = &saved
	case ansi.RestoreCursorPosition:
		if s.saved != nil {
			s.cursor = *s.saved
		}
	case ansi.ClearLine:
		s.clearLine(a.Mode)
	case ansi.ClearScreen:
		s.clearScreen(a.Mode)
	case ansi.Remainder:
		s.remainder = string(a)
	default:
		s.style = s.style.apply(action)
	}
}

// print writes a chunk of text at the cursor in the current style and
// advances the cursor past it. Negative cursor coordinates are reconciled to
// 0 here, at write time.
func (s *Screen) print(text string) {
	if text == "" {
		return
	}

	row := max(s.cursor.Row, 0)
	col := max(s.cursor.Col, 0)

	chunk := Chunk{Text: text, Style: s.style}
	s.ensureLine(row)
	s.lines[row] = s.lines[row].write(col, chunk)

	s.cursor.Row = row
	s.cursor.Col = col + chunk.Width()
}

// ensureLine appends blank lines until the given row exists. Existing lines
// are never touched.
func (s *Screen) ensureLine(row int) {
	for len(s.lines) <= row {
		s.lines = append(s.lines, nil)
	}
}

// clearLine erases part of the line under the cursor.
func (s *Screen) clearLine(mode ansi.LineClearMode) {
	row := max(s.cursor.Row, 0)
	col := max(s.cursor.Col, 0)

	switch mode {
	case ansi.LineClearModeRight:
		if row < len(s.lines) {
			s.lines[row] = s.lines[row].eraseRight(col)
		}
	case ansi.LineClearModeLeft:
		// Overwrites with spaces in the current style, growing the
		// buffer to the cursor row like any other write.
		if col > 0 {
			s.ensureLine(row)
			s.lines[row] = s.lines[row].eraseLeft(col, s.style)
		}
	case ansi.LineClearModeAll:
		if row < len(s.lines) {
			s.lines[row] = nil
		}
	}
}

// clearScreen erases part of the screen relative to the cursor.
func (s *Screen) clearScreen(mode ansi.ClearMode) {
	row := max(s.cursor.Row, 0)
	col := max(s.cursor.Col, 0)

	switch mode {
	case ansi.ClearModeBelow:
		if row < len(s.lines) {
			s.lines[row] = s.lines[row].eraseRight(col)
			s.lines = s.lines[:row+1]
		}
	case ansi.ClearModeAbove:
		for r := 0; r < row && r < len(s.lines); r++ {
			s.lines[r] = nil
		}
		if row < len(s.lines) && col > 0 {
			s.lines[row] = s.lines[row].eraseLeft(col, s.style)
		}
	case ansi.ClearModeAll:
		s.lines = nil
	}
}
