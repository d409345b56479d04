package ansi

import (
	"strconv"
	"strings"
)

const esc = '\x1b'

// ParseInto tokenizes text and invokes handler once per decoded action, in
// input order.
//
// Runs of printable text become a single Print. Carriage returns and line
// feeds become CarriageReturn and Linebreak. CSI sequences are decoded into
// cursor, erase, and attribute actions; OSC strings and other escape
// sequences are consumed and ignored. If the text ends in the middle of a
// sequence, the handler is invoked one final time with a Remainder carrying
// the unconsumed suffix, and never with an error.
func ParseInto(handler func(Action), text string) {
	for len(text) > 0 {
		switch text[0] {
		case '\r':
			handler(CarriageReturn{})
			text = text[1:]
		case '\n':
			handler(Linebreak{})
			text = text[1:]
		case esc:
			rest, ok := parseEscape(handler, text)
			if !ok {
				handler(Remainder(text))
				return
			}
			text = rest
		default:
			i := strings.IndexAny(text, "\x1b\r\n")
			if i < 0 {
				handler(Print(text))
				return
			}
			handler(Print(text[:i]))
			text = text[i:]
		}
	}
}

// parseEscape consumes one escape sequence starting at text[0] == ESC and
// returns the remaining input. ok is false if the sequence is incomplete, in
// which case nothing was consumed.
func parseEscape(handler func(Action), text string) (rest string, ok bool) {
	if len(text) < 2 {
		return "", false
	}

	switch text[1] {
	case '[':
		return parseCSI(handler, text)
	case ']':
		return parseOSC(text)
	default:
		// Two-byte escape (RIS, charset designation, etc.): consumed, ignored.
		return text[2:], true
	}
}

// parseCSI consumes a control sequence starting at text[0:2] == "ESC[".
// Parameter bytes are 0x30-0x3F, intermediate bytes 0x20-0x2F, and a final
// byte 0x40-0x7E terminates the sequence.
func parseCSI(handler func(Action), text string) (rest string, ok bool) {
	i := 2
	for i < len(text) && text[i] >= 0x30 && text[i] <= 0x3f {
		i++
	}
	for i < len(text) && text[i] >= 0x20 && text[i] <= 0x2f {
		i++
	}
	if i >= len(text) {
		return "", false
	}

	final := text[i]
	if final < 0x40 || final > 0x7e {
		// Malformed sequence: drop the offending byte along with it.
		return text[i+1:], true
	}

	dispatchCSI(handler, text[2:i], final)
	return text[i+1:], true
}

// parseOSC consumes an operating system command string, terminated by BEL or
// ST (ESC \). OSC payloads carry no screen content and are ignored.
func parseOSC(text string) (rest string, ok bool) {
	for i := 2; i < len(text); i++ {
		switch text[i] {
		case '\a':
			return text[i+1:], true
		case esc:
			if i+1 >= len(text) {
				return "", false
			}
			if text[i+1] == '\\' {
				return text[i+2:], true
			}
		}
	}
	return "", false
}

// dispatchCSI decodes a complete control sequence into actions. Sequences
// with private markers or unrecognized final bytes produce no actions.
func dispatchCSI(handler func(Action), params string, final byte) {
	if strings.ContainsAny(params, "<=>?") {
		return
	}

	codes := splitParams(params)

	switch final {
	case 'm':
		dispatchSGR(handler, codes)
	case 'A':
		handler(CursorUp(count(codes)))
	case 'B':
		handler(CursorDown(count(codes)))
	case 'C':
		handler(CursorForward(count(codes)))
	case 'D':
		handler(CursorBack(count(codes)))
	case 'E':
		handler(CursorDown(count(codes)))
		handler(CarriageReturn{})
	case 'F':
		handler(CursorUp(count(codes)))
		handler(CarriageReturn{})
	case 'G':
		handler(CursorColumn(param(codes, 0, 1)))
	case 'H', 'f':
		handler(CursorPosition{Row: param(codes, 0, 1), Col: param(codes, 1, 1)})
	case 'J':
		switch param(codes, 0, 0) {
		case 0:
			handler(ClearScreen{Mode: ClearModeBelow})
		case 1:
			handler(ClearScreen{Mode: ClearModeAbove})
		case 2, 3:
			handler(ClearScreen{Mode: ClearModeAll})
		}
	case 'K':
		switch param(codes, 0, 0) {
		case 0:
			handler(ClearLine{Mode: LineClearModeRight})
		case 1:
			handler(ClearLine{Mode: LineClearModeLeft})
		case 2:
			handler(ClearLine{Mode: LineClearModeAll})
		}
	case 's':
		handler(SaveCursorPosition{})
	case 'u':
		handler(RestoreCursorPosition{})
	}
}

// dispatchSGR decodes a select-graphic-rendition parameter list. An empty
// list is equivalent to a single 0 (reset).
func dispatchSGR(handler func(Action), codes []int) {
	for i := 0; i < len(codes); i++ {
		switch c := codes[i]; {
		case c == 0:
			handler(Reset{})
		case c == 1:
			handler(SetBold(true))
		case c == 2:
			handler(SetFaint(true))
		case c == 3:
			handler(SetItalic(true))
		case c == 4:
			handler(SetUnderline(true))
		case c == 5 || c == 6:
			handler(SetBlink(true))
		case c == 7:
			handler(SetInverted(true))
		case c == 8:
			handler(SetHidden(true))
		case c == 9:
			handler(SetStrike(true))
		case c == 21:
			handler(SetBold(false))
		case c == 22:
			handler(SetBold(false))
			handler(SetFaint(false))
		case c == 23:
			handler(SetItalic(false))
		case c == 24:
			handler(SetUnderline(false))
		case c == 25:
			handler(SetBlink(false))
		case c == 27:
			handler(SetInverted(false))
		case c == 28:
			handler(SetHidden(false))
		case c == 29:
			handler(SetStrike(false))
		case c >= 30 && c <= 37:
			handler(SetForeground{Color: IndexedColor{Index: c - 30}})
		case c == 38:
			color, skip := extendedColor(codes[i+1:])
			if color == nil {
				return
			}
			handler(SetForeground{Color: color})
			i += skip
		case c == 39:
			handler(SetForeground{})
		case c >= 40 && c <= 47:
			handler(SetBackground{Color: IndexedColor{Index: c - 40}})
		case c == 48:
			color, skip := extendedColor(codes[i+1:])
			if color == nil {
				return
			}
			handler(SetBackground{Color: color})
			i += skip
		case c == 49:
			handler(SetBackground{})
		case c >= 90 && c <= 97:
			handler(SetForeground{Color: IndexedColor{Index: c - 90 + 8}})
		case c >= 100 && c <= 107:
			handler(SetBackground{Color: IndexedColor{Index: c - 100 + 8}})
		}
	}
}

// extendedColor decodes the tail of a 38/48 extended color parameter list
// ("5;n" indexed or "2;r;g;b" truecolor). Returns the decoded color and how
// many parameters were consumed, or nil if the list is malformed.
func extendedColor(codes []int) (Color, int) {
	if len(codes) >= 2 && codes[0] == 5 {
		return IndexedColor{Index: clampByte(codes[1])}, 2
	}
	if len(codes) >= 4 && codes[0] == 2 {
		return RGBColor{
			R: uint8(clampByte(codes[1])),
			G: uint8(clampByte(codes[2])),
			B: uint8(clampByte(codes[3])),
		}, 4
	}
	return nil, 0
}

// splitParams parses a semicolon-separated parameter string. Empty parameters
// decode as 0, per the CSI default rules.
func splitParams(params string) []int {
	if params == "" {
		return []int{0}
	}

	parts := strings.Split(params, ";")
	codes := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		codes[i] = n
	}
	return codes
}

// param returns the i-th parameter, or def when it is absent or 0.
func param(codes []int, i, def int) int {
	if i >= len(codes) || codes[i] == 0 {
		return def
	}
	return codes[i]
}

// count returns the repeat count for cursor movement sequences (first
// parameter, defaulting to 1).
func count(codes []int) int {
	return param(codes, 0, 1)
}

func clampByte(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
