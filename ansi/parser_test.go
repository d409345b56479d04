package ansi

import (
	"reflect"
	"testing"
)

func collect(text string) []Action {
	var actions []Action
	ParseInto(func(a Action) {
		actions = append(actions, a)
	}, text)
	return actions
}

func expectActions(t *testing.T, text string, want []Action) {
	t.Helper()
	got := collect(text)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %#v, got %#v", want, got)
	}
}

func TestParsePlainText(t *testing.T) {
	expectActions(t, "hello", []Action{Print("hello")})
}

func TestParseControlCharacters(t *testing.T) {
	expectActions(t, "a\r\nb", []Action{
		Print("a"),
		CarriageReturn{},
		Linebreak{},
		Print("b"),
	})
}

func TestParseForegroundColor(t *testing.T) {
	expectActions(t, "\x1b[31mred", []Action{
		SetForeground{Color: IndexedColor{Index: 1}},
		Print("red"),
	})
}

func TestParseBackgroundColor(t *testing.T) {
	expectActions(t, "\x1b[44m", []Action{
		SetBackground{Color: IndexedColor{Index: 4}},
	})
}

func TestParseBrightColors(t *testing.T) {
	expectActions(t, "\x1b[91m\x1b[104m", []Action{
		SetForeground{Color: IndexedColor{Index: 9}},
		SetBackground{Color: IndexedColor{Index: 12}},
	})
}

func TestParseDefaultColors(t *testing.T) {
	expectActions(t, "\x1b[39m\x1b[49m", []Action{
		SetForeground{},
		SetBackground{},
	})
}

func TestParseIndexedExtendedColor(t *testing.T) {
	expectActions(t, "\x1b[38;5;123m", []Action{
		SetForeground{Color: IndexedColor{Index: 123}},
	})
}

func TestParseTruecolor(t *testing.T) {
	expectActions(t, "\x1b[48;2;10;20;30m", []Action{
		SetBackground{Color: RGBColor{R: 10, G: 20, B: 30}},
	})
}

func TestParseSGRReset(t *testing.T) {
	expectActions(t, "\x1b[m", []Action{Reset{}})
	expectActions(t, "\x1b[0m", []Action{Reset{}})
}

func TestParseSGRMultiple(t *testing.T) {
	expectActions(t, "\x1b[1;4;32m", []Action{
		SetBold(true),
		SetUnderline(true),
		SetForeground{Color: IndexedColor{Index: 2}},
	})
}

func TestParseSGRCancels(t *testing.T) {
	expectActions(t, "\x1b[22;24;27m", []Action{
		SetBold(false),
		SetFaint(false),
		SetUnderline(false),
		SetInverted(false),
	})
}

func TestParseCursorMovement(t *testing.T) {
	expectActions(t, "\x1b[2A\x1b[B\x1b[10C\x1b[3D", []Action{
		CursorUp(2),
		CursorDown(1),
		CursorForward(10),
		CursorBack(3),
	})
}

func TestParseCursorPosition(t *testing.T) {
	expectActions(t, "\x1b[H", []Action{CursorPosition{Row: 1, Col: 1}})
	expectActions(t, "\x1b[5;10H", []Action{CursorPosition{Row: 5, Col: 10}})
	expectActions(t, "\x1b[5;10f", []Action{CursorPosition{Row: 5, Col: 10}})
}

func TestParseCursorColumn(t *testing.T) {
	expectActions(t, "\x1b[G", []Action{CursorColumn(1)})
	expectActions(t, "\x1b[7G", []Action{CursorColumn(7)})
}

func TestParseCursorNextPrevLine(t *testing.T) {
	expectActions(t, "\x1b[2E", []Action{CursorDown(2), CarriageReturn{}})
	expectActions(t, "\x1b[F", []Action{CursorUp(1), CarriageReturn{}})
}

func TestParseEraseLine(t *testing.T) {
	expectActions(t, "\x1b[K\x1b[1K\x1b[2K", []Action{
		ClearLine{Mode: LineClearModeRight},
		ClearLine{Mode: LineClearModeLeft},
		ClearLine{Mode: LineClearModeAll},
	})
}

func TestParseEraseScreen(t *testing.T) {
	expectActions(t, "\x1b[J\x1b[1J\x1b[2J\x1b[3J", []Action{
		ClearScreen{Mode: ClearModeBelow},
		ClearScreen{Mode: ClearModeAbove},
		ClearScreen{Mode: ClearModeAll},
		ClearScreen{Mode: ClearModeAll},
	})
}

func TestParseSaveRestore(t *testing.T) {
	expectActions(t, "\x1b[s\x1b[u", []Action{
		SaveCursorPosition{},
		RestoreCursorPosition{},
	})
}

func TestParseRemainderLoneEscape(t *testing.T) {
	expectActions(t, "abc\x1b", []Action{
		Print("abc"),
		Remainder("\x1b"),
	})
}

func TestParseRemainderPartialCSI(t *testing.T) {
	expectActions(t, "\x1b[", []Action{Remainder("\x1b[")})
	expectActions(t, "x\x1b[31;4", []Action{
		Print("x"),
		Remainder("\x1b[31;4"),
	})
}

func TestParseRemainderPartialOSC(t *testing.T) {
	expectActions(t, "\x1b]0;title", []Action{Remainder("\x1b]0;title")})
}

func TestParseOSCIgnored(t *testing.T) {
	expectActions(t, "\x1b]0;title\x07after", []Action{Print("after")})
	expectActions(t, "\x1b]0;title\x1b\\after", []Action{Print("after")})
}

func TestParsePrivateSequenceIgnored(t *testing.T) {
	expectActions(t, "\x1b[?25hvisible", []Action{Print("visible")})
}

func TestParseUnknownFinalIgnored(t *testing.T) {
	expectActions(t, "\x1b[5ntext", []Action{Print("text")})
}

func TestParseTwoByteEscapeIgnored(t *testing.T) {
	expectActions(t, "\x1bMx", []Action{Print("x")})
}

func TestParseEmptyInput(t *testing.T) {
	if got := collect(""); got != nil {
		t.Errorf("expected no actions, got %#v", got)
	}
}

func TestParseResumedSequence(t *testing.T) {
	// A remainder prefixed to the next chunk must decode as if the input
	// had arrived whole.
	var first []Action
	ParseInto(func(a Action) { first = append(first, a) }, "\x1b[")

	rem, ok := first[len(first)-1].(Remainder)
	if !ok {
		t.Fatalf("expected trailing Remainder, got %#v", first)
	}

	expectActions(t, string(rem)+"1mA", []Action{
		SetBold(true),
		Print("A"),
	})
}
