package logscreen

import (
	"testing"

	"github.com/danielgatis/go-logscreen/ansi"
)

func TestStyleApplyAttributes(t *testing.T) {
	style := Style{}
	style = style.apply(ansi.SetBold(true))
	style = style.apply(ansi.SetUnderline(true))
	style = style.apply(ansi.SetForeground{Color: ansi.IndexedColor{Index: 2}})

	if !style.Bold || !style.Underline {
		t.Errorf("expected bold underline, got %#v", style)
	}
	if style.Foreground != (ansi.IndexedColor{Index: 2}) {
		t.Errorf("expected green foreground, got %#v", style.Foreground)
	}
}

func TestStyleApplyClearColor(t *testing.T) {
	style := Style{Foreground: ansi.IndexedColor{Index: 1}}
	style = style.apply(ansi.SetForeground{})

	if style.Foreground != nil {
		t.Errorf("expected cleared foreground, got %#v", style.Foreground)
	}
}

func TestStyleApplyReset(t *testing.T) {
	style := Style{
		Foreground: ansi.RGBColor{R: 1, G: 2, B: 3},
		Bold:       true,
		Inverted:   true,
	}
	style = style.apply(ansi.Reset{})

	if !style.IsDefault() {
		t.Errorf("expected default style after reset, got %#v", style)
	}
}

func TestStyleApplyIgnoresOtherActions(t *testing.T) {
	style := Style{Bold: true}

	for _, action := range []ansi.Action{
		ansi.Print("x"),
		ansi.CarriageReturn{},
		ansi.CursorUp(3),
		ansi.ClearLine{Mode: ansi.LineClearModeAll},
		ansi.Remainder("\x1b["),
	} {
		if got := style.apply(action); got != style {
			t.Errorf("expected %#v to leave style unchanged, got %#v", action, got)
		}
	}
}
