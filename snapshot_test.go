package logscreen

import (
	"encoding/json"
	"testing"
)

func TestSnapshotText(t *testing.T) {
	screen := New()
	screen.WriteString("\x1b[31mred\x1b[0m plain\r\nsecond")

	snap := screen.Snapshot(SnapshotDetailText)

	if len(snap.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Text != "red plain" {
		t.Errorf("expected 'red plain', got '%s'", snap.Lines[0].Text)
	}
	if snap.Lines[0].Segments != nil {
		t.Error("expected no segments at text detail")
	}
	if snap.Cursor.Row != 1 || snap.Cursor.Col != 6 {
		t.Errorf("expected cursor (1, 6), got (%d, %d)", snap.Cursor.Row, snap.Cursor.Col)
	}
}

func TestSnapshotStyled(t *testing.T) {
	screen := New()
	screen.WriteString("\x1b[1;31mred\x1b[0m plain")

	snap := screen.Snapshot(SnapshotDetailStyled)

	segments := snap.Lines[0].Segments
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Text != "red" || segments[0].Fg != "1" || !segments[0].Attrs.Bold {
		t.Errorf("unexpected first segment: %#v", segments[0])
	}
	if segments[1].Text != " plain" || segments[1].Fg != "" {
		t.Errorf("unexpected second segment: %#v", segments[1])
	}
}

func TestSnapshotColorStrings(t *testing.T) {
	screen := New()
	screen.WriteString("\x1b[38;2;1;2;3ma\x1b[48;5;200mb")

	segments := screen.Snapshot(SnapshotDetailStyled).Lines[0].Segments
	if segments[0].Fg != "#010203" {
		t.Errorf("expected '#010203', got '%s'", segments[0].Fg)
	}
	if segments[1].Bg != "200" {
		t.Errorf("expected '200', got '%s'", segments[1].Bg)
	}
}

func TestSnapshotJSON(t *testing.T) {
	screen := New()
	screen.WriteString("hello")

	data, err := screen.Snapshot(SnapshotDetailStyled).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Lines[0].Text != "hello" {
		t.Errorf("expected 'hello', got '%s'", decoded.Lines[0].Text)
	}
}
