package codec

import (
	"errors"
	"reflect"
	"testing"
)

func TestCellsDecode(t *testing.T) {
	m, info, err := Decode(".....\n.OOO.\n...O.\n..O..\n.....", "cells")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !reflect.DeepEqual(m, testMatrix()) {
		t.Errorf("matrix = %v, expected %v", m, testMatrix())
	}
	if info != (FileInfo{}) {
		t.Errorf("metadata = %+v, expected empty", info)
	}
}

func TestCellsDecodeHeaders(t *testing.T) {
	m, info, err := Decode("!Name: Glider\n! first line\n! second line\nOOO\n..O\n.O.\n", "cells")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if info.Name != "Glider" {
		t.Errorf("name = %q, expected Glider", info.Name)
	}
	if info.Comment != "first line\nsecond line" {
		t.Errorf("comment = %q", info.Comment)
	}
	want := fromStrings(
		"XXX",
		"..X",
		".X.",
	)
	if !reflect.DeepEqual(m, want) {
		t.Errorf("matrix = %v, expected %v", m, want)
	}
}

func TestCellsDecodeNoBody(t *testing.T) {
	if _, _, err := Decode("! only a comment\n", "cells"); !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, expected ErrDecode", err)
	}
}

func TestCellsEncode(t *testing.T) {
	got, err := Encode(testMatrix(), "cells", FileInfo{
		Name:    "Glider",
		User:    "pji",
		Rule:    "B3/S23",
		Comment: "a test\npattern",
	})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "!Name: Glider\n" +
		"! pji\n" +
		"! B3/S23\n" +
		"! a test\n" +
		"! pattern\n" +
		"OOO\n" +
		"..O\n" +
		".O.\n"
	if got != want {
		t.Errorf("Encode = %q, expected %q", got, want)
	}
}

func TestCellsEncodeNoMetadata(t *testing.T) {
	got, err := Encode(testMatrix(), "cells", FileInfo{})
	if err != nil {
		t.Fatal(err)
	}
	want := "OOO\n..O\n.O.\n"
	if got != want {
		t.Errorf("Encode = %q, expected %q", got, want)
	}
}

func TestCellsRoundTrip(t *testing.T) {
	trimmed := TrimPadding(testMatrix())
	info := FileInfo{Name: "Glider", Comment: "two\nlines"}
	text, err := Encode(trimmed, "cells", info)
	if err != nil {
		t.Fatal(err)
	}
	m, got, err := Decode(text, "cells")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m, trimmed) {
		t.Errorf("round trip matrix = %v, expected %v", m, trimmed)
	}
	if got != info {
		t.Errorf("round trip metadata = %+v, expected %+v", got, info)
	}
}

// The .cells header has no structured fields for user or rule, so decode
// folds them into the comment.
func TestCellsUserAndRuleFoldIntoComment(t *testing.T) {
	text, err := Encode(testMatrix(), "cells", FileInfo{User: "pji", Rule: "B36/S23"})
	if err != nil {
		t.Fatal(err)
	}
	_, info, err := Decode(text, "cells")
	if err != nil {
		t.Fatal(err)
	}
	if info.Comment != "pji\nB36/S23" {
		t.Errorf("comment = %q, expected the folded user and rule", info.Comment)
	}
	if info.User != "" || info.Rule != "" {
		t.Errorf("user/rule decoded as structured fields: %+v", info)
	}
}
