package codec

import (
	"errors"
	"reflect"
	"testing"
)

func TestPatternDecode(t *testing.T) {
	m, info, err := Decode(".....\n.XXX.\n...X.\n..X..\n.....", "pattern")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !reflect.DeepEqual(m, testMatrix()) {
		t.Errorf("matrix = %v, expected %v", m, testMatrix())
	}
	if info != (FileInfo{}) {
		t.Errorf("pattern decode carried metadata: %+v", info)
	}
}

func TestPatternDecodeLowercaseAndRagged(t *testing.T) {
	m, _, err := Decode("x\n..X", "pattern")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	want := fromStrings(
		"X..",
		"..X",
	)
	if !reflect.DeepEqual(m, want) {
		t.Errorf("matrix = %v, expected %v", m, want)
	}
}

func TestPatternDecodeEmpty(t *testing.T) {
	if _, _, err := Decode("", "pattern"); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(\"\") error = %v, expected ErrDecode", err)
	}
}

func TestPatternEncode(t *testing.T) {
	got, err := Encode(testMatrix(), "pattern", FileInfo{})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "XXX\n..X\n.X."
	if got != want {
		t.Errorf("Encode = %q, expected %q", got, want)
	}
}

func TestPatternRoundTrip(t *testing.T) {
	trimmed := TrimPadding(testMatrix())
	text, err := Encode(trimmed, "pattern", FileInfo{})
	if err != nil {
		t.Fatal(err)
	}
	m, info, err := Decode(text, "pattern")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m, trimmed) {
		t.Errorf("round trip matrix = %v, expected %v", m, trimmed)
	}
	if info != (FileInfo{}) {
		t.Errorf("round trip metadata = %+v, expected empty", info)
	}
}
