package binary

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/spirv-reflect/errors"
)

func TestReader_ReadU32(t *testing.T) {
	r := NewReader([]byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00})

	v, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if v != 0x07230203 {
		t.Errorf("got 0x%08x, want 0x07230203", v)
	}
	if r.Position() != 4 {
		t.Errorf("Position = %d, want 4", r.Position())
	}

	v, err = r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if v != 0x00010000 {
		t.Errorf("got 0x%08x, want 0x00010000", v)
	}
	if !r.Done() {
		t.Error("expected reader to be done")
	}
}

func TestReader_ReadU32Truncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})
	_, err := r.ReadU32()
	if !stderrors.Is(err, errors.Sentinel(errors.KindTruncated)) {
		t.Fatalf("expected truncated error, got %v", err)
	}
	if r.Position() != 0 {
		t.Errorf("failed read advanced cursor to %d", r.Position())
	}
}

func TestReader_ReadWords(t *testing.T) {
	r := NewReader([]byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0})
	words, err := r.ReadWords(2)
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if len(words) != 2 || words[0] != 1 || words[1] != 2 {
		t.Errorf("got %v", words)
	}
	if r.RemainingWords() != 1 {
		t.Errorf("RemainingWords = %d, want 1", r.RemainingWords())
	}

	if _, err := r.ReadWords(2); err == nil {
		t.Fatal("expected error reading past end")
	}
	if r.Position() != 8 {
		t.Errorf("failed ReadWords moved cursor to %d", r.Position())
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  string
		used  int
	}{
		{"main", []uint32{0x6e69616d, 0x00000000, 0x7}, "main", 2},
		{"short", []uint32{0x00006f70}, "po", 1},
		{"empty", []uint32{0}, "", 1},
		{"unterminated", []uint32{0x64636261}, "abcd", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, used, ok := DecodeString(tt.words)
			if !ok {
				t.Fatal("expected valid UTF-8")
			}
			if got != tt.want || used != tt.used {
				t.Errorf("got (%q, %d), want (%q, %d)", got, used, tt.want, tt.used)
			}
		})
	}
}

func TestDecodeStringInvalidUTF8(t *testing.T) {
	_, _, ok := DecodeString([]uint32{0x0000fffe})
	if ok {
		t.Error("expected invalid UTF-8")
	}
	if raw := RawString([]uint32{0x0000fffe}); len(raw) != 2 {
		t.Errorf("RawString len = %d, want 2", len(raw))
	}
}

func TestEncodeStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "abc", "main", "position", "héllo"} {
		words := EncodeString(s)
		if len(words) != len(s)/4+1 {
			t.Errorf("%q: %d words", s, len(words))
		}
		got, used, ok := DecodeString(words)
		if !ok || got != s || used != len(words) {
			t.Errorf("%q: got (%q, %d, %v)", s, got, used, ok)
		}
	}
}
