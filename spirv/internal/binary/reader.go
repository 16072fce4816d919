package binary

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"github.com/wippyai/spirv-reflect/errors"
)

// WordSize is the size of a SPIR-V word in bytes.
const WordSize = 4

// Reader reads little-endian 32-bit words from an immutable byte slice with
// position tracking.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over data. The slice is not copied and must
// not be modified while the reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the number of bytes consumed.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// RemainingWords returns the number of whole unread words.
func (r *Reader) RemainingWords() int {
	return r.Len() / WordSize
}

// Done reports whether every byte has been consumed.
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

// ReadU32 reads exactly 4 bytes as a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if r.Len() < WordSize {
		return 0, errors.Truncated(errors.PhaseRead, r.pos, WordSize, r.Len())
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += WordSize
	return v, nil
}

// ReadWords reads n words. It fails without consuming anything if fewer than
// n words remain.
func (r *Reader) ReadWords(n int) ([]uint32, error) {
	if n < 0 || r.RemainingWords() < n {
		return nil, errors.Truncated(errors.PhaseRead, r.pos, n*WordSize, r.Len())
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(r.data[r.pos:])
		r.pos += WordSize
	}
	return words, nil
}

// DecodeString decodes a NUL-terminated literal string packed into words,
// four bytes per word with the first character in the lowest byte. It
// returns the string and the number of words it occupies including the
// terminator. A string without a terminator consumes every word.
func DecodeString(words []uint32) (string, int, bool) {
	buf := make([]byte, 0, len(words)*WordSize)
	var tmp [WordSize]byte
	for _, w := range words {
		binary.LittleEndian.PutUint32(tmp[:], w)
		buf = append(buf, tmp[:]...)
	}
	used := len(words)
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
		used = i/WordSize + 1
	}
	if !utf8.Valid(buf) {
		return string(buf), used, false
	}
	return string(buf), used, true
}

// RawString returns the bytes DecodeString would interpret, for diagnostics.
func RawString(words []uint32) []byte {
	buf := make([]byte, len(words)*WordSize)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*WordSize:], w)
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return buf
}

// EncodeString packs s into NUL-terminated, zero-padded words.
func EncodeString(s string) []uint32 {
	n := len(s)/WordSize + 1
	buf := make([]byte, n*WordSize)
	copy(buf, s)
	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[i*WordSize:])
	}
	return words
}
