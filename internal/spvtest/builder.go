// Package spvtest assembles small SPIR-V binaries for tests.
package spvtest

import (
	"encoding/binary"

	"github.com/wippyai/spirv-reflect/spirv"
)

// Builder appends instructions in emission order. Header fields are written
// as-is by Bytes, so tests can produce invalid headers. A zero Bound is
// replaced by the next unallocated ID.
type Builder struct {
	words     []uint32
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
	Reserved  uint32
	nextID    uint32
}

// New returns a builder with a valid SPIR-V 1.0 header.
func New() *Builder {
	return &Builder{
		Magic:   spirv.Magic,
		Version: spirv.MinVersion,
		nextID:  1,
	}
}

// ID allocates a fresh result ID.
func (b *Builder) ID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

// Emit appends one instruction. The word count is derived from operands.
func (b *Builder) Emit(op spirv.Opcode, operands ...uint32) *Builder {
	wordCount := uint32(len(operands) + 1)
	b.words = append(b.words, wordCount<<16|uint32(op))
	b.words = append(b.words, operands...)
	return b
}

// Raw appends words verbatim, for encoding malformed instructions.
func (b *Builder) Raw(words ...uint32) *Builder {
	b.words = append(b.words, words...)
	return b
}

// Words returns the instruction stream without the header.
func (b *Builder) Words() []uint32 {
	return append([]uint32(nil), b.words...)
}

// Bytes encodes the header and instruction stream little-endian.
func (b *Builder) Bytes() []byte {
	bound := b.Bound
	if bound == 0 {
		bound = b.nextID
	}
	header := []uint32{b.Magic, b.Version, b.Generator, bound, b.Reserved}

	buf := make([]byte, (len(header)+len(b.words))*4)
	off := 0
	for _, w := range header {
		binary.LittleEndian.PutUint32(buf[off:], w)
		off += 4
	}
	for _, w := range b.words {
		binary.LittleEndian.PutUint32(buf[off:], w)
		off += 4
	}
	return buf
}

// String encodes s as a NUL-terminated literal padded to a word boundary.
func String(s string) []uint32 {
	raw := append([]byte(s), 0)
	for len(raw)%4 != 0 {
		raw = append(raw, 0)
	}
	words := make([]uint32, 0, len(raw)/4)
	for i := 0; i < len(raw); i += 4 {
		words = append(words, binary.LittleEndian.Uint32(raw[i:]))
	}
	return words
}

// Cat concatenates operand groups, for instructions mixing literals and
// strings.
func Cat(groups ...[]uint32) []uint32 {
	var out []uint32
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
