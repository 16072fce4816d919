package spirv

import (
	"fmt"

	"github.com/wippyai/spirv-reflect/errors"
	"github.com/wippyai/spirv-reflect/spirv/internal/binary"
)

// Header is the five-word module header.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
}

// VersionString renders the version word as "major.minor".
func (h Header) VersionString() string {
	return fmt.Sprintf("%d.%d", (h.Version>>16)&0xff, (h.Version>>8)&0xff)
}

// GeneratorVendor returns the registered tool ID from the high 16 bits of
// the generator word.
func (h Header) GeneratorVendor() uint16 {
	return uint16(h.Generator >> 16)
}

// GeneratorVersion returns the tool-defined low 16 bits of the generator word.
func (h Header) GeneratorVersion() uint16 {
	return uint16(h.Generator)
}

func readHeader(r *binary.Reader) (Header, error) {
	words, err := r.ReadWords(HeaderWords)
	if err != nil {
		return Header{}, errors.New(errors.PhaseHeader, errors.KindTruncated).
			Offset(r.Position()).
			Detail("header needs %d bytes, have %d", HeaderWords*binary.WordSize, r.Len()).
			Cause(err).
			Build()
	}
	h := Header{
		Magic:     words[0],
		Version:   words[1],
		Generator: words[2],
		Bound:     words[3],
	}
	if err := validateHeader(h, words[4]); err != nil {
		return Header{}, err
	}
	return h, nil
}

func validateHeader(h Header, reserved uint32) error {
	if h.Magic != Magic {
		return errors.New(errors.PhaseHeader, errors.KindInvalidMagic).
			Offset(0).
			Detail("got 0x%08x, want 0x%08x", h.Magic, Magic).
			Build()
	}
	if h.Version < MinVersion || h.Version > MaxVersion {
		return errors.New(errors.PhaseHeader, errors.KindInvalidVersion).
			Offset(4).
			Detail("version 0x%08x outside 1.0 through 1.6", h.Version).
			Build()
	}
	if reserved != 0 {
		return errors.New(errors.PhaseHeader, errors.KindInvalidReserved).
			Offset(16).
			Detail("reserved word is 0x%08x", reserved).
			Build()
	}
	return nil
}
