package spirv

import (
	"fmt"

	"github.com/wippyai/spirv-reflect/errors"
)

// Format is a VkFormat enumerant value.
type Format uint32

// Vertex attribute formats, numbered as in VkFormat.
const (
	FormatUndefined          Format = 0
	FormatR32Uint            Format = 98
	FormatR32Sint            Format = 99
	FormatR32Sfloat          Format = 100
	FormatR32G32Uint         Format = 101
	FormatR32G32Sint         Format = 102
	FormatR32G32Sfloat       Format = 103
	FormatR32G32B32Uint      Format = 104
	FormatR32G32B32Sint      Format = 105
	FormatR32G32B32Sfloat    Format = 106
	FormatR32G32B32A32Uint   Format = 107
	FormatR32G32B32A32Sint   Format = 108
	FormatR32G32B32A32Sfloat Format = 109
	FormatR64Sfloat          Format = 112
	FormatR64G64Sfloat       Format = 115
	FormatR64G64B64Sfloat    Format = 118
	FormatR64G64B64A64Sfloat Format = 121
)

var formatNames = map[Format]string{
	FormatUndefined:          "UNDEFINED",
	FormatR32Uint:            "R32_UINT",
	FormatR32Sint:            "R32_SINT",
	FormatR32Sfloat:          "R32_SFLOAT",
	FormatR32G32Uint:         "R32G32_UINT",
	FormatR32G32Sint:         "R32G32_SINT",
	FormatR32G32Sfloat:       "R32G32_SFLOAT",
	FormatR32G32B32Uint:      "R32G32B32_UINT",
	FormatR32G32B32Sint:      "R32G32B32_SINT",
	FormatR32G32B32Sfloat:    "R32G32B32_SFLOAT",
	FormatR32G32B32A32Uint:   "R32G32B32A32_UINT",
	FormatR32G32B32A32Sint:   "R32G32B32A32_SINT",
	FormatR32G32B32A32Sfloat: "R32G32B32A32_SFLOAT",
	FormatR64Sfloat:          "R64_SFLOAT",
	FormatR64G64Sfloat:       "R64G64_SFLOAT",
	FormatR64G64B64Sfloat:    "R64G64B64_SFLOAT",
	FormatR64G64B64A64Sfloat: "R64G64B64A64_SFLOAT",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// Format tables are indexed by component count minus one.
var (
	float32Formats = [4]Format{FormatR32Sfloat, FormatR32G32Sfloat, FormatR32G32B32Sfloat, FormatR32G32B32A32Sfloat}
	sint32Formats  = [4]Format{FormatR32Sint, FormatR32G32Sint, FormatR32G32B32Sint, FormatR32G32B32A32Sint}
	uint32Formats  = [4]Format{FormatR32Uint, FormatR32G32Uint, FormatR32G32B32Uint, FormatR32G32B32A32Uint}
	float64Formats = [4]Format{FormatR64Sfloat, FormatR64G64Sfloat, FormatR64G64B64Sfloat, FormatR64G64B64A64Sfloat}
)

// VertexAttribute mirrors VkVertexInputAttributeDescription.
type VertexAttribute struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

// VertexLayout is a single interleaved vertex buffer binding.
type VertexLayout struct {
	Attributes []VertexAttribute
	Binding    uint32
	Stride     uint32
}

// BuildVertexLayout packs attrs tightly, in order, into one binding.
// Components of unknown type are treated as 32-bit floats.
func BuildVertexLayout(attrs []InputAttribute, binding uint32) (VertexLayout, error) {
	layout := VertexLayout{
		Binding:    binding,
		Attributes: make([]VertexAttribute, 0, len(attrs)),
	}
	for _, a := range attrs {
		format, size, err := attributeFormat(a)
		if err != nil {
			return VertexLayout{}, err
		}
		layout.Attributes = append(layout.Attributes, VertexAttribute{
			Location: a.Location,
			Binding:  binding,
			Format:   format,
			Offset:   layout.Stride,
		})
		layout.Stride += size
	}
	return layout, nil
}

func attributeFormat(a InputAttribute) (Format, uint32, error) {
	if a.Components < 1 || a.Components > 4 {
		return FormatUndefined, 0, errors.New(errors.PhaseResolve, errors.KindUnsupportedAttributeType).
			ID(a.VariableID).
			Detail("location %d has %d components", a.Location, a.Components).
			Build()
	}

	idx := a.Components - 1
	width := a.Component.Width
	if width == 0 {
		width = 32
	}

	var table *[4]Format
	switch {
	case a.Component.Kind == ScalarFloat && width == 64:
		table = &float64Formats
	case width != 32:
		table = nil
	case a.Component.Kind == ScalarSInt:
		table = &sint32Formats
	case a.Component.Kind == ScalarUInt:
		table = &uint32Formats
	case a.Component.Kind == ScalarFloat, a.Component.Kind == ScalarUnknown:
		table = &float32Formats
	}
	if table == nil {
		return FormatUndefined, 0, errors.New(errors.PhaseResolve, errors.KindUnsupportedAttributeType).
			ID(a.VariableID).
			Detail("location %d: no vertex format for %d-bit %s", a.Location, width, a.Component.Kind).
			Build()
	}
	return table[idx], a.Components * width / 8, nil
}
