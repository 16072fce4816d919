package spvtest

import "github.com/wippyai/spirv-reflect/spirv"

// Capability emits OpCapability.
func (b *Builder) Capability(c spirv.Capability) *Builder {
	return b.Emit(spirv.OpCapability, uint32(c))
}

// MemoryModel emits OpMemoryModel.
func (b *Builder) MemoryModel(a spirv.AddressingModel, m spirv.MemoryModel) *Builder {
	return b.Emit(spirv.OpMemoryModel, uint32(a), uint32(m))
}

// EntryPoint emits OpEntryPoint with the given interface IDs.
func (b *Builder) EntryPoint(model spirv.ExecutionModel, fn uint32, name string, iface ...uint32) *Builder {
	return b.Emit(spirv.OpEntryPoint, Cat([]uint32{uint32(model), fn}, String(name), iface)...)
}

// Name emits OpName.
func (b *Builder) Name(id uint32, name string) *Builder {
	return b.Emit(spirv.OpName, Cat([]uint32{id}, String(name))...)
}

// Decorate emits OpDecorate.
func (b *Builder) Decorate(id uint32, d spirv.Decoration, extra ...uint32) *Builder {
	return b.Emit(spirv.OpDecorate, Cat([]uint32{id, uint32(d)}, extra)...)
}

// Location decorates id with Location loc.
func (b *Builder) Location(id, loc uint32) *Builder {
	return b.Decorate(id, spirv.DecorationLocation, loc)
}

// TypeVoid emits OpTypeVoid and returns its ID.
func (b *Builder) TypeVoid() uint32 {
	id := b.ID()
	b.Emit(spirv.OpTypeVoid, id)
	return id
}

// TypeBool emits OpTypeBool and returns its ID.
func (b *Builder) TypeBool() uint32 {
	id := b.ID()
	b.Emit(spirv.OpTypeBool, id)
	return id
}

// TypeFloat emits OpTypeFloat and returns its ID.
func (b *Builder) TypeFloat(width uint32) uint32 {
	id := b.ID()
	b.Emit(spirv.OpTypeFloat, id, width)
	return id
}

// TypeInt emits OpTypeInt and returns its ID.
func (b *Builder) TypeInt(width uint32, signed bool) uint32 {
	id := b.ID()
	s := uint32(0)
	if signed {
		s = 1
	}
	b.Emit(spirv.OpTypeInt, id, width, s)
	return id
}

// TypeVector emits OpTypeVector and returns its ID.
func (b *Builder) TypeVector(component, count uint32) uint32 {
	id := b.ID()
	b.Emit(spirv.OpTypeVector, id, component, count)
	return id
}

// TypeMatrix emits OpTypeMatrix and returns its ID.
func (b *Builder) TypeMatrix(column, count uint32) uint32 {
	id := b.ID()
	b.Emit(spirv.OpTypeMatrix, id, column, count)
	return id
}

// TypePointer emits OpTypePointer and returns its ID.
func (b *Builder) TypePointer(sc spirv.StorageClass, pointee uint32) uint32 {
	id := b.ID()
	b.Emit(spirv.OpTypePointer, id, uint32(sc), pointee)
	return id
}

// TypeFunction emits OpTypeFunction and returns its ID.
func (b *Builder) TypeFunction(ret uint32, params ...uint32) uint32 {
	id := b.ID()
	b.Emit(spirv.OpTypeFunction, Cat([]uint32{id, ret}, params)...)
	return id
}

// Variable emits OpVariable and returns its ID.
func (b *Builder) Variable(ptr uint32, sc spirv.StorageClass) uint32 {
	id := b.ID()
	b.Emit(spirv.OpVariable, ptr, id, uint32(sc))
	return id
}

// EmptyFunction emits a void function with a single block that returns.
// The function ID must have been allocated by the caller, since entry points
// reference it before its definition.
func (b *Builder) EmptyFunction(fn, void, fnType uint32) *Builder {
	b.Emit(spirv.OpFunction, void, fn, uint32(spirv.FunctionControlNone), fnType)
	b.Emit(spirv.OpLabel, b.ID())
	b.Emit(spirv.OpReturn)
	return b.Emit(spirv.OpFunctionEnd)
}

// Var describes one vertex input for VertexShader. Location < 0 leaves the
// variable undecorated.
type Var struct {
	Name       string
	Location   int
	Components uint32
}

// VertexShader assembles a vertex shader named entry whose interface holds
// one Input variable of vec<Components> float per v, declared in order.
// Components of 1 declares a scalar float. It returns the builder and the
// variable IDs.
func VertexShader(entry string, vars ...Var) (*Builder, []uint32) {
	b := New()
	b.Capability(spirv.CapabilityShader)
	b.MemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	fn := b.ID()
	ids := make([]uint32, len(vars))
	for i := range vars {
		ids[i] = b.ID()
	}
	b.EntryPoint(spirv.ExecutionModelVertex, fn, entry, ids...)

	for i, v := range vars {
		if v.Name != "" {
			b.Name(ids[i], v.Name)
		}
		if v.Location >= 0 {
			b.Location(ids[i], uint32(v.Location))
		}
	}

	void := b.TypeVoid()
	fnType := b.TypeFunction(void)
	f32 := b.TypeFloat(32)
	ptrs := make(map[uint32]uint32)
	for i, v := range vars {
		ptr, ok := ptrs[v.Components]
		if !ok {
			pointee := f32
			if v.Components > 1 {
				pointee = b.TypeVector(f32, v.Components)
			}
			ptr = b.TypePointer(spirv.StorageClassInput, pointee)
			ptrs[v.Components] = ptr
		}
		b.Emit(spirv.OpVariable, ptr, ids[i], uint32(spirv.StorageClassInput))
	}

	b.EmptyFunction(fn, void, fnType)
	return b, ids
}
