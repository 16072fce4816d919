package spirv_test

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/wippyai/spirv-reflect/internal/spvtest"
	"github.com/wippyai/spirv-reflect/spirv"
)

func decode(t *testing.T, b *spvtest.Builder) *spirv.Module {
	t.Helper()
	m, err := spirv.Decode(b.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return m
}

// inputShader declares one Input variable per pointee type, each at the
// location of its index, all on a "main" vertex entry point.
func inputShader(pointees func(b *spvtest.Builder) []uint32) (*spvtest.Builder, []uint32) {
	b := spvtest.New()
	fn := b.ID()
	types := pointees(b)
	vars := make([]uint32, len(types))
	for i := range types {
		vars[i] = b.ID()
	}
	b.EntryPoint(spirv.ExecutionModelVertex, fn, "main", vars...)
	for i, v := range vars {
		b.Location(v, uint32(i))
	}
	for i, typ := range types {
		ptr := b.TypePointer(spirv.StorageClassInput, typ)
		b.Emit(spirv.OpVariable, ptr, vars[i], uint32(spirv.StorageClassInput))
	}
	return b, vars
}

func TestInputDescriptions(t *testing.T) {
	b, _ := spvtest.VertexShader("main",
		spvtest.Var{Name: "normal", Location: 1, Components: 3},
		spvtest.Var{Name: "uv", Location: 0, Components: 2},
	)

	got, err := spirv.InputDescriptions(decode(t, b), "")
	if err != nil {
		t.Fatalf("InputDescriptions: %v", err)
	}
	if want := []uint32{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInputDescriptionsOrderIndependent(t *testing.T) {
	vars := []spvtest.Var{
		{Location: 2, Components: 4},
		{Location: 0, Components: 1},
		{Location: 1, Components: 3},
	}
	want := []uint32{1, 3, 4}

	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		ordered := []spvtest.Var{vars[p[0]], vars[p[1]], vars[p[2]]}
		b, _ := spvtest.VertexShader("main", ordered...)
		got, err := spirv.InputDescriptions(decode(t, b), "main")
		if err != nil {
			t.Fatalf("perm %v: %v", p, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("perm %v: got %v, want %v", p, got, want)
		}
	}
}

func TestInputDescriptionsNoInputs(t *testing.T) {
	b, _ := spvtest.VertexShader("main")
	got, err := spirv.InputDescriptions(decode(t, b), "main")
	if err != nil {
		t.Fatalf("InputDescriptions: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no inputs, got %v", got)
	}
}

func TestResolveInputsAttributes(t *testing.T) {
	b, ids := spvtest.VertexShader("main",
		spvtest.Var{Name: "position", Location: 0, Components: 3},
		spvtest.Var{Name: "weight", Location: 1, Components: 1},
	)

	attrs, err := spirv.ResolveInputs(decode(t, b), "main")
	if err != nil {
		t.Fatalf("ResolveInputs: %v", err)
	}
	want := []spirv.InputAttribute{
		{Name: "position", Component: spirv.Scalar{Kind: spirv.ScalarFloat, Width: 32}, Location: 0, VariableID: ids[0], Components: 3},
		{Name: "weight", Component: spirv.Scalar{Kind: spirv.ScalarFloat, Width: 32}, Location: 1, VariableID: ids[1], Components: 1},
	}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("got %+v\nwant %+v", attrs, want)
	}
}

func TestResolveInputsComponentKinds(t *testing.T) {
	b, _ := inputShader(func(b *spvtest.Builder) []uint32 {
		i32 := b.TypeInt(32, true)
		u32 := b.TypeInt(32, false)
		f64 := b.TypeFloat(64)
		return []uint32{b.TypeVector(i32, 4), u32, b.TypeVector(f64, 2)}
	})

	attrs, err := spirv.ResolveInputs(decode(t, b), "")
	if err != nil {
		t.Fatalf("ResolveInputs: %v", err)
	}
	want := []spirv.Scalar{
		{Kind: spirv.ScalarSInt, Width: 32},
		{Kind: spirv.ScalarUInt, Width: 32},
		{Kind: spirv.ScalarFloat, Width: 64},
	}
	counts := []uint32{4, 1, 2}
	for i, a := range attrs {
		if a.Component != want[i] || a.Components != counts[i] {
			t.Errorf("attr %d = %+v", i, a)
		}
	}
}

func TestResolveInputsBoolPointees(t *testing.T) {
	b, _ := inputShader(func(b *spvtest.Builder) []uint32 {
		bl := b.TypeBool()
		return []uint32{bl, b.TypeVector(bl, 2)}
	})

	attrs, err := spirv.ResolveInputs(decode(t, b), "")
	if err != nil {
		t.Fatalf("ResolveInputs: %v", err)
	}
	if len(attrs) != 2 {
		t.Fatalf("got %d attributes, want 2", len(attrs))
	}
	for i, want := range []uint32{1, 2} {
		if attrs[i].Components != want || attrs[i].Component.Kind != spirv.ScalarBool {
			t.Errorf("attr %d = %+v", i, attrs[i])
		}
	}
}

func TestResolveInputsSelectsEntryPoint(t *testing.T) {
	b, _ := spvtest.VertexShader("vs_main", spvtest.Var{Location: 0, Components: 4})
	m := decode(t, b)

	if _, err := spirv.InputDescriptions(m, ""); !stderrors.Is(err, spirv.ErrMissingEntryPoint) {
		t.Errorf("expected ErrMissingEntryPoint for default name, got %v", err)
	}
	got, err := spirv.InputDescriptions(m, "vs_main")
	if err != nil {
		t.Fatalf("InputDescriptions: %v", err)
	}
	if !reflect.DeepEqual(got, []uint32{4}) {
		t.Errorf("got %v, want [4]", got)
	}
}

func TestResolveInputsAmbiguousEntryPoint(t *testing.T) {
	b, _ := spvtest.VertexShader("main", spvtest.Var{Location: 0, Components: 4})
	b.EntryPoint(spirv.ExecutionModelFragment, 1, "main")

	_, err := spirv.InputDescriptions(decode(t, b), "main")
	if !stderrors.Is(err, spirv.ErrAmbiguousEntryPoint) {
		t.Fatalf("expected ErrAmbiguousEntryPoint, got %v", err)
	}
}

func TestResolveInputsNoLocation(t *testing.T) {
	b, ids := spvtest.VertexShader("main",
		spvtest.Var{Location: 0, Components: 4},
		spvtest.Var{Location: -1, Components: 2},
	)

	_, err := spirv.InputDescriptions(decode(t, b), "main")
	if !stderrors.Is(err, spirv.ErrNoLocationDecoration) {
		t.Fatalf("expected ErrNoLocationDecoration, got %v", err)
	}
	if e := asError(t, err); !e.HasID || e.ID != ids[1] {
		t.Errorf("ID = %d, want %d", e.ID, ids[1])
	}
}

func TestResolveInputsSkipsBuiltIns(t *testing.T) {
	b := spvtest.New()
	fn := b.ID()
	pos := b.ID()
	vertexIndex := b.ID()
	b.EntryPoint(spirv.ExecutionModelVertex, fn, "main", vertexIndex, pos)
	b.Location(pos, 0)
	b.Decorate(vertexIndex, spirv.DecorationBuiltIn, uint32(spirv.BuiltInVertexIndex))
	f32 := b.TypeFloat(32)
	i32 := b.TypeInt(32, true)
	vec4 := b.TypeVector(f32, 4)
	b.Emit(spirv.OpVariable, b.TypePointer(spirv.StorageClassInput, vec4), pos, uint32(spirv.StorageClassInput))
	b.Emit(spirv.OpVariable, b.TypePointer(spirv.StorageClassInput, i32), vertexIndex, uint32(spirv.StorageClassInput))

	attrs, err := spirv.ResolveInputs(decode(t, b), "main")
	if err != nil {
		t.Fatalf("ResolveInputs: %v", err)
	}
	if len(attrs) != 1 || attrs[0].VariableID != pos {
		t.Errorf("got %+v, want only %%%d", attrs, pos)
	}
}

func TestResolveInputsIgnoresOtherVariables(t *testing.T) {
	b := spvtest.New()
	fn := b.ID()
	in := b.ID()
	out := b.ID()
	unused := b.ID()
	b.EntryPoint(spirv.ExecutionModelVertex, fn, "main", in, out)
	b.Location(in, 0)
	b.Location(out, 0)
	b.Location(unused, 1)
	f32 := b.TypeFloat(32)
	vec2 := b.TypeVector(f32, 2)
	inPtr := b.TypePointer(spirv.StorageClassInput, vec2)
	b.Emit(spirv.OpVariable, inPtr, in, uint32(spirv.StorageClassInput))
	b.Emit(spirv.OpVariable, b.TypePointer(spirv.StorageClassOutput, vec2), out, uint32(spirv.StorageClassOutput))
	b.Emit(spirv.OpVariable, inPtr, unused, uint32(spirv.StorageClassInput))

	got, err := spirv.InputDescriptions(decode(t, b), "main")
	if err != nil {
		t.Fatalf("InputDescriptions: %v", err)
	}
	if !reflect.DeepEqual(got, []uint32{2}) {
		t.Errorf("got %v, want [2]", got)
	}
}

func TestResolveInputsUnsupportedPointee(t *testing.T) {
	tests := []struct {
		name    string
		pointee func(b *spvtest.Builder) uint32
	}{
		{"matrix", func(b *spvtest.Builder) uint32 {
			return b.TypeMatrix(b.TypeVector(b.TypeFloat(32), 4), 4)
		}},
		{"struct", func(b *spvtest.Builder) uint32 {
			f32 := b.TypeFloat(32)
			id := b.ID()
			b.Emit(spirv.OpTypeStruct, id, f32)
			return id
		}},
		{"void", func(b *spvtest.Builder) uint32 {
			return b.TypeVoid()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := inputShader(func(b *spvtest.Builder) []uint32 {
				return []uint32{tt.pointee(b)}
			})
			_, err := spirv.InputDescriptions(decode(t, b), "main")
			if !stderrors.Is(err, spirv.ErrUnsupportedAttributeType) {
				t.Fatalf("expected ErrUnsupportedAttributeType, got %v", err)
			}
		})
	}
}

func TestResolveInputsUnresolvedType(t *testing.T) {
	b := spvtest.New()
	fn := b.ID()
	v := b.ID()
	b.EntryPoint(spirv.ExecutionModelVertex, fn, "main", v)
	b.Location(v, 0)
	b.Emit(spirv.OpVariable, 77, v, uint32(spirv.StorageClassInput))

	_, err := spirv.InputDescriptions(decode(t, b), "main")
	if !stderrors.Is(err, spirv.ErrUnresolvedID) {
		t.Fatalf("expected ErrUnresolvedID, got %v", err)
	}
}

func TestResolveInputsUnresolvedPointee(t *testing.T) {
	b, _ := inputShader(func(*spvtest.Builder) []uint32 {
		return []uint32{88}
	})

	_, err := spirv.InputDescriptions(decode(t, b), "main")
	if !stderrors.Is(err, spirv.ErrUnresolvedID) {
		t.Fatalf("expected ErrUnresolvedID, got %v", err)
	}
}
