package spirv_test

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/wippyai/spirv-reflect/internal/spvtest"
	"github.com/wippyai/spirv-reflect/spirv"
)

func TestValidate(t *testing.T) {
	b, _ := spvtest.VertexShader("main", spvtest.Var{Location: 0, Components: 4})
	if err := decode(t, b).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateIDOutOfBounds(t *testing.T) {
	b := spvtest.New()
	b.TypeVoid()
	b.TypeBool()
	b.Bound = 2

	err := decode(t, b).Validate()
	if !stderrors.Is(err, spirv.ErrIDOutOfBounds) {
		t.Fatalf("expected ErrIDOutOfBounds, got %v", err)
	}
	e := asError(t, err)
	if e.ID != 2 || e.Offset != 28 {
		t.Errorf("ID = %d Offset = %d, want 2 and 28", e.ID, e.Offset)
	}
}

func TestValidateZeroID(t *testing.T) {
	b := spvtest.New().Emit(spirv.OpTypeVoid, 0)
	if err := decode(t, b).Validate(); !stderrors.Is(err, spirv.ErrIDOutOfBounds) {
		t.Fatalf("expected ErrIDOutOfBounds, got %v", err)
	}
}

func TestValidateDuplicateID(t *testing.T) {
	b := spvtest.New()
	id := b.TypeVoid()
	b.Emit(spirv.OpTypeBool, id)

	m := decode(t, b)
	if err := m.Validate(); !stderrors.Is(err, spirv.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	// The first definition stays indexed.
	inst, ok := m.Lookup(id)
	if !ok || inst.Opcode != spirv.OpTypeVoid {
		t.Errorf("Lookup(%d) = %v, %v", id, inst, ok)
	}
}

func TestModuleAccessors(t *testing.T) {
	b, ids := spvtest.VertexShader("main",
		spvtest.Var{Name: "a_pos", Location: 0, Components: 2},
	)
	b.Capability(spirv.CapabilityFloat64)
	m := decode(t, b)

	if got := m.Names(); got[ids[0]] != "a_pos" || len(got) != 1 {
		t.Errorf("Names = %v", got)
	}
	want := []spirv.Capability{spirv.CapabilityShader, spirv.CapabilityFloat64}
	if got := m.Capabilities(); !reflect.DeepEqual(got, want) {
		t.Errorf("Capabilities = %v, want %v", got, want)
	}
	if m.UnsupportedCount() != 0 {
		t.Errorf("UnsupportedCount = %d", m.UnsupportedCount())
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{spirv.OpTypeVector.String(), "OpTypeVector"},
		{spirv.OpExecutionModeID.String(), "OpExecutionModeId"},
		{spirv.Opcode(65535).String(), "Op(65535)"},
		{spirv.StorageClassInput.String(), "Input"},
		{spirv.StorageClass(4242).String(), "StorageClass(4242)"},
		{spirv.DecorationLocation.String(), "Location"},
		{spirv.ExecutionModelFragment.String(), "Fragment"},
		{spirv.CapabilityShader.String(), "Shader"},
		{spirv.MemoryModelGLSL450.String(), "GLSL450"},
		{spirv.BuiltInVertexIndex.String(), "VertexIndex"},
		{spirv.Dim(1).String(), "2D"},
		{spirv.FunctionControlNone.String(), "None"},
		{(spirv.FunctionControlInline | spirv.FunctionControlConst).String(), "Inline|Const"},
		{spirv.FunctionControl(0x11).String(), "Inline|0x10"},
		{spirv.ScalarSInt.String(), "int"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
	if !spirv.OpPhi.Known() || spirv.Opcode(65535).Known() {
		t.Error("Known mismatch")
	}
}
