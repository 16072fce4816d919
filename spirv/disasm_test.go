package spirv_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/spirv-reflect/internal/spvtest"
	"github.com/wippyai/spirv-reflect/spirv"
)

func TestInstructionString(t *testing.T) {
	b := spvtest.New()
	b.Capability(spirv.CapabilityShader)
	f32 := b.TypeFloat(32)
	b.TypeVector(f32, 4)
	b.Decorate(9, spirv.DecorationBuiltIn, uint32(spirv.BuiltInPosition))
	b.Emit(spirv.Opcode(4999), 7, 8)
	b.Name(9, "out")
	m := decode(t, b)

	tests := []struct {
		idx  int
		want string
	}{
		{0, "               OpCapability Shader"},
		{1, "          %1 = OpTypeFloat 32"},
		{2, "          %2 = OpTypeVector %1 4"},
		{3, "               OpDecorate %9 BuiltIn Position"},
		{4, "               Op(4999) 7 8"},
		{5, `               OpName %9 "out"`},
	}
	for _, tt := range tests {
		if got := m.Instructions[tt.idx].String(); got != tt.want {
			t.Errorf("instruction %d:\n got %q\nwant %q", tt.idx, got, tt.want)
		}
	}
}

func TestFormatInstructionNames(t *testing.T) {
	b := spvtest.New()
	f32 := b.TypeFloat(32)
	vec := b.TypeVector(f32, 2)
	m := decode(t, b)

	got := spirv.FormatInstruction(&m.Instructions[1], map[uint32]string{f32: "float", vec: "v2float"})
	if strings.TrimSpace(got) != "%v2float = OpTypeVector %float 2" {
		t.Errorf("got %q", got)
	}
}

func TestDisassemble(t *testing.T) {
	b, ids := spvtest.VertexShader("main",
		spvtest.Var{Name: "pos", Location: 0, Components: 3},
	)
	b.Generator = 0x00080001
	m := decode(t, b)

	var buf bytes.Buffer
	if err := spirv.Disassemble(&buf, m); err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	out := buf.String()

	wantPrefix := "; SPIR-V\n; Version: 1.0\n; Generator: 0x00080001\n; Bound: " +
		fmt.Sprint(m.Bound) + "\n; Schema: 0\n"
	if !strings.HasPrefix(out, wantPrefix) {
		t.Errorf("header:\n%s", out)
	}

	for _, want := range []string{
		"OpMemoryModel Logical GLSL450",
		`OpEntryPoint Vertex %1 "main" %pos`,
		fmt.Sprintf(`OpName %%%d "pos"`, ids[0]),
		"OpDecorate %pos Location 0",
		"%pos = OpVariable",
		"OpFunction %",
		"OpFunctionEnd",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	lines := strings.Count(out, "\n")
	if lines != len(m.Instructions)+5 {
		t.Errorf("got %d lines, want %d", lines, len(m.Instructions)+5)
	}
}
