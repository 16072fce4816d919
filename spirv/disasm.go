package spirv

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wippyai/spirv-reflect/spirv/internal/binary"
)

// String renders the instruction in assembly syntax with numeric IDs.
func (i *Instruction) String() string {
	return FormatInstruction(i, nil)
}

// FormatInstruction renders inst in assembly syntax. IDs with an entry in
// names are printed as %name, others as %N.
func FormatInstruction(inst *Instruction, names map[uint32]string) string {
	f := formatter{names: names}
	f.instruction(inst)
	return f.String()
}

// Disassemble writes a header comment block followed by one line per
// instruction. Debug names from OpName are used for IDs.
func Disassemble(w io.Writer, m *Module) error {
	names := m.Names()
	var b strings.Builder
	b.WriteString("; SPIR-V\n")
	fmt.Fprintf(&b, "; Version: %s\n", m.VersionString())
	fmt.Fprintf(&b, "; Generator: 0x%08x\n", m.Generator)
	fmt.Fprintf(&b, "; Bound: %d\n", m.Bound)
	b.WriteString("; Schema: 0\n")
	for i := range m.Instructions {
		b.WriteString(FormatInstruction(&m.Instructions[i], names))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// resultColumn is the width of the "%id = " column, matching spirv-dis.
const resultColumn = 15

type formatter struct {
	names  map[uint32]string
	result string
	ops    []string
	op     Opcode
}

func (f *formatter) String() string {
	var b strings.Builder
	if f.result != "" {
		lhs := f.result + " = "
		if pad := resultColumn - len(lhs); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(lhs)
	} else {
		b.WriteString(strings.Repeat(" ", resultColumn))
	}
	b.WriteString(f.op.String())
	for _, o := range f.ops {
		b.WriteByte(' ')
		b.WriteString(o)
	}
	return b.String()
}

func (f *formatter) id(v uint32) string {
	if name, ok := f.names[v]; ok && name != "" {
		return "%" + name
	}
	return "%" + strconv.FormatUint(uint64(v), 10)
}

func (f *formatter) add(ops ...string) {
	f.ops = append(f.ops, ops...)
}

func (f *formatter) ids(vs []uint32) {
	for _, v := range vs {
		f.add(f.id(v))
	}
}

func (f *formatter) lits(vs []uint32) {
	for _, v := range vs {
		f.add(strconv.FormatUint(uint64(v), 10))
	}
}

func (f *formatter) typed(t Typed) {
	f.result = f.id(t.Result)
	f.add(f.id(t.ResultType))
}

func (f *formatter) instruction(inst *Instruction) {
	f.op = inst.Opcode
	switch imm := inst.Imm.(type) {
	case nil:
	case *UnsupportedImm:
		f.lits(imm.RawWords)
	case *StringImm:
		f.add(strconv.Quote(imm.Value))
	case *SourceImm:
		f.add(imm.Language.String(), strconv.FormatUint(uint64(imm.Version), 10))
		if imm.File != nil {
			f.add(f.id(*imm.File))
		}
		if imm.Source != "" {
			f.add(strconv.Quote(imm.Source))
		}
	case *NameImm:
		// Never substitute the name being declared.
		f.add("%"+strconv.FormatUint(uint64(imm.Target), 10), strconv.Quote(imm.Name))
	case *MemberNameImm:
		f.add(f.id(imm.Type), strconv.FormatUint(uint64(imm.Member), 10), strconv.Quote(imm.Name))
	case *StringResultImm:
		f.result = f.id(imm.Result)
		f.add(strconv.Quote(imm.Value))
	case *LineImm:
		f.add(f.id(imm.File))
		f.lits([]uint32{imm.Line, imm.Column})
	case *ExtInstImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Set), strconv.FormatUint(uint64(imm.Instruction), 10))
		f.ids(imm.Operands)
	case *MemoryModelImm:
		f.add(imm.Addressing.String(), imm.Memory.String())
	case *EntryPointImm:
		f.add(imm.ExecutionModel.String(), f.id(imm.Function), strconv.Quote(imm.Name))
		f.ids(imm.Interface)
	case *ExecutionModeImm:
		f.add(f.id(imm.EntryPoint), imm.Mode.String())
		f.lits(imm.Literals)
	case *CapabilityImm:
		f.add(imm.Capability.String())
	case *TypeImm:
		f.result = f.id(imm.Result)
	case *TypeIntImm:
		f.result = f.id(imm.Result)
		signed := "0"
		if imm.Signed {
			signed = "1"
		}
		f.add(strconv.FormatUint(uint64(imm.Width), 10), signed)
	case *TypeFloatImm:
		f.result = f.id(imm.Result)
		f.lits([]uint32{imm.Width})
		if imm.Encoding != nil {
			f.lits([]uint32{*imm.Encoding})
		}
	case *TypeVectorImm:
		f.result = f.id(imm.Result)
		f.add(f.id(imm.ComponentType), strconv.FormatUint(uint64(imm.ComponentCount), 10))
	case *TypeMatrixImm:
		f.result = f.id(imm.Result)
		f.add(f.id(imm.ColumnType), strconv.FormatUint(uint64(imm.ColumnCount), 10))
	case *TypeImageImm:
		f.result = f.id(imm.Result)
		f.add(f.id(imm.SampledType), imm.Dim.String())
		f.lits([]uint32{imm.Depth, imm.Arrayed, imm.MS, imm.Sampled})
		f.add(imm.Format.String())
		if imm.Access != nil {
			f.add(imm.Access.String())
		}
	case *TypeSampledImageImm:
		f.result = f.id(imm.Result)
		f.add(f.id(imm.ImageType))
	case *TypeArrayImm:
		f.result = f.id(imm.Result)
		f.add(f.id(imm.ElementType), f.id(imm.Length))
	case *TypeRuntimeArrayImm:
		f.result = f.id(imm.Result)
		f.add(f.id(imm.ElementType))
	case *TypeStructImm:
		f.result = f.id(imm.Result)
		f.ids(imm.MemberTypes)
	case *TypeOpaqueImm:
		f.result = f.id(imm.Result)
		f.add(strconv.Quote(imm.Name))
	case *TypePointerImm:
		f.result = f.id(imm.Result)
		f.add(imm.StorageClass.String(), f.id(imm.Type))
	case *TypeFunctionImm:
		f.result = f.id(imm.Result)
		f.add(f.id(imm.ReturnType))
		f.ids(imm.ParameterTypes)
	case *ResultImm:
		f.typed(imm.Typed)
	case *ConstantImm:
		f.typed(imm.Typed)
		f.lits(imm.Literal)
	case *CompositeImm:
		f.typed(imm.Typed)
		f.ids(imm.Constituents)
	case *FunctionImm:
		f.typed(imm.Typed)
		f.add(imm.Control.String(), f.id(imm.FunctionType))
	case *FunctionCallImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Function))
		f.ids(imm.Arguments)
	case *VariableImm:
		f.typed(imm.Typed)
		f.add(imm.StorageClass.String())
		if imm.Initializer != nil {
			f.add(f.id(*imm.Initializer))
		}
	case *LoadImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Pointer))
		f.lits(imm.MemoryOperands)
	case *StoreImm:
		f.add(f.id(imm.Pointer), f.id(imm.Object))
		f.lits(imm.MemoryOperands)
	case *CopyMemoryImm:
		f.add(f.id(imm.Target), f.id(imm.Source))
		f.lits(imm.MemoryOperands)
	case *AccessChainImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Base))
		f.ids(imm.Indexes)
	case *DecorateImm:
		f.add(f.id(imm.Target), imm.Decoration.String())
		f.decorationExtra(inst.Opcode, imm.Decoration, imm.Extra)
	case *MemberDecorateImm:
		f.add(f.id(imm.StructureType), strconv.FormatUint(uint64(imm.Member), 10), imm.Decoration.String())
		f.decorationExtra(inst.Opcode, imm.Decoration, imm.Extra)
	case *VectorShuffleImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Vector1), f.id(imm.Vector2))
		f.lits(imm.Components)
	case *CompositeExtractImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Composite))
		f.lits(imm.Indexes)
	case *CompositeInsertImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Object), f.id(imm.Composite))
		f.lits(imm.Indexes)
	case *ImageSampleImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.SampledImage), f.id(imm.Coordinate))
		if len(imm.Operands) > 0 {
			f.lits(imm.Operands[:1])
			f.ids(imm.Operands[1:])
		}
	case *UnaryImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Operand))
	case *BinaryImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Operand1), f.id(imm.Operand2))
	case *SelectImm:
		f.typed(imm.Typed)
		f.add(f.id(imm.Condition), f.id(imm.Object1), f.id(imm.Object2))
	case *PhiImm:
		f.typed(imm.Typed)
		for _, p := range imm.Incoming {
			f.add(f.id(p.Value), f.id(p.Parent))
		}
	case *LabelImm:
		f.result = f.id(imm.Result)
	case *LoopMergeImm:
		f.add(f.id(imm.MergeBlock), f.id(imm.ContinueTarget), loopControl(imm.Control))
		f.lits(imm.Parameters)
	case *SelectionMergeImm:
		f.add(f.id(imm.MergeBlock), selectionControl(imm.Control))
	case *BranchImm:
		f.add(f.id(imm.Target))
	case *BranchConditionalImm:
		f.add(f.id(imm.Condition), f.id(imm.TrueLabel), f.id(imm.FalseLabel))
		f.lits(imm.Weights)
	case *SwitchImm:
		f.add(f.id(imm.Selector), f.id(imm.Default))
		for i := 0; i+1 < len(imm.Targets); i += 2 {
			f.add(strconv.FormatUint(uint64(imm.Targets[i]), 10), f.id(imm.Targets[i+1]))
		}
	case *ReturnValueImm:
		f.add(f.id(imm.Value))
	default:
		f.lits(inst.Words)
	}
}

func (f *formatter) decorationExtra(op Opcode, d Decoration, extra []uint32) {
	switch {
	case op == OpDecorateString || op == OpMemberDecorateString:
		for len(extra) > 0 {
			s, used, _ := binary.DecodeString(extra)
			f.add(strconv.Quote(s))
			extra = extra[used:]
		}
	case op == OpDecorateID:
		f.ids(extra)
	case d == DecorationBuiltIn && len(extra) > 0:
		f.add(BuiltIn(extra[0]).String())
		f.lits(extra[1:])
	default:
		f.lits(extra)
	}
}

func loopControl(c uint32) string {
	switch c {
	case 0:
		return "None"
	case 1:
		return "Unroll"
	case 2:
		return "DontUnroll"
	default:
		return "0x" + strconv.FormatUint(uint64(c), 16)
	}
}

func selectionControl(c uint32) string {
	switch c {
	case 0:
		return "None"
	case 1:
		return "Flatten"
	case 2:
		return "DontFlatten"
	default:
		return "0x" + strconv.FormatUint(uint64(c), 16)
	}
}
