package spirv

import (
	"go.uber.org/zap"

	"github.com/wippyai/spirv-reflect/errors"
	"github.com/wippyai/spirv-reflect/spirv/internal/binary"
)

// Sentinels for errors.Is. Each matches on Kind regardless of Phase.
var (
	ErrTruncated                = errors.Sentinel(errors.KindTruncated)
	ErrInvalidMagic             = errors.Sentinel(errors.KindInvalidMagic)
	ErrInvalidVersion           = errors.Sentinel(errors.KindInvalidVersion)
	ErrInvalidReserved          = errors.Sentinel(errors.KindInvalidReserved)
	ErrMalformedInstruction     = errors.Sentinel(errors.KindMalformedInstruction)
	ErrTruncatedInstruction     = errors.Sentinel(errors.KindTruncatedInstruction)
	ErrInvalidUTF8              = errors.Sentinel(errors.KindInvalidUTF8)
	ErrMissingEntryPoint        = errors.Sentinel(errors.KindMissingEntryPoint)
	ErrAmbiguousEntryPoint      = errors.Sentinel(errors.KindAmbiguousEntryPoint)
	ErrNoLocationDecoration     = errors.Sentinel(errors.KindNoLocationDecoration)
	ErrUnsupportedAttributeType = errors.Sentinel(errors.KindUnsupportedAttributeType)
	ErrUnresolvedID             = errors.Sentinel(errors.KindUnresolvedID)
	ErrIDOutOfBounds            = errors.Sentinel(errors.KindIDOutOfBounds)
	ErrDuplicateID              = errors.Sentinel(errors.KindDuplicateID)
)

// Decode parses a SPIR-V binary. The input is not retained; every decoded
// string and operand slice is owned by the returned module. Decoding stops
// at the first malformed instruction.
func Decode(data []byte) (*Module, error) {
	r := binary.NewReader(data)

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	m := &Module{
		Header:       h,
		Instructions: make([]Instruction, 0, r.RemainingWords()/4),
		results:      make(map[uint32]int),
	}

	for !r.Done() {
		inst, err := decodeInstruction(r)
		if err != nil {
			return nil, err
		}
		if !inst.Supported() {
			Logger().Debug("unsupported opcode",
				zap.Uint16("opcode", uint16(inst.Opcode)),
				zap.String("name", inst.Opcode.String()),
				zap.Int("offset", inst.Offset))
		}
		m.add(inst)
	}

	return m, nil
}

func decodeInstruction(r *binary.Reader) (Instruction, error) {
	offset := r.Position()

	first, err := r.ReadU32()
	if err != nil {
		return Instruction{}, errors.New(errors.PhaseDecode, errors.KindTruncatedInstruction).
			Offset(offset).
			Detail("%d trailing bytes do not form a word", r.Len()).
			Cause(err).
			Build()
	}

	wordCount := int(first >> 16)
	op := Opcode(first & 0xffff)

	if wordCount == 0 {
		return Instruction{}, errors.New(errors.PhaseDecode, errors.KindMalformedInstruction).
			Offset(offset).
			Opcode(uint16(op)).
			Detail("word count is zero").
			Build()
	}

	words, err := r.ReadWords(wordCount - 1)
	if err != nil {
		return Instruction{}, errors.New(errors.PhaseDecode, errors.KindTruncatedInstruction).
			Offset(offset).
			Opcode(uint16(op)).
			Detail("%s declares %d words, %d remaining", op, wordCount, r.RemainingWords()+1).
			Cause(err).
			Build()
	}

	inst := Instruction{Opcode: op, Words: words, Offset: offset}

	decode, ok := decoders[op]
	if !ok {
		inst.Imm = &UnsupportedImm{Opcode: uint16(op), RawWords: words}
		return inst, nil
	}

	o := &operands{words: words, op: op, offset: offset}
	imm := decode(o)
	if o.err != nil {
		return Instruction{}, o.err
	}
	if o.pos != len(words) {
		return Instruction{}, errors.New(errors.PhaseDecode, errors.KindMalformedInstruction).
			Offset(offset).
			Opcode(uint16(op)).
			Detail("%s has %d unexpected trailing words", op, len(words)-o.pos).
			Build()
	}
	inst.Imm = imm
	return inst, nil
}

// operands is a cursor over an instruction's payload. The first failure is
// kept in err and later reads return zero values.
type operands struct {
	err    error
	words  []uint32
	pos    int
	offset int
	op     Opcode
}

func (o *operands) word() uint32 {
	if o.err != nil {
		return 0
	}
	if o.pos >= len(o.words) {
		o.err = errors.New(errors.PhaseDecode, errors.KindMalformedInstruction).
			Offset(o.offset).
			Opcode(uint16(o.op)).
			Detail("%s with word count %d is missing operand %d", o.op, len(o.words)+1, o.pos+1).
			Build()
		return 0
	}
	w := o.words[o.pos]
	o.pos++
	return w
}

func (o *operands) optional() *uint32 {
	if o.err != nil || o.pos >= len(o.words) {
		return nil
	}
	w := o.words[o.pos]
	o.pos++
	return &w
}

// rest consumes and copies every remaining word. The result is nil when
// nothing remains.
func (o *operands) rest() []uint32 {
	if o.err != nil || o.pos >= len(o.words) {
		return nil
	}
	out := make([]uint32, len(o.words)-o.pos)
	copy(out, o.words[o.pos:])
	o.pos = len(o.words)
	return out
}

func (o *operands) str() string {
	if o.err != nil {
		return ""
	}
	if o.pos >= len(o.words) {
		o.word()
		return ""
	}
	tail := o.words[o.pos:]
	s, used, ok := binary.DecodeString(tail)
	if !ok {
		o.err = errors.InvalidUTF8(o.offset, uint16(o.op), binary.RawString(tail))
		return ""
	}
	o.pos += used
	return s
}

func (o *operands) optionalStr() string {
	if o.err != nil || o.pos >= len(o.words) {
		return ""
	}
	return o.str()
}

func (o *operands) def() Def {
	return Def{Result: o.word()}
}

func (o *operands) typed() Typed {
	t := o.word()
	return Typed{ResultType: t, Result: o.word()}
}

type decodeFunc func(o *operands) any

// decoders maps each supported opcode to its operand layout. Families that
// share a layout are registered from the opcode lists below.
var decoders = map[Opcode]decodeFunc{
	OpSource: func(o *operands) any {
		imm := &SourceImm{Language: SourceLanguage(o.word()), Version: o.word()}
		imm.File = o.optional()
		imm.Source = o.optionalStr()
		return imm
	},
	OpName: func(o *operands) any {
		return &NameImm{Target: o.word(), Name: o.str()}
	},
	OpMemberName: func(o *operands) any {
		return &MemberNameImm{Type: o.word(), Member: o.word(), Name: o.str()}
	},
	OpLine: func(o *operands) any {
		return &LineImm{File: o.word(), Line: o.word(), Column: o.word()}
	},
	OpExtInst: func(o *operands) any {
		return &ExtInstImm{Typed: o.typed(), Set: o.word(), Instruction: o.word(), Operands: o.rest()}
	},
	OpMemoryModel: func(o *operands) any {
		return &MemoryModelImm{Addressing: AddressingModel(o.word()), Memory: MemoryModel(o.word())}
	},
	OpEntryPoint: func(o *operands) any {
		return &EntryPointImm{
			ExecutionModel: ExecutionModel(o.word()),
			Function:       o.word(),
			Name:           o.str(),
			Interface:      o.rest(),
		}
	},
	OpCapability: func(o *operands) any {
		return &CapabilityImm{Capability: Capability(o.word())}
	},
	OpTypeInt: func(o *operands) any {
		return &TypeIntImm{Def: o.def(), Width: o.word(), Signed: o.word() != 0}
	},
	OpTypeFloat: func(o *operands) any {
		return &TypeFloatImm{Def: o.def(), Width: o.word(), Encoding: o.optional()}
	},
	OpTypeVector: func(o *operands) any {
		return &TypeVectorImm{Def: o.def(), ComponentType: o.word(), ComponentCount: o.word()}
	},
	OpTypeMatrix: func(o *operands) any {
		return &TypeMatrixImm{Def: o.def(), ColumnType: o.word(), ColumnCount: o.word()}
	},
	OpTypeImage: func(o *operands) any {
		imm := &TypeImageImm{
			Def:         o.def(),
			SampledType: o.word(),
			Dim:         Dim(o.word()),
			Depth:       o.word(),
			Arrayed:     o.word(),
			MS:          o.word(),
			Sampled:     o.word(),
			Format:      ImageFormat(o.word()),
		}
		if w := o.optional(); w != nil {
			aq := AccessQualifier(*w)
			imm.Access = &aq
		}
		return imm
	},
	OpTypeSampledImage: func(o *operands) any {
		return &TypeSampledImageImm{Def: o.def(), ImageType: o.word()}
	},
	OpTypeArray: func(o *operands) any {
		return &TypeArrayImm{Def: o.def(), ElementType: o.word(), Length: o.word()}
	},
	OpTypeRuntimeArray: func(o *operands) any {
		return &TypeRuntimeArrayImm{Def: o.def(), ElementType: o.word()}
	},
	OpTypeStruct: func(o *operands) any {
		return &TypeStructImm{Def: o.def(), MemberTypes: o.rest()}
	},
	OpTypeOpaque: func(o *operands) any {
		return &TypeOpaqueImm{Def: o.def(), Name: o.str()}
	},
	OpTypePointer: func(o *operands) any {
		return &TypePointerImm{Def: o.def(), StorageClass: StorageClass(o.word()), Type: o.word()}
	},
	OpTypeFunction: func(o *operands) any {
		return &TypeFunctionImm{Def: o.def(), ReturnType: o.word(), ParameterTypes: o.rest()}
	},
	OpFunction: func(o *operands) any {
		return &FunctionImm{Typed: o.typed(), Control: FunctionControl(o.word()), FunctionType: o.word()}
	},
	OpFunctionCall: func(o *operands) any {
		return &FunctionCallImm{Typed: o.typed(), Function: o.word(), Arguments: o.rest()}
	},
	OpVariable: func(o *operands) any {
		return &VariableImm{Typed: o.typed(), StorageClass: StorageClass(o.word()), Initializer: o.optional()}
	},
	OpLoad: func(o *operands) any {
		return &LoadImm{Typed: o.typed(), Pointer: o.word(), MemoryOperands: o.rest()}
	},
	OpStore: func(o *operands) any {
		return &StoreImm{Pointer: o.word(), Object: o.word(), MemoryOperands: o.rest()}
	},
	OpCopyMemory: func(o *operands) any {
		return &CopyMemoryImm{Target: o.word(), Source: o.word(), MemoryOperands: o.rest()}
	},
	OpVectorShuffle: func(o *operands) any {
		return &VectorShuffleImm{Typed: o.typed(), Vector1: o.word(), Vector2: o.word(), Components: o.rest()}
	},
	OpCompositeExtract: func(o *operands) any {
		return &CompositeExtractImm{Typed: o.typed(), Composite: o.word(), Indexes: o.rest()}
	},
	OpCompositeInsert: func(o *operands) any {
		return &CompositeInsertImm{Typed: o.typed(), Object: o.word(), Composite: o.word(), Indexes: o.rest()}
	},
	OpSelect: func(o *operands) any {
		return &SelectImm{Typed: o.typed(), Condition: o.word(), Object1: o.word(), Object2: o.word()}
	},
	OpPhi: func(o *operands) any {
		imm := &PhiImm{Typed: o.typed()}
		pairs := o.rest()
		if len(pairs)%2 != 0 {
			o.err = errors.New(errors.PhaseDecode, errors.KindMalformedInstruction).
				Offset(o.offset).
				Opcode(uint16(o.op)).
				Detail("OpPhi has an odd number of incoming operands (%d)", len(pairs)).
				Build()
			return nil
		}
		for i := 0; i < len(pairs); i += 2 {
			imm.Incoming = append(imm.Incoming, PhiPair{Value: pairs[i], Parent: pairs[i+1]})
		}
		return imm
	},
	OpLabel: func(o *operands) any {
		return &LabelImm{Def: o.def()}
	},
	OpLoopMerge: func(o *operands) any {
		return &LoopMergeImm{MergeBlock: o.word(), ContinueTarget: o.word(), Control: o.word(), Parameters: o.rest()}
	},
	OpSelectionMerge: func(o *operands) any {
		return &SelectionMergeImm{MergeBlock: o.word(), Control: o.word()}
	},
	OpBranch: func(o *operands) any {
		return &BranchImm{Target: o.word()}
	},
	OpBranchConditional: func(o *operands) any {
		return &BranchConditionalImm{Condition: o.word(), TrueLabel: o.word(), FalseLabel: o.word(), Weights: o.rest()}
	},
	OpSwitch: func(o *operands) any {
		return &SwitchImm{Selector: o.word(), Default: o.word(), Targets: o.rest()}
	},
	OpReturnValue: func(o *operands) any {
		return &ReturnValueImm{Value: o.word()}
	},
}

var (
	noOperandOps = []Opcode{
		OpNop, OpFunctionEnd, OpKill, OpReturn, OpUnreachable, OpNoLine,
		OpTerminateInvocation, OpDemoteToHelperInvocation,
		OpIgnoreIntersectionKHR, OpTerminateRayKHR,
	}
	stringOps = []Opcode{
		OpSourceContinued, OpSourceExtension, OpExtension, OpModuleProcessed,
	}
	stringResultOps = []Opcode{OpString, OpExtInstImport}
	plainTypeOps    = []Opcode{
		OpTypeVoid, OpTypeBool, OpTypeSampler,
		OpTypeAccelerationStructureKHR, OpTypeRayQueryKHR,
	}
	resultOnlyOps = []Opcode{
		OpUndef, OpConstantTrue, OpConstantFalse, OpConstantNull,
		OpSpecConstantTrue, OpSpecConstantFalse, OpFunctionParameter,
	}
	constantOps    = []Opcode{OpConstant, OpSpecConstant}
	compositeOps   = []Opcode{OpConstantComposite, OpSpecConstantComposite, OpCompositeConstruct}
	accessChainOps = []Opcode{OpAccessChain, OpInBoundsAccessChain}
	decorateOps    = []Opcode{OpDecorate, OpDecorateID, OpDecorateString}
	memberDecoOps  = []Opcode{OpMemberDecorate, OpMemberDecorateString}
	executionOps   = []Opcode{OpExecutionMode, OpExecutionModeID}
	imageSampleOps = []Opcode{OpImageSampleImplicitLod, OpImageSampleExplicitLod, OpImageFetch}
	unaryOps       = []Opcode{
		OpCopyObject, OpTranspose,
		OpConvertFToU, OpConvertFToS, OpConvertSToF, OpConvertUToF,
		OpUConvert, OpSConvert, OpFConvert, OpBitcast,
		OpSNegate, OpFNegate, OpAny, OpAll, OpIsNan, OpIsInf,
		OpLogicalNot, OpNot, OpBitReverse, OpBitCount,
		OpDPdx, OpDPdy, OpFwidth, OpCopyLogical,
	}
	binaryOps = []Opcode{
		OpIAdd, OpFAdd, OpISub, OpFSub, OpIMul, OpFMul,
		OpUDiv, OpSDiv, OpFDiv, OpUMod, OpSRem, OpSMod, OpFRem, OpFMod,
		OpVectorTimesScalar, OpMatrixTimesScalar, OpVectorTimesMatrix,
		OpMatrixTimesVector, OpMatrixTimesMatrix, OpOuterProduct, OpDot,
		OpIAddCarry, OpISubBorrow, OpUMulExtended, OpSMulExtended,
		OpLogicalEqual, OpLogicalNotEqual, OpLogicalOr, OpLogicalAnd,
		OpIEqual, OpINotEqual,
		OpUGreaterThan, OpSGreaterThan, OpUGreaterThanEqual, OpSGreaterThanEqual,
		OpULessThan, OpSLessThan, OpULessThanEqual, OpSLessThanEqual,
		OpFOrdEqual, OpFUnordEqual, OpFOrdNotEqual, OpFUnordNotEqual,
		OpFOrdLessThan, OpFUnordLessThan, OpFOrdGreaterThan, OpFUnordGreaterThan,
		OpFOrdLessThanEqual, OpFUnordLessThanEqual,
		OpFOrdGreaterThanEqual, OpFUnordGreaterThanEqual,
		OpShiftRightLogical, OpShiftRightArithmetic, OpShiftLeftLogical,
		OpBitwiseOr, OpBitwiseXor, OpBitwiseAnd,
		OpPtrEqual, OpPtrNotEqual, OpPtrDiff,
		OpVectorExtractDynamic, OpSampledImage,
	}
)

func register(ops []Opcode, fn decodeFunc) {
	for _, op := range ops {
		decoders[op] = fn
	}
}

func init() {
	register(noOperandOps, func(*operands) any { return nil })
	register(stringOps, func(o *operands) any {
		return &StringImm{Value: o.str()}
	})
	register(stringResultOps, func(o *operands) any {
		return &StringResultImm{Def: o.def(), Value: o.str()}
	})
	register(plainTypeOps, func(o *operands) any {
		return &TypeImm{Def: o.def()}
	})
	register(resultOnlyOps, func(o *operands) any {
		return &ResultImm{Typed: o.typed()}
	})
	register(constantOps, func(o *operands) any {
		return &ConstantImm{Typed: o.typed(), Literal: o.rest()}
	})
	register(compositeOps, func(o *operands) any {
		return &CompositeImm{Typed: o.typed(), Constituents: o.rest()}
	})
	register(accessChainOps, func(o *operands) any {
		return &AccessChainImm{Typed: o.typed(), Base: o.word(), Indexes: o.rest()}
	})
	register(decorateOps, func(o *operands) any {
		return &DecorateImm{Target: o.word(), Decoration: Decoration(o.word()), Extra: o.rest()}
	})
	register(memberDecoOps, func(o *operands) any {
		return &MemberDecorateImm{StructureType: o.word(), Member: o.word(), Decoration: Decoration(o.word()), Extra: o.rest()}
	})
	register(executionOps, func(o *operands) any {
		return &ExecutionModeImm{EntryPoint: o.word(), Mode: ExecutionMode(o.word()), Literals: o.rest()}
	})
	register(imageSampleOps, func(o *operands) any {
		return &ImageSampleImm{Typed: o.typed(), SampledImage: o.word(), Coordinate: o.word(), Operands: o.rest()}
	})
	register(unaryOps, func(o *operands) any {
		return &UnaryImm{Typed: o.typed(), Operand: o.word()}
	})
	register(binaryOps, func(o *operands) any {
		return &BinaryImm{Typed: o.typed(), Operand1: o.word(), Operand2: o.word()}
	})
}
