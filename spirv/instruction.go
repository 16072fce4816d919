package spirv

// Operand layouts are decoded in decode.go; rendering lives in disasm.go.

// Instruction is one decoded SPIR-V instruction. Words holds the raw operand
// words that follow the opcode word. Imm is the typed view of those operands,
// one of the *XxxImm types below, nil for opcodes without operands, or
// *UnsupportedImm for opcodes the decoder has no layout for.
type Instruction struct {
	Imm    any
	Words  []uint32
	Offset int
	Opcode Opcode
}

// WordCount returns the instruction's encoded length in words.
func (i *Instruction) WordCount() int {
	return len(i.Words) + 1
}

// Supported reports whether the operands were decoded into a typed view.
func (i *Instruction) Supported() bool {
	_, unsupported := i.Imm.(*UnsupportedImm)
	return !unsupported
}

// ResultID returns the ID this instruction defines, if any.
func (i *Instruction) ResultID() (uint32, bool) {
	if r, ok := i.Imm.(interface{ ResultID() uint32 }); ok {
		return r.ResultID(), true
	}
	return 0, false
}

// TypeID returns the result type ID of a value-producing instruction.
func (i *Instruction) TypeID() (uint32, bool) {
	if r, ok := i.Imm.(interface{ TypeID() uint32 }); ok {
		return r.TypeID(), true
	}
	return 0, false
}

// Def is embedded by instructions that define an untyped result ID: types,
// labels, strings and extended instruction set imports.
type Def struct {
	Result uint32
}

// ResultID returns the defined ID.
func (d Def) ResultID() uint32 { return d.Result }

// Typed is embedded by instructions that produce a value of a result type.
type Typed struct {
	ResultType uint32
	Result     uint32
}

// ResultID returns the defined ID.
func (t Typed) ResultID() uint32 { return t.Result }

// TypeID returns the result type ID.
func (t Typed) TypeID() uint32 { return t.ResultType }

// UnsupportedImm preserves the raw payload of an opcode without a decoder.
type UnsupportedImm struct {
	RawWords []uint32
	Opcode   uint16
}

// StringImm holds the literal of OpSourceContinued, OpSourceExtension,
// OpExtension and OpModuleProcessed.
type StringImm struct {
	Value string
}

// SourceImm is OpSource.
type SourceImm struct {
	File     *uint32
	Source   string
	Language SourceLanguage
	Version  uint32
}

// NameImm is OpName.
type NameImm struct {
	Name   string
	Target uint32
}

// MemberNameImm is OpMemberName.
type MemberNameImm struct {
	Name   string
	Type   uint32
	Member uint32
}

// StringResultImm is OpString and OpExtInstImport.
type StringResultImm struct {
	Value string
	Def
}

// LineImm is OpLine.
type LineImm struct {
	File   uint32
	Line   uint32
	Column uint32
}

// ExtInstImm is OpExtInst.
type ExtInstImm struct {
	Operands []uint32
	Typed
	Set         uint32
	Instruction uint32
}

// MemoryModelImm is OpMemoryModel.
type MemoryModelImm struct {
	Addressing AddressingModel
	Memory     MemoryModel
}

// EntryPointImm is OpEntryPoint. Interface lists the global variables the
// entry point statically uses.
type EntryPointImm struct {
	Name           string
	Interface      []uint32
	ExecutionModel ExecutionModel
	Function       uint32
}

// ExecutionModeImm is OpExecutionMode and OpExecutionModeId.
type ExecutionModeImm struct {
	Literals   []uint32
	EntryPoint uint32
	Mode       ExecutionMode
}

// CapabilityImm is OpCapability.
type CapabilityImm struct {
	Capability Capability
}

// TypeImm is an operand-less type declaration (OpTypeVoid, OpTypeBool,
// OpTypeSampler, ...).
type TypeImm struct {
	Def
}

// TypeIntImm is OpTypeInt.
type TypeIntImm struct {
	Def
	Width  uint32
	Signed bool
}

// TypeFloatImm is OpTypeFloat. Encoding is the optional FP encoding operand.
type TypeFloatImm struct {
	Encoding *uint32
	Def
	Width uint32
}

// TypeVectorImm is OpTypeVector.
type TypeVectorImm struct {
	Def
	ComponentType  uint32
	ComponentCount uint32
}

// TypeMatrixImm is OpTypeMatrix.
type TypeMatrixImm struct {
	Def
	ColumnType  uint32
	ColumnCount uint32
}

// TypeImageImm is OpTypeImage.
type TypeImageImm struct {
	Access *AccessQualifier
	Def
	SampledType uint32
	Dim         Dim
	Depth       uint32
	Arrayed     uint32
	MS          uint32
	Sampled     uint32
	Format      ImageFormat
}

// TypeSampledImageImm is OpTypeSampledImage.
type TypeSampledImageImm struct {
	Def
	ImageType uint32
}

// TypeArrayImm is OpTypeArray. Length is the ID of a constant.
type TypeArrayImm struct {
	Def
	ElementType uint32
	Length      uint32
}

// TypeRuntimeArrayImm is OpTypeRuntimeArray.
type TypeRuntimeArrayImm struct {
	Def
	ElementType uint32
}

// TypeStructImm is OpTypeStruct.
type TypeStructImm struct {
	MemberTypes []uint32
	Def
}

// TypeOpaqueImm is OpTypeOpaque.
type TypeOpaqueImm struct {
	Name string
	Def
}

// TypePointerImm is OpTypePointer. Type is the pointee type ID.
type TypePointerImm struct {
	Def
	StorageClass StorageClass
	Type         uint32
}

// TypeFunctionImm is OpTypeFunction.
type TypeFunctionImm struct {
	ParameterTypes []uint32
	Def
	ReturnType uint32
}

// ResultImm is a value with no operands beyond its type (OpUndef,
// OpConstantTrue, OpConstantNull, OpFunctionParameter, ...).
type ResultImm struct {
	Typed
}

// ConstantImm is OpConstant and OpSpecConstant. Literal holds the value
// words, low-order word first.
type ConstantImm struct {
	Literal []uint32
	Typed
}

// CompositeImm is OpConstantComposite, OpSpecConstantComposite and
// OpCompositeConstruct.
type CompositeImm struct {
	Constituents []uint32
	Typed
}

// FunctionImm is OpFunction.
type FunctionImm struct {
	Typed
	Control      FunctionControl
	FunctionType uint32
}

// FunctionCallImm is OpFunctionCall.
type FunctionCallImm struct {
	Arguments []uint32
	Typed
	Function uint32
}

// VariableImm is OpVariable. ResultType is always a pointer type.
type VariableImm struct {
	Initializer *uint32
	Typed
	StorageClass StorageClass
}

// LoadImm is OpLoad.
type LoadImm struct {
	MemoryOperands []uint32
	Typed
	Pointer uint32
}

// StoreImm is OpStore.
type StoreImm struct {
	MemoryOperands []uint32
	Pointer        uint32
	Object         uint32
}

// CopyMemoryImm is OpCopyMemory.
type CopyMemoryImm struct {
	MemoryOperands []uint32
	Target         uint32
	Source         uint32
}

// AccessChainImm is OpAccessChain and OpInBoundsAccessChain.
type AccessChainImm struct {
	Indexes []uint32
	Typed
	Base uint32
}

// DecorateImm is OpDecorate, OpDecorateId and OpDecorateString. Extra holds
// the decoration's literal operands.
type DecorateImm struct {
	Extra      []uint32
	Target     uint32
	Decoration Decoration
}

// MemberDecorateImm is OpMemberDecorate and OpMemberDecorateString.
type MemberDecorateImm struct {
	Extra         []uint32
	StructureType uint32
	Member        uint32
	Decoration    Decoration
}

// VectorShuffleImm is OpVectorShuffle.
type VectorShuffleImm struct {
	Components []uint32
	Typed
	Vector1 uint32
	Vector2 uint32
}

// CompositeExtractImm is OpCompositeExtract.
type CompositeExtractImm struct {
	Indexes []uint32
	Typed
	Composite uint32
}

// CompositeInsertImm is OpCompositeInsert.
type CompositeInsertImm struct {
	Indexes []uint32
	Typed
	Object    uint32
	Composite uint32
}

// ImageSampleImm is OpImageSampleImplicitLod, OpImageSampleExplicitLod and
// OpImageFetch. Operands holds the image operands mask and its arguments.
type ImageSampleImm struct {
	Operands []uint32
	Typed
	SampledImage uint32
	Coordinate   uint32
}

// UnaryImm is a value computed from one operand.
type UnaryImm struct {
	Typed
	Operand uint32
}

// BinaryImm is a value computed from two operands.
type BinaryImm struct {
	Typed
	Operand1 uint32
	Operand2 uint32
}

// SelectImm is OpSelect.
type SelectImm struct {
	Typed
	Condition uint32
	Object1   uint32
	Object2   uint32
}

// PhiPair is one incoming (value, parent block) pair of OpPhi.
type PhiPair struct {
	Value  uint32
	Parent uint32
}

// PhiImm is OpPhi.
type PhiImm struct {
	Incoming []PhiPair
	Typed
}

// LabelImm is OpLabel.
type LabelImm struct {
	Def
}

// LoopMergeImm is OpLoopMerge.
type LoopMergeImm struct {
	Parameters     []uint32
	MergeBlock     uint32
	ContinueTarget uint32
	Control        uint32
}

// SelectionMergeImm is OpSelectionMerge.
type SelectionMergeImm struct {
	MergeBlock uint32
	Control    uint32
}

// BranchImm is OpBranch.
type BranchImm struct {
	Target uint32
}

// BranchConditionalImm is OpBranchConditional.
type BranchConditionalImm struct {
	Weights    []uint32
	Condition  uint32
	TrueLabel  uint32
	FalseLabel uint32
}

// SwitchImm is OpSwitch. Targets holds the raw (literal, label) pairs.
type SwitchImm struct {
	Targets  []uint32
	Selector uint32
	Default  uint32
}

// ReturnValueImm is OpReturnValue.
type ReturnValueImm struct {
	Value uint32
}
