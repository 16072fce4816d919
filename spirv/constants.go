package spirv

// SPIR-V binary format magic number and supported version range.
const (
	// Magic is the SPIR-V magic number as read from a little-endian stream.
	Magic uint32 = 0x07230203

	// MinVersion is SPIR-V 1.0.
	MinVersion uint32 = 0x00010000

	// MaxVersion is SPIR-V 1.6.
	MaxVersion uint32 = 0x00010600

	// HeaderWords is the number of words in the module header.
	HeaderWords = 5
)

// Opcode is the low 16 bits of an instruction's first word.
type Opcode uint16

// Opcodes, numbered as in the Khronos SPIR-V registry.
const (
	OpNop                            Opcode = 0
	OpUndef                          Opcode = 1
	OpSourceContinued                Opcode = 2
	OpSource                         Opcode = 3
	OpSourceExtension                Opcode = 4
	OpName                           Opcode = 5
	OpMemberName                     Opcode = 6
	OpString                         Opcode = 7
	OpLine                           Opcode = 8
	OpExtension                      Opcode = 10
	OpExtInstImport                  Opcode = 11
	OpExtInst                        Opcode = 12
	OpMemoryModel                    Opcode = 14
	OpEntryPoint                     Opcode = 15
	OpExecutionMode                  Opcode = 16
	OpCapability                     Opcode = 17
	OpTypeVoid                       Opcode = 19
	OpTypeBool                       Opcode = 20
	OpTypeInt                        Opcode = 21
	OpTypeFloat                      Opcode = 22
	OpTypeVector                     Opcode = 23
	OpTypeMatrix                     Opcode = 24
	OpTypeImage                      Opcode = 25
	OpTypeSampler                    Opcode = 26
	OpTypeSampledImage               Opcode = 27
	OpTypeArray                      Opcode = 28
	OpTypeRuntimeArray               Opcode = 29
	OpTypeStruct                     Opcode = 30
	OpTypeOpaque                     Opcode = 31
	OpTypePointer                    Opcode = 32
	OpTypeFunction                   Opcode = 33
	OpConstantTrue                   Opcode = 41
	OpConstantFalse                  Opcode = 42
	OpConstant                       Opcode = 43
	OpConstantComposite              Opcode = 44
	OpConstantNull                   Opcode = 46
	OpSpecConstantTrue               Opcode = 48
	OpSpecConstantFalse              Opcode = 49
	OpSpecConstant                   Opcode = 50
	OpSpecConstantComposite          Opcode = 51
	OpFunction                       Opcode = 54
	OpFunctionParameter              Opcode = 55
	OpFunctionEnd                    Opcode = 56
	OpFunctionCall                   Opcode = 57
	OpVariable                       Opcode = 59
	OpLoad                           Opcode = 61
	OpStore                          Opcode = 62
	OpCopyMemory                     Opcode = 63
	OpAccessChain                    Opcode = 65
	OpInBoundsAccessChain            Opcode = 66
	OpDecorate                       Opcode = 71
	OpMemberDecorate                 Opcode = 72
	OpVectorExtractDynamic           Opcode = 77
	OpVectorShuffle                  Opcode = 79
	OpCompositeConstruct             Opcode = 80
	OpCompositeExtract               Opcode = 81
	OpCompositeInsert                Opcode = 82
	OpCopyObject                     Opcode = 83
	OpTranspose                      Opcode = 84
	OpSampledImage                   Opcode = 86
	OpImageSampleImplicitLod         Opcode = 87
	OpImageSampleExplicitLod         Opcode = 88
	OpImageFetch                     Opcode = 95
	OpConvertFToU                    Opcode = 109
	OpConvertFToS                    Opcode = 110
	OpConvertSToF                    Opcode = 111
	OpConvertUToF                    Opcode = 112
	OpUConvert                       Opcode = 113
	OpSConvert                       Opcode = 114
	OpFConvert                       Opcode = 115
	OpBitcast                        Opcode = 124
	OpSNegate                        Opcode = 126
	OpFNegate                        Opcode = 127
	OpIAdd                           Opcode = 128
	OpFAdd                           Opcode = 129
	OpISub                           Opcode = 130
	OpFSub                           Opcode = 131
	OpIMul                           Opcode = 132
	OpFMul                           Opcode = 133
	OpUDiv                           Opcode = 134
	OpSDiv                           Opcode = 135
	OpFDiv                           Opcode = 136
	OpUMod                           Opcode = 137
	OpSRem                           Opcode = 138
	OpSMod                           Opcode = 139
	OpFRem                           Opcode = 140
	OpFMod                           Opcode = 141
	OpVectorTimesScalar              Opcode = 142
	OpMatrixTimesScalar              Opcode = 143
	OpVectorTimesMatrix              Opcode = 144
	OpMatrixTimesVector              Opcode = 145
	OpMatrixTimesMatrix              Opcode = 146
	OpOuterProduct                   Opcode = 147
	OpDot                            Opcode = 148
	OpIAddCarry                      Opcode = 149
	OpISubBorrow                     Opcode = 150
	OpUMulExtended                   Opcode = 151
	OpSMulExtended                   Opcode = 152
	OpAny                            Opcode = 154
	OpAll                            Opcode = 155
	OpIsNan                          Opcode = 156
	OpIsInf                          Opcode = 157
	OpLogicalEqual                   Opcode = 164
	OpLogicalNotEqual                Opcode = 165
	OpLogicalOr                      Opcode = 166
	OpLogicalAnd                     Opcode = 167
	OpLogicalNot                     Opcode = 168
	OpSelect                         Opcode = 169
	OpIEqual                         Opcode = 170
	OpINotEqual                      Opcode = 171
	OpUGreaterThan                   Opcode = 172
	OpSGreaterThan                   Opcode = 173
	OpUGreaterThanEqual              Opcode = 174
	OpSGreaterThanEqual              Opcode = 175
	OpULessThan                      Opcode = 176
	OpSLessThan                      Opcode = 177
	OpULessThanEqual                 Opcode = 178
	OpSLessThanEqual                 Opcode = 179
	OpFOrdEqual                      Opcode = 180
	OpFUnordEqual                    Opcode = 181
	OpFOrdNotEqual                   Opcode = 182
	OpFUnordNotEqual                 Opcode = 183
	OpFOrdLessThan                   Opcode = 184
	OpFUnordLessThan                 Opcode = 185
	OpFOrdGreaterThan                Opcode = 186
	OpFUnordGreaterThan              Opcode = 187
	OpFOrdLessThanEqual              Opcode = 188
	OpFUnordLessThanEqual            Opcode = 189
	OpFOrdGreaterThanEqual           Opcode = 190
	OpFUnordGreaterThanEqual         Opcode = 191
	OpShiftRightLogical              Opcode = 194
	OpShiftRightArithmetic           Opcode = 195
	OpShiftLeftLogical               Opcode = 196
	OpBitwiseOr                      Opcode = 197
	OpBitwiseXor                     Opcode = 198
	OpBitwiseAnd                     Opcode = 199
	OpNot                            Opcode = 200
	OpBitReverse                     Opcode = 204
	OpBitCount                       Opcode = 205
	OpDPdx                           Opcode = 207
	OpDPdy                           Opcode = 208
	OpFwidth                         Opcode = 209
	OpPhi                            Opcode = 245
	OpLoopMerge                      Opcode = 246
	OpSelectionMerge                 Opcode = 247
	OpLabel                          Opcode = 248
	OpBranch                         Opcode = 249
	OpBranchConditional              Opcode = 250
	OpSwitch                         Opcode = 251
	OpKill                           Opcode = 252
	OpReturn                         Opcode = 253
	OpReturnValue                    Opcode = 254
	OpUnreachable                    Opcode = 255
	OpNoLine                         Opcode = 317
	OpModuleProcessed                Opcode = 330
	OpExecutionModeID                Opcode = 331
	OpDecorateID                     Opcode = 332
	OpCopyLogical                    Opcode = 400
	OpPtrEqual                       Opcode = 401
	OpPtrNotEqual                    Opcode = 402
	OpPtrDiff                        Opcode = 403
	OpDecorateString                 Opcode = 5632
	OpMemberDecorateString           Opcode = 5633
	OpTerminateInvocation            Opcode = 4416
	OpDemoteToHelperInvocation       Opcode = 5380
	OpIgnoreIntersectionKHR          Opcode = 4448
	OpTerminateRayKHR                Opcode = 4449
	OpTypeAccelerationStructureKHR   Opcode = 5341
	OpTypeRayQueryKHR                Opcode = 4472
	OpImageSampleFootprintNV         Opcode = 5283
	OpGroupNonUniformPartitionNV     Opcode = 5296
	OpWritePackedPrimitiveIndices4x8 Opcode = 5299
)

// StorageClass is the storage class operand of OpVariable and OpTypePointer.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Decoration is the decoration operand of OpDecorate and OpMemberDecorate.
type Decoration uint32

const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecID           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationBuiltIn          Decoration = 11
	DecorationNoPerspective    Decoration = 13
	DecorationFlat             Decoration = 14
	DecorationCentroid         Decoration = 16
	DecorationInvariant        Decoration = 18
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationIndex            Decoration = 32
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
)

// ExecutionModel is the execution model operand of OpEntryPoint.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// AddressingModel is the first operand of OpMemoryModel.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel is the second operand of OpMemoryModel.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

// Capability is the operand of OpCapability.
type Capability uint32

const (
	CapabilityMatrix  Capability = 0
	CapabilityShader  Capability = 1
	CapabilityFloat16 Capability = 9
	CapabilityFloat64 Capability = 10
	CapabilityInt64   Capability = 11
	CapabilityInt16   Capability = 22
	CapabilityInt8    Capability = 39
)

// SourceLanguage is the first operand of OpSource.
type SourceLanguage uint32

// ExecutionMode is the mode operand of OpExecutionMode.
type ExecutionMode uint32

// Dim is the dimensionality operand of OpTypeImage.
type Dim uint32

// ImageFormat is the format operand of OpTypeImage.
type ImageFormat uint32

// AccessQualifier is the optional trailing operand of OpTypeImage.
type AccessQualifier uint32

// BuiltIn is the literal operand of a BuiltIn decoration.
type BuiltIn uint32

const (
	BuiltInPosition      BuiltIn = 0
	BuiltInPointSize     BuiltIn = 1
	BuiltInFragCoord     BuiltIn = 15
	BuiltInVertexIndex   BuiltIn = 42
	BuiltInInstanceIndex BuiltIn = 43
)

// FunctionControl is the control mask operand of OpFunction.
type FunctionControl uint32

const (
	FunctionControlNone       FunctionControl = 0x0
	FunctionControlInline     FunctionControl = 0x1
	FunctionControlDontInline FunctionControl = 0x2
	FunctionControlPure       FunctionControl = 0x4
	FunctionControlConst      FunctionControl = 0x8
)
