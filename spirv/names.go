package spirv

import "fmt"

var opcodeNames = map[Opcode]string{
	OpNop:                            "OpNop",
	OpUndef:                          "OpUndef",
	OpSourceContinued:                "OpSourceContinued",
	OpSource:                         "OpSource",
	OpSourceExtension:                "OpSourceExtension",
	OpName:                           "OpName",
	OpMemberName:                     "OpMemberName",
	OpString:                         "OpString",
	OpLine:                           "OpLine",
	OpExtension:                      "OpExtension",
	OpExtInstImport:                  "OpExtInstImport",
	OpExtInst:                        "OpExtInst",
	OpMemoryModel:                    "OpMemoryModel",
	OpEntryPoint:                     "OpEntryPoint",
	OpExecutionMode:                  "OpExecutionMode",
	OpCapability:                     "OpCapability",
	OpTypeVoid:                       "OpTypeVoid",
	OpTypeBool:                       "OpTypeBool",
	OpTypeInt:                        "OpTypeInt",
	OpTypeFloat:                      "OpTypeFloat",
	OpTypeVector:                     "OpTypeVector",
	OpTypeMatrix:                     "OpTypeMatrix",
	OpTypeImage:                      "OpTypeImage",
	OpTypeSampler:                    "OpTypeSampler",
	OpTypeSampledImage:               "OpTypeSampledImage",
	OpTypeArray:                      "OpTypeArray",
	OpTypeRuntimeArray:               "OpTypeRuntimeArray",
	OpTypeStruct:                     "OpTypeStruct",
	OpTypeOpaque:                     "OpTypeOpaque",
	OpTypePointer:                    "OpTypePointer",
	OpTypeFunction:                   "OpTypeFunction",
	OpConstantTrue:                   "OpConstantTrue",
	OpConstantFalse:                  "OpConstantFalse",
	OpConstant:                       "OpConstant",
	OpConstantComposite:              "OpConstantComposite",
	OpConstantNull:                   "OpConstantNull",
	OpSpecConstantTrue:               "OpSpecConstantTrue",
	OpSpecConstantFalse:              "OpSpecConstantFalse",
	OpSpecConstant:                   "OpSpecConstant",
	OpSpecConstantComposite:          "OpSpecConstantComposite",
	OpFunction:                       "OpFunction",
	OpFunctionParameter:              "OpFunctionParameter",
	OpFunctionEnd:                    "OpFunctionEnd",
	OpFunctionCall:                   "OpFunctionCall",
	OpVariable:                       "OpVariable",
	OpLoad:                           "OpLoad",
	OpStore:                          "OpStore",
	OpCopyMemory:                     "OpCopyMemory",
	OpAccessChain:                    "OpAccessChain",
	OpInBoundsAccessChain:            "OpInBoundsAccessChain",
	OpDecorate:                       "OpDecorate",
	OpMemberDecorate:                 "OpMemberDecorate",
	OpVectorExtractDynamic:           "OpVectorExtractDynamic",
	OpVectorShuffle:                  "OpVectorShuffle",
	OpCompositeConstruct:             "OpCompositeConstruct",
	OpCompositeExtract:               "OpCompositeExtract",
	OpCompositeInsert:                "OpCompositeInsert",
	OpCopyObject:                     "OpCopyObject",
	OpTranspose:                      "OpTranspose",
	OpSampledImage:                   "OpSampledImage",
	OpImageSampleImplicitLod:         "OpImageSampleImplicitLod",
	OpImageSampleExplicitLod:         "OpImageSampleExplicitLod",
	OpImageFetch:                     "OpImageFetch",
	OpConvertFToU:                    "OpConvertFToU",
	OpConvertFToS:                    "OpConvertFToS",
	OpConvertSToF:                    "OpConvertSToF",
	OpConvertUToF:                    "OpConvertUToF",
	OpUConvert:                       "OpUConvert",
	OpSConvert:                       "OpSConvert",
	OpFConvert:                       "OpFConvert",
	OpBitcast:                        "OpBitcast",
	OpSNegate:                        "OpSNegate",
	OpFNegate:                        "OpFNegate",
	OpIAdd:                           "OpIAdd",
	OpFAdd:                           "OpFAdd",
	OpISub:                           "OpISub",
	OpFSub:                           "OpFSub",
	OpIMul:                           "OpIMul",
	OpFMul:                           "OpFMul",
	OpUDiv:                           "OpUDiv",
	OpSDiv:                           "OpSDiv",
	OpFDiv:                           "OpFDiv",
	OpUMod:                           "OpUMod",
	OpSRem:                           "OpSRem",
	OpSMod:                           "OpSMod",
	OpFRem:                           "OpFRem",
	OpFMod:                           "OpFMod",
	OpVectorTimesScalar:              "OpVectorTimesScalar",
	OpMatrixTimesScalar:              "OpMatrixTimesScalar",
	OpVectorTimesMatrix:              "OpVectorTimesMatrix",
	OpMatrixTimesVector:              "OpMatrixTimesVector",
	OpMatrixTimesMatrix:              "OpMatrixTimesMatrix",
	OpOuterProduct:                   "OpOuterProduct",
	OpDot:                            "OpDot",
	OpIAddCarry:                      "OpIAddCarry",
	OpISubBorrow:                     "OpISubBorrow",
	OpUMulExtended:                   "OpUMulExtended",
	OpSMulExtended:                   "OpSMulExtended",
	OpAny:                            "OpAny",
	OpAll:                            "OpAll",
	OpIsNan:                          "OpIsNan",
	OpIsInf:                          "OpIsInf",
	OpLogicalEqual:                   "OpLogicalEqual",
	OpLogicalNotEqual:                "OpLogicalNotEqual",
	OpLogicalOr:                      "OpLogicalOr",
	OpLogicalAnd:                     "OpLogicalAnd",
	OpLogicalNot:                     "OpLogicalNot",
	OpSelect:                         "OpSelect",
	OpIEqual:                         "OpIEqual",
	OpINotEqual:                      "OpINotEqual",
	OpUGreaterThan:                   "OpUGreaterThan",
	OpSGreaterThan:                   "OpSGreaterThan",
	OpUGreaterThanEqual:              "OpUGreaterThanEqual",
	OpSGreaterThanEqual:              "OpSGreaterThanEqual",
	OpULessThan:                      "OpULessThan",
	OpSLessThan:                      "OpSLessThan",
	OpULessThanEqual:                 "OpULessThanEqual",
	OpSLessThanEqual:                 "OpSLessThanEqual",
	OpFOrdEqual:                      "OpFOrdEqual",
	OpFUnordEqual:                    "OpFUnordEqual",
	OpFOrdNotEqual:                   "OpFOrdNotEqual",
	OpFUnordNotEqual:                 "OpFUnordNotEqual",
	OpFOrdLessThan:                   "OpFOrdLessThan",
	OpFUnordLessThan:                 "OpFUnordLessThan",
	OpFOrdGreaterThan:                "OpFOrdGreaterThan",
	OpFUnordGreaterThan:              "OpFUnordGreaterThan",
	OpFOrdLessThanEqual:              "OpFOrdLessThanEqual",
	OpFUnordLessThanEqual:            "OpFUnordLessThanEqual",
	OpFOrdGreaterThanEqual:           "OpFOrdGreaterThanEqual",
	OpFUnordGreaterThanEqual:         "OpFUnordGreaterThanEqual",
	OpShiftRightLogical:              "OpShiftRightLogical",
	OpShiftRightArithmetic:           "OpShiftRightArithmetic",
	OpShiftLeftLogical:               "OpShiftLeftLogical",
	OpBitwiseOr:                      "OpBitwiseOr",
	OpBitwiseXor:                     "OpBitwiseXor",
	OpBitwiseAnd:                     "OpBitwiseAnd",
	OpNot:                            "OpNot",
	OpBitReverse:                     "OpBitReverse",
	OpBitCount:                       "OpBitCount",
	OpDPdx:                           "OpDPdx",
	OpDPdy:                           "OpDPdy",
	OpFwidth:                         "OpFwidth",
	OpPhi:                            "OpPhi",
	OpLoopMerge:                      "OpLoopMerge",
	OpSelectionMerge:                 "OpSelectionMerge",
	OpLabel:                          "OpLabel",
	OpBranch:                         "OpBranch",
	OpBranchConditional:              "OpBranchConditional",
	OpSwitch:                         "OpSwitch",
	OpKill:                           "OpKill",
	OpReturn:                         "OpReturn",
	OpReturnValue:                    "OpReturnValue",
	OpUnreachable:                    "OpUnreachable",
	OpNoLine:                         "OpNoLine",
	OpModuleProcessed:                "OpModuleProcessed",
	OpExecutionModeID:                "OpExecutionModeId",
	OpDecorateID:                     "OpDecorateId",
	OpCopyLogical:                    "OpCopyLogical",
	OpPtrEqual:                       "OpPtrEqual",
	OpPtrNotEqual:                    "OpPtrNotEqual",
	OpPtrDiff:                        "OpPtrDiff",
	OpDecorateString:                 "OpDecorateString",
	OpMemberDecorateString:           "OpMemberDecorateString",
	OpTerminateInvocation:            "OpTerminateInvocation",
	OpDemoteToHelperInvocation:       "OpDemoteToHelperInvocation",
	OpIgnoreIntersectionKHR:          "OpIgnoreIntersectionKHR",
	OpTerminateRayKHR:                "OpTerminateRayKHR",
	OpTypeAccelerationStructureKHR:   "OpTypeAccelerationStructureKHR",
	OpTypeRayQueryKHR:                "OpTypeRayQueryKHR",
	OpImageSampleFootprintNV:         "OpImageSampleFootprintNV",
	OpGroupNonUniformPartitionNV:     "OpGroupNonUniformPartitionNV",
	OpWritePackedPrimitiveIndices4x8: "OpWritePackedPrimitiveIndices4x8NV",
}

var storageClassNames = map[uint32]string{
	0: "UniformConstant", 1: "Input", 2: "Uniform", 3: "Output",
	4: "Workgroup", 5: "CrossWorkgroup", 6: "Private", 7: "Function",
	8: "Generic", 9: "PushConstant", 10: "AtomicCounter", 11: "Image",
	12: "StorageBuffer", 5328: "CallableDataKHR", 5329: "IncomingCallableDataKHR",
	5338: "RayPayloadKHR", 5339: "HitAttributeKHR", 5342: "IncomingRayPayloadKHR",
	5343: "ShaderRecordBufferKHR", 5349: "PhysicalStorageBuffer",
}

var decorationNames = map[uint32]string{
	0: "RelaxedPrecision", 1: "SpecId", 2: "Block", 3: "BufferBlock",
	4: "RowMajor", 5: "ColMajor", 6: "ArrayStride", 7: "MatrixStride",
	8: "GLSLShared", 9: "GLSLPacked", 10: "CPacked", 11: "BuiltIn",
	13: "NoPerspective", 14: "Flat", 15: "Patch", 16: "Centroid",
	17: "Sample", 18: "Invariant", 19: "Restrict", 20: "Aliased",
	21: "Volatile", 22: "Constant", 23: "Coherent", 24: "NonWritable",
	25: "NonReadable", 26: "Uniform", 27: "UniformId", 28: "SaturatedConversion",
	29: "Stream", 30: "Location", 31: "Component", 32: "Index",
	33: "Binding", 34: "DescriptorSet", 35: "Offset", 36: "XfbBuffer",
	37: "XfbStride", 38: "FuncParamAttr", 39: "FPRoundingMode",
	40: "FPFastMathMode", 41: "LinkageAttributes", 42: "NoContraction",
	43: "InputAttachmentIndex", 44: "Alignment", 45: "MaxByteOffset",
	46: "AlignmentId", 47: "MaxByteOffsetId", 4469: "NoSignedWrap",
	4470: "NoUnsignedWrap", 5300: "NonUniform", 5355: "RestrictPointer",
	5356: "AliasedPointer",
}

var executionModelNames = map[uint32]string{
	0: "Vertex", 1: "TessellationControl", 2: "TessellationEvaluation",
	3: "Geometry", 4: "Fragment", 5: "GLCompute", 6: "Kernel",
	5267: "TaskNV", 5268: "MeshNV", 5313: "RayGenerationKHR",
	5314: "IntersectionKHR", 5315: "AnyHitKHR", 5316: "ClosestHitKHR",
	5317: "MissKHR", 5318: "CallableKHR", 5364: "TaskEXT", 5365: "MeshEXT",
}

var addressingModelNames = map[uint32]string{
	0: "Logical", 1: "Physical32", 2: "Physical64", 5348: "PhysicalStorageBuffer64",
}

var memoryModelNames = map[uint32]string{
	0: "Simple", 1: "GLSL450", 2: "OpenCL", 3: "Vulkan",
}

var capabilityNames = map[uint32]string{
	0: "Matrix", 1: "Shader", 2: "Geometry", 3: "Tessellation",
	4: "Addresses", 5: "Linkage", 6: "Kernel", 7: "Vector16",
	8: "Float16Buffer", 9: "Float16", 10: "Float64", 11: "Int64",
	12: "Int64Atomics", 13: "ImageBasic", 14: "ImageReadWrite", 15: "ImageMipmap",
	17: "Pipes", 18: "Groups", 19: "DeviceEnqueue", 20: "LiteralSampler",
	21: "AtomicStorage", 22: "Int16", 23: "TessellationPointSize",
	24: "GeometryPointSize", 25: "ImageGatherExtended", 27: "StorageImageMultisample",
	28: "UniformBufferArrayDynamicIndexing", 29: "SampledImageArrayDynamicIndexing",
	30: "StorageBufferArrayDynamicIndexing", 31: "StorageImageArrayDynamicIndexing",
	32: "ClipDistance", 33: "CullDistance", 34: "ImageCubeArray",
	35: "SampleRateShading", 36: "ImageRect", 37: "SampledRect",
	38: "GenericPointer", 39: "Int8", 40: "InputAttachment",
	41: "SparseResidency", 42: "MinLod", 43: "Sampled1D", 44: "Image1D",
	45: "SampledCubeArray", 46: "SampledBuffer", 47: "ImageBuffer",
	48: "ImageMSArray", 49: "StorageImageExtendedFormats",
	50: "ImageQuery", 51: "DerivativeControl", 52: "InterpolationFunction",
	53: "TransformFeedback", 54: "GeometryStreams", 55: "StorageImageReadWithoutFormat",
	56: "StorageImageWriteWithoutFormat", 57: "MultiViewport",
	58: "SubgroupDispatch", 59: "NamedBarrier", 60: "PipeStorage",
	61: "GroupNonUniform", 62: "GroupNonUniformVote", 63: "GroupNonUniformArithmetic",
	64: "GroupNonUniformBallot", 65: "GroupNonUniformShuffle",
	66: "GroupNonUniformShuffleRelative", 67: "GroupNonUniformClustered",
	68: "GroupNonUniformQuad", 69: "ShaderLayer", 70: "ShaderViewportIndex",
	4423: "SubgroupBallotKHR", 4427: "DrawParameters",
	4433: "StorageBuffer16BitAccess", 4434: "UniformAndStorageBuffer16BitAccess",
	4435: "StoragePushConstant16", 4436: "StorageInputOutput16",
	4437: "DeviceGroup", 4439: "MultiView", 4441: "VariablePointersStorageBuffer",
	4442: "VariablePointers", 5009: "Float16ImageAMD", 5301: "ShaderNonUniform",
	5302: "RuntimeDescriptorArray", 5345: "VulkanMemoryModel",
	5346: "VulkanMemoryModelDeviceScope", 5347: "PhysicalStorageBufferAddresses",
}

var sourceLanguageNames = map[uint32]string{
	0: "Unknown", 1: "ESSL", 2: "GLSL", 3: "OpenCL_C", 4: "OpenCL_CPP",
	5: "HLSL", 6: "CPP_for_OpenCL", 7: "SYCL", 8: "HERO_C", 9: "NZSL",
	10: "WGSL", 11: "Slang", 12: "Zig",
}

var executionModeNames = map[uint32]string{
	0: "Invocations", 1: "SpacingEqual", 2: "SpacingFractionalEven",
	3: "SpacingFractionalOdd", 4: "VertexOrderCw", 5: "VertexOrderCcw",
	6: "PixelCenterInteger", 7: "OriginUpperLeft", 8: "OriginLowerLeft",
	9: "EarlyFragmentTests", 10: "PointMode", 11: "Xfb", 12: "DepthReplacing",
	14: "DepthGreater", 15: "DepthLess", 16: "DepthUnchanged", 17: "LocalSize",
	18: "LocalSizeHint", 19: "InputPoints", 20: "InputLines",
	21: "InputLinesAdjacency", 22: "Triangles", 23: "InputTrianglesAdjacency",
	24: "Quads", 25: "Isolines", 26: "OutputVertices", 27: "OutputPoints",
	28: "OutputLineStrip", 29: "OutputTriangleStrip", 30: "VecTypeHint",
	31: "ContractionOff", 33: "Initializer", 34: "Finalizer",
	35: "SubgroupSize", 36: "SubgroupsPerWorkgroup", 37: "SubgroupsPerWorkgroupId",
	38: "LocalSizeId", 39: "LocalSizeHintId",
}

var dimNames = map[uint32]string{
	0: "1D", 1: "2D", 2: "3D", 3: "Cube", 4: "Rect", 5: "Buffer", 6: "SubpassData",
}

var imageFormatNames = map[uint32]string{
	0: "Unknown", 1: "Rgba32f", 2: "Rgba16f", 3: "R32f", 4: "Rgba8",
	5: "Rgba8Snorm", 6: "Rg32f", 7: "Rg16f", 8: "R11fG11fB10f", 9: "R16f",
	10: "Rgba16", 11: "Rgb10A2", 12: "Rg16", 13: "Rg8", 14: "R16", 15: "R8",
	16: "Rgba16Snorm", 17: "Rg16Snorm", 18: "Rg8Snorm", 19: "R16Snorm",
	20: "R8Snorm", 21: "Rgba32i", 22: "Rgba16i", 23: "Rgba8i", 24: "R32i",
	25: "Rg32i", 26: "Rg16i", 27: "Rg8i", 28: "R16i", 29: "R8i",
	30: "Rgba32ui", 31: "Rgba16ui", 32: "Rgba8ui", 33: "R32ui",
	34: "Rgb10a2ui", 35: "Rg32ui", 36: "Rg16ui", 37: "Rg8ui", 38: "R16ui",
	39: "R8ui", 40: "R64ui", 41: "R64i",
}

var accessQualifierNames = map[uint32]string{
	0: "ReadOnly", 1: "WriteOnly", 2: "ReadWrite",
}

var builtInNames = map[uint32]string{
	0: "Position", 1: "PointSize", 3: "ClipDistance", 4: "CullDistance",
	5: "VertexId", 6: "InstanceId", 7: "PrimitiveId", 8: "InvocationId",
	9: "Layer", 10: "ViewportIndex", 11: "TessLevelOuter", 12: "TessLevelInner",
	13: "TessCoord", 14: "PatchVertices", 15: "FragCoord", 16: "PointCoord",
	17: "FrontFacing", 18: "SampleId", 19: "SamplePosition", 20: "SampleMask",
	22: "FragDepth", 23: "HelperInvocation", 24: "NumWorkgroups",
	25: "WorkgroupSize", 26: "WorkgroupId", 27: "LocalInvocationId",
	28: "GlobalInvocationId", 29: "LocalInvocationIndex",
	30: "WorkDim", 31: "GlobalSize", 32: "EnqueuedWorkgroupSize",
	33: "GlobalOffset", 34: "GlobalLinearId", 36: "SubgroupSize",
	37: "SubgroupMaxSize", 38: "NumSubgroups", 39: "NumEnqueuedSubgroups",
	40: "SubgroupId", 41: "SubgroupLocalInvocationId",
	42: "VertexIndex", 43: "InstanceIndex", 4424: "BaseVertex",
	4425: "BaseInstance", 4426: "DrawIndex", 4440: "ViewIndex",
}

func enumString(names map[uint32]string, kind string, v uint32) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint16(o))
}

// Known reports whether o has a name in the opcode table.
func (o Opcode) Known() bool {
	_, ok := opcodeNames[o]
	return ok
}

func (s StorageClass) String() string {
	return enumString(storageClassNames, "StorageClass", uint32(s))
}

func (d Decoration) String() string {
	return enumString(decorationNames, "Decoration", uint32(d))
}

func (e ExecutionModel) String() string {
	return enumString(executionModelNames, "ExecutionModel", uint32(e))
}

func (a AddressingModel) String() string {
	return enumString(addressingModelNames, "AddressingModel", uint32(a))
}

func (m MemoryModel) String() string {
	return enumString(memoryModelNames, "MemoryModel", uint32(m))
}

func (c Capability) String() string {
	return enumString(capabilityNames, "Capability", uint32(c))
}

func (s SourceLanguage) String() string {
	return enumString(sourceLanguageNames, "SourceLanguage", uint32(s))
}

func (e ExecutionMode) String() string {
	return enumString(executionModeNames, "ExecutionMode", uint32(e))
}

func (d Dim) String() string {
	return enumString(dimNames, "Dim", uint32(d))
}

func (f ImageFormat) String() string {
	return enumString(imageFormatNames, "ImageFormat", uint32(f))
}

func (a AccessQualifier) String() string {
	return enumString(accessQualifierNames, "AccessQualifier", uint32(a))
}

func (b BuiltIn) String() string {
	return enumString(builtInNames, "BuiltIn", uint32(b))
}

// String renders the mask as "|"-joined flag names; zero is "None".
func (f FunctionControl) String() string {
	if f == FunctionControlNone {
		return "None"
	}
	flags := []struct {
		bit  FunctionControl
		name string
	}{
		{FunctionControlInline, "Inline"},
		{FunctionControlDontInline, "DontInline"},
		{FunctionControlPure, "Pure"},
		{FunctionControlConst, "Const"},
	}
	var s string
	rest := f
	for _, fl := range flags {
		if f&fl.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += fl.name
			rest &^= fl.bit
		}
	}
	if rest != 0 {
		if s != "" {
			s += "|"
		}
		s += fmt.Sprintf("0x%x", uint32(rest))
	}
	return s
}
