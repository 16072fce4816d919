// Package spirv decodes SPIR-V shader binaries and reflects vertex inputs.
//
// Decode parses the five word header and every instruction of a module into
// an Instruction with a typed operand view. Opcodes without a known operand
// layout are kept as UnsupportedImm rather than rejected, so modules using
// newer extensions still decode.
//
// # Decoding
//
//	data, _ := os.ReadFile("shader.vert.spv")
//	m, err := spirv.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.VersionString(), len(m.Instructions))
//
// Structural ID checks are separate:
//
//	if err := m.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Vertex Inputs
//
// InputDescriptions returns the component count of each Input variable of an
// entry point, ordered by Location. ResolveInputs returns the same
// attributes with names and component types, and BuildVertexLayout turns
// them into a packed vertex buffer layout:
//
//	attrs, err := spirv.ResolveInputs(m, "main")
//	layout, err := spirv.BuildVertexLayout(attrs, 0)
//	for _, a := range layout.Attributes {
//	    fmt.Println(a.Location, a.Format, a.Offset)
//	}
//
// # Errors
//
// Every error is an *errors.Error carrying a phase, a kind and the byte
// offset of the offending word. Match kinds with errors.Is:
//
//	if errors.Is(err, spirv.ErrInvalidMagic) {
//	    // not a SPIR-V file
//	}
//
// # Disassembly
//
// Instruction.String and Disassemble render instructions in the textual
// assembly syntax used by spirv-dis.
package spirv
