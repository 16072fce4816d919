// Command spvreflect inspects SPIR-V shader binaries: header summary, vertex
// inputs, vertex buffer layout, disassembly and batch decoding.
package main

import "os"

func main() {
	os.Exit(Execute())
}
