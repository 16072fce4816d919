package spirv

import (
	"github.com/wippyai/spirv-reflect/errors"
)

// Module is a decoded SPIR-V module. It is immutable after Decode returns.
type Module struct {
	Instructions []Instruction
	results      map[uint32]int
	Header
}

// add appends inst and indexes its result ID. The first definition of an ID
// wins; duplicates are reported by Validate.
func (m *Module) add(inst Instruction) {
	if id, ok := inst.ResultID(); ok {
		if _, seen := m.results[id]; !seen {
			m.results[id] = len(m.Instructions)
		}
	}
	m.Instructions = append(m.Instructions, inst)
}

// Lookup returns the instruction that defines id.
func (m *Module) Lookup(id uint32) (*Instruction, bool) {
	idx, ok := m.results[id]
	if !ok {
		return nil, false
	}
	return &m.Instructions[idx], true
}

// EntryPoints returns every OpEntryPoint in stream order.
func (m *Module) EntryPoints() []*EntryPointImm {
	var eps []*EntryPointImm
	for i := range m.Instructions {
		if ep, ok := m.Instructions[i].Imm.(*EntryPointImm); ok {
			eps = append(eps, ep)
		}
	}
	return eps
}

// Names maps IDs to their OpName debug names.
func (m *Module) Names() map[uint32]string {
	names := make(map[uint32]string)
	for i := range m.Instructions {
		if n, ok := m.Instructions[i].Imm.(*NameImm); ok {
			names[n.Target] = n.Name
		}
	}
	return names
}

// Capabilities returns the declared capabilities in stream order.
func (m *Module) Capabilities() []Capability {
	var caps []Capability
	for i := range m.Instructions {
		if c, ok := m.Instructions[i].Imm.(*CapabilityImm); ok {
			caps = append(caps, c.Capability)
		}
	}
	return caps
}

// UnsupportedCount returns how many instructions decoded as UnsupportedImm.
func (m *Module) UnsupportedCount() int {
	n := 0
	for i := range m.Instructions {
		if !m.Instructions[i].Supported() {
			n++
		}
	}
	return n
}

// Validate checks that every result ID is non-zero, below Bound and defined
// once. It does not apply any client API rules.
func (m *Module) Validate() error {
	seen := make(map[uint32]int, len(m.results))
	for i := range m.Instructions {
		inst := &m.Instructions[i]
		id, ok := inst.ResultID()
		if !ok {
			continue
		}
		if id == 0 || id >= m.Bound {
			return errors.New(errors.PhaseValidate, errors.KindIDOutOfBounds).
				Offset(inst.Offset).
				Opcode(uint16(inst.Opcode)).
				ID(id).
				Detail("result id outside 1..%d", m.Bound-1).
				Build()
		}
		if prev, dup := seen[id]; dup {
			return errors.New(errors.PhaseValidate, errors.KindDuplicateID).
				Offset(inst.Offset).
				Opcode(uint16(inst.Opcode)).
				ID(id).
				Detail("already defined at offset %d", prev).
				Build()
		}
		seen[id] = inst.Offset
	}
	return nil
}
