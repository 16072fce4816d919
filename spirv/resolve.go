package spirv

import (
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/spirv-reflect/errors"
)

// DefaultEntryPoint is the entry point name used when none is given.
const DefaultEntryPoint = "main"

// ScalarKind classifies the component type of a vertex attribute.
type ScalarKind int

const (
	ScalarUnknown ScalarKind = iota
	ScalarFloat
	ScalarSInt
	ScalarUInt
	ScalarBool
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarFloat:
		return "float"
	case ScalarSInt:
		return "int"
	case ScalarUInt:
		return "uint"
	case ScalarBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Scalar describes an attribute's component type. Width is in bits and is
// zero when the component type could not be resolved.
type Scalar struct {
	Kind  ScalarKind
	Width uint32
}

// InputAttribute is one location-decorated input variable of an entry point.
type InputAttribute struct {
	Name       string
	Component  Scalar
	Location   uint32
	VariableID uint32
	Components uint32
}

// InputDescriptions returns the component count of every vertex input
// attribute of the named entry point, ordered by location. An empty name
// selects DefaultEntryPoint. Input variables decorated BuiltIn carry no
// Location and are skipped rather than reported as NoLocationDecoration.
func InputDescriptions(m *Module, entryPoint string) ([]uint32, error) {
	attrs, err := ResolveInputs(m, entryPoint)
	if err != nil {
		return nil, err
	}
	counts := make([]uint32, len(attrs))
	for i, a := range attrs {
		counts[i] = a.Components
	}
	return counts, nil
}

// ResolveInputs returns the input attributes of the named entry point
// ordered by location. Variables decorated BuiltIn are not attributes and
// are skipped.
func ResolveInputs(m *Module, entryPoint string) ([]InputAttribute, error) {
	if entryPoint == "" {
		entryPoint = DefaultEntryPoint
	}

	ep, err := findEntryPoint(m, entryPoint)
	if err != nil {
		return nil, err
	}

	iface := make(map[uint32]struct{}, len(ep.Interface))
	for _, id := range ep.Interface {
		iface[id] = struct{}{}
	}

	var inputs []*VariableImm
	isInput := make(map[uint32]struct{})
	for i := range m.Instructions {
		v, ok := m.Instructions[i].Imm.(*VariableImm)
		if !ok || v.StorageClass != StorageClassInput {
			continue
		}
		if _, used := iface[v.Result]; !used {
			continue
		}
		inputs = append(inputs, v)
		isInput[v.Result] = struct{}{}
	}

	locations := make(map[uint32]uint32)
	builtins := make(map[uint32]struct{})
	for i := range m.Instructions {
		d, ok := m.Instructions[i].Imm.(*DecorateImm)
		if !ok {
			continue
		}
		if _, want := isInput[d.Target]; !want {
			continue
		}
		switch d.Decoration {
		case DecorationLocation:
			if len(d.Extra) > 0 {
				locations[d.Target] = d.Extra[0]
			}
		case DecorationBuiltIn:
			builtins[d.Target] = struct{}{}
		}
	}

	names := m.Names()
	attrs := make([]InputAttribute, 0, len(inputs))
	types := make(map[uint32]uint32, len(inputs))
	for _, v := range inputs {
		if _, builtin := builtins[v.Result]; builtin {
			continue
		}
		loc, ok := locations[v.Result]
		if !ok {
			return nil, errors.New(errors.PhaseResolve, errors.KindNoLocationDecoration).
				ID(v.Result).
				Detail("input variable of entry point %q has no Location decoration", entryPoint).
				Build()
		}
		attrs = append(attrs, InputAttribute{
			Name:       names[v.Result],
			Location:   loc,
			VariableID: v.Result,
		})
		types[v.Result] = v.ResultType
	}

	sort.SliceStable(attrs, func(i, j int) bool {
		if attrs[i].Location != attrs[j].Location {
			return attrs[i].Location < attrs[j].Location
		}
		return attrs[i].VariableID < attrs[j].VariableID
	})

	for i := range attrs {
		if err := resolveShape(m, types[attrs[i].VariableID], &attrs[i]); err != nil {
			return nil, err
		}
		Logger().Debug("resolved input attribute",
			zap.String("entry_point", entryPoint),
			zap.Uint32("location", attrs[i].Location),
			zap.Uint32("variable", attrs[i].VariableID),
			zap.Uint32("components", attrs[i].Components))
	}

	return attrs, nil
}

func findEntryPoint(m *Module, name string) (*EntryPointImm, error) {
	var found *EntryPointImm
	count := 0
	for _, ep := range m.EntryPoints() {
		if ep.Name != name {
			continue
		}
		count++
		if found == nil {
			found = ep
		}
	}
	switch count {
	case 0:
		return nil, errors.New(errors.PhaseResolve, errors.KindMissingEntryPoint).
			Detail("no entry point named %q", name).
			Build()
	case 1:
		Logger().Debug("selected entry point",
			zap.String("name", name),
			zap.String("execution_model", found.ExecutionModel.String()),
			zap.Int("interface", len(found.Interface)))
		return found, nil
	default:
		return nil, errors.New(errors.PhaseResolve, errors.KindAmbiguousEntryPoint).
			Detail("%d entry points named %q", count, name).
			Build()
	}
}

func resolveShape(m *Module, pointerType uint32, attr *InputAttribute) error {
	ptrInst, ok := m.Lookup(pointerType)
	if !ok {
		return unresolved(attr.VariableID, pointerType, "pointer type")
	}
	ptr, ok := ptrInst.Imm.(*TypePointerImm)
	if !ok {
		return errors.New(errors.PhaseResolve, errors.KindUnsupportedAttributeType).
			ID(attr.VariableID).
			Detail("variable type %%%d is %s, not a pointer", pointerType, ptrInst.Opcode).
			Build()
	}

	pointee, ok := m.Lookup(ptr.Type)
	if !ok {
		return unresolved(attr.VariableID, ptr.Type, "pointee type")
	}

	switch t := pointee.Imm.(type) {
	case *TypeVectorImm:
		attr.Components = t.ComponentCount
		attr.Component = scalarOf(m, t.ComponentType)
	case *TypeFloatImm, *TypeIntImm, *TypeImm:
		s := scalarOf(m, ptr.Type)
		if s.Kind == ScalarUnknown {
			return unsupportedPointee(attr.VariableID, pointee)
		}
		attr.Components = 1
		attr.Component = s
	default:
		return unsupportedPointee(attr.VariableID, pointee)
	}
	return nil
}

// scalarOf classifies the scalar type with the given ID. Unknown IDs and
// non-scalar types yield ScalarUnknown.
func scalarOf(m *Module, id uint32) Scalar {
	inst, ok := m.Lookup(id)
	if !ok {
		return Scalar{}
	}
	switch t := inst.Imm.(type) {
	case *TypeFloatImm:
		return Scalar{Kind: ScalarFloat, Width: t.Width}
	case *TypeIntImm:
		if t.Signed {
			return Scalar{Kind: ScalarSInt, Width: t.Width}
		}
		return Scalar{Kind: ScalarUInt, Width: t.Width}
	case *TypeImm:
		if inst.Opcode == OpTypeBool {
			return Scalar{Kind: ScalarBool}
		}
	}
	return Scalar{}
}

func unresolved(variable, id uint32, what string) error {
	return errors.New(errors.PhaseResolve, errors.KindUnresolvedID).
		ID(variable).
		Detail("%s %%%d is not defined", what, id).
		Build()
}

func unsupportedPointee(variable uint32, pointee *Instruction) error {
	return errors.New(errors.PhaseResolve, errors.KindUnsupportedAttributeType).
		ID(variable).
		Detail("pointee is %s", pointee.Opcode).
		Build()
}
