package shaders

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Program is a shader stage that went through the compiler.
// Source is kept because the WebGPU device consumes WGSL directly.
type Program struct {
	Stage      Stage
	EntryPoint string
	Source     string
	SPIRV      []byte
	// Inputs lists the located vertex inputs of a vertex entry point.
	Inputs []Input
}

// Input is one @location-bound entry point argument.
type Input struct {
	Location   uint32
	Components uint32
}

var (
	ErrEmptySource  = errors.New("empty shader source")
	ErrNoEntryPoint = errors.New("entry point not found")
)

// Compile runs source through the WGSL front end. A program that fails here
// must never reach the device.
func Compile(stage Stage, source, entryPoint string) (Program, error) {
	if source == "" {
		return Program{}, ErrEmptySource
	}
	ast, err := naga.Parse(source)
	if err != nil {
		return Program{}, fmt.Errorf("compile %s shader %q: %w", stage, entryPoint, err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return Program{}, fmt.Errorf("compile %s shader %q: %w", stage, entryPoint, err)
	}
	ep := findEntryPoint(module, entryPoint)
	if ep == nil {
		return Program{}, fmt.Errorf("compile %s shader %q: %w", stage, entryPoint, ErrNoEntryPoint)
	}
	spirv, err := naga.Compile(source)
	if err != nil {
		return Program{}, fmt.Errorf("compile %s shader %q: %w", stage, entryPoint, err)
	}

	prog := Program{
		Stage:      stage,
		EntryPoint: entryPoint,
		Source:     source,
		SPIRV:      spirv,
	}
	if stage == StageVertex {
		prog.Inputs = entryInputs(module, ep.Function)
	}
	return prog, nil
}

func findEntryPoint(m *ir.Module, name string) *ir.EntryPoint {
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Name == name {
			return &m.EntryPoints[i]
		}
	}
	return nil
}

// entryInputs collects located arguments, looking one level into struct
// arguments the way WGSL vertex inputs are usually declared.
func entryInputs(m *ir.Module, fn ir.Function) []Input {
	var inputs []Input
	for _, arg := range fn.Arguments {
		if arg.Binding != nil {
			if loc, ok := location(*arg.Binding); ok {
				inputs = append(inputs, Input{Location: loc, Components: components(m, arg.Type)})
			}
			continue
		}
		for _, member := range structMembers(m, arg.Type) {
			if member.Binding == nil {
				continue
			}
			if loc, ok := location(*member.Binding); ok {
				inputs = append(inputs, Input{Location: loc, Components: components(m, member.Type)})
			}
		}
	}
	return inputs
}

func location(b ir.Binding) (uint32, bool) {
	switch v := b.(type) {
	case ir.LocationBinding:
		return v.Location, true
	case *ir.LocationBinding:
		return v.Location, true
	}
	return 0, false
}

func typeInner(m *ir.Module, h ir.TypeHandle) ir.TypeInner {
	if int(h) >= len(m.Types) {
		return nil
	}
	return m.Types[h].Inner
}

func structMembers(m *ir.Module, h ir.TypeHandle) []ir.StructMember {
	switch v := typeInner(m, h).(type) {
	case ir.StructType:
		return v.Members
	case *ir.StructType:
		return v.Members
	}
	return nil
}

func components(m *ir.Module, h ir.TypeHandle) uint32 {
	switch v := typeInner(m, h).(type) {
	case ir.ScalarType, *ir.ScalarType:
		return 1
	case ir.VectorType:
		return uint32(v.Size)
	case *ir.VectorType:
		return uint32(v.Size)
	}
	return 0
}
