package gpu

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/gekko3d/flycam/render/shaders"
)

type VertexFormat int

const (
	VertexFormatFloat32x2 VertexFormat = iota
	VertexFormatFloat32x3
	VertexFormatFloat32x4
)

func (f VertexFormat) Size() uint64 {
	switch f {
	case VertexFormatFloat32x2:
		return 8
	case VertexFormatFloat32x3:
		return 12
	case VertexFormatFloat32x4:
		return 16
	}
	return 0
}

type VertexAttribute struct {
	Location uint32
	Offset   uint64
	Format   VertexFormat
}

type VertexLayout struct {
	Stride     uint64
	Attributes []VertexAttribute
}

func parseFormat(name string) (VertexFormat, error) {
	switch name {
	case "float2":
		return VertexFormatFloat32x2, nil
	case "float3":
		return VertexFormatFloat32x3, nil
	case "float4":
		return VertexFormatFloat32x4, nil
	default:
		return 0, fmt.Errorf("unsupported vertex layout format: %q", name)
	}
}

// VertexLayoutOf derives the vertex input layout of a vertex struct. Fields
// tagged flycam:"layout" become attributes; every field advances the offset.
func VertexLayoutOf(vertex any) (VertexLayout, error) {
	t := reflect.TypeOf(vertex)
	if t == nil || t.Kind() != reflect.Struct {
		return VertexLayout{}, fmt.Errorf("vertex must be a struct, got %v", t)
	}

	var layout VertexLayout
	var offset uint64
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Tag.Get("flycam") == "layout" {
			format, err := parseFormat(field.Tag.Get("format"))
			if err != nil {
				return VertexLayout{}, fmt.Errorf("field %s: %w", field.Name, err)
			}
			if format.Size() != uint64(field.Type.Size()) {
				return VertexLayout{}, fmt.Errorf("field %s: format %q does not match %d byte field", field.Name, field.Tag.Get("format"), field.Type.Size())
			}
			location, err := strconv.Atoi(field.Tag.Get("location"))
			if err != nil {
				return VertexLayout{}, fmt.Errorf("field %s: location: %w", field.Name, err)
			}
			layout.Attributes = append(layout.Attributes, VertexAttribute{
				Location: uint32(location),
				Offset:   offset,
				Format:   format,
			})
		}

		offset += uint64(field.Type.Size())
	}
	layout.Stride = offset
	return layout, nil
}

// matchInputs checks that every located vertex program input is fed by an
// attribute of the same width. Extra attributes are allowed.
func (l VertexLayout) matchInputs(inputs []shaders.Input) error {
	for _, in := range inputs {
		idx := slices.IndexFunc(l.Attributes, func(a VertexAttribute) bool { return a.Location == in.Location })
		if idx < 0 {
			return fmt.Errorf("shader input @location(%d) has no vertex attribute", in.Location)
		}
		if got := l.Attributes[idx].Format.Size() / 4; got != uint64(in.Components) {
			return fmt.Errorf("shader input @location(%d) expects %d components, vertex attribute has %d", in.Location, in.Components, got)
		}
	}
	return nil
}
