package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownPart    = errors.New("document: unknown part or assembly")
	ErrAssemblyCycle  = errors.New("document: assembly references itself")
	ErrInvalidPartDef = errors.New("document: invalid part definition")
)

// AssemblyDef describes a product structure declaratively. Parts and
// assemblies are referenced by name, so a part used by several components
// yields a single shared label.
type AssemblyDef struct {
	Parts      []PartDef         `yaml:"parts"`
	Assemblies []AssemblyNodeDef `yaml:"assemblies"`
	Root       string            `yaml:"root"`
}

type PartDef struct {
	Name   string       `yaml:"name"`
	Kind   string       `yaml:"kind"` // "solid", "mesh" or "empty"
	Box    *BoxDef      `yaml:"box,omitempty"`
	Points [][3]float32 `yaml:"points,omitempty"`
}

type BoxDef struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

type AssemblyNodeDef struct {
	Name       string         `yaml:"name"`
	Components []ComponentDef `yaml:"components"`
}

type ComponentDef struct {
	Name        string       `yaml:"name"`
	Ref         string       `yaml:"ref"`
	Translation [3]float32   `yaml:"translation"`
	Rotation    *RotationDef `yaml:"rotation,omitempty"`
}

type RotationDef struct {
	Axis    [3]float32 `yaml:"axis"`
	Degrees float32    `yaml:"degrees"`
}

func LoadAssemblyDef(path string) (*AssemblyDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assembly %s: %w", path, err)
	}
	return ParseAssemblyDef(data)
}

func ParseAssemblyDef(data []byte) (*AssemblyDef, error) {
	var def AssemblyDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse assembly: %w", err)
	}
	return &def, nil
}

// Build creates the label structure and returns the root label.
func (def *AssemblyDef) Build() (*Label, error) {
	b := &assemblyBuilder{
		def:        def,
		labels:     make(map[string]*Label),
		assemblies: make(map[string]*AssemblyNodeDef),
		building:   make(map[string]bool),
	}
	for i := range def.Assemblies {
		b.assemblies[def.Assemblies[i].Name] = &def.Assemblies[i]
	}
	for _, p := range def.Parts {
		label, err := buildPart(p)
		if err != nil {
			return nil, err
		}
		b.labels[p.Name] = label
	}
	return b.resolve(def.Root)
}

type assemblyBuilder struct {
	def        *AssemblyDef
	labels     map[string]*Label
	assemblies map[string]*AssemblyNodeDef
	building   map[string]bool
}

func (b *assemblyBuilder) resolve(name string) (*Label, error) {
	if label, ok := b.labels[name]; ok {
		return label, nil
	}
	asm, ok := b.assemblies[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPart)
	}
	if b.building[name] {
		return nil, fmt.Errorf("%q: %w", name, ErrAssemblyCycle)
	}
	b.building[name] = true
	defer delete(b.building, name)

	components := make([]*Label, 0, len(asm.Components))
	for i, c := range asm.Components {
		referred, err := b.resolve(c.Ref)
		if err != nil {
			return nil, fmt.Errorf("assembly %q component %d: %w", name, i, err)
		}
		compName := c.Name
		if compName == "" {
			compName = c.Ref
		}
		components = append(components, NewReferenceLabel(compName, referred, c.location()))
	}
	label := NewAssemblyLabel(asm.Name, components...)
	b.labels[name] = label
	return label, nil
}

func (c ComponentDef) location() mgl32.Mat4 {
	loc := mgl32.Translate3D(c.Translation[0], c.Translation[1], c.Translation[2])
	if c.Rotation != nil && c.Rotation.Degrees != 0 {
		axis := mgl32.Vec3(c.Rotation.Axis)
		if axis.Len() == 0 {
			axis = mgl32.Vec3{0, 0, 1}
		}
		rot := mgl32.QuatRotate(mgl32.DegToRad(c.Rotation.Degrees), axis.Normalize())
		loc = loc.Mul4(rot.Mat4())
	}
	return loc
}

func buildPart(p PartDef) (*Label, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("part without name: %w", ErrInvalidPartDef)
	}

	points := make([]mgl32.Vec3, 0, len(p.Points))
	for _, pt := range p.Points {
		points = append(points, mgl32.Vec3(pt))
	}

	var shape *Shape
	switch p.Kind {
	case "", "solid":
		if p.Box != nil {
			shape = NewBoxShape(mgl32.Vec3(p.Box.Min), mgl32.Vec3(p.Box.Max))
			shape.Points = append(shape.Points, points...)
		} else {
			shape = NewSolidShape(points...)
		}
	case "mesh":
		shape = NewMeshShape(points...)
		if p.Box != nil {
			shape.Points = append(shape.Points, NewBoxShape(mgl32.Vec3(p.Box.Min), mgl32.Vec3(p.Box.Max)).Points...)
		}
	case "empty":
		shape = &Shape{Kind: ShapeEmpty}
	default:
		return nil, fmt.Errorf("part %q kind %q: %w", p.Name, p.Kind, ErrInvalidPartDef)
	}
	return NewShapeLabel(p.Name, shape), nil
}
