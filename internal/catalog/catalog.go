// Package catalog holds the named sections, steel grades and bolts a brace
// joint can be built from.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

//go:embed catalog.yaml
var builtinYAML []byte

// Catalog is an immutable set of catalog entries, kept in file order.
type Catalog struct {
	sections      []Section
	materials     []SteelMaterial
	boltMaterials []BoltMaterial
	boltDiameters []BoltDiameter
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Parse(builtinYAML)
	})
	return builtin, builtinErr
}

// LoadFile returns the built-in catalog extended with the entries of a YAML
// file. Entries with an existing name replace the built-in one.
func LoadFile(path string) (*Catalog, error) {
	const op = "catalog.LoadFile"

	base, err := Default()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	extra, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}

	return base.Merge(extra), nil
}

type fileSpec struct {
	Sections      []sectionSpec      `yaml:"sections"`
	Materials     []steelSpec        `yaml:"materials"`
	BoltMaterials []boltMaterialSpec `yaml:"bolt_materials"`
	BoltDiameters []boltDiameterSpec `yaml:"bolt_diameters"`
}

type sectionSpec struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"`
	H       float64 `yaml:"h"`
	B       float64 `yaml:"b"`
	Tw      float64 `yaml:"tw"`
	Tf      float64 `yaml:"tf"`
	Gauge   float64 `yaml:"gauge"`
	AreaCm2 float64 `yaml:"area_cm2"`
}

type steelSpec struct {
	Name string  `yaml:"name"`
	Fy   float64 `yaml:"fy"`
	Fu   float64 `yaml:"fu"`
}

type boltMaterialSpec struct {
	Name string  `yaml:"name"`
	T0   float64 `yaml:"t0"`
}

type boltDiameterSpec struct {
	Name       string  `yaml:"name"`
	D          float64 `yaml:"d"`
	AreaMm2    float64 `yaml:"area_mm2"`
	HeadHeight float64 `yaml:"head_height"`
	HeadSize   float64 `yaml:"head_size"`
}

// Parse decodes a catalog document. Dimensions are in mm, section areas in
// cm², bolt areas in mm² and stresses in N/mm².
func Parse(data []byte) (*Catalog, error) {
	var spec fileSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{}
	for _, s := range spec.Sections {
		sec, err := s.section()
		if err != nil {
			return nil, err
		}
		c.sections = append(c.sections, sec)
	}
	for _, m := range spec.Materials {
		mat, err := m.material()
		if err != nil {
			return nil, err
		}
		c.materials = append(c.materials, mat)
	}
	for _, m := range spec.BoltMaterials {
		if m.Name == "" || m.T0 <= 0 {
			return nil, &ValidationError{Entry: entryName("bolt material", m.Name), msg: "t0 must be positive", err: value.ErrInvalidQuantity}
		}
		c.boltMaterials = append(c.boltMaterials, BoltMaterial{
			Name: m.Name,
			T0:   value.NewStress(m.T0, unit.Newton, unit.MilliMeter),
		})
	}
	for _, d := range spec.BoltDiameters {
		bd, err := d.diameter()
		if err != nil {
			return nil, err
		}
		c.boltDiameters = append(c.boltDiameters, bd)
	}

	if err := c.checkDuplicates(); err != nil {
		return nil, err
	}
	return c, nil
}

func entryName(kind, name string) string {
	if name == "" {
		return kind
	}
	return name
}

func (s sectionSpec) section() (Section, error) {
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return Section{}, &ValidationError{Entry: entryName("section", s.Name), msg: err.Error(), err: ErrUnsupportedConfiguration}
	}
	area, err := value.NewArea(s.AreaCm2, unit.CentiMeter)
	if err != nil {
		return Section{}, &ValidationError{Entry: entryName("section", s.Name), msg: "area must not be negative", err: err}
	}

	mm := func(v float64) value.Length { return value.NewLength(v, unit.MilliMeter) }
	sec := Section{
		Name:  s.Name,
		Kind:  kind,
		H:     mm(s.H),
		B:     mm(s.B),
		Tw:    mm(s.Tw),
		Tf:    mm(s.Tf),
		Gauge: mm(s.Gauge),
		Area:  area,
	}
	if err := sec.Validate(); err != nil {
		return Section{}, err
	}
	return sec, nil
}

func (m steelSpec) material() (SteelMaterial, error) {
	if m.Name == "" {
		return SteelMaterial{}, &ValidationError{Entry: "material", msg: "name is required", err: value.ErrInvalidQuantity}
	}
	if m.Fy <= 0 || m.Fu < m.Fy {
		return SteelMaterial{}, &ValidationError{Entry: m.Name, msg: "need 0 < fy <= fu", err: value.ErrInvalidQuantity}
	}
	return SteelMaterial{
		Name: m.Name,
		Fy:   value.NewStress(m.Fy, unit.Newton, unit.MilliMeter),
		Fu:   value.NewStress(m.Fu, unit.Newton, unit.MilliMeter),
	}, nil
}

func (d boltDiameterSpec) diameter() (BoltDiameter, error) {
	if d.Name == "" {
		return BoltDiameter{}, &ValidationError{Entry: "bolt diameter", msg: "name is required", err: value.ErrInvalidQuantity}
	}
	if d.D <= 0 || d.HeadHeight <= 0 || d.HeadSize <= 0 {
		return BoltDiameter{}, &ValidationError{Entry: d.Name, msg: "d, head_height and head_size must be positive", err: value.ErrInvalidQuantity}
	}
	area, err := value.NewArea(d.AreaMm2, unit.MilliMeter)
	if err != nil || area.IsZero() {
		return BoltDiameter{}, &ValidationError{Entry: d.Name, msg: "area_mm2 must be positive", err: value.ErrInvalidQuantity}
	}
	return BoltDiameter{
		Name:       d.Name,
		D:          value.NewLength(d.D, unit.MilliMeter),
		Area:       area,
		HeadHeight: value.NewLength(d.HeadHeight, unit.MilliMeter),
		HeadSize:   value.NewLength(d.HeadSize, unit.MilliMeter),
	}, nil
}

func (c *Catalog) checkDuplicates() error {
	lists := map[string][]string{
		"section":       c.SectionNames(),
		"material":      c.MaterialNames(),
		"bolt material": c.BoltMaterialNames(),
		"bolt diameter": c.BoltDiameterNames(),
	}
	for kind, names := range lists {
		if dup := lo.FindDuplicates(names); len(dup) > 0 {
			return &ValidationError{Entry: dup[0], msg: "duplicate " + kind, err: value.ErrInvalidQuantity}
		}
	}
	return nil
}

// Merge returns a catalog with the entries of extra appended to c. An entry
// of extra whose name already exists replaces it in place.
func (c *Catalog) Merge(extra *Catalog) *Catalog {
	return &Catalog{
		sections:      mergeByName(c.sections, extra.sections, func(s Section) string { return s.Name }),
		materials:     mergeByName(c.materials, extra.materials, func(m SteelMaterial) string { return m.Name }),
		boltMaterials: mergeByName(c.boltMaterials, extra.boltMaterials, func(m BoltMaterial) string { return m.Name }),
		boltDiameters: mergeByName(c.boltDiameters, extra.boltDiameters, func(d BoltDiameter) string { return d.Name }),
	}
}

func mergeByName[T any](base, extra []T, name func(T) string) []T {
	out := append([]T(nil), base...)
	for _, e := range extra {
		_, i, ok := lo.FindIndexOf(out, func(b T) bool { return name(b) == name(e) })
		if ok {
			out[i] = e
			continue
		}
		out = append(out, e)
	}
	return out
}

// Section looks up a section by name
func (c *Catalog) Section(name string) (Section, error) {
	s, ok := lo.Find(c.sections, func(s Section) bool { return s.Name == name })
	if !ok {
		return Section{}, &NotFoundError{Kind: "section", Name: name}
	}
	return s, nil
}

// Material looks up a steel material by name
func (c *Catalog) Material(name string) (SteelMaterial, error) {
	m, ok := lo.Find(c.materials, func(m SteelMaterial) bool { return m.Name == name })
	if !ok {
		return SteelMaterial{}, &NotFoundError{Kind: "material", Name: name}
	}
	return m, nil
}

// BoltMaterial looks up a bolt grade by name
func (c *Catalog) BoltMaterial(name string) (BoltMaterial, error) {
	m, ok := lo.Find(c.boltMaterials, func(m BoltMaterial) bool { return m.Name == name })
	if !ok {
		return BoltMaterial{}, &NotFoundError{Kind: "bolt material", Name: name}
	}
	return m, nil
}

// BoltDiameter looks up a bolt size by name
func (c *Catalog) BoltDiameter(name string) (BoltDiameter, error) {
	d, ok := lo.Find(c.boltDiameters, func(d BoltDiameter) bool { return d.Name == name })
	if !ok {
		return BoltDiameter{}, &NotFoundError{Kind: "bolt diameter", Name: name}
	}
	return d, nil
}

func (c *Catalog) Sections() []Section { return append([]Section(nil), c.sections...) }

func (c *Catalog) SectionNames() []string {
	return lo.Map(c.sections, func(s Section, _ int) string { return s.Name })
}

func (c *Catalog) MaterialNames() []string {
	return lo.Map(c.materials, func(m SteelMaterial, _ int) string { return m.Name })
}

func (c *Catalog) BoltMaterialNames() []string {
	return lo.Map(c.boltMaterials, func(m BoltMaterial, _ int) string { return m.Name })
}

func (c *Catalog) BoltDiameterNames() []string {
	return lo.Map(c.boltDiameters, func(d BoltDiameter, _ int) string { return d.Name })
}
