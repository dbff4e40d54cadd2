package brace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/check"
	"github.com/alexiusacademia/gobrace/internal/geom"
	"github.com/alexiusacademia/gobrace/internal/logger"
	"github.com/alexiusacademia/gobrace/internal/member"
	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// Catalog resolves catalog names. *catalog.Catalog implements it.
type Catalog interface {
	Section(name string) (catalog.Section, error)
	Material(name string) (catalog.SteelMaterial, error)
	BoltMaterial(name string) (catalog.BoltMaterial, error)
	BoltDiameter(name string) (catalog.BoltDiameter, error)

	SectionNames() []string
	MaterialNames() []string
	BoltMaterialNames() []string
	BoltDiameterNames() []string
}

// ResultStore keeps the last result across runs.
type ResultStore interface {
	SaveLast(ctx context.Context, r *check.Result) error
	LoadLast(ctx context.Context) (*check.Result, error)
}

// Defaults is the joint a new Designer starts with.
type Defaults struct {
	Section      string
	Material     string
	BoltMaterial string
	BoltDiameter string
	BoltRows     int
	GussetLgMm   float64
	Mark         string
}

// DefaultJoint is a CT-100 in SS400 with one row of M20 F10T bolts on a
// gusset as thick as the flange.
var DefaultJoint = Defaults{
	Section:      "CT-100x200x8x12",
	Material:     "SS400",
	BoltMaterial: "F10T",
	BoltDiameter: "M20",
	BoltRows:     1,
	GussetLgMm:   300,
	Mark:         check.DefaultMark,
}

type Option func(*Designer)

func WithLogger(l *logger.Logger) Option {
	return func(d *Designer) { d.log = l }
}

func WithStore(s ResultStore) Option {
	return func(d *Designer) { d.store = s }
}

func WithDefaults(def Defaults) Option {
	return func(d *Designer) { d.defaults = def }
}

func WithClock(now func() time.Time) Option {
	return func(d *Designer) { d.now = now }
}

// Designer is the state every command works on: one brace, one design
// force and the last recorded result.
type Designer struct {
	catalog  Catalog
	log      *logger.Logger
	store    ResultStore
	defaults Defaults
	now      func() time.Time

	brace Brace
	force AxialForce

	// saveMu orders persistence with installation: it is held from
	// installing a result until the store has saved it.
	saveMu   sync.Mutex
	resultMu sync.Mutex
	result   *check.Result
}

// New builds a Designer loaded with the default joint.
func New(c Catalog, opts ...Option) (*Designer, error) {
	const op = "brace.New"

	d := &Designer{
		catalog:  c,
		log:      logger.Nop(),
		defaults: DefaultJoint,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.defaults.Mark == "" {
		d.defaults.Mark = check.DefaultMark
	}
	d.log = d.log.With("component", "brace")

	def := d.defaults
	if err := d.SetSection(def.Section); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := d.SetMaterial(def.Material); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := d.SetBolts(def.BoltMaterial, def.BoltDiameter, def.BoltRows); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	t := d.brace.Section().Profile().Thickness().In(unit.MilliMeter)
	if err := d.SetGusset(t, def.GussetLgMm, def.Material); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

// Restore loads the last result from the store, if there is one.
func (d *Designer) Restore(ctx context.Context) error {
	if d.store == nil {
		return nil
	}
	r, err := d.store.LoadLast(ctx)
	if err != nil {
		return fmt.Errorf("brace.Restore: %w", err)
	}
	if r == nil {
		return nil
	}
	d.resultMu.Lock()
	d.result = r
	d.resultMu.Unlock()
	d.log.Info("last result restored", "id", r.ID)
	return nil
}

func (d *Designer) ListSections() []string      { return d.catalog.SectionNames() }
func (d *Designer) ListMaterials() []string     { return d.catalog.MaterialNames() }
func (d *Designer) ListBoltDiameters() []string { return d.catalog.BoltDiameterNames() }
func (d *Designer) ListBoltMaterials() []string { return d.catalog.BoltMaterialNames() }

// SetSection replaces the brace section. Nothing changes on error.
func (d *Designer) SetSection(name string) error {
	const op = "brace.SetSection"

	p, err := d.catalog.Section(name)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	sec, err := member.NewSection(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.brace.SetSection(sec)
	d.log.Debug("section set", "name", name, "columns", sec.NumColumns())
	return nil
}

func (d *Designer) SetMaterial(name string) error {
	const op = "brace.SetMaterial"

	m, err := d.catalog.Material(name)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.brace.SetMaterial(m)
	d.log.Debug("material set", "name", name)
	return nil
}

func (d *Designer) SetBolts(materialName, diameterName string, rows int) error {
	const op = "brace.SetBolts"

	m, err := d.catalog.BoltMaterial(materialName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	dia, err := d.catalog.BoltDiameter(diameterName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	bc, err := member.NewBoltConnection(dia, m, rows)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.brace.SetBolts(bc)
	d.log.Debug("bolts set", "material", materialName, "diameter", diameterName, "rows", rows)
	return nil
}

func (d *Designer) SetGusset(thicknessMm, lgMm float64, materialName string) error {
	const op = "brace.SetGusset"

	m, err := d.catalog.Material(materialName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	g, err := member.NewGussetPlate(
		value.NewLength(thicknessMm, unit.MilliMeter),
		value.NewLength(lgMm, unit.MilliMeter),
		m,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.brace.SetGusset(g)
	d.log.Debug("gusset set", "thickness_mm", thicknessMm, "lg_mm", lgMm, "material", materialName)
	return nil
}

// SetForce sets the design axial force Nd in kN.
func (d *Designer) SetForce(kN float64) {
	d.force.Set(value.NewForce(kN, unit.KiloNewton))
	d.log.Debug("force set", "kN", kN)
}

func (d *Designer) SectionOutline(u unit.LengthUnit) geom.Polyline {
	return d.brace.Section().Profile().Outline(u)
}

// GussetOutline draws the plate for the current section and bolt rows.
func (d *Designer) GussetOutline(u unit.LengthUnit) geom.Polyline {
	breadth := d.brace.Section().Profile().Breadth()
	joint := d.brace.Bolts().JointLength()
	return d.brace.Gusset().Outline(breadth, joint, u)
}

// BoltCoordinates lists the bolt centres in unit u.
func (d *Designer) BoltCoordinates(u unit.LengthUnit) []geom.Point {
	gauges := d.brace.Section().Gauges()
	coords := d.brace.Bolts().Coordinates(gauges)
	return lo.Map(coords, func(c member.Coordinate, _ int) geom.Point {
		return geom.Point{X: c.X.In(u), Y: c.Y.In(u)}
	})
}

func (d *Designer) JointLength(u unit.LengthUnit) float64 {
	return d.brace.Bolts().JointLength().In(u)
}

// BoltDimensions are the drawing dimensions of one bolt.
type BoltDimensions struct {
	HeadHeight float64 `json:"head_height"`
	HeadSize   float64 `json:"head_size"`
	Diameter   float64 `json:"diameter"`
	Hole       float64 `json:"hole_diameter"`
}

func (d *Designer) BoltDimensions(u unit.LengthUnit) BoltDimensions {
	b := d.brace.Bolts()
	return BoltDimensions{
		HeadHeight: b.HeadHeight().In(u),
		HeadSize:   b.HeadSize().In(u),
		Diameter:   b.ShankDiameter().In(u),
		Hole:       b.HoleDiameter().In(u),
	}
}

func (d *Designer) SectionThickness(u unit.LengthUnit) float64 {
	return d.brace.Section().Profile().Thickness().In(u)
}

func (d *Designer) GussetThickness(u unit.LengthUnit) float64 {
	return d.brace.Gusset().Thickness.In(u)
}

func (d *Designer) Force(u unit.ForceUnit) float64 {
	return d.force.Get().In(u)
}

// Snapshot is a copy of every field, each read under its own lock.
type Snapshot struct {
	Section  member.Section        `json:"-"`
	Profile  catalog.Section       `json:"section"`
	Material catalog.SteelMaterial `json:"material"`
	Bolts    member.BoltConnection `json:"bolts"`
	Gusset   member.GussetPlate    `json:"gusset"`
	Force    value.Force           `json:"force"`
}

func (d *Designer) Snapshot() Snapshot {
	sec := d.brace.Section()
	return Snapshot{
		Section:  sec,
		Profile:  sec.Profile(),
		Material: d.brace.Material(),
		Bolts:    d.brace.Bolts(),
		Gusset:   d.brace.Gusset(),
		Force:    d.force.Get(),
	}
}

// CalculateBaseYield checks the brace member and records the result.
func (d *Designer) CalculateBaseYield(ctx context.Context) (*check.BaseYieldResult, error) {
	s := d.Snapshot()
	res, err := check.BaseYield(s.Section, s.Material, s.Bolts, s.Force)
	if err != nil {
		d.log.Warn("base yield check failed", "error", err)
		return nil, err
	}
	d.log.Info("base yield checked", "gamma", float64(res.Gamma), "judgment", res.Judgment)
	d.record(ctx, s.Force, func(r *check.Result) { r.Base = res })
	return res, nil
}

// CalculateBoltYield checks the bolt group and records the result.
func (d *Designer) CalculateBoltYield(ctx context.Context) (*check.BoltYieldResult, error) {
	s := d.Snapshot()
	res, err := check.BoltYield(s.Section, s.Bolts, s.Force)
	if err != nil {
		d.log.Warn("bolt yield check failed", "error", err)
		return nil, err
	}
	d.log.Info("bolt yield checked", "gamma", float64(res.Gamma), "judgment", res.Judgment)
	d.record(ctx, s.Force, func(r *check.Result) { r.Bolt = res })
	return res, nil
}

// CalculateGussetYield checks the gusset plate and records the result.
func (d *Designer) CalculateGussetYield(ctx context.Context) (*check.GussetYieldResult, error) {
	s := d.Snapshot()
	res, err := check.GussetYield(s.Section, s.Gusset, s.Bolts, s.Force)
	if err != nil {
		d.log.Warn("gusset yield check failed", "error", err)
		return nil, err
	}
	d.log.Info("gusset yield checked", "gamma", float64(res.Gamma), "judgment", res.Judgment)
	d.record(ctx, s.Force, func(r *check.Result) { r.Gusset = res })
	return res, nil
}

// CheckAll runs the three checks on one snapshot and records them together.
func (d *Designer) CheckAll(ctx context.Context) (*check.Result, error) {
	const op = "brace.CheckAll"

	s := d.Snapshot()
	var (
		base   *check.BaseYieldResult
		bolt   *check.BoltYieldResult
		gusset *check.GussetYieldResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		base, err = check.BaseYield(s.Section, s.Material, s.Bolts, s.Force)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		bolt, err = check.BoltYield(s.Section, s.Bolts, s.Force)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		gusset, err = check.GussetYield(s.Section, s.Gusset, s.Bolts, s.Force)
		return err
	})
	if err := g.Wait(); err != nil {
		d.log.Warn("checks failed", "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r := d.record(ctx, s.Force, func(r *check.Result) {
		r.Base, r.Bolt, r.Gusset = base, bolt, gusset
	})
	d.log.Info("joint checked", "id", r.ID, "max_gamma", float64(r.MaxRatio()), "judgment", r.Judgment())
	return r, nil
}

// LastResult returns a copy of the last recorded result, or nil.
func (d *Designer) LastResult() *check.Result {
	d.resultMu.Lock()
	defer d.resultMu.Unlock()
	if d.result == nil {
		return nil
	}
	cp := *d.result
	return &cp
}

// record replaces one part of the last result and stamps it with a new id.
// Parts checked at another design force are dropped.
func (d *Designer) record(ctx context.Context, nd value.Force, apply func(*check.Result)) *check.Result {
	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	d.resultMu.Lock()
	var next check.Result
	if d.result != nil && d.result.Force.Equal(nd) {
		next = *d.result
	}
	apply(&next)
	next.ID = uuid.NewString()
	next.Mark = d.defaults.Mark
	next.CreatedAt = d.now()
	next.Force = nd
	d.result = &next
	d.resultMu.Unlock()

	out := next
	if d.store != nil {
		if err := d.store.SaveLast(ctx, &out); err != nil {
			d.log.Warn("saving last result failed", "id", out.ID, "error", err)
		}
	}
	return &out
}
