// Package systems implements the particle field: a fixed set of drifting
// particles stored in an ECS world, advanced and drawn once per frame with
// proximity lines between nearby pairs.
package systems

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/devakorn/portfolio/canvas"
	"github.com/devakorn/portfolio/components"
)

// State is the operational state of a Field.
type State uint8

const (
	// StateUnattached means construction found no usable surface; every
	// operation is a no-op.
	StateUnattached State = iota
	// StateRunning means the frame loop is armed and ticking every frame.
	StateRunning
	// StateStopped means Stop deregistered the frame loop.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unattached"
	}
}

// Phase names reported to a PhaseRecorder.
const (
	PhaseUpdate = "particles_update"
	PhaseRender = "particles_render"
)

// PhaseRecorder receives phase boundaries for timing.
type PhaseRecorder interface {
	StartPhase(name string)
}

// FrameStats describes the work done by the last Tick.
type FrameStats struct {
	Particles  int
	PairChecks int
	Links      int
}

// Field owns the particle set of one canvas.
type Field struct {
	surface canvas.Surface
	sched   canvas.Scheduler
	cfg     FieldConfig
	rng     *rand.Rand

	state   State
	frameID canvas.FrameID

	width, height float64
	pointer       r2.Vec

	world    *ecs.World
	mapper   *ecs.Map3[components.Position, components.Velocity, components.Appearance]
	filter   *ecs.Filter3[components.Position, components.Velocity, components.Appearance]
	entities []ecs.Entity

	// Per-frame scratch copy of the particles, in entity order
	scratch []Particle
	grid    *LinkGrid

	stats   FrameStats
	frames  uint64
	phases  PhaseRecorder
	onFrame func(FrameStats)
}

// NewField binds a particle field to a surface and arms its frame loop on
// sched. A nil or unavailable surface, or a nil scheduler, leaves the field
// Unattached: it logs a warning and all methods do nothing. A nil rng is
// replaced by a time-seeded one.
func NewField(surface canvas.Surface, sched canvas.Scheduler, cfg FieldConfig, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{cfg: cfg, rng: rng}

	if err := canvas.Check(surface); err != nil {
		slog.Warn("particle field disabled", "error", err)
		return f
	}
	if sched == nil {
		slog.Warn("particle field disabled", "error", "no frame scheduler")
		return f
	}

	f.surface = surface
	f.sched = sched

	f.world = ecs.NewWorld()
	f.mapper = ecs.NewMap3[components.Position, components.Velocity, components.Appearance](f.world)
	f.filter = ecs.NewFilter3[components.Position, components.Velocity, components.Appearance](f.world)

	w, h := surface.Size()
	f.width = float64(w)
	f.height = float64(h)
	f.pointer = r2.Vec{X: f.width / 2, Y: f.height / 2}
	f.grid = NewLinkGrid(f.width, f.height, cfg.LinkDistance)

	f.state = StateRunning
	f.Regenerate()
	f.arm()

	slog.Debug("particle field attached",
		"width", w,
		"height", h,
		"particles", len(f.entities),
		"edges", cfg.Edges.String(),
		"index", cfg.Index.String(),
	)
	return f
}

// State returns the operational state.
func (f *Field) State() State {
	return f.state
}

// Size returns the stored canvas dimensions.
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Pointer returns the last recorded pointer position.
func (f *Field) Pointer() (float64, float64) {
	return f.pointer.X, f.pointer.Y
}

// Count returns the number of particles.
func (f *Field) Count() int {
	return len(f.entities)
}

// Stats returns the counters of the last Tick.
func (f *Field) Stats() FrameStats {
	return f.stats
}

// Frames returns how many ticks have run.
func (f *Field) Frames() uint64 {
	return f.frames
}

// SetPhaseRecorder installs a timing hook. Nil removes it.
func (f *Field) SetPhaseRecorder(p PhaseRecorder) {
	f.phases = p
}

// OnFrame installs a callback invoked after every Tick with its stats.
func (f *Field) OnFrame(fn func(FrameStats)) {
	f.onFrame = fn
}

// arm requests the next frame callback.
func (f *Field) arm() {
	f.frameID = f.sched.RequestFrame(f.frame)
}

// frame is the self-re-arming frame callback.
func (f *Field) frame(time.Time) {
	f.frameID = 0
	if f.state != StateRunning {
		return
	}
	f.Tick()
	if f.state == StateRunning {
		f.arm()
	}
}

// Stop cancels the pending frame callback. The particle set is kept but
// never ticks again. Stopping twice is harmless.
func (f *Field) Stop() {
	if f.state != StateRunning {
		return
	}
	if f.frameID != 0 {
		f.sched.CancelFrame(f.frameID)
		f.frameID = 0
	}
	f.state = StateStopped
}

// HandlePointerMove records the pointer position. It only affects motion
// when the config carries a PointerInfluence.
func (f *Field) HandlePointerMove(x, y float64) {
	if f.state == StateUnattached {
		return
	}
	f.pointer = r2.Vec{X: x, Y: y}
}

// Resize stores new canvas dimensions and regenerates the whole particle
// set from fresh random state.
func (f *Field) Resize(width, height int) {
	if f.state == StateUnattached {
		return
	}
	f.width = float64(width)
	f.height = float64(height)
	f.grid.Resize(f.width, f.height)
	f.Regenerate()
}

// Regenerate discards every particle and creates CountFor(width, height)
// new ones with independently drawn attributes.
func (f *Field) Regenerate() {
	if f.state == StateUnattached {
		return
	}
	n := f.cfg.CountFor(f.width, f.height)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = f.cfg.randomParticle(f.rng, f.width, f.height)
	}
	f.replace(particles)
}

// SetParticles replaces the particle set with the given values, in order.
func (f *Field) SetParticles(particles []Particle) {
	if f.state == StateUnattached {
		return
	}
	f.replace(particles)
}

// replace removes all entities and creates one per particle.
func (f *Field) replace(particles []Particle) {
	for _, e := range f.entities {
		f.world.RemoveEntity(e)
	}
	f.entities = f.entities[:0]

	for i := range particles {
		p := &particles[i]
		pos := components.Position{X: p.X, Y: p.Y}
		vel := components.Velocity{X: p.VX, Y: p.VY}
		app := components.Appearance{Radius: p.Radius, Opacity: p.Opacity}
		f.entities = append(f.entities, f.mapper.NewEntity(&pos, &vel, &app))
	}
}

// Particles returns a snapshot of the particle set in entity order.
func (f *Field) Particles() []Particle {
	if f.state == StateUnattached {
		return nil
	}
	out := make([]Particle, 0, len(f.entities))
	for _, e := range f.entities {
		pos, vel, app := f.mapper.Get(e)
		out = append(out, Particle{
			X: pos.X, Y: pos.Y,
			Radius: app.Radius, Opacity: app.Opacity,
			VX: vel.X, VY: vel.Y,
		})
	}
	return out
}

// Particle returns the particle at index i of the entity order.
func (f *Field) Particle(i int) (Particle, bool) {
	if f.state == StateUnattached || i < 0 || i >= len(f.entities) {
		return Particle{}, false
	}
	pos, vel, app := f.mapper.Get(f.entities[i])
	return Particle{
		X: pos.X, Y: pos.Y,
		Radius: app.Radius, Opacity: app.Opacity,
		VX: vel.X, VY: vel.Y,
	}, true
}

// Nearest returns the index of the particle closest to (x, y) within
// radius, or -1.
func (f *Field) Nearest(x, y, radius float64) int {
	if f.state == StateUnattached {
		return -1
	}
	at := r2.Vec{X: x, Y: y}
	best, bestD := -1, radius
	for i, e := range f.entities {
		pos, _, _ := f.mapper.Get(e)
		if d := r2.Norm(r2.Sub(r2.Vec{X: pos.X, Y: pos.Y}, at)); d <= bestD {
			best, bestD = i, d
		}
	}
	return best
}

// Tick advances and draws one frame: move every particle, apply the edge
// policy, clear the surface, then draw each particle followed by its lines
// to later particles closer than the link distance.
func (f *Field) Tick() {
	if f.state != StateRunning {
		return
	}

	if f.phases != nil {
		f.phases.StartPhase(PhaseUpdate)
	}
	f.update()

	if f.phases != nil {
		f.phases.StartPhase(PhaseRender)
	}
	f.render()

	f.frames++
	if f.onFrame != nil {
		f.onFrame(f.stats)
	}
}

// update moves particles and fills the scratch slice.
func (f *Field) update() {
	f.scratch = f.scratch[:0]
	influence := f.cfg.Pointer

	query := f.filter.Query()
	for query.Next() {
		pos, vel, app := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y
		if influence != nil {
			influence.Influence(pos, f.pointer)
		}
		f.cfg.Edges.apply(pos, vel, f.width, f.height)

		f.scratch = append(f.scratch, Particle{
			X: pos.X, Y: pos.Y,
			Radius: app.Radius, Opacity: app.Opacity,
			VX: vel.X, VY: vel.Y,
		})
	}
}

// render draws the scratch particles and their proximity lines.
func (f *Field) render() {
	f.surface.Clear()

	ps := f.scratch
	stats := FrameStats{Particles: len(ps)}

	useGrid := f.cfg.Index == IndexGrid
	if useGrid {
		f.grid.Clear()
		for i := range ps {
			f.grid.Insert(i, ps[i].X, ps[i].Y)
		}
	}

	link := func(i, j int) {
		stats.PairChecks++
		alpha, ok := LinkAlpha(Distance(ps[i], ps[j]), f.cfg.LinkDistance, f.cfg.LinkAlpha)
		if !ok {
			return
		}
		f.surface.StrokeLine(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y, f.cfg.LineWidth, f.cfg.Color.WithAlpha(alpha))
		stats.Links++
	}

	for i := range ps {
		p := &ps[i]
		f.surface.FillCircle(p.X, p.Y, p.Radius, f.cfg.Color.WithAlpha(p.Opacity))

		if useGrid {
			f.grid.ForEachLater(i, p.X, p.Y, func(j int) { link(i, j) })
			continue
		}
		for j := i + 1; j < len(ps); j++ {
			link(i, j)
		}
	}

	f.stats = stats
}
