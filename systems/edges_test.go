package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/devakorn/portfolio/components"
)

func TestWrapCoord(t *testing.T) {
	tests := []struct {
		name    string
		v, size float64
		want    float64
	}{
		{"inside", 50, 100, 50},
		{"zero", 0, 100, 0},
		{"at far edge", 100, 100, 0},
		{"past far edge", 100.25, 100, 0.25},
		{"before near edge", -0.25, 100, 99.75},
		{"many widths", 350, 100, 50},
		{"empty axis", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapCoord(tt.v, tt.size)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("wrapCoord(%v, %v) = %v, want %v", tt.v, tt.size, got, tt.want)
			}
		})
	}
}

func TestWrapCoordTinyNegative(t *testing.T) {
	got := wrapCoord(-1e-18, 100)
	if got < 0 || got >= 100 {
		t.Errorf("wrapCoord(-1e-18, 100) = %v, outside [0,100)", got)
	}
}

func TestBounceCoord(t *testing.T) {
	tests := []struct {
		name    string
		v, vel  float64
		size    float64
		wantV   float64
		wantVel float64
	}{
		{"inside", 10, -0.5, 100, 10, -0.5},
		{"below zero", -0.3, -0.5, 100, 0.3, 0.5},
		{"past edge", 100.2, 0.5, 100, 99.8, -0.5},
		{"overshoot", 250, 0.5, 100, 0, -0.5},
		{"edge overshoot", 199.9999, 0.5, 100, 0.0001, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, vel := bounceCoord(tt.v, tt.vel, tt.size)
			if math.Abs(v-tt.wantV) > 1e-9 || vel != tt.wantVel {
				t.Errorf("bounceCoord(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.v, tt.vel, tt.size, v, vel, tt.wantV, tt.wantVel)
			}
		})
	}
}

func TestBouncePolicyKeepsBoundsAndSpeed(t *testing.T) {
	f, _, _ := newTestField(t, 120, 80, 6, func(c *FieldConfig) {
		c.Edges = EdgeBounce
		c.Speed = 4
	})
	before := f.Particles()

	for i := 0; i < 300; i++ {
		f.Tick()
		assertInBounds(t, f)
	}

	after := f.Particles()
	for i := range before {
		if math.Abs(before[i].VX) != math.Abs(after[i].VX) || math.Abs(before[i].VY) != math.Abs(after[i].VY) {
			t.Fatalf("particle %d speed changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestParsePolicies(t *testing.T) {
	if p, err := ParseEdgePolicy("BOUNCE"); err != nil || p != EdgeBounce {
		t.Errorf("ParseEdgePolicy(BOUNCE) = %v, %v", p, err)
	}
	if p, err := ParseEdgePolicy(""); err != nil || p != EdgeWrap {
		t.Errorf("ParseEdgePolicy(\"\") = %v, %v", p, err)
	}
	if _, err := ParseEdgePolicy("teleport"); err == nil {
		t.Error("expected error for unknown edge policy")
	}
	if i, err := ParseLinkIndex("grid"); err != nil || i != IndexGrid {
		t.Errorf("ParseLinkIndex(grid) = %v, %v", i, err)
	}
	if _, err := ParseLinkIndex("kd"); err == nil {
		t.Error("expected error for unknown link index")
	}
	if p, err := ParsePointerInfluence("none", 1, 1); err != nil || p != nil {
		t.Errorf("ParsePointerInfluence(none) = %v, %v", p, err)
	}
	if _, err := ParsePointerInfluence("orbit", 1, 1); err == nil {
		t.Error("expected error for unknown pointer mode")
	}
}

func TestLinkAlpha(t *testing.T) {
	tests := []struct {
		name   string
		d      float64
		want   float64
		wantOK bool
	}{
		{"zero distance", 0, 0.2, true},
		{"half way", 50, 0.1, true},
		{"at threshold", 100, 0, false},
		{"beyond", 150, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LinkAlpha(tt.d, 100, 0.2)
			if ok != tt.wantOK || math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LinkAlpha(%v) = (%v, %v), want (%v, %v)", tt.d, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRepelMovesAwayWithoutOvershoot(t *testing.T) {
	r := Repel{Radius: 100, Strength: 2}
	pos := components.Position{X: 60, Y: 50}
	r.Influence(&pos, r2.Vec{X: 50, Y: 50})

	// 10px from the pointer: step = 2 * (1 - 0.1) = 1.8 along +X
	if math.Abs(pos.X-61.8) > 1e-9 || pos.Y != 50 {
		t.Errorf("repelled to (%v,%v), want (61.8,50)", pos.X, pos.Y)
	}

	far := components.Position{X: 500, Y: 500}
	r.Influence(&far, r2.Vec{X: 50, Y: 50})
	if far.X != 500 || far.Y != 500 {
		t.Error("repel moved a particle outside its radius")
	}

	same := components.Position{X: 50, Y: 50}
	r.Influence(&same, r2.Vec{X: 50, Y: 50})
	if same.X != 50 || same.Y != 50 {
		t.Error("repel moved a particle under the pointer")
	}
}

func TestAttractStopsAtPointer(t *testing.T) {
	a := Attract{Radius: 100, Strength: 50}
	pos := components.Position{X: 51, Y: 50}
	a.Influence(&pos, r2.Vec{X: 50, Y: 50})
	if math.Abs(pos.X-50) > 1e-9 || pos.Y != 50 {
		t.Errorf("attracted to (%v,%v), want the pointer (50,50)", pos.X, pos.Y)
	}
}

func TestPointerInfluenceKeepsVelocity(t *testing.T) {
	f, _, _ := newTestField(t, 400, 300, 13, func(c *FieldConfig) {
		c.Pointer = Repel{Radius: 150, Strength: 3}
	})
	before := f.Particles()
	f.HandlePointerMove(200, 150)
	for i := 0; i < 100; i++ {
		f.Tick()
		assertInBounds(t, f)
	}
	after := f.Particles()
	for i := range before {
		if before[i].VX != after[i].VX || before[i].VY != after[i].VY {
			t.Fatalf("pointer influence changed velocity of particle %d", i)
		}
	}
}
