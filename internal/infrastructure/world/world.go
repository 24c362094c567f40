// Package world is a small in-memory physics world: static axis-aligned
// boxes, capsule-shaped rigid bodies with gravity, and the shape casts the
// controller probes with. It backs the demo and the integration tests.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/physics"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

const epsilon = 1e-9

// Box is a static axis-aligned collider
type Box struct {
	Name  string
	Min   mgl64.Vec3
	Max   mgl64.Vec3
	Layer entity.LayerMask

	// Normal reported for hits on the top face; zero means straight up.
	// Lets a flat box stand in for a slope when probing landings.
	Normal mgl64.Vec3
}

// Size returns the box dimensions
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// World holds static colliders and simulated bodies
type World struct {
	Gravity float64
	Drag    float64 // Horizontal damping per second for grounded, undriven bodies

	boxes  []Box
	bodies []*Body
}

// New creates an empty world
func New(gravity, drag float64) *World {
	return &World{
		Gravity: gravity,
		Drag:    drag,
		boxes:   make([]Box, 0, 16),
		bodies:  make([]*Body, 0, 1),
	}
}

// FromArena builds a world from an arena config
func FromArena(cfg *config.ArenaConfig) *World {
	w := New(cfg.Gravity, cfg.Drag)
	for _, b := range cfg.Boxes {
		w.AddBox(Box{
			Name:   b.Name,
			Min:    mgl64.Vec3(b.Min),
			Max:    mgl64.Vec3(b.Max),
			Layer:  entity.LayerMask(cfg.LayerMask(b.Layer)),
			Normal: mgl64.Vec3(b.Normal),
		})
	}
	return w
}

// AddBox adds a static collider. A zero layer joins the Default layer.
func (w *World) AddBox(b Box) {
	if b.Layer == 0 {
		b.Layer = entity.LayerDefault
	}
	w.boxes = append(w.boxes, b)
}

// Boxes returns the static colliders
func (w *World) Boxes() []Box {
	return w.boxes
}

// NewBody creates a dynamic body with its feet at pos
func (w *World) NewBody(pos mgl64.Vec3, capsule entity.Capsule, mass float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	b := &Body{
		pos:     pos,
		rot:     mgl64.QuatIdent(),
		mass:    mass,
		capsule: capsule,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Step integrates every dynamic body by dt and resolves box collisions
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		w.stepBody(b, dt)
	}
}

func (w *World) stepBody(b *Body, dt float64) {
	driven := b.driven
	b.driven = false
	if b.kinematic {
		b.onGround = false
		return
	}

	b.vel[1] -= w.Gravity * dt

	if b.onGround && !driven && w.Drag > 0 {
		k := math.Max(0, 1-w.Drag*dt)
		b.vel[0] *= k
		b.vel[2] *= k
	}

	b.onGround = false
	// Y first so horizontal sweeps run against the settled height
	for _, axis := range [3]int{1, 0, 2} {
		w.moveAxis(b, axis, b.vel[axis]*dt)
	}
}

// moveAxis moves b along one axis and pushes it out of any box it entered
func (w *World) moveAxis(b *Body, axis int, delta float64) {
	if delta == 0 {
		return
	}
	b.pos[axis] += delta

	for _, box := range w.boxes {
		lo, hi := b.bounds()
		if !overlaps(lo, hi, box.Min, box.Max) {
			continue
		}
		if delta > 0 {
			b.pos[axis] -= hi[axis] - box.Min[axis]
		} else {
			b.pos[axis] += box.Max[axis] - lo[axis]
			if axis == 1 {
				b.onGround = true
			}
		}
		b.vel[axis] = 0
	}
}

func overlaps(aMin, aMax, bMin, bMax mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if aMax[i] <= bMin[i]+epsilon || aMin[i] >= bMax[i]-epsilon {
			return false
		}
	}
	return true
}

// SphereCast sweeps a sphere along dir
func (w *World) SphereCast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (physics.Hit, bool) {
	return w.sweep(origin, origin, radius, dir, maxDist, mask)
}

// CapsuleCast sweeps a capsule with sphere centres p1 and p2 along dir.
// The capsule is approximated by its bounding box, so corners are slightly
// conservative.
func (w *World) CapsuleCast(p1, p2 mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (physics.Hit, bool) {
	return w.sweep(p1, p2, radius, dir, maxDist, mask)
}

// Raycast casts a ray along dir
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (physics.Hit, bool) {
	return w.sweep(origin, origin, 0, dir, maxDist, mask)
}

// sweep casts the box hull of segment p1-p2 grown by radius.
// Colliders the shape already overlaps at the start are ignored.
func (w *World) sweep(p1, p2 mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (physics.Hit, bool) {
	if dir.LenSqr() < epsilon || maxDist < 0 {
		return physics.Hit{}, false
	}
	dir = dir.Normalize()

	segMin := componentMin(p1, p2)
	segMax := componentMax(p1, p2)
	extent := segMax.Sub(segMin)
	grow := mgl64.Vec3{radius, radius, radius}

	best := physics.Hit{Distance: math.Inf(1)}
	found := false
	for _, box := range w.boxes {
		if !box.Layer.Has(mask) {
			continue
		}
		lo := box.Min.Sub(extent).Sub(grow)
		hi := box.Max.Add(grow)
		t, axis, ok := slab(segMin, dir, lo, hi)
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}

		offset := dir.Mul(t)
		top := segMax.Y() + offset.Y() + radius
		center := segMin.Add(segMax).Mul(0.5).Add(offset)
		point := mgl64.Vec3{
			clamp(center.X(), box.Min.X(), box.Max.X()),
			clamp(math.Min(top, box.Max.Y()), box.Min.Y(), box.Max.Y()),
			clamp(center.Z(), box.Min.Z(), box.Max.Z()),
		}

		var normal mgl64.Vec3
		normal[axis] = -math.Copysign(1, dir[axis])
		if axis == 1 && normal[1] > 0 && box.Normal.LenSqr() > epsilon {
			normal = box.Normal.Normalize()
		}

		best = physics.Hit{Point: point, Normal: normal, Distance: t, Bounds: box.Size()}
		found = true
	}
	return best, found
}

// slab intersects the ray o + d*t with box [lo, hi].
// It returns the entry distance and the axis of the entered face.
func slab(o, d, lo, hi mgl64.Vec3) (float64, int, bool) {
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	axis := -1
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < epsilon {
			if o[i] <= lo[i] || o[i] >= hi[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter = t1
			axis = i
		}
		tExit = math.Min(tExit, t2)
	}
	if axis < 0 || tEnter > tExit || tEnter < 0 {
		return 0, 0, false
	}
	return tEnter, axis, true
}

func componentMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

func componentMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
