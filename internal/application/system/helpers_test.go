package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/physics"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

const (
	testFrame = 0.05
	testFixed = 0.02
)

// fakeBody records every write the controller makes
type fakeBody struct {
	pos       mgl64.Vec3
	rot       mgl64.Quat
	vel       mgl64.Vec3
	kinematic bool

	writes      []string
	forces      []mgl64.Vec3
	toggles     int
	panicOnMove bool
}

var _ physics.Body = (*fakeBody)(nil)

func newFakeBody() *fakeBody {
	return &fakeBody{rot: mgl64.QuatIdent()}
}

func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }
func (b *fakeBody) Rotation() mgl64.Quat { return b.rot }
func (b *fakeBody) Velocity() mgl64.Vec3 { return b.vel }
func (b *fakeBody) IsKinematic() bool    { return b.kinematic }

func (b *fakeBody) SetRotation(q mgl64.Quat) {
	b.writes = append(b.writes, "rotation")
	b.rot = q
}

func (b *fakeBody) SetVelocity(v mgl64.Vec3) {
	b.writes = append(b.writes, "velocity")
	b.vel = v
}

func (b *fakeBody) AddForce(f mgl64.Vec3, mode physics.ForceMode) {
	b.writes = append(b.writes, "force")
	b.forces = append(b.forces, f)
	b.vel = b.vel.Add(f)
}

func (b *fakeBody) SetKinematic(k bool) {
	b.writes = append(b.writes, "kinematic")
	b.toggles++
	b.kinematic = k
}

func (b *fakeBody) MovePosition(p mgl64.Vec3) {
	if b.panicOnMove {
		panic("move failed")
	}
	b.writes = append(b.writes, "move")
	b.pos = p
}

func (b *fakeBody) resetWrites() {
	b.writes = nil
	b.forces = nil
}

// fakeProbe answers casts from fixed results
type fakeProbe struct {
	ground   bool
	obstacle *physics.Hit
	landing  *physics.Hit

	sphereOrigin mgl64.Vec3
	sphereRadius float64
	sphereDist   float64
	capsuleCalls int
	rayOrigin    mgl64.Vec3
	rayDist      float64
}

func (p *fakeProbe) SphereCast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (physics.Hit, bool) {
	p.sphereOrigin = origin
	p.sphereRadius = radius
	p.sphereDist = maxDist
	return physics.Hit{Point: origin.Sub(mgl64.Vec3{0, radius, 0}), Normal: entity.Up}, p.ground
}

func (p *fakeProbe) CapsuleCast(p1, p2 mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (physics.Hit, bool) {
	p.capsuleCalls++
	if p.obstacle == nil {
		return physics.Hit{}, false
	}
	return *p.obstacle, true
}

func (p *fakeProbe) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (physics.Hit, bool) {
	p.rayOrigin = origin
	p.rayDist = maxDist
	if p.landing == nil {
		return physics.Hit{}, false
	}
	return *p.landing, true
}

// fakeInput holds axis and held buttons; presses are consumed on read
type fakeInput struct {
	axis    mgl64.Vec2
	held    map[entity.Button]bool
	pressed map[entity.Button]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:    make(map[entity.Button]bool),
		pressed: make(map[entity.Button]bool),
	}
}

func (f *fakeInput) Axis() mgl64.Vec2          { return f.axis }
func (f *fakeInput) Held(b entity.Button) bool { return f.held[b] }
func (f *fakeInput) press(b entity.Button)     { f.pressed[b] = true }
func (f *fakeInput) Pressed(b entity.Button) bool {
	v := f.pressed[b]
	delete(f.pressed, b)
	return v
}

// recordingSink keeps the last value of every animator parameter
type recordingSink struct {
	bools    map[string]bool
	calls    []string
	triggers []string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{bools: make(map[string]bool)}
}

func (s *recordingSink) SetBool(name string, v bool) {
	s.bools[name] = v
	s.calls = append(s.calls, name)
}

func (s *recordingSink) SetTrigger(name string)   { s.triggers = append(s.triggers, "set:"+name) }
func (s *recordingSink) ResetTrigger(name string) { s.triggers = append(s.triggers, "reset:"+name) }

type fixedCamera float64

func (c fixedCamera) Yaw() float64 { return float64(c) }

type testRig struct {
	ctrl  *Controller
	body  *fakeBody
	probe *fakeProbe
	input *fakeInput
	sink  *recordingSink
}

func newTestRig(t *testing.T, opts ...func(*Dependencies)) *testRig {
	t.Helper()

	r := &testRig{
		body:  newFakeBody(),
		probe: &fakeProbe{ground: true},
		input: newFakeInput(),
		sink:  newRecordingSink(),
	}
	deps := Dependencies{
		Body:      r.body,
		Probe:     r.probe,
		Input:     r.input,
		Animation: r.sink,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	ctrl, err := New(config.Default(), deps)
	require.NoError(t, err)
	r.ctrl = ctrl
	return r
}

// frames runs n visual frames of testFrame seconds
func (r *testRig) frames(n int) {
	for i := 0; i < n; i++ {
		r.ctrl.Update(testFrame)
	}
}

// vaultable places a 1m obstacle ahead and flat ground 1.05m ahead
func (r *testRig) vaultable() {
	r.probe.obstacle = &physics.Hit{
		Point:  mgl64.Vec3{0, 1, 0.3},
		Normal: mgl64.Vec3{0, 0, -1},
		Bounds: mgl64.Vec3{2, 1, 0.2},
	}
	r.probe.landing = &physics.Hit{
		Point:  mgl64.Vec3{0, 0, 1.05},
		Normal: entity.Up,
	}
}

// assertVecNear compares component-wise with an absolute tolerance
func assertVecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d: want %v got %v", i, want, got)
	}
}
