package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/domain/entity"
)

func TestVault_FullManeuver(t *testing.T) {
	r := newTestRig(t)
	r.vaultable()
	r.body.vel = mgl64.Vec3{0, 0, 4}

	r.frames(1)

	s := r.ctrl.State()
	require.True(t, s.IsVaulting())
	assert.True(t, r.body.kinematic)
	assert.Equal(t, mgl64.Vec3{}, r.body.vel)
	assert.InDelta(t, 0.21, s.Vault.Duration, 1e-9)
	assert.Equal(t, []string{"reset:" + TriggerVault, "set:" + TriggerVault}, r.sink.triggers)
	assert.True(t, r.sink.bools[ParamVaulting])
	assert.False(t, r.sink.bools[ParamGrounded])

	// Update is frozen for the whole vault
	calls := r.probe.capsuleCalls
	sinkCalls := len(r.sink.calls)
	r.frames(3)
	assert.Equal(t, calls, r.probe.capsuleCalls)
	assert.Len(t, r.sink.calls, sinkCalls)

	var (
		ticks    int
		progress []float64
	)
	for r.ctrl.State().IsVaulting() && ticks < 100 {
		r.body.resetWrites()
		r.ctrl.FixedUpdate(testFixed)
		ticks++

		assert.Equal(t, "move", r.body.writes[0], "the vault is the only body writer")
		if r.ctrl.State().IsVaulting() {
			assert.Equal(t, []string{"move"}, r.body.writes)
			progress = append(progress, r.ctrl.VaultProgress())
		}
	}

	assert.Equal(t, 11, ticks)
	assert.IsNonDecreasing(t, progress)
	assert.Equal(t, mgl64.Vec3{0, 0, 1.05}, r.body.pos, "lands exactly on the landing point")

	s = r.ctrl.State()
	assert.Equal(t, entity.LocomotionGrounded, s.Locomotion)
	assert.False(t, r.body.kinematic)
	assert.Equal(t, 2, r.body.toggles, "leased once, released once")
	assert.False(t, r.sink.bools[ParamVaulting])
	assert.True(t, r.sink.bools[ParamGrounded])
}

func TestVault_ZeroDistanceCompletesOnFirstTick(t *testing.T) {
	r := newTestRig(t)
	r.vaultable()
	r.probe.landing.Point = mgl64.Vec3{}

	r.frames(1)
	require.True(t, r.ctrl.State().IsVaulting())
	assert.Equal(t, 0.0, r.ctrl.State().Vault.Duration)

	r.ctrl.FixedUpdate(testFixed)

	assert.False(t, r.ctrl.State().IsVaulting())
	assert.False(t, r.body.kinematic)
	assert.Equal(t, mgl64.Vec3{}, r.body.pos)
}

func TestVault_NonFiniteDurationCompletes(t *testing.T) {
	for _, d := range []float64{math.NaN(), math.Inf(1)} {
		r := newTestRig(t)
		r.vaultable()
		r.frames(1)
		require.True(t, r.ctrl.State().IsVaulting())

		r.ctrl.char.Vault.Duration = d
		assert.Equal(t, 1.0, r.ctrl.VaultProgress())

		r.ctrl.FixedUpdate(testFixed)

		assert.False(t, r.ctrl.State().IsVaulting(), "duration %v", d)
		assert.False(t, r.body.kinematic)
		assert.Equal(t, mgl64.Vec3{0, 0, 1.05}, r.body.pos)
	}
}

func TestVault_Gates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *testRig)
	}{
		{"crouching", func(r *testRig) { r.input.press(entity.ButtonCrouch) }},
		{"in combat", func(r *testRig) { r.input.press(entity.ButtonAttack) }},
		{"falling", func(r *testRig) { r.probe.ground = false }},
		{"jumping", func(r *testRig) { r.input.press(entity.ButtonJump) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			r.vaultable()
			tt.setup(r)

			r.frames(1)

			assert.False(t, r.ctrl.State().IsVaulting())
			assert.False(t, r.body.kinematic)
		})
	}
}

func TestVault_RejectsUnsafeTargets(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *testRig)
	}{
		{"no obstacle", func(r *testRig) { r.probe.obstacle = nil }},
		{"no landing", func(r *testRig) { r.probe.landing = nil }},
		{"too tall", func(r *testRig) { r.probe.obstacle.Point = mgl64.Vec3{0, 1.6, 0.3} }},
		{"steep landing", func(r *testRig) { r.probe.landing.Normal = mgl64.Vec3{0, 1, 2} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			r.vaultable()
			tt.modify(r)

			r.frames(1)
			assert.False(t, r.ctrl.State().IsVaulting())
		})
	}
}

func TestVault_PanicReleasesBody(t *testing.T) {
	r := newTestRig(t)
	r.vaultable()
	r.frames(1)
	require.True(t, r.body.kinematic)

	r.body.panicOnMove = true
	assert.Panics(t, func() { r.ctrl.FixedUpdate(testFixed) })

	assert.False(t, r.body.kinematic)
	assert.False(t, r.ctrl.State().IsVaulting())
	assert.False(t, r.sink.bools[ParamVaulting])
}

func TestVault_CloseReleasesBody(t *testing.T) {
	r := newTestRig(t)
	r.vaultable()
	r.frames(1)
	require.True(t, r.ctrl.State().IsVaulting())

	require.NoError(t, r.ctrl.Close())
	assert.False(t, r.body.kinematic)
	assert.Equal(t, entity.LocomotionFalling, r.ctrl.State().Locomotion)

	require.NoError(t, r.ctrl.Close())
	assert.Equal(t, 2, r.body.toggles)
}

func TestKinematicLease(t *testing.T) {
	body := newFakeBody()
	body.vel = mgl64.Vec3{1, 2, 3}

	lease := AcquireKinematic(body)
	assert.True(t, lease.Held())
	assert.True(t, body.kinematic)
	assert.Equal(t, mgl64.Vec3{}, body.vel)

	lease.Release()
	lease.Release()
	assert.False(t, lease.Held())
	assert.False(t, body.kinematic)
	assert.Equal(t, 2, body.toggles)

	var none *KinematicLease
	assert.NotPanics(t, none.Release)
}

func TestArcPosition(t *testing.T) {
	start := mgl64.Vec3{0, 0, 0}
	end := mgl64.Vec3{0, 1, 2}

	assert.Equal(t, start, ArcPosition(start, end, 0, 1.5))
	assertVecNear(t, mgl64.Vec3{0, 2, 1}, ArcPosition(start, end, 0.5, 1.5))
	assertVecNear(t, end, ArcPosition(start, end, 1, 1.5))
}
