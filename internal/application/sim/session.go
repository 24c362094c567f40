// Package sim couples a controller with the reference physics world and
// steps both on a fixed-timestep accumulator.
package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/infrastructure/world"
)

// Fixed steps run per frame before the remaining time is dropped
const maxStepsPerFrame = 8

// ErrReplayFinished is returned by Advance once the replay has no frames left
var ErrReplayFinished = errors.New("replay finished")

// Option configures a Session
type Option func(*Session)

// WithInput sets the live input source
func WithInput(src system.InputSource) Option {
	return func(s *Session) { s.source = src }
}

// WithCamera sets the live camera
func WithCamera(cam system.CameraRig) Option {
	return func(s *Session) { s.camera = cam }
}

// WithReplay plays recorded frames instead of the live input
func WithReplay(r *replay.Replayer) Option {
	return func(s *Session) { s.replayer = r }
}

// WithRecorder records every frame's input
func WithRecorder(r *replay.Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithAnimation sets the animation sink
func WithAnimation(sink system.AnimationSink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithLogger sets the logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// Session runs one character in one arena
type Session struct {
	world *world.World
	body  *world.Body
	ctrl  *system.Controller

	source   system.InputSource
	camera   system.CameraRig
	sink     system.AnimationSink
	replayer *replay.Replayer
	recorder *replay.Recorder

	input      replay.FrameInput // What the controller reads this frame
	trajectory *replay.Trajectory

	fixed  float64
	acc    float64
	frames int
	steps  int
	log    logrus.FieldLogger
}

// New creates a session from a loaded game config
func New(cfg *config.GameConfig, opts ...Option) (*Session, error) {
	if cfg == nil || cfg.Controller == nil || cfg.Arena == nil {
		return nil, fmt.Errorf("session: controller and arena config are required")
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Session{
		world:      world.FromArena(cfg.Arena),
		trajectory: replay.NewTrajectory(),
		fixed:      cfg.Controller.FixedDelta(),
		log:        quiet,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.camera == nil {
		s.camera = NewCamera(cfg.Arena.Camera)
	}

	spawn := cfg.Arena.Spawn
	s.body = s.world.NewBody(mgl64.Vec3(spawn.Position), cfg.Controller.Capsule(), cfg.Controller.Character.Mass)
	s.body.SetRotation(entity.YawRotation(spawn.Yaw))

	ctrl, err := system.New(cfg.Controller, system.Dependencies{
		Body:      s.body,
		Probe:     s.world,
		Input:     &s.input,
		Animation: s.sink,
		Camera:    &s.input,
	}, system.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}
	s.ctrl = ctrl

	s.log.WithFields(logrus.Fields{
		"arena": cfg.Arena.ID,
		"spawn": spawn.Position,
		"fixed": s.fixed,
	}).Info("session started")
	return s, nil
}

// Advance runs one visual frame: zero or more fixed physics steps, then
// the controller's frame update.
func (s *Session) Advance(dt float64) error {
	in, err := s.nextInput()
	if err != nil {
		return err
	}
	s.input = in

	s.acc += dt
	n := 0
	for s.acc >= s.fixed {
		if n == maxStepsPerFrame {
			s.log.WithField("dropped", s.acc).Warn("physics falling behind")
			s.acc = 0
			break
		}
		s.ctrl.FixedUpdate(s.fixed)
		s.world.Step(s.fixed)
		s.acc -= s.fixed
		n++
	}
	s.steps += n

	s.ctrl.Update(dt)

	if s.recorder != nil {
		s.recorder.RecordFrame(in)
	}
	s.trajectory.Add(s.body.Position(), s.ctrl.State())
	s.frames++
	return nil
}

func (s *Session) nextInput() (replay.FrameInput, error) {
	if s.replayer != nil {
		in, ok := s.replayer.Next()
		if !ok {
			return replay.FrameInput{}, ErrReplayFinished
		}
		return in, nil
	}
	return replay.Capture(s.frames, s.source, s.camera), nil
}

// Close releases the controller
func (s *Session) Close() error {
	if s.recorder != nil {
		s.recorder.SetChecksum(s.trajectory.String())
	}
	return s.ctrl.Close()
}

// Controller returns the character controller
func (s *Session) Controller() *system.Controller {
	return s.ctrl
}

// Body returns the character's physics body
func (s *Session) Body() *world.Body {
	return s.body
}

// World returns the physics world
func (s *Session) World() *world.World {
	return s.world
}

// Camera returns the live camera
func (s *Session) Camera() system.CameraRig {
	return s.camera
}

// Frames returns how many frames have been advanced
func (s *Session) Frames() int {
	return s.frames
}

// Steps returns how many fixed steps have run
func (s *Session) Steps() int {
	return s.steps
}

// Checksum returns the trajectory checksum so far
func (s *Session) Checksum() string {
	return s.trajectory.String()
}
