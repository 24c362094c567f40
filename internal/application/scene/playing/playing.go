// Package playing provides the demo scene: one character in one arena,
// drawn top-down with a debug HUD.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene"
	"github.com/younwookim/locomotion/internal/application/sim"
	"github.com/younwookim/locomotion/internal/application/state"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorGround    = color.RGBA{40, 44, 60, 255}
	colorVaultable = color.RGBA{90, 160, 110, 255}
	colorLow       = color.RGBA{80, 80, 100, 255}
	colorTall      = color.RGBA{170, 70, 70, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorVaulting  = color.RGBA{255, 215, 0, 255}
	colorCombat    = color.RGBA{230, 120, 60, 255}
	colorFacing    = color.RGBA{240, 240, 240, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
)

// Pixels per metre of the top-down view
const pixelsPerMeter = 24

// Options configures the scene
type Options struct {
	Input      system.InputSource // Live input; ignored when replaying
	RecordPath string             // Record live input and save here on exit
	Replay     *replay.ReplayData // Play this recording instead of live input
	Logger     logrus.FieldLogger
}

// Playing is the demo scene
type Playing struct {
	config   *config.GameConfig
	opts     Options
	session  *sim.Session
	camera   *sim.Camera
	recorder *replay.Recorder
	state    state.SessionState
	resume   state.SessionState
	screenW  int
	screenH  int
	log      logrus.FieldLogger
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	if opts.Logger == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		opts.Logger = quiet
	}

	if opts.Input == nil && opts.Replay == nil {
		keys, err := system.NewKeyboardSource(cfg.Controller.Input.KeyBinds)
		if err != nil {
			return nil, fmt.Errorf("failed to bind keys: %w", err)
		}
		opts.Input = keys
	}

	p := &Playing{
		config:  cfg,
		opts:    opts,
		screenW: cfg.Controller.Display.ScreenWidth,
		screenH: cfg.Controller.Display.ScreenHeight,
		log:     opts.Logger.WithField("scene", "playing"),
	}
	if err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

// start builds a fresh session at the arena spawn
func (p *Playing) start() error {
	p.camera = sim.NewCamera(p.config.Arena.Camera)
	opts := []sim.Option{sim.WithCamera(p.camera), sim.WithLogger(p.opts.Logger)}

	p.state = state.StatePlaying
	p.recorder = nil
	switch {
	case p.opts.Replay != nil:
		opts = append(opts, sim.WithReplay(replay.NewReplayer(*p.opts.Replay)))
		p.state = state.StateReplaying
	default:
		opts = append(opts, sim.WithInput(p.opts.Input))
		if p.opts.RecordPath != "" {
			p.recorder = replay.NewRecorder(p.config.Arena.ID, p.config.Controller.Display.Framerate)
			opts = append(opts, sim.WithRecorder(p.recorder))
			p.log.WithField("path", p.opts.RecordPath).Info("recording enabled")
		}
	}
	p.resume = p.state

	if p.session != nil {
		_ = p.session.Close()
	}
	session, err := sim.New(p.config, opts...)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	p.session = session
	return nil
}

// Update proceeds the scene (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.TogglePause(p.resume)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.saveRecording()
		if err := p.start(); err != nil {
			return nil, err
		}
	}

	if !p.state.Running() {
		return nil, nil
	}

	if p.state == state.StatePlaying {
		p.camera.Turn(cameraInput(), dt)
	}

	if err := p.session.Advance(dt); err != nil {
		if !errors.Is(err, sim.ErrReplayFinished) {
			return nil, err
		}
		p.state = state.StateFinished
		p.reportReplay()
	}

	return nil, nil
}

func cameraInput() float64 {
	var dir float64
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		dir++
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		dir--
	}
	return dir
}

func (p *Playing) reportReplay() {
	want := p.opts.Replay.Checksum
	got := p.session.Checksum()
	entry := p.log.WithFields(logrus.Fields{
		"frames":   p.session.Frames(),
		"checksum": got,
	})
	if want != "" && want != got {
		entry.WithField("expected", want).Warn("replay diverged")
		return
	}
	entry.Info("replay finished")
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	p.recorder.SetChecksum(p.session.Checksum())
	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"path":   filename,
		"frames": p.recorder.FrameCount(),
	}).Info("recording saved")
}

// Draw renders the arena top-down, centred on the character
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	pos := p.session.Body().Position()
	for _, box := range p.session.World().Boxes() {
		p.drawBox(screen, pos.X(), pos.Z(), box.Min.X(), box.Min.Z(), box.Max.X(), box.Max.Z(), box.Max.Y())
	}
	p.drawCharacter(screen)
	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	case state.StateFinished:
		ebitenutil.DebugPrintAt(screen, "REPLAY FINISHED\n\nPress R to restart", p.screenW/2-60, p.screenH/2-20)
	}
}

// toScreen maps world x/z to pixels; +z points up the screen
func (p *Playing) toScreen(camX, camZ, x, z float64) (float32, float32) {
	sx := float64(p.screenW)/2 + (x-camX)*pixelsPerMeter
	sy := float64(p.screenH)/2 - (z-camZ)*pixelsPerMeter
	return float32(sx), float32(sy)
}

func (p *Playing) drawBox(screen *ebiten.Image, camX, camZ, minX, minZ, maxX, maxZ, top float64) {
	x0, y0 := p.toScreen(camX, camZ, minX, maxZ)
	x1, y1 := p.toScreen(camX, camZ, maxX, minZ)

	v := p.config.Controller.Vault
	var c color.Color
	switch {
	case top <= 0:
		c = colorGround
	case top < v.MinHeight:
		c = colorLow
	case top <= v.MaxHeight:
		c = colorVaultable
	default:
		c = colorTall
	}
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, c, false)
}

func (p *Playing) drawCharacter(screen *ebiten.Image) {
	ctrl := p.session.Controller()
	s := ctrl.State()
	body := p.session.Body()
	pos := body.Position()

	c := colorPlayer
	switch {
	case s.IsVaulting():
		c = colorVaulting
	case s.InCombat():
		c = colorCombat
	}

	cx, cy := p.toScreen(pos.X(), pos.Z(), pos.X(), pos.Z())
	r := float32(s.Capsule.Radius * pixelsPerMeter)
	// Height above the ground shows as a larger disc
	r *= float32(1 + math.Max(0, pos.Y())*0.3)
	vector.DrawFilledCircle(screen, cx, cy, r, c, true)

	fwd := body.Rotation().Rotate(entity.Forward)
	fx, fy := p.toScreen(pos.X(), pos.Z(), pos.X()+fwd.X()*0.6, pos.Z()+fwd.Z()*0.6)
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, colorFacing, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, p.hudText())

	help := "WASD: Move | Shift: Run | Ctrl: Crouch | Space: Jump | LClick: Attack | Q/E: Camera | R: Restart | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, help, 4, p.screenH-16)
}

// hudText is the debug readout drawn in the top-left corner
func (p *Playing) hudText() string {
	ctrl := p.session.Controller()
	s := ctrl.State()
	in := ctrl.Intent()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  frame %d  cam %.0f\n", p.state, p.session.Frames(), p.session.Camera().Yaw())
	fmt.Fprintf(&b, "input (%.2f, %.2f) |%.2f| sprint=%t\n", in.Move.X(), in.Move.Y(), in.Magnitude, in.Sprint)
	fmt.Fprintf(&b, "%s %s grounded=%t crouch=%t\n", s.Locomotion, s.Gait, s.Grounded, s.Crouching)
	if s.InCombat() {
		fmt.Fprintf(&b, "combat pose=%s next=%s cd=%.2f\n", s.Combat.Pose, s.Combat.Next, s.AttackCooldown.Remaining)
	}
	if s.IsVaulting() {
		fmt.Fprintf(&b, "vault %.0f%%\n", ctrl.VaultProgress()*100)
	}
	for _, param := range ctrl.Animation().Params() {
		if param.Value {
			fmt.Fprintf(&b, "[%s] ", param.Name)
		}
	}
	return b.String()
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	_ = p.session.Close()
}

// Session returns the running session
func (p *Playing) Session() *sim.Session {
	return p.session
}

// State returns the scene state
func (p *Playing) State() state.SessionState {
	return p.state
}
