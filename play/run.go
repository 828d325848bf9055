// Package play drives a marionette.Rig from an Ebitengine game loop and
// draws the solved skeleton as a flat front view. It is a debugging and
// demo surface; the core package has no rendering dependency.
package play

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/marionette"
)

// RunConfig configures the window and view for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// PixelsPerUnit maps world units to screen pixels. Zero means 40.
	PixelsPerUnit float32

	// Background fills the screen each frame. Nil means a dark grey.
	Background color.Color

	// Update runs at the start of every tick, before the rig steps. Use it
	// for input. A non-nil error ends the loop and is returned by Run.
	Update func(g *Game, dt float32) error
}

var (
	defaultBackground = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	boneColor         = color.RGBA{R: 120, G: 130, B: 150, A: 255}
	jointColor        = color.RGBA{R: 230, G: 200, B: 120, A: 255}
	selectedColor     = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	objectColor       = color.RGBA{R: 90, G: 170, B: 255, A: 255}
)

// jointSize is the edge length in world units of a joint marker at unit scale.
const jointSize = 1

// Game implements ebiten.Game for a single rig.
type Game struct {
	Rig       *marionette.Rig
	Selection marionette.Selection

	cfg RunConfig
}

// NewGame wraps r in an ebiten.Game. The root joint starts selected.
func NewGame(r *marionette.Rig, cfg RunConfig) *Game {
	if cfg.PixelsPerUnit == 0 {
		cfg.PixelsPerUnit = 40
	}
	if cfg.Background == nil {
		cfg.Background = defaultBackground
	}
	return &Game{
		Rig:       r,
		Selection: r.Skeleton.Select(r.Skeleton.Root()),
		cfg:       cfg,
	}
}

// Run opens a window and blocks until it is closed or cfg.Update fails.
func Run(r *marionette.Rig, cfg RunConfig) error {
	g := NewGame(r, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}

// Update advances the rig by one tick.
func (g *Game) Update() error {
	dt := float32(1 / float64(ebiten.TPS()))
	if g.cfg.Update != nil {
		if err := g.cfg.Update(g, dt); err != nil {
			return err
		}
	}
	g.Rig.Step(dt)
	return nil
}

// Draw renders bones as lines, joints as squares sized by their world scale,
// and the animator's current transform as an outlined square.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)

	skel := g.Rig.Skeleton
	selected := g.Selection.ID()
	skel.Walk(func(id marionette.JointID, j *marionette.Joint) {
		x, y := g.Project(origin(j.Global))
		if p := skel.Joint(j.Parent); p != nil {
			px, py := g.Project(origin(p.Global))
			vector.StrokeLine(screen, px, py, x, y, 2, boneColor, true)
		}
		c := jointColor
		if id == selected {
			c = selectedColor
		}
		half := jointSize * worldScale(j.Global) * g.cfg.PixelsPerUnit / 2
		vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, c, true)
	})

	cur := g.Rig.Current()
	ox, oy := g.Project(cur.Position)
	half := jointSize * cur.Scale.X() * g.cfg.PixelsPerUnit / 2
	vector.StrokeRect(screen, ox-half, oy-half, half*2, half*2, 2, objectColor, true)

	if g.cfg.ShowFPS {
		a := g.Rig.Animator
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nt: %.2f/%.2f x%.2f playing=%v loop=%v",
			ebiten.ActualFPS(), a.Time, a.Clip.Duration, a.Speed, a.Playing, a.Looping))
	}
	if j := g.Selection.Joint(); j != nil {
		ebitenutil.DebugPrintAt(screen, j.Name, 0, g.cfg.Height-16)
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Project maps a world position to screen pixels: X right, Y up, origin at
// the centre of the screen. Z is dropped.
func (g *Game) Project(p mgl32.Vec3) (float32, float32) {
	cx := float32(g.cfg.Width) / 2
	cy := float32(g.cfg.Height) / 2
	return cx + p.X()*g.cfg.PixelsPerUnit, cy - p.Y()*g.cfg.PixelsPerUnit
}

func origin(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}

// worldScale approximates a matrix's uniform scale by the length of its
// first basis vector.
func worldScale(m mgl32.Mat4) float32 {
	return m.Col(0).Vec3().Len()
}
