// Package game runs the interactive session: it owns the blob shape,
// the display toggles, the rotation state, and the pointer capture, and
// wires them into Ebiten's update/draw loop.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"honnef.co/go/curve"

	"github.com/iburimskiy/bezier-blob/internal/blob"
	"github.com/iburimskiy/bezier-blob/internal/config"
)

const noCapture = -1

// Game is the single session state. Everything the tick and the input
// handlers touch lives here; there is one Game per running instance.
type Game struct {
	shape *blob.Shape

	animating  bool
	filled     bool
	rotating   bool
	showGuides bool

	rotation float64 // whole-shape rotation angle
	rotDir   float64 // +1 or -1

	captured int // arena index of the dragged control, or noCapture

	huePhase float64
	rng      *rand.Rand
}

func New() (*Game, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	shape, err := blob.New(blob.Config{
		Points:   config.PointCount,
		Radius:   config.Radius,
		MaxSweep: config.MaxSweepDeg * math.Pi / 180,
		Step:     config.OscillationStep,
		Rand:     rng,
	})
	if err != nil {
		return nil, err
	}
	return &Game{
		shape:      shape,
		animating:  true,
		showGuides: true,
		rotDir:     1,
		captured:   noCapture,
		rng:        rng,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleGuides()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.toggleAnimate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFill()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.toggleRotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	p := g.toShape(float64(mx), float64(my))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(p)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drag(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.release()
	}

	g.tick()
	return nil
}

// tick advances the animation state. Split from Update so tests can
// drive it without the input layer.
func (g *Game) tick() {
	if g.animating {
		g.shape.Step()
	}
	if g.rotating {
		g.rotation += config.RotationStep * g.rotDir
		if g.rng.Float64() < clamp01(config.RotationFlipChance) {
			g.rotDir = -g.rotDir
		}
	}
	g.huePhase += config.ColorShiftSpeed
}

func (g *Game) toggleGuides() { g.showGuides = !g.showGuides }

func (g *Game) toggleAnimate() { g.animating = !g.animating }

func (g *Game) toggleFill() { g.filled = !g.filled }

func (g *Game) toggleRotate() { g.rotating = !g.rotating }

// press tries to capture the control point under p (shape-local
// coordinates). At most one control is captured at a time; a miss
// leaves any existing capture alone.
func (g *Game) press(p curve.Point) {
	if i, ok := g.shape.HitTest(p, config.PickRadius); ok {
		g.captured = i
	}
}

// drag streams a pointer position into the captured control point, if
// any. Both coordinates are written unconditionally.
func (g *Game) drag(p curve.Point) {
	if g.captured != noCapture {
		g.shape.MoveControl(g.captured, p)
	}
}

func (g *Game) release() { g.captured = noCapture }

// toShape maps a window position into the shape's centered, unrotated
// coordinate space: translate by the window center, then undo the
// current rotation so hit tests and drags stay correct while rotating.
func (g *Game) toShape(x, y float64) curve.Point {
	p := curve.Pt(x-config.WindowWidth/2, y-config.WindowHeight/2)
	return p.Transform(curve.Rotate(g.rotation).Invert())
}

// toScreen is the inverse mapping, used when drawing.
func (g *Game) toScreen(p curve.Point) curve.Point {
	q := p.Transform(curve.Rotate(g.rotation))
	return curve.Pt(q.X+config.WindowWidth/2, q.Y+config.WindowHeight/2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
