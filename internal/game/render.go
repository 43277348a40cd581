package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/bezier-blob/internal/config"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var (
	anchorColor  = color.RGBA{R: 235, G: 235, B: 245, A: 255}
	controlColor = color.RGBA{R: 120, G: 170, B: 255, A: 255}
	dragColor    = color.RGBA{R: 255, G: 150, B: 90, A: 255}
	guideColor   = color.RGBA{R: 110, G: 120, B: 140, A: 180}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawBlob(screen)
	if g.showGuides {
		g.drawConnectors(screen)
		g.drawMarkers(screen)
	}
	g.drawHUD(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slowly shifting vertical gradient
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		r := uint8(10 + 12*math.Sin(g.huePhase*0.5+ratio*math.Pi))
		g_val := uint8(12 + 10*math.Cos(g.huePhase*0.3+ratio*math.Pi))
		b := uint8(22 + 16*math.Sin(g.huePhase*0.7+ratio*math.Pi))
		vector.StrokeLine(screen, 0, float32(y), config.WindowWidth, float32(y), 1, color.RGBA{R: r, G: g_val, B: b, A: 255}, false)
	}
}

// drawBlob builds one continuous closed path from the ordered segment
// list (move to the first segment's start, one cubic per segment,
// close) and renders it filled or stroked per the toggle.
func (g *Game) drawBlob(screen *ebiten.Image) {
	var path vector.Path
	start := g.toScreen(g.shape.Cubic(0).P0)
	path.MoveTo(float32(start.X), float32(start.Y))
	for i := 0; i < g.shape.SegmentCount(); i++ {
		c := g.shape.Cubic(i)
		p1 := g.toScreen(c.P1)
		p2 := g.toScreen(c.P2)
		p3 := g.toScreen(c.P3)
		path.CubicTo(
			float32(p1.X), float32(p1.Y),
			float32(p2.X), float32(p2.Y),
			float32(p3.X), float32(p3.Y),
		)
	}
	path.Close()

	r, g_val, b := hsvToRgb(g.huePhase*360, 0.55, 0.95)

	var vs []ebiten.Vertex
	var is []uint16
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	if g.filled {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
		op.FillRule = ebiten.FillRuleNonZero
	} else {
		sop := &vector.StrokeOptions{
			Width:    3,
			LineCap:  vector.LineCapRound,
			LineJoin: vector.LineJoinRound,
		}
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, sop)
	}
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 255
		vs[i].ColorG = float32(g_val) / 255
		vs[i].ColorB = float32(b) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

// drawConnectors strokes a straight line from each segment's anchor
// endpoints to their adjacent control points.
func (g *Game) drawConnectors(screen *ebiten.Image) {
	for i := 0; i < g.shape.SegmentCount(); i++ {
		c := g.shape.Cubic(i)
		a0 := g.toScreen(c.P0)
		c1 := g.toScreen(c.P1)
		c2 := g.toScreen(c.P2)
		a1 := g.toScreen(c.P3)
		vector.StrokeLine(screen, float32(a0.X), float32(a0.Y), float32(c1.X), float32(c1.Y), 1, guideColor, true)
		vector.StrokeLine(screen, float32(a1.X), float32(a1.Y), float32(c2.X), float32(c2.Y), 1, guideColor, true)
	}
}

func (g *Game) drawMarkers(screen *ebiten.Image) {
	for i := 0; i < g.shape.AnchorCount(); i++ {
		p := g.toScreen(g.shape.AnchorAt(i))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.MarkerRadius, anchorColor, true)
	}
	for i := 0; i < g.shape.ControlCount(); i++ {
		p := g.toScreen(g.shape.ControlAt(i))
		clr := color.Color(controlColor)
		if i == g.captured {
			clr = dragColor
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.MarkerRadius, clr, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf(
		"Space: guides  A: animate (%s)  F: fill (%s)  R: rotate (%s)  Esc/Q: quit",
		onOff(g.animating), onOff(g.filled), onOff(g.rotating),
	)
	if g.captured != noCapture {
		status += "  |  dragging control point"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
