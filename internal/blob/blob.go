// Package blob models a closed "blob" outline: N anchor points evenly
// spaced on a circle, joined by one cubic Bézier segment per pair of
// neighboring anchors. The control points are placed so that the
// undeformed shape approximates a circle, and can then be displaced by
// oscillation or by dragging.
package blob

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"honnef.co/go/curve"
)

// ErrInvalidConfig is reported when a Shape cannot be constructed from
// the given configuration.
var ErrInvalidConfig = errors.New("invalid shape configuration")

// kappa is the classic arm-length fraction for approximating a circle
// with four cubic Bézier segments. For N segments it is scaled by 4/N:
// halving the angular spacing roughly halves the needed arm.
const kappa = 4 * (math.Sqrt2 - 1) / 3

// startAngle places anchor 0 at the top of the circle; anchors proceed
// clockwise from there (y grows downward on the drawing surface).
const startAngle = -math.Pi / 2

type Config struct {
	// Points is the number of anchor points N. Must be at least 3.
	Points int
	// Radius of the base circle. Must be positive.
	Radius float64
	// MaxSweep bounds each control point's angular oscillation to
	// [base-MaxSweep, base+MaxSweep], in radians. Zero or negative
	// degenerates to no motion.
	MaxSweep float64
	// Step scales the per-tick angular advance of the oscillator.
	Step float64
	// Rand is the source for sweep-speed redraws and may be nil, in
	// which case a time-seeded source is used.
	Rand *rand.Rand
}

// anchor is one of the N on-circle points a segment passes through.
type anchor struct {
	Pos   curve.Point
	Angle float64 // placement angle on the base circle

	// controls holds the arena indices of the two paired control
	// points: the incoming segment's second and the outgoing
	// segment's first. Fixed after construction.
	controls [2]int
	dir      float64 // sweep direction, +1 or -1
	speed    float64 // sweep speed in [0, 1)
}

// control is an off-curve point bending one cubic segment. Outside an
// active drag its position is always derived from the owner anchor's
// position and the current angle.
type control struct {
	Pos   curve.Point
	Base  float64 // angle when the shape is an undeformed circle
	Angle float64 // Base plus the transient sweep offset
	Owner int     // anchor index, back-reference only
}

// segment is one cubic curve of the closed loop, holding indices into
// the anchor slice and the control arena.
type segment struct {
	Start, End int // anchor indices
	C1, C2     int // control arena indices
}

// Shape is the aggregate model: N anchors, N segments, and a shared
// arena of 2N control points referenced by both the segments and the
// anchors' pairings. Cardinality is frozen at construction; only
// positions and angles mutate afterwards.
type Shape struct {
	anchors  []anchor
	controls []control
	segments []segment

	arm      float64 // control arm length, Radius*kappa*4/N
	maxSweep float64
	step     float64
	rng      *rand.Rand
}

// New builds the shape in its own centered coordinate space: anchor i
// sits at angle startAngle + i*2π/N on the base circle, segment i joins
// anchor i to anchor i+1 (wrapping), and each segment's control points
// point along the anchors' placement angles (the second one flipped by
// π so it points back toward the segment's start). Construction is
// all-or-nothing: an invalid configuration returns ErrInvalidConfig and
// no shape.
func New(cfg Config) (*Shape, error) {
	if cfg.Points < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidConfig, cfg.Points)
	}
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidConfig, cfg.Radius)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := cfg.Points
	s := &Shape{
		anchors:  make([]anchor, n),
		controls: make([]control, 0, 2*n),
		segments: make([]segment, n),
		arm:      cfg.Radius * kappa * 4 / float64(n),
		maxSweep: math.Max(cfg.MaxSweep, 0),
		step:     cfg.Step,
		rng:      rng,
	}

	for i := range s.anchors {
		th := startAngle + float64(i)*2*math.Pi/float64(n)
		s.anchors[i] = anchor{
			Pos:   curve.Point(curve.VecFromAngle(th).Mul(cfg.Radius)),
			Angle: th,
		}
	}

	for i := range s.segments {
		next := (i + 1) % n
		c1 := s.addControl(i, s.anchors[i].Angle)
		c2 := s.addControl(next, s.anchors[next].Angle-math.Pi)
		s.segments[i] = segment{Start: i, End: next, C1: c1, C2: c2}
	}

	// Pair each anchor with the incoming segment's second control and
	// the outgoing segment's first. The pairing never changes again.
	for i := range s.anchors {
		prev := (i - 1 + n) % n
		s.anchors[i].controls = [2]int{s.segments[prev].C2, s.segments[i].C1}
		s.anchors[i].dir = 1
		s.anchors[i].speed = rng.Float64()
	}
	return s, nil
}

func (s *Shape) addControl(owner int, th float64) int {
	s.controls = append(s.controls, control{
		Pos:   s.derive(owner, th),
		Base:  th,
		Angle: th,
		Owner: owner,
	})
	return len(s.controls) - 1
}

// derive is the one legal way to position a control point outside a
// drag: the owner anchor's position plus the arm in the direction th.
func (s *Shape) derive(owner int, th float64) curve.Point {
	return s.anchors[owner].Pos.Translate(curve.VecFromAngle(th).Mul(s.arm))
}

// SegmentCount returns the number of cubic segments, which equals the
// number of anchors.
func (s *Shape) SegmentCount() int { return len(s.segments) }

// Cubic returns segment i as a cubic Bézier: start anchor, the two
// control points, end anchor. Segments are in stable clockwise order;
// Cubic(i).P3 == Cubic((i+1)%N).P0.
func (s *Shape) Cubic(i int) curve.CubicBez {
	seg := s.segments[i]
	return curve.CubicBez{
		P0: s.anchors[seg.Start].Pos,
		P1: s.controls[seg.C1].Pos,
		P2: s.controls[seg.C2].Pos,
		P3: s.anchors[seg.End].Pos,
	}
}

// AnchorCount returns the number of anchor points.
func (s *Shape) AnchorCount() int { return len(s.anchors) }

// AnchorAt returns anchor i's position.
func (s *Shape) AnchorAt(i int) curve.Point { return s.anchors[i].Pos }

// ControlCount returns the number of control points in the arena.
func (s *Shape) ControlCount() int { return len(s.controls) }

// ControlAt returns control point i's position. Arena order matches
// the hit-test scan order: segment by segment, first control then
// second.
func (s *Shape) ControlAt(i int) curve.Point { return s.controls[i].Pos }
