package blob

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

func newTestShape(t *testing.T, n int, r float64) *Shape {
	t.Helper()
	s, err := New(Config{
		Points:   n,
		Radius:   r,
		MaxSweep: 30 * math.Pi / 180,
		Step:     0.06,
		Rand:     rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"too few points", Config{Points: 2, Radius: 100}},
		{"zero radius", Config{Points: 8, Radius: 0}},
		{"negative radius", Config{Points: 8, Radius: -5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := New(c.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got error %v, expected ErrInvalidConfig", err)
			}
			if s != nil {
				t.Error("got a partial shape, expected nil")
			}
		})
	}
}

func TestClosedClockwiseLoop(t *testing.T) {
	for n := 3; n <= 12; n++ {
		s := newTestShape(t, n, 100)
		if got := s.AnchorCount(); got != n {
			t.Errorf("n=%d: got %d anchors", n, got)
		}
		if got := s.SegmentCount(); got != n {
			t.Errorf("n=%d: got %d segments", n, got)
		}
		if got := s.ControlCount(); got != 2*n {
			t.Errorf("n=%d: got %d controls", n, got)
		}
		for i := range s.segments {
			next := (i + 1) % n
			if s.segments[i].End != s.segments[next].Start {
				t.Errorf("n=%d: segment %d does not chain into segment %d", n, i, next)
			}
			if s.Cubic(i).P3 != s.Cubic(next).P0 {
				t.Errorf("n=%d: cubic %d endpoint differs from cubic %d start", n, i, next)
			}
		}
		// Anchor 0 sits at the top of the circle.
		diff(t, curve.Pt(0, -100), s.AnchorAt(0), approx(1e-9))
	}
}

func TestPairing(t *testing.T) {
	s := newTestShape(t, 7, 150)
	n := s.AnchorCount()

	wantPairs := make([][2]int, n)
	for i := range s.anchors {
		prev := (i - 1 + n) % n
		want := [2]int{s.segments[prev].C2, s.segments[i].C1}
		wantPairs[i] = want

		got := s.anchors[i].controls
		if got != want && got != [2]int{want[1], want[0]} {
			t.Errorf("anchor %d paired with %v, expected set %v", i, got, want)
		}
		for _, ci := range got {
			if s.controls[ci].Owner != i {
				t.Errorf("control %d owned by anchor %d, expected %d", ci, s.controls[ci].Owner, i)
			}
		}
	}

	// The pairing is immutable: only angles and positions may change.
	for range 100 {
		s.Step()
	}
	for i := range s.anchors {
		if s.anchors[i].controls != wantPairs[i] {
			t.Errorf("anchor %d pairing changed to %v after ticks", i, s.anchors[i].controls)
		}
	}
}

func TestReferenceConstruction(t *testing.T) {
	s := newTestShape(t, 4, 100)

	// For N=4 the arm fraction is the classic circle kappa.
	k := kappa * 4 / 4
	if math.Abs(k-0.5523) > 1e-4 {
		t.Errorf("got arm fraction %v, expected ~0.5523", k)
	}

	wantAnchors := []curve.Point{
		curve.Pt(0, -100),
		curve.Pt(100, 0),
		curve.Pt(0, 100),
		curve.Pt(-100, 0),
	}
	for i, want := range wantAnchors {
		diff(t, want, s.AnchorAt(i), approx(1e-9))
	}

	arm := 100 * k
	c1 := s.controls[s.segments[0].C1]
	if got := c1.Base; math.Abs(got-(-math.Pi/2)) > 1e-12 {
		t.Errorf("got base angle %v for segment 0's first control, expected -pi/2", got)
	}
	// Anchor 0 plus the arm in the direction of -90 degrees.
	diff(t, curve.Pt(0, -100-arm), c1.Pos, approx(1e-9))

	// The second control belongs to anchor 1 and points back toward
	// anchor 0.
	c2 := s.controls[s.segments[0].C2]
	if c2.Owner != 1 {
		t.Errorf("got owner %d for segment 0's second control, expected 1", c2.Owner)
	}
	diff(t, curve.Pt(100-arm, 0), c2.Pos, approx(1e-9))
}
