package blob

import (
	"testing"

	"honnef.co/go/curve"
)

func TestHitTest(t *testing.T) {
	s := newTestShape(t, 10, 280)
	s.MoveControl(0, curve.Pt(50, 50))

	// Distance ~5.83, inside the pick radius.
	if got, ok := s.HitTest(curve.Pt(55, 53), 10); !ok || got != 0 {
		t.Errorf("got (%d, %v), expected hit on control 0", got, ok)
	}
	// Distance ~21.2, outside the pick radius; no other control is
	// anywhere near this spot either.
	if got, ok := s.HitTest(curve.Pt(65, 65), 10); ok {
		t.Errorf("got hit on control %d, expected no match", got)
	}
	// Exactly on the pick radius counts as a hit.
	s.MoveControl(1, curve.Pt(0, 0))
	if got, ok := s.HitTest(curve.Pt(10, 0), 10); !ok || got != 1 {
		t.Errorf("got (%d, %v), expected boundary hit on control 1", got, ok)
	}
}

func TestHitTestScanOrder(t *testing.T) {
	s := newTestShape(t, 6, 200)
	p := curve.Pt(17, -23)
	// Controls 2 and 3 stacked on the same spot: the earlier scan
	// position (segment order, first slot before second) wins.
	s.MoveControl(3, p)
	s.MoveControl(2, p)
	if got, ok := s.HitTest(p, 10); !ok || got != 2 {
		t.Errorf("got (%d, %v), expected control 2", got, ok)
	}
}

func TestDragRoundTrip(t *testing.T) {
	s := newTestShape(t, 10, 280)
	want := curve.Pt(123.5, -42.25)
	for _, i := range []int{0, 7, s.ControlCount() - 1} {
		s.MoveControl(i, want)
		if got := s.ControlAt(i); got != want {
			t.Errorf("control %d at %v after drag, expected exactly %v", i, got, want)
		}
	}
}
