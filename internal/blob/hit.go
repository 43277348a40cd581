package blob

import "honnef.co/go/curve"

// HitTest returns the arena index of the first control point within
// pick distance of p, scanning segments in order and within each
// segment the first control slot before the second. The bool result is
// false when nothing is in range.
func (s *Shape) HitTest(p curve.Point, pick float64) (int, bool) {
	for _, seg := range s.segments {
		for _, ci := range [2]int{seg.C1, seg.C2} {
			if s.controls[ci].Pos.Distance(p) <= pick {
				return ci, true
			}
		}
	}
	return 0, false
}

// MoveControl overwrites control point i's position with p, both axes
// unconditionally. The stored angle is left alone; the next oscillation
// tick re-derives the position from it.
func (s *Shape) MoveControl(i int, p curve.Point) {
	s.controls[i].Pos = p
}
