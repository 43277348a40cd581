package blob

// Step applies one oscillation tick. For each anchor, both paired
// control points advance their current angle in lockstep by
// speed*step*direction; moving them together is what keeps the join at
// the anchor smooth. When either control reaches a sweep bound the
// angles are clamped to that bound, the direction flips, and a fresh
// random speed is drawn. Finally every control position is recomputed
// from its owner anchor, which also snaps back any control a drag had
// displaced.
func (s *Shape) Step() {
	for i := range s.anchors {
		a := &s.anchors[i]
		delta := a.speed * s.step * a.dir

		var hitHigh, hitLow bool
		for _, ci := range a.controls {
			c := &s.controls[ci]
			c.Angle += delta
			if c.Angle >= c.Base+s.maxSweep {
				hitHigh = true
			}
			if c.Angle <= c.Base-s.maxSweep {
				hitLow = true
			}
		}

		switch {
		case hitHigh && a.dir > 0:
			for _, ci := range a.controls {
				c := &s.controls[ci]
				c.Angle = c.Base + s.maxSweep
			}
			a.dir = -1
			a.speed = s.rng.Float64()
		case hitLow && a.dir < 0:
			for _, ci := range a.controls {
				c := &s.controls[ci]
				c.Angle = c.Base - s.maxSweep
			}
			a.dir = 1
			a.speed = s.rng.Float64()
		}

		for _, ci := range a.controls {
			c := &s.controls[ci]
			c.Pos = s.derive(c.Owner, c.Angle)
		}
	}
}
