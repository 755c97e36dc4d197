package game

// carByID returns the live car with the given ID, or nil if it is gone.
func (s *Sim) carByID(id EntityID) *Car {
	if id == 0 {
		return nil
	}
	for i := range s.Cars {
		if s.Cars[i].ID == id {
			return &s.Cars[i]
		}
	}
	return nil
}

// steerPursuit keeps each police car trailing its target at the desired gap.
// The target link is looked up by ID every frame and dropped once the target
// has been removed, after which the police car cruises at its base speed.
func (s *Sim) steerPursuit(dt float64) {
	t := &s.tuning
	for i := range s.Cars {
		c := &s.Cars[i]
		if !c.IsPolice() {
			continue
		}
		target := s.carByID(c.Target)
		if target == nil {
			c.Target = 0
			c.Speed = t.PursuitBaseSpeed
			continue
		}

		gap := target.Z - c.Z
		want := target.Speed
		switch {
		case gap > t.PursuitGap+t.PursuitTolerance:
			want += t.PursuitCatchUp
		case gap < t.PursuitGap-t.PursuitTolerance:
			want -= t.PursuitCatchUp
		}
		c.Speed = max(0, ease(c.Speed, want, dt*t.PursuitSpeedEase))
		c.Lane = target.Lane
		c.X = ease(c.X, target.X, dt*t.LateralEaseRate)
	}
}
