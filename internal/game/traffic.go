package game

import "math"

// relativeSpeed is how fast a car closes on the player along z.
func relativeSpeed(playerSpeed float64, c *Car) float64 {
	if c.Oncoming() {
		return playerSpeed + c.Speed
	}
	return playerSpeed - c.Speed
}

func (s *Sim) updateTraffic(dt float64) {
	if s.Phase != PhaseRunning {
		return
	}
	t := &s.tuning
	p := &s.Player

	s.steerPursuit(dt)

	for i := range s.Cars {
		c := &s.Cars[i]
		c.Z += relativeSpeed(p.Speed, c) * dt
		c.Visual.SetPosition(c.X, c.Y, c.Z)

		if s.carHitsPlayer(c) {
			s.gameOver("traffic", c.X, c.Z)
			return
		}

		if !c.Passed && c.Z > t.PassZ {
			c.Passed = true
			reward := s.passReward(c)
			s.Score += reward
			s.events.Emit(Event{Type: EventCarPassed, X: c.X, Z: c.Z, Data: int(reward)})
		}
	}

	kept := s.Cars[:0]
	for i := range s.Cars {
		c := s.Cars[i]
		if c.Z > t.TrafficDespawnAhead || c.Z < t.TrafficDespawnBehind {
			s.dropVisual(c.Visual)
			continue
		}
		kept = append(kept, c)
	}
	clear(s.Cars[len(kept):])
	s.Cars = kept
}

func (s *Sim) carHitsPlayer(c *Car) bool {
	t := &s.tuning
	p := &s.Player
	return math.Abs(c.X-p.X) < t.CarHitHalfWidth &&
		c.Z > t.CarHitZMin && c.Z < t.CarHitZMax &&
		p.Y <= t.PlayerBaseY+t.CollisionAirMargin
}

// passReward scores a car that just went by. Jumping over a car in the same
// lane pays a bonus; brushing past one on the ground costs a little.
func (s *Sim) passReward(c *Car) float64 {
	t := &s.tuning
	p := &s.Player
	sameLane := math.Abs(c.X-p.X) < t.PassSameLaneBand
	airborne := p.Y > t.PlayerBaseY+t.PassAirborneMargin

	reward, bonus := t.PassReward, t.JumpBonus
	if c.Oncoming() {
		reward, bonus = t.PassRewardWrongWay, t.JumpBonusWrongWay
	}
	switch {
	case sameLane && airborne:
		reward += bonus
	case sameLane:
		reward -= t.CloseCallPenalty
	}
	return max(t.MinPassReward, reward)
}
