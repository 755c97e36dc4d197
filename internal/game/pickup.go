package game

import "math"

// Coin animation.
const (
	pickupBobRate   = 3.6
	pickupBobHeight = 0.12
	pickupSpinRate  = 6.0
)

func (s *Sim) updatePickups(dt float64) {
	if s.Phase != PhaseRunning {
		return
	}
	t := &s.tuning
	p := &s.Player

	kept := s.Pickups[:0]
	for i := range s.Pickups {
		c := s.Pickups[i]
		c.BobPhase += dt * pickupBobRate
		c.Y = t.PickupBaseY + math.Sin(c.BobPhase)*pickupBobHeight
		c.Spin += pickupSpinRate * dt
		c.Z += p.Speed * dt
		c.Visual.SetPosition(c.X, c.Y, c.Z)
		c.Visual.SetRotation(0, c.Spin, 0)

		if s.pickupTouchesPlayer(&c) {
			s.dropVisual(c.Visual)
			s.Score += t.PickupReward
			s.spawnPopup(int(t.PickupReward), c.X, c.Y, c.Z)
			s.events.Emit(Event{Type: EventCoinCollected, X: c.X, Z: c.Z, Data: int(t.PickupReward)})
			continue
		}
		if c.Z > t.PickupDespawnZ {
			s.dropVisual(c.Visual)
			continue
		}
		kept = append(kept, c)
	}
	clear(s.Pickups[len(kept):])
	s.Pickups = kept
}

func (s *Sim) pickupTouchesPlayer(c *Pickup) bool {
	t := &s.tuning
	p := &s.Player
	return c.Z > t.PickupHitZMin && c.Z < t.PickupHitZMax &&
		math.Abs(c.X-p.X) < t.PickupHitHalfWidth &&
		math.Abs(c.Y-p.Y) < t.PickupHitHalfHeight
}
