package game

import "math"

// Hazard animation.
const (
	hazardBobRate   = 2.6
	hazardBobHeight = 0.06
)

func (s *Sim) updateHazards(dt float64) {
	if s.Phase != PhaseRunning {
		return
	}
	t := &s.tuning
	p := &s.Player
	armSpan := t.HazardArmEndZ - t.HazardArmStartZ

	for i := range s.Hazards {
		h := &s.Hazards[i]
		h.BobPhase += dt * hazardBobRate
		h.Y = t.HazardBaseY + math.Sin(h.BobPhase)*hazardBobHeight
		h.Z += p.Speed * dt
		if armSpan != 0 {
			h.ArmRaise = clampF((h.Z-t.HazardArmStartZ)/armSpan, 0, 1)
		}
		h.Visual.SetPosition(h.X, h.Y, h.Z)
		h.Visual.SetRotation(-h.ArmRaise*0.4, 0, 0)

		if !h.Collided && s.hazardHitsPlayer(h) {
			h.Collided = true
			s.spawnDebris(h.X, h.Y, h.Z)
			s.gameOver("hazard", h.X, h.Z)
			return
		}
	}

	kept := s.Hazards[:0]
	for i := range s.Hazards {
		h := s.Hazards[i]
		if h.Z >= t.HazardDespawnZ {
			s.dropVisual(h.Visual)
			continue
		}
		kept = append(kept, h)
	}
	clear(s.Hazards[len(kept):])
	s.Hazards = kept
}

// hazardHitsPlayer has no airborne exemption: jumping into a hazard still ends
// the run.
func (s *Sim) hazardHitsPlayer(h *Hazard) bool {
	t := &s.tuning
	return math.Abs(h.X-s.Player.X) < t.HazardHitHalfWidth &&
		h.Z > t.HazardHitZMin && h.Z < t.HazardHitZMax
}
