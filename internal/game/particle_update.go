package game

const (
	debrisGravity = 18.0
	debrisFloorY  = 0.18
	debrisDrift   = 0.6 // share of player speed debris scrolls by
	popupRise     = 1.6
	popupGrowth   = 0.35
)

// updateEffects advances popups and debris. It runs in every phase so a crash
// keeps animating after the run has frozen.
func (s *Sim) updateEffects(dt float64) {
	scroll := 0.0
	if s.Phase == PhaseRunning {
		scroll = s.Player.Speed * dt * debrisDrift
	}

	popups := s.Effects.Popups[:0]
	for i := range s.Effects.Popups {
		p := s.Effects.Popups[i]
		p.Elapsed += dt
		progress := p.Progress()
		if progress >= 1 {
			s.dropVisual(p.Visual)
			continue
		}
		p.Visual.SetPosition(p.X, p.BaseY+progress*popupRise, p.Z)
		fade(p.Visual, 1-progress, 1+progress*popupGrowth)
		popups = append(popups, p)
	}
	clear(s.Effects.Popups[len(popups):])
	s.Effects.Popups = popups

	debris := s.Effects.Debris[:0]
	for i := range s.Effects.Debris {
		d := s.Effects.Debris[i]
		d.Elapsed += dt
		if d.Elapsed >= d.Lifespan {
			s.dropVisual(d.Visual)
			continue
		}
		d.VY -= debrisGravity * dt
		d.X += d.VX * dt
		d.Y = max(debrisFloorY, d.Y+d.VY*dt)
		d.Z += d.VZ*dt + scroll
		d.RX += d.AX * dt
		d.RY += d.AY * dt
		d.RZ += d.AZ * dt
		d.Visual.SetPosition(d.X, d.Y, d.Z)
		d.Visual.SetRotation(d.RX, d.RY, d.RZ)
		fade(d.Visual, max(0, 1-d.Elapsed/d.Lifespan), 1)
		debris = append(debris, d)
	}
	clear(s.Effects.Debris[len(debris):])
	s.Effects.Debris = debris
	if s.Effects.ovrIdx > len(debris) {
		s.Effects.ovrIdx = 0
	}
}
