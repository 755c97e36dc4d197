package game

import "strconv"

const popupLift = 1.4

func (s *Sim) spawnPopup(amount int, x, y, z float64) {
	p := Popup{
		X:        x,
		BaseY:    y + popupLift,
		Z:        z,
		Duration: s.tuning.PopupDuration,
		Amount:   amount,
		Visual:   s.spawnVisual(VisualPopup),
	}
	if l, ok := p.Visual.(Labeler); ok {
		l.SetLabel("+" + strconv.Itoa(amount))
	}
	p.Visual.SetPosition(p.X, p.BaseY, p.Z)
	s.Effects.Popups = append(s.Effects.Popups, p)
}

// spawnDebris throws a burst of chunks from an impact point.
func (s *Sim) spawnDebris(x, y, z float64) {
	r := s.rng
	n := 14 + r.Intn(6)
	for i := 0; i < n; i++ {
		d := Debris{
			X:        x + (r.Float64()-0.5)*0.8,
			Y:        y + 0.4 + r.Float64()*0.6,
			Z:        z + (r.Float64()-0.5)*0.8,
			VX:       (r.Float64() - 0.5) * 6,
			VY:       3.6 + r.Float64()*2.4,
			VZ:       2 + r.Float64()*4,
			AX:       (r.Float64() - 0.5) * 6,
			AY:       (r.Float64() - 0.5) * 6,
			AZ:       (r.Float64() - 0.5) * 6,
			Lifespan: 1.4 + r.Float64()*0.6,
			Visual:   s.spawnVisual(VisualDebris),
		}
		d.Visual.SetPosition(d.X, d.Y, d.Z)
		s.Effects.addDebris(d, s.dropVisual)
	}
}
