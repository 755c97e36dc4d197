package game

import "math"

// Autopilot drives the player from the current sim state. It scores each lane
// by how soon something lethal reaches the player there and steers toward the
// safest one, jumping traffic it cannot dodge.
type Autopilot struct {
	Horizon    float64 // seconds of look-ahead
	JumpWithin float64 // jump when a car is this close in time
}

func NewAutopilot() *Autopilot {
	return &Autopilot{Horizon: 1.1, JumpWithin: 0.22}
}

// threat is the earliest contact in one lane.
type threat struct {
	ttc      float64
	jumpable bool
}

func (a *Autopilot) lanes(s *Sim) []threat {
	t := &s.tuning
	p := &s.Player
	out := make([]threat, t.LaneCount())
	for i := range out {
		out[i] = threat{ttc: math.Inf(1)}
	}
	closing := func(lane int, z, speed float64, jumpable bool) {
		if lane < 0 || lane >= len(out) {
			return
		}
		var ttc float64
		switch {
		case z > t.CarHitZMin && z < t.CarHitZMax:
			ttc = 0
		case z <= t.CarHitZMin && speed > 0:
			ttc = (t.CarHitZMin - z) / speed
		default:
			return
		}
		if ttc < out[lane].ttc {
			out[lane] = threat{ttc: ttc, jumpable: jumpable}
		}
	}
	for i := range s.Cars {
		c := &s.Cars[i]
		closing(c.Lane, c.Z, relativeSpeed(p.Speed, c), true)
	}
	for i := range s.Hazards {
		h := &s.Hazards[i]
		closing(h.Lane, h.Z, p.Speed, false)
	}
	return out
}

// Decide returns the command the autopilot wants this frame.
func (a *Autopilot) Decide(s *Sim) Command {
	if !s.Running() {
		return CmdStart
	}
	p := &s.Player
	threats := a.lanes(s)
	here := threats[p.Lane]

	if here.ttc < a.Horizon && s.grounded() {
		best, bestTTC := p.Lane, here.ttc
		for _, d := range []int{-1, 1} {
			l := p.Lane + d
			if l < 0 || l >= len(threats) {
				continue
			}
			if threats[l].ttc > bestTTC {
				best, bestTTC = l, threats[l].ttc
			}
		}
		if best < p.Lane {
			return CmdLeft
		}
		if best > p.Lane {
			return CmdRight
		}
	}
	if here.jumpable && here.ttc < a.JumpWithin {
		return CmdJump
	}
	if here.ttc >= a.Horizon && s.grounded() {
		if d := a.coinDirection(s, threats); d != 0 {
			if d < 0 {
				return CmdLeft
			}
			return CmdRight
		}
	}
	return CmdNone
}

// coinDirection points at an adjacent safe lane with a coin coming up.
func (a *Autopilot) coinDirection(s *Sim, threats []threat) int {
	p := &s.Player
	nearest, dir := math.Inf(-1), 0
	for i := range s.Pickups {
		c := &s.Pickups[i]
		d := c.Lane - p.Lane
		if (d != -1 && d != 1) || c.Z > 0 {
			continue
		}
		if threats[c.Lane].ttc < a.Horizon*2 {
			continue
		}
		if c.Z > nearest {
			nearest, dir = c.Z, d
		}
	}
	return dir
}

// Steer applies one decision to the sim.
func (a *Autopilot) Steer(s *Sim) {
	if cmd := a.Decide(s); cmd != CmdNone {
		s.Apply(cmd)
	}
}
