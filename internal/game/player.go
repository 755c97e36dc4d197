package game

import "math"

// Player is the car the user steers.
type Player struct {
	Lane         int
	X, TargetX   float64
	Y, VY        float64
	Speed        float64
	TargetSpeed  float64
	Airborne     bool
	JumpCooldown float64
	Roll         float64 // banking into lane changes
	Pitch        float64 // nose-down while airborne
	Visual       Visual
}

func (s *Sim) resetPlayer() {
	t := &s.tuning
	mid := t.LaneCount() / 2
	p := &s.Player
	p.Lane = mid
	p.X = t.LaneX(mid)
	p.TargetX = p.X
	p.Y = t.PlayerBaseY
	p.VY = 0
	p.Speed = t.StartSpeed * s.tier.SpeedMultiplier
	p.TargetSpeed = p.Speed
	p.Airborne = false
	p.JumpCooldown = 0
	p.Roll = 0
	p.Pitch = 0
	if p.Visual == nil {
		p.Visual = s.spawnVisual(VisualPlayer)
	}
	p.syncVisual()
}

func (p *Player) syncVisual() {
	p.Visual.SetPosition(p.X, p.Y, 0)
	p.Visual.SetRotation(p.Pitch, 0, p.Roll)
}

// grounded reports whether the player is on the road and not mid-jump.
func (s *Sim) grounded() bool {
	p := &s.Player
	return !p.Airborne && p.Y <= s.tuning.PlayerBaseY+s.tuning.AirborneTolerance
}

// Move shifts the target lane by one step in the sign of dir. Ignored unless a
// run is active and the player is on the ground.
func (s *Sim) Move(dir int) {
	if s.Phase != PhaseRunning || dir == 0 || !s.grounded() {
		return
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	p := &s.Player
	lane := min(max(p.Lane+step, 0), s.tuning.LaneCount()-1)
	if lane == p.Lane {
		return
	}
	p.Lane = lane
	p.TargetX = s.tuning.LaneX(lane)
	s.events.Emit(Event{Type: EventLaneChange, X: p.TargetX, Data: lane})
}

// Jump launches the player if grounded and the cooldown has elapsed.
func (s *Sim) Jump() {
	p := &s.Player
	if s.Phase != PhaseRunning || p.Airborne || p.JumpCooldown > 0 {
		return
	}
	p.Airborne = true
	p.VY = s.tuning.JumpImpulse
	p.JumpCooldown = s.tuning.JumpCooldown
	s.events.Emit(Event{Type: EventJump, X: p.X})
}

// targetSpeed is the logarithmic ramp for the current elapsed time.
func (s *Sim) targetSpeed() float64 {
	t := &s.tuning
	ramp := math.Log10(max(0, s.Elapsed)+10)*t.SpeedLogFactor + t.SpeedBaseOffset
	return min(ramp, t.MaxSpeed) * s.tier.SpeedMultiplier
}

func (s *Sim) updatePlayer(dt float64) {
	t := &s.tuning
	p := &s.Player

	p.JumpCooldown = max(0, p.JumpCooldown-dt)

	p.TargetSpeed = s.targetSpeed()
	p.Speed = max(0, ease(p.Speed, p.TargetSpeed, dt*t.AccelRate))

	p.X = ease(p.X, p.TargetX, dt*t.LateralEaseRate)
	tilt := (p.X - p.TargetX) * t.TiltFactor
	p.Roll = ease(p.Roll, tilt, t.TiltEase)

	if p.Airborne {
		p.VY -= t.Gravity * dt
		p.Y += p.VY * dt
		p.Pitch = max(t.MaxPitch, p.Pitch-t.PitchRate*dt)
		if p.Y <= t.PlayerBaseY {
			p.Y = t.PlayerBaseY
			p.VY = 0
			p.Pitch = 0
			p.Airborne = false
		}
	} else {
		p.Pitch *= t.PitchDecay
		p.Y = ease(p.Y, t.PlayerBaseY, t.GroundEase)
	}

	p.syncVisual()
}
