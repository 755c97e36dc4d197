package game

// Command is a discrete input delivered by a frontend.
type Command int

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdJump
	CmdStart
	CmdAction // jump while running, start otherwise
)

// Apply routes a command to the matching handler.
func (s *Sim) Apply(cmd Command) {
	switch cmd {
	case CmdLeft:
		s.Move(-1)
	case CmdRight:
		s.Move(1)
	case CmdJump:
		s.Jump()
	case CmdStart:
		s.Start()
	case CmdAction:
		if s.Running() {
			s.Jump()
		} else {
			s.Start()
		}
	}
}

// Driver turns host timestamps (seconds) into frame deltas.
type Driver struct {
	Sim *Sim

	last    float64
	started bool
}

func NewDriver(s *Sim) *Driver {
	return &Driver{Sim: s}
}

// Step advances the simulation to the host time now. The first call only
// records the timestamp.
func (d *Driver) Step(now float64) {
	if !d.started {
		d.last, d.started = now, true
		d.Sim.Frame(0)
		return
	}
	delta := now - d.last
	d.last = now
	d.Sim.Frame(delta)
}
