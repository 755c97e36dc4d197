package game

// EntityID identifies a traffic entity for the lifetime of a run. IDs are never
// reused within a run, so a stale ID simply fails to resolve.
type EntityID uint32

// Body is the positional base shared by every lane entity.
type Body struct {
	ID     EntityID
	Lane   int
	X, Y   float64
	Z      float64 // negative is ahead of the player
	Visual Visual
}

// CarKind selects how a car moves and scores.
type CarKind uint8

const (
	CarForward  CarKind = iota // same direction as the player
	CarWrongWay                // oncoming
	CarPolice                  // oncoming, trails Target
)

// Car is a traffic entity.
type Car struct {
	Body
	Kind   CarKind
	Speed  float64
	Passed bool
	Target EntityID // police only; zero once the target is gone
}

func (c *Car) IsPolice() bool { return c.Kind == CarPolice }

// Oncoming reports whether the car drives toward the player.
func (c *Car) Oncoming() bool { return c.Kind != CarForward }

func (c *Car) visualKind() VisualKind {
	switch c.Kind {
	case CarPolice:
		return VisualPolice
	case CarWrongWay:
		return VisualWrongWayCar
	}
	return VisualCar
}

// Hazard is a roadside creature; touching it ends the run.
type Hazard struct {
	Body
	BobPhase float64
	ArmRaise float64 // 0..1 warning pose
	Collided bool
}

// Pickup is a coin worth a fixed reward.
type Pickup struct {
	Body
	BobPhase float64
	Spin     float64
}
