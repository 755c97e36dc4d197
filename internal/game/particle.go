package game

// Popup is a floating "+N" over a collected coin.
type Popup struct {
	X, BaseY, Z float64
	Elapsed     float64
	Duration    float64
	Amount      int
	Visual      Visual
}

// Progress is the popup's life fraction in [0,1].
func (p *Popup) Progress() float64 {
	if p.Duration <= 0 {
		return 1
	}
	return clampF(p.Elapsed/p.Duration, 0, 1)
}

// Debris is a chunk thrown off a crash.
type Debris struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	RX, RY, RZ float64 // rotation
	AX, AY, AZ float64 // angular velocity
	Elapsed    float64
	Lifespan   float64
	Visual     Visual
}

// Effects holds purely cosmetic entities. Nothing here feeds back into play.
type Effects struct {
	Popups []Popup
	Debris []Debris
	max    int // debris cap
	ovrIdx int // circular overwrite index when full
}

func (e *Effects) addDebris(d Debris, drop func(Visual)) {
	if e.max <= 0 || len(e.Debris) < e.max {
		e.Debris = append(e.Debris, d)
		return
	}
	// Circular overwrite.
	if e.ovrIdx >= len(e.Debris) {
		e.ovrIdx = 0
	}
	drop(e.Debris[e.ovrIdx].Visual)
	e.Debris[e.ovrIdx] = d
	e.ovrIdx++
}

func (s *Sim) clearEffects() {
	for i := range s.Effects.Popups {
		s.dropVisual(s.Effects.Popups[i].Visual)
	}
	for i := range s.Effects.Debris {
		s.dropVisual(s.Effects.Debris[i].Visual)
	}
	s.Effects.Popups = s.Effects.Popups[:0]
	s.Effects.Debris = s.Effects.Debris[:0]
	s.Effects.ovrIdx = 0
}
