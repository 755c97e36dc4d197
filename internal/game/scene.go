package game

// VisualKind tells the rendering side what an entity looks like.
type VisualKind uint8

const (
	VisualPlayer VisualKind = iota
	VisualCar
	VisualWrongWayCar
	VisualPolice
	VisualHazard
	VisualPickup
	VisualPopup
	VisualDebris
	VisualMarker
	VisualScenery
	VisualCloud
)

func (k VisualKind) String() string {
	switch k {
	case VisualPlayer:
		return "player"
	case VisualCar:
		return "car"
	case VisualWrongWayCar:
		return "wrong-way"
	case VisualPolice:
		return "police"
	case VisualHazard:
		return "hazard"
	case VisualPickup:
		return "pickup"
	case VisualPopup:
		return "popup"
	case VisualDebris:
		return "debris"
	case VisualMarker:
		return "marker"
	case VisualScenery:
		return "scenery"
	case VisualCloud:
		return "cloud"
	}
	return "unknown"
}

// Visual is an opaque handle to something drawn on screen.
type Visual interface {
	SetPosition(x, y, z float64)
	SetRotation(x, y, z float64)
	SetVisible(visible bool)
}

// Fader is implemented by visuals whose materials can animate. Effects use it
// for fade-out and growth when present.
type Fader interface {
	SetOpacity(a float64)
	SetScale(x, y, z float64)
}

// Labeler is implemented by visuals that can carry text, such as score popups.
type Labeler interface {
	SetLabel(text string)
}

// Scene creates and destroys visuals.
type Scene interface {
	Add(kind VisualKind) Visual
	Remove(v Visual)
}

type nopScene struct{}

func (nopScene) Add(VisualKind) Visual { return nopVisual{} }
func (nopScene) Remove(Visual)         {}

type nopVisual struct{}

func (nopVisual) SetPosition(x, y, z float64) {}
func (nopVisual) SetRotation(x, y, z float64) {}
func (nopVisual) SetVisible(bool)             {}

// spawnVisual asks the scene for a handle and never returns nil.
func (s *Sim) spawnVisual(kind VisualKind) Visual {
	v := s.scene.Add(kind)
	if v == nil {
		return nopVisual{}
	}
	return v
}

func (s *Sim) dropVisual(v Visual) {
	if v == nil {
		return
	}
	s.scene.Remove(v)
}

func fade(v Visual, opacity, scale float64) {
	if f, ok := v.(Fader); ok {
		f.SetOpacity(opacity)
		f.SetScale(scale, scale, scale)
	}
}
