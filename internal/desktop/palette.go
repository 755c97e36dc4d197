package desktop

import "streetsprint/internal/game"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Sky        RGB
	Grass      RGB
	Road       RGB
	Rail       RGB
	Marker     RGB
	Player     RGB
	WrongWay   RGB
	Police     RGB
	PoliceRoof RGB
	Bear       RGB
	BearArm    RGB
	Coin       RGB
	Popup      RGB
	Debris     RGB
	Cloud      RGB
	Headlight  RGB
	Taillight  RGB
	SirenRed   RGB
	SirenBlue  RGB
	Shadow     RGB
}{
	Sky:        RGB{R: 24, G: 30, B: 56},
	Grass:      RGB{R: 58, G: 84, B: 52},
	Road:       RGB{R: 60, G: 66, B: 79},
	Rail:       RGB{R: 170, G: 174, B: 180},
	Marker:     RGB{R: 236, G: 232, B: 214},
	Player:     RGB{R: 255, G: 196, B: 40},
	WrongWay:   RGB{R: 214, G: 60, B: 52},
	Police:     RGB{R: 28, G: 34, B: 60},
	PoliceRoof: RGB{R: 235, G: 235, B: 240},
	Bear:       RGB{R: 110, G: 74, B: 44},
	BearArm:    RGB{R: 140, G: 98, B: 62},
	Coin:       RGB{R: 255, G: 210, B: 70},
	Popup:      RGB{R: 120, G: 255, B: 150},
	Debris:     RGB{R: 190, G: 190, B: 195},
	Cloud:      RGB{R: 150, G: 160, B: 190},
	Headlight:  RGB{R: 255, G: 240, B: 190},
	Taillight:  RGB{R: 255, G: 40, B: 30},
	SirenRed:   RGB{R: 255, G: 40, B: 40},
	SirenBlue:  RGB{R: 50, G: 90, B: 255},
	Shadow:     RGB{R: 0, G: 0, B: 0},
}

// trafficColors tint same-direction cars; a node's serial picks one.
var trafficColors = []RGB{
	{R: 72, G: 132, B: 214},
	{R: 226, G: 226, B: 230},
	{R: 64, G: 170, B: 120},
	{R: 150, G: 90, B: 190},
	{R: 230, G: 130, B: 50},
	{R: 110, G: 116, B: 126},
}

// buildingColors alternate along the roadside.
var buildingColors = []RGB{
	{R: 153, G: 144, B: 133},
	{R: 104, G: 108, B: 112},
	{R: 195, G: 174, B: 142},
	{R: 86, G: 89, B: 88},
}

// bodyColor returns the base colour of a node.
func bodyColor(kind game.VisualKind, serial uint64) RGB {
	switch kind {
	case game.VisualPlayer:
		return Palette.Player
	case game.VisualCar:
		return trafficColors[serial%uint64(len(trafficColors))]
	case game.VisualWrongWayCar:
		return Palette.WrongWay
	case game.VisualPolice:
		return Palette.Police
	case game.VisualHazard:
		return Palette.Bear
	case game.VisualPickup:
		return Palette.Coin
	case game.VisualPopup:
		return Palette.Popup
	case game.VisualDebris:
		return Palette.Debris
	case game.VisualMarker:
		return Palette.Marker
	case game.VisualScenery:
		return buildingColors[serial%uint64(len(buildingColors))]
	case game.VisualCloud:
		return Palette.Cloud
	}
	return Palette.Debris
}
