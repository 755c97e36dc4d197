package game

// Ground-plane recycling. Visual only; nothing here touches gameplay.
const (
	markerRows    = 20
	markerSpacing = 13.0
	markerY       = 0.05
	markerResetZ  = 12.0

	segmentCount   = 14
	segmentLength  = 28.0
	segmentOffsetZ = 16.0
	segmentFactor  = 0.62
	segmentResetZ  = 48.0

	cloudCount    = 40
	cloudBaseY    = 40.0
	cloudVariance = 3.0
	cloudRadiusX  = 50.0
	cloudFactor   = 0.1
	cloudResetZ   = 60.0

	parallaxShare = 0.12
	parallaxEase  = 0.04
)

// Prop is one recycled decoration.
type Prop struct {
	X, Y, Z float64
	Visual  Visual

	homeX, homeZ float64
}

// Recycler scrolls a set of props toward the camera and wraps each one back by
// Loop once it passes ResetZ.
type Recycler struct {
	Props  []Prop
	Factor float64
	ResetZ float64
	Loop   float64
}

func (r *Recycler) add(v Visual, x, y, z float64) {
	p := Prop{X: x, Y: y, Z: z, Visual: v, homeX: x, homeZ: z}
	v.SetPosition(x, y, z)
	r.Props = append(r.Props, p)
}

// Advance scrolls every prop by dist scaled by the parallax factor, offset
// sideways by shiftX.
func (r *Recycler) Advance(dist, shiftX float64) {
	d := dist * r.Factor
	for i := range r.Props {
		p := &r.Props[i]
		p.Z += d
		if p.Z > r.ResetZ {
			p.Z -= r.Loop
		}
		p.Visual.SetPosition(p.X+shiftX, p.Y, p.Z)
	}
}

// Reset puts every prop back at its initial position.
func (r *Recycler) Reset() {
	for i := range r.Props {
		p := &r.Props[i]
		p.X, p.Z = p.homeX, p.homeZ
		p.Visual.SetPosition(p.X, p.Y, p.Z)
	}
}

// Scenery groups the lane markers, roadside segments and clouds.
type Scenery struct {
	Markers   Recycler
	Segments  Recycler
	Clouds    Recycler
	ParallaxX float64
}

func newScenery(s *Sim) Scenery {
	t := &s.tuning
	sc := Scenery{
		Markers:  Recycler{Factor: 1, ResetZ: markerResetZ, Loop: markerSpacing * markerRows},
		Segments: Recycler{Factor: segmentFactor, ResetZ: segmentResetZ, Loop: segmentLength * segmentCount},
		Clouds:   Recycler{Factor: cloudFactor, ResetZ: cloudResetZ, Loop: segmentLength*segmentCount + 160},
	}

	columns := t.LaneCount() - 1
	for row := 0; row < markerRows; row++ {
		for col := 0; col < columns; col++ {
			x := (t.Lanes[col] + t.Lanes[col+1]) / 2
			sc.Markers.add(s.spawnVisual(VisualMarker), x, markerY, -float64(row)*markerSpacing)
		}
	}
	for i := 0; i < segmentCount; i++ {
		sc.Segments.add(s.spawnVisual(VisualScenery), 0, 0, -float64(i)*segmentLength-segmentOffsetZ)
	}
	for i := 0; i < cloudCount; i++ {
		x := rangeF(s.rng, -cloudRadiusX, cloudRadiusX)
		y := cloudBaseY + s.rng.Float64()*cloudVariance
		z := cloudResetZ - s.rng.Float64()*sc.Clouds.Loop
		sc.Clouds.add(s.spawnVisual(VisualCloud), x, y, z)
	}
	return sc
}

// Update scrolls everything by the distance the player covered this frame.
func (sc *Scenery) Update(dt, speed, playerX float64) {
	dist := speed * dt
	sc.ParallaxX += (playerX*parallaxShare - sc.ParallaxX) * parallaxEase
	sc.Markers.Advance(dist, 0)
	sc.Segments.Advance(dist, sc.ParallaxX)
	sc.Clouds.Advance(dist, 0)
}

func (sc *Scenery) Reset() {
	sc.ParallaxX = 0
	sc.Markers.Reset()
	sc.Segments.Reset()
	sc.Clouds.Reset()
}
