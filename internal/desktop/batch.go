package desktop

import (
	"math"
	"slices"

	"streetsprint/internal/game"
	"streetsprint/internal/scene"
)

// Vehicle and prop dimensions in world units.
const (
	carWidth     = 1.8
	carLength    = 3.8
	carHeight    = 1.1
	bearWidth    = 1.1
	bearHeight   = 1.6
	coinSize     = 0.8
	debrisSize   = 0.28
	markerWidth  = 0.18
	markerLength = 3.0
	railWidth    = 0.25
	roadMargin   = 1.8
	roadFarZ     = -600
	blockGap     = 1.5
	blockDepth   = 6.0
	blockLength  = 24.0
	cloudSize    = 9.0
)

// Batch collects one frame's geometry. Quads are triangles of quadStride
// floats per vertex; Glow holds glowStride floats per sprite.
type Batch struct {
	Quads []float32
	Glow  []float32

	nodes []*scene.Node
}

func (b *Batch) Reset() {
	b.Quads = b.Quads[:0]
	b.Glow = b.Glow[:0]
	b.nodes = b.nodes[:0]
}

func (b *Batch) vertex(x, y float64, r, g, bl, a float32) {
	b.Quads = append(b.Quads, float32(x), float32(y), r, g, bl, a)
}

// quad appends an arbitrary convex quad given in winding order.
func (b *Batch) quad(x0, y0, x1, y1, x2, y2, x3, y3 float64, c RGB, alpha float64) {
	r, g, bl := c.Floats()
	a := float32(alpha)
	b.vertex(x0, y0, r, g, bl, a)
	b.vertex(x1, y1, r, g, bl, a)
	b.vertex(x2, y2, r, g, bl, a)
	b.vertex(x0, y0, r, g, bl, a)
	b.vertex(x2, y2, r, g, bl, a)
	b.vertex(x3, y3, r, g, bl, a)
}

func (b *Batch) rect(x0, y0, x1, y1 float64, c RGB, alpha float64) {
	b.quad(x0, y0, x1, y0, x1, y1, x0, y1, c, alpha)
}

// glow appends a light sprite; brightness pre-multiplies the colour.
func (b *Batch) glow(x, y, size float64, c RGB, brightness float64) {
	r, g, bl := c.Floats()
	k := float32(brightness)
	b.Glow = append(b.Glow, float32(x), float32(y), float32(size), r*k, g*k, bl*k, 1, 0)
}

// frame projects the scene through cam into b.
type frame struct {
	b        *Batch
	cam      *Camera
	fbW, fbH int
	baseY    float64
	roadHalf float64
	now      float64
}

// BuildFrame fills b with everything visible in g, far to near.
func BuildFrame(b *Batch, g *scene.Graph, cam *Camera, tu game.Tuning, fbW, fbH int, now float64) {
	b.Reset()
	f := frame{b: b, cam: cam, fbW: fbW, fbH: fbH, baseY: tu.PlayerBaseY, now: now}
	for _, x := range tu.Lanes {
		f.roadHalf = max(f.roadHalf, math.Abs(x)+roadMargin)
	}

	horizon := float64(fbH) * cam.Horizon
	b.rect(0, horizon, float64(fbW), float64(fbH), Palette.Grass, 1)
	f.ground(-f.roadHalf, f.roadHalf, roadFarZ, f.nearZ(), Palette.Road, 1)
	f.ground(-f.roadHalf-railWidth, -f.roadHalf, roadFarZ, f.nearZ(), Palette.Rail, 1)
	f.ground(f.roadHalf, f.roadHalf+railWidth, roadFarZ, f.nearZ(), Palette.Rail, 1)

	g.Each(func(n *scene.Node) { b.nodes = append(b.nodes, n) })
	slices.SortStableFunc(b.nodes, func(x, y *scene.Node) int {
		// Sky first, then ground level far to near.
		if cx, cy := x.Kind == game.VisualCloud, y.Kind == game.VisualCloud; cx != cy {
			if cx {
				return -1
			}
			return 1
		}
		switch {
		case x.Z < y.Z:
			return -1
		case x.Z > y.Z:
			return 1
		}
		return 0
	})
	for _, n := range b.nodes {
		f.node(n)
	}
}

// nearZ is the closest depth worth drawing.
func (f *frame) nearZ() float64 { return f.cam.Back - 2*nearPlane }

// ground draws a flat strip on the road surface.
func (f *frame) ground(x0, x1, zFar, zNear float64, c RGB, alpha float64) {
	zNear = min(zNear, f.nearZ())
	if zFar >= zNear {
		return
	}
	ax, ay, _, ok1 := f.cam.Project(x0, 0, zFar, f.fbW, f.fbH)
	bx, _, _, ok2 := f.cam.Project(x1, 0, zFar, f.fbW, f.fbH)
	cx, cy, _, ok3 := f.cam.Project(x1, 0, zNear, f.fbW, f.fbH)
	dx, _, _, ok4 := f.cam.Project(x0, 0, zNear, f.fbW, f.fbH)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}
	f.b.quad(ax, ay, bx, ay, cx, cy, dx, cy, c, alpha)
}

// box draws the top and the near face of an axis-aligned block.
func (f *frame) box(x0, x1, y0, y1, zFar, zNear float64, c RGB, alpha float64) {
	zNear = min(zNear, f.nearZ())
	if zFar >= zNear {
		return
	}
	tlx, tly, _, ok1 := f.cam.Project(x0, y1, zFar, f.fbW, f.fbH)
	trx, _, _, ok2 := f.cam.Project(x1, y1, zFar, f.fbW, f.fbH)
	nlx, nly, _, ok3 := f.cam.Project(x0, y1, zNear, f.fbW, f.fbH)
	nrx, _, _, ok4 := f.cam.Project(x1, y1, zNear, f.fbW, f.fbH)
	blx, bly, _, ok5 := f.cam.Project(x0, y0, zNear, f.fbW, f.fbH)
	brx, _, _, ok6 := f.cam.Project(x1, y0, zNear, f.fbW, f.fbH)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return
	}
	f.b.quad(tlx, tly, trx, tly, nrx, nly, nlx, nly, c, alpha)
	f.b.quad(nlx, nly, nrx, nly, brx, bly, blx, bly, c.Mul(190), alpha)
}

func (f *frame) light(x, y, z, size float64, c RGB, brightness float64) {
	sx, sy, scale, ok := f.cam.Project(x, y, z, f.fbW, f.fbH)
	if !ok || z > f.nearZ() {
		return
	}
	f.b.glow(sx, sy, size*scale, c, brightness)
}

func (f *frame) node(n *scene.Node) {
	col := bodyColor(n.Kind, n.Serial)
	switch n.Kind {
	case game.VisualMarker:
		f.ground(n.X-markerWidth/2, n.X+markerWidth/2, n.Z-markerLength/2, n.Z+markerLength/2, col, 1)

	case game.VisualScenery:
		for side := -1.0; side <= 1; side += 2 {
			inner := n.X + side*(f.roadHalf+blockGap)
			outer := inner + side*blockDepth
			h := 3 + float64((n.Serial*7+uint64(side+1))%5)
			f.box(min(inner, outer), max(inner, outer), 0, h, n.Z-blockLength/2, n.Z+blockLength/2, col, 1)
		}

	case game.VisualCloud:
		f.light(n.X, n.Y, n.Z, cloudSize, col, 0.35)

	case game.VisualPlayer, game.VisualCar, game.VisualWrongWayCar, game.VisualPolice:
		f.vehicle(n, col)

	case game.VisualHazard:
		bottom := max(0, n.Y-0.2)
		f.ground(n.X-bearWidth*0.6, n.X+bearWidth*0.6, n.Z-0.5, n.Z+0.5, Palette.Shadow, 0.35)
		f.box(n.X-bearWidth/2, n.X+bearWidth/2, bottom, bottom+bearHeight, n.Z-0.45, n.Z+0.45, col, 1)
		raise := math.Min(1, math.Max(0, -n.Rot[0]/0.4))
		armTop := bottom + bearHeight*0.7 + raise*0.9
		for side := -1.0; side <= 1; side += 2 {
			ax := n.X + side*(bearWidth/2+0.12)
			f.box(ax-0.12, ax+0.12, bottom+bearHeight*0.45, armTop, n.Z-0.15, n.Z+0.15, Palette.BearArm, 1)
		}

	case game.VisualPickup:
		w := coinSize / 2 * math.Max(0.15, math.Abs(math.Cos(n.Rot[1])))
		f.box(n.X-w, n.X+w, n.Y-coinSize/2, n.Y+coinSize/2, n.Z-0.08, n.Z+0.08, col, 1)
		f.light(n.X, n.Y, n.Z, 2.4, Palette.Coin, 0.5)

	case game.VisualPopup:
		f.light(n.X, n.Y, n.Z, 1.6*n.Scale[0], col, n.Opacity)

	case game.VisualDebris:
		s := debrisSize / 2
		f.box(n.X-s, n.X+s, n.Y-s, n.Y+s, n.Z-s, n.Z+s, col, n.Opacity)
	}
}

func (f *frame) vehicle(n *scene.Node, col RGB) {
	bottom := max(0, n.Y-f.baseY)
	hw := carWidth / 2
	far, near := n.Z-carLength/2, n.Z+carLength/2

	if bottom > 0.05 {
		f.ground(n.X-hw, n.X+hw, far, near, Palette.Shadow, 0.3)
	}
	// Roll leans the roof sideways.
	lean := math.Sin(n.Rot[2]) * carHeight
	f.box(n.X-hw, n.X+hw, bottom, bottom+carHeight*0.55, far, near, col, 1)
	f.box(n.X-hw*0.75+lean*0.3, n.X+hw*0.75+lean*0.3, bottom+carHeight*0.55, bottom+carHeight, far+0.7, near-1.0, col.Mul(220), 1)

	switch n.Kind {
	case game.VisualPolice:
		f.box(n.X-0.5, n.X+0.5, bottom+carHeight, bottom+carHeight+0.12, n.Z-0.2, n.Z+0.2, Palette.PoliceRoof, 1)
		red, blue := 1.0, 0.2
		if int(f.now*6)%2 == 1 {
			red, blue = blue, red
		}
		f.light(n.X-0.35, bottom+carHeight+0.2, n.Z, 2.8, Palette.SirenRed, red)
		f.light(n.X+0.35, bottom+carHeight+0.2, n.Z, 2.8, Palette.SirenBlue, blue)
		fallthrough
	case game.VisualPlayer, game.VisualCar:
		// Driving away: headlights throw forward, taillights face the camera.
		f.light(n.X-hw*0.7, bottom+0.4, far, 2.2, Palette.Headlight, 0.35)
		f.light(n.X+hw*0.7, bottom+0.4, far, 2.2, Palette.Headlight, 0.35)
		f.light(n.X-hw*0.7, bottom+0.45, near, 0.9, Palette.Taillight, 0.7)
		f.light(n.X+hw*0.7, bottom+0.45, near, 0.9, Palette.Taillight, 0.7)
	case game.VisualWrongWayCar:
		f.light(n.X-hw*0.7, bottom+0.4, near, 2.6, Palette.Headlight, 0.9)
		f.light(n.X+hw*0.7, bottom+0.4, near, 2.6, Palette.Headlight, 0.9)
	}
}
