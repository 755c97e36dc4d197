package desktop

import "streetsprint/internal/game"

const (
	followShare = 0.55 // fraction of the player's lateral offset the camera tracks
	followRate  = 4.0
	focalShare  = 0.55 // focal length as a fraction of framebuffer width
	nearPlane   = 0.5
)

// Camera is a chase camera looking down the road. World x is lateral, y is
// height and z runs negative ahead of the player.
type Camera struct {
	X       float64
	Height  float64 // eye height above the road
	Back    float64 // distance behind the player
	Horizon float64 // horizon line as a fraction of framebuffer height

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

func NewCamera() Camera {
	return Camera{Height: 10, Back: 7, Horizon: 0.3}
}

// Follow eases the camera toward the player's lateral position.
func (c *Camera) Follow(playerX, dt float64) {
	k := dt * followRate
	if k > 1 {
		k = 1
	}
	c.X += (playerX*followShare - c.X) * k
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := game.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// Project maps a world point to framebuffer pixels. scale is pixels per world
// unit at that depth; ok is false behind the near plane.
func (c *Camera) Project(x, y, z float64, fbW, fbH int) (sx, sy, scale float64, ok bool) {
	d := c.Back - z
	if d < nearPlane {
		return 0, 0, 0, false
	}
	scale = float64(fbW) * focalShare / d
	sx = float64(fbW)*0.5 + (x-c.X-c.ShakeX)*scale
	sy = float64(fbH)*c.Horizon + (c.Height-y+c.ShakeY)*scale
	return sx, sy, scale, true
}
