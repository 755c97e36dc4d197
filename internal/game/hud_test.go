package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHUDThrottle(t *testing.T) {
	hud := &fakeHUD{}
	h := hudThrottle{hud: hud}

	h.push(10.4, 0, 55, 3.2)
	h.push(10.9, 0, 55, 3.2)
	h.push(11.0, 0, 55.01, 3.2)
	assert.Equal(t, []int{10, 11}, hud.scores)
	assert.Equal(t, []int{0}, hud.bests)
	assert.Equal(t, []int{176}, hud.speeds)

	h.invalidate()
	h.push(11.0, 0, 55, 3.2)
	assert.Equal(t, []int{10, 11, 11}, hud.scores)
	assert.Equal(t, []int{0, 0}, hud.bests)
}

func TestHUDThrottleWithoutHUD(t *testing.T) {
	var h hudThrottle
	assert.NotPanics(t, func() { h.push(1, 2, 3, 4) })
}

func TestSimPushesHUD(t *testing.T) {
	hud := &fakeHUD{}
	s := runningSim(t, WithHUD(hud))
	a := assert.New(t)

	a.NotEmpty(hud.speeds)
	a.Equal(176, hud.speeds[len(hud.speeds)-1])

	before := len(hud.scores)
	s.Frame(0)
	s.Frame(0)
	a.Len(hud.scores, before, "unchanged values are not re-sent")
}
