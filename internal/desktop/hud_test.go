package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"streetsprint/internal/game"
)

func TestTitleHUD(t *testing.T) {
	h := NewTitleHUD("Street Sprint")
	var _ game.HUD = h

	h.SetScore(120)
	h.SetBest(900)
	h.SetSpeed(88)
	h.SetState(game.PhaseRunning, "Normal")

	title, changed := h.Title()
	assert.True(t, changed)
	assert.Equal(t, "Street Sprint [Normal]  score 120  best 900  88 km/h", title)

	_, changed = h.Title()
	assert.False(t, changed)

	h.SetScore(120)
	_, changed = h.Title()
	assert.False(t, changed, "same text")

	h.SetState(game.PhaseGameOver, "Normal")
	title, changed = h.Title()
	assert.True(t, changed)
	assert.Contains(t, title, "CRASHED")
}
