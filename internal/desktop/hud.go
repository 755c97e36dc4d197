package desktop

import (
	"fmt"

	"streetsprint/internal/game"
)

// TitleHUD renders the HUD into the window title. It implements game.HUD and
// only reports a new title when the text actually changed.
type TitleHUD struct {
	base  string
	score int
	best  int
	kmh   int

	phase game.RunPhase
	tier  string

	last  string
	dirty bool
}

func NewTitleHUD(base string) *TitleHUD {
	return &TitleHUD{base: base, dirty: true}
}

func (h *TitleHUD) SetScore(score int) { h.score = score; h.dirty = true }
func (h *TitleHUD) SetBest(best int)   { h.best = best; h.dirty = true }
func (h *TitleHUD) SetSpeed(kmh int)   { h.kmh = kmh; h.dirty = true }

// SetState records the run phase and tier label shown alongside the numbers.
func (h *TitleHUD) SetState(phase game.RunPhase, tier string) {
	if phase != h.phase || tier != h.tier {
		h.phase, h.tier = phase, tier
		h.dirty = true
	}
}

func (h *TitleHUD) text() string {
	status := ""
	switch h.phase {
	case game.PhaseReady:
		status = "  |  Enter to start, 1/2/3 tier"
	case game.PhaseGameOver:
		status = "  |  CRASHED, Enter to retry"
	}
	return fmt.Sprintf("%s [%s]  score %d  best %d  %d km/h%s", h.base, h.tier, h.score, h.best, h.kmh, status)
}

// Title returns the title and whether it differs from the one last returned.
func (h *TitleHUD) Title() (string, bool) {
	if !h.dirty {
		return h.last, false
	}
	h.dirty = false
	t := h.text()
	if t == h.last {
		return t, false
	}
	h.last = t
	return t, true
}
