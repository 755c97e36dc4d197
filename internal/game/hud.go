package game

import "math"

// HUD receives the numbers shown to the player.
type HUD interface {
	SetScore(score int)
	SetBest(best int)
	SetSpeed(kmh int)
}

// BestStore persists the best score per tier key.
type BestStore interface {
	LoadBest(key string) (float64, error)
	SaveBest(key string, score float64) error
}

// hudThrottle forwards values only when their displayed form changes.
type hudThrottle struct {
	hud HUD

	score, best, speed          int
	hasScore, hasBest, hasSpeed bool
}

func (h *hudThrottle) invalidate() {
	h.hasScore, h.hasBest, h.hasSpeed = false, false, false
}

func (h *hudThrottle) push(score, best, speed, speedFactor float64) {
	if h.hud == nil {
		return
	}
	sc := int(math.Floor(score))
	if !h.hasScore || sc != h.score {
		h.score, h.hasScore = sc, true
		h.hud.SetScore(sc)
	}
	b := int(math.Floor(best))
	if !h.hasBest || b != h.best {
		h.best, h.hasBest = b, true
		h.hud.SetBest(b)
	}
	kmh := int(math.Round(speed * speedFactor))
	if !h.hasSpeed || kmh != h.speed {
		h.speed, h.hasSpeed = kmh, true
		h.hud.SetSpeed(kmh)
	}
}
