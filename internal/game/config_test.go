package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningValid(t *testing.T) {
	tu := DefaultTuning()
	require.NoError(t, tu.Validate())
	assert.Equal(t, 3, tu.LaneCount())
	assert.Equal(t, 150.0, tu.SpeedCap(1))
	assert.InDelta(t, 180.0, tu.SpeedCap(1.2), 1e-9)
}

func TestTuningValidate(t *testing.T) {
	cases := map[string]func(*Tuning){
		"no lanes":         func(tu *Tuning) { tu.Lanes = nil },
		"zero max delta":   func(tu *Tuning) { tu.MaxDelta = 0 },
		"traffic floor":    func(tu *Tuning) { tu.TrafficMinInterval = tu.TrafficBaseInterval + 1 },
		"hazard floor":     func(tu *Tuning) { tu.HazardMinInterval = 0 },
		"pickup interval":  func(tu *Tuning) { tu.PickupMinInterval = tu.PickupMaxInterval + 1 },
		"negative cap":     func(tu *Tuning) { tu.PickupCap = -1 },
		"no pursuit tries": func(tu *Tuning) { tu.PursuitAttempts = 0 },
		"non-positive max": func(tu *Tuning) { tu.MaxSpeed = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tu := DefaultTuning()
			mutate(&tu)
			assert.Error(t, tu.Validate())
		})
	}
}

func TestLaneXPanicsOutOfRange(t *testing.T) {
	tu := DefaultTuning()
	assert.Equal(t, -2.6, tu.LaneX(0))
	assert.Panics(t, func() { tu.LaneX(-1) })
	assert.Panics(t, func() { tu.LaneX(tu.LaneCount()) })
}

func TestTuningReadersOnSnapshot(t *testing.T) {
	s := newTestSim(t)
	assert.Equal(t, 3, s.Tuning().LaneCount())
	assert.Equal(t, 2.6, s.Tuning().LaneX(2))
	assert.Equal(t, DefaultTuning().SpeedCap(s.Tier().SpeedMultiplier), s.Tuning().SpeedCap(s.Tier().SpeedMultiplier))
}

func TestValidateTiers(t *testing.T) {
	require.NoError(t, ValidateTiers(DefaultTiers()))

	assert.Error(t, ValidateTiers(nil))
	assert.Error(t, ValidateTiers([]Tier{{ID: "a", StorageKey: "k", SpeedMultiplier: 0}}))
	assert.Error(t, ValidateTiers([]Tier{{ID: "", StorageKey: "k", SpeedMultiplier: 1}}))
	assert.Error(t, ValidateTiers([]Tier{
		{ID: "a", StorageKey: "k1", SpeedMultiplier: 1},
		{ID: "a", StorageKey: "k2", SpeedMultiplier: 1},
	}))
	assert.Error(t, ValidateTiers([]Tier{
		{ID: "a", StorageKey: "k", SpeedMultiplier: 1},
		{ID: "b", StorageKey: "k", SpeedMultiplier: 1},
	}))
}
