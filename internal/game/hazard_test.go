package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addHazard(s *Sim, lane int, z float64) {
	h := Hazard{Body: Body{ID: s.newID(), Lane: lane, X: s.tuning.LaneX(lane), Y: s.tuning.HazardBaseY, Z: z}}
	h.Visual = s.spawnVisual(VisualHazard)
	s.Hazards = append(s.Hazards, h)
}

func TestHazardDespawnBoundary(t *testing.T) {
	s := runningSim(t)
	despawn := s.Tuning().HazardDespawnZ
	addHazard(s, 0, despawn-1e-9)
	addHazard(s, 0, despawn)
	addHazard(s, 2, despawn+3)

	s.updateHazards(0)
	require.Len(t, s.Hazards, 1)
	assert.Less(t, s.Hazards[0].Z, despawn)
}

func TestHazardLethalWhileAirborne(t *testing.T) {
	s := runningSim(t)
	crashes := countEvents(s, EventCrash)
	s.Player.Y = 5
	s.Player.Airborne = true
	addHazard(s, s.Player.Lane, 0)

	s.updateHazards(0)
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 1, *crashes)
	assert.True(t, s.Hazards[0].Collided)
	assert.NotEmpty(t, s.Effects.Debris)
}

func TestHazardArmRaise(t *testing.T) {
	s := runningSim(t)
	tu := s.Tuning()
	addHazard(s, 0, tu.HazardArmStartZ-5)
	addHazard(s, 0, (tu.HazardArmStartZ+tu.HazardArmEndZ)/2)
	addHazard(s, 2, tu.HazardArmEndZ+2)

	s.updateHazards(0)
	require.Len(t, s.Hazards, 3)
	assert.Zero(t, s.Hazards[0].ArmRaise)
	assert.InDelta(t, 0.5, s.Hazards[1].ArmRaise, 1e-9)
	assert.Equal(t, 1.0, s.Hazards[2].ArmRaise)
}

func TestHazardScrollsWithPlayer(t *testing.T) {
	s := runningSim(t)
	addHazard(s, 0, -60)
	s.Player.Speed = 40

	s.updateHazards(0.05)
	assert.InDelta(t, -58, s.Hazards[0].Z, 1e-9)
}

func TestHazardSpawnRespectsSeparation(t *testing.T) {
	tu := DefaultTuning()
	tu.HazardSpawnSpread = 0
	tu.Lanes = []float64{0}
	s := runningSim(t, WithTuning(tu))

	s.spawnHazard()
	require.Len(t, s.Hazards, 1)
	s.spawnHazard()
	assert.Len(t, s.Hazards, 1, "same spot")

	s.Hazards = s.Hazards[:0]
	s.addCar(0, tu.HazardSpawnZ-tu.HazardTrafficGap+0.5, CarForward, 15)
	s.spawnHazard()
	assert.Empty(t, s.Hazards, "too close to traffic")
}

func TestHazardIntervalShrinksWithScore(t *testing.T) {
	tu := DefaultTuning()
	tu.HazardJitter = 0
	s := runningSim(t, WithTuning(tu))

	s.Score = 0
	assert.Equal(t, tu.HazardBaseInterval, s.nextHazardInterval())
	s.Score = 2000
	assert.InDelta(t, tu.HazardBaseInterval-2000*tu.HazardScoreDecay, s.nextHazardInterval(), 1e-9)
	s.Score = 1e9
	assert.Equal(t, tu.HazardMinInterval, s.nextHazardInterval())
}
