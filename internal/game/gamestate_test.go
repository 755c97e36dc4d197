package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsReady(t *testing.T) {
	store := newFakeStore()
	store.best["street-sprint-best-easy"] = 420
	s := newTestSim(t, WithStore(store))

	assert.Equal(t, PhaseReady, s.Phase)
	assert.Equal(t, "easy", s.Tier().ID)
	assert.Equal(t, 420.0, s.Best)
	assert.Equal(t, s.Tuning().LaneCount()/2, s.Player.Lane)
	assert.False(t, s.Running())
}

func TestNewRejectsBadConfig(t *testing.T) {
	tu := DefaultTuning()
	tu.Lanes = nil
	_, err := New(WithTuning(tu))
	assert.Error(t, err)

	_, err = New(WithTiers(nil))
	assert.Error(t, err)
}

func TestStoreFailureMeansZeroBest(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errStoreDown
	store.saveErr = errStoreDown
	s := newTestSim(t, WithStore(store))
	assert.Zero(t, s.Best)

	s.Start()
	s.Score = 500
	s.gameOver("test", 0, 0)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 500.0, s.Best, "kept for the session")
}

func TestSelectTier(t *testing.T) {
	store := newFakeStore()
	store.best["street-sprint-best-hard"] = 900
	s := newTestSim(t, WithStore(store))

	require.NoError(t, s.SelectTier("hard"))
	assert.Equal(t, 900.0, s.Best)
	assert.InDelta(t, s.Tuning().StartSpeed*1.2, s.Player.Speed, 1e-9)

	err := s.SelectTier("nightmare")
	assert.ErrorIs(t, err, ErrUnknownTier)

	s.Start()
	assert.ErrorIs(t, s.SelectTier("easy"), ErrRunActive)
	assert.Equal(t, "hard", s.Tier().ID)
}

func TestStartIgnoredWhileRunning(t *testing.T) {
	s := runningSim(t)
	starts := countEvents(s, EventRunStarted)
	s.Frame(0.05)
	elapsed := s.Elapsed

	s.Start()
	assert.Equal(t, 0, *starts)
	assert.Equal(t, elapsed, s.Elapsed)
}

func TestFrameClampsDelta(t *testing.T) {
	s := runningSim(t)
	s.Frame(5)
	assert.Equal(t, s.Tuning().MaxDelta, s.Elapsed)

	s.Frame(-1)
	assert.Equal(t, s.Tuning().MaxDelta, s.Elapsed)
}

func TestFrameIgnoresNaNDelta(t *testing.T) {
	s := runningSim(t)
	s.Frame(0.02)
	speed, score := s.Player.Speed, s.Score

	s.Frame(math.NaN())
	assert.Equal(t, speed, s.Player.Speed)
	assert.Equal(t, score, s.Score)

	s.Frame(0.02)
	assert.False(t, math.IsNaN(s.Elapsed))
	assert.False(t, math.IsNaN(s.Score))
	assert.Greater(t, s.Score, score)
}

func TestNewBestSavedOnGameOver(t *testing.T) {
	store := newFakeStore()
	s := runningSim(t, WithStore(store))
	bests := countEvents(s, EventNewBest)

	s.Score = 1234.7
	s.gameOver("test", 0, 0)
	assert.Equal(t, 1234.7, store.best["street-sprint-best-normal"])
	assert.Equal(t, 1, *bests)

	s.Start()
	s.Score = 10
	s.gameOver("test", 0, 0)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 1, *bests)
	assert.Equal(t, 1234.7, s.Best)
}

func TestRestartResetsRun(t *testing.T) {
	scene := newFakeScene()
	s := runningSim(t, WithScene(scene))
	baseline := len(scene.live)

	for i := 0; i < 60; i++ {
		s.Frame(0.016)
	}
	s.Move(1)
	s.Jump()
	s.addCar(0, -40, CarForward, 15)
	addHazard(s, 2, -70)
	addPickup(s, 0, -90)
	s.spawnDebris(0, 0, -5)
	s.spawnPopup(150, 0, 0, -5)
	s.gameOver("test", 0, 0)
	require.Equal(t, PhaseGameOver, s.Phase)

	s.Start()
	tu := s.Tuning()
	assert.Equal(t, PhaseRunning, s.Phase)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Elapsed)
	assert.Empty(t, s.Cars)
	assert.Empty(t, s.Hazards)
	assert.Empty(t, s.Pickups)
	assert.Empty(t, s.Effects.Popups)
	assert.Empty(t, s.Effects.Debris)
	assert.Equal(t, tu.LaneCount()/2, s.Player.Lane)
	assert.Equal(t, tu.LaneX(tu.LaneCount()/2), s.Player.X)
	assert.Equal(t, tu.PlayerBaseY, s.Player.Y)
	assert.False(t, s.Player.Airborne)
	assert.Equal(t, tu.StartSpeed, s.Player.Speed)
	assert.Equal(t, baseline, len(scene.live), "no leaked visuals")
	assert.Equal(t, 1, scene.count(VisualPlayer))
}

func TestScoreMonotonicAndFrozen(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		s := runningSim(t, WithRand(NewRand(seed)))
		pilot := NewAutopilot()
		tu := s.Tuning()
		limit := tu.SpeedCap(s.Tier().SpeedMultiplier)
		rng := NewRand(seed + 100)
		last := s.Score
		runs := 0

		for i := 0; i < 6000; i++ {
			if s.Phase == PhaseGameOver {
				frozen := s.Score
				for j := 0; j < 5; j++ {
					s.Frame(0.016)
					require.Equal(t, frozen, s.Score)
				}
				runs++
				s.Start()
				last = 0
				continue
			}
			pilot.Steer(s)
			s.Frame(rng.RangeF(0.005, 0.08))

			require.GreaterOrEqual(t, s.Score, last, "seed %d frame %d", seed, i)
			last = s.Score
			require.LessOrEqual(t, len(s.Pickups), tu.PickupCap)
			require.GreaterOrEqual(t, s.Player.Lane, 0)
			require.Less(t, s.Player.Lane, tu.LaneCount())
			require.LessOrEqual(t, s.Player.Speed, limit+1e-9)
			require.GreaterOrEqual(t, s.Player.Speed, 0.0)
		}
		t.Logf("seed %d: %d crashes", seed, runs)
	}
}

func TestDistanceScore(t *testing.T) {
	s := runningSim(t)
	speed := s.Player.Speed
	s.Frame(0.01)
	// Speed eases a little toward the ramp before scoring.
	assert.InDelta(t, speed*0.01*s.Tuning().DistanceScoreRate, s.Score, 0.1)
}
