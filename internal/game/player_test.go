package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSpeedMatchesTier(t *testing.T) {
	s := runningSim(t)
	assert.Equal(t, s.Tuning().StartSpeed, s.Player.Speed)

	s.gameOver("test", 0, 0)
	require.NoError(t, s.SelectTier("hard"))
	s.Start()
	assert.InDelta(t, s.Tuning().StartSpeed*1.2, s.Player.Speed, 1e-9)
}

func TestSpeedStaysWithinCap(t *testing.T) {
	s := runningSim(t)
	limit := s.Tuning().SpeedCap(s.Tier().SpeedMultiplier)

	s.Elapsed = 1e6
	for i := 0; i < 2000; i++ {
		s.updatePlayer(0.05)
		require.LessOrEqual(t, s.Player.Speed, limit+1e-9)
		require.GreaterOrEqual(t, s.Player.Speed, 0.0)
	}
	assert.InDelta(t, limit, s.Player.Speed, 1e-6)
}

func TestTargetSpeedRamp(t *testing.T) {
	s := runningSim(t)
	tu := s.Tuning()

	s.Elapsed = 0
	assert.InDelta(t, tu.SpeedLogFactor+tu.SpeedBaseOffset, s.targetSpeed(), 1e-9)

	s.Elapsed = 90
	assert.InDelta(t, 2*tu.SpeedLogFactor+tu.SpeedBaseOffset, s.targetSpeed(), 1e-9)
}

func TestMoveClampsToLanes(t *testing.T) {
	s := runningSim(t)
	moves := countEvents(s, EventLaneChange)
	last := s.Tuning().LaneCount() - 1

	s.Move(-1)
	s.Move(-1)
	assert.Equal(t, 0, s.Player.Lane)
	assert.Equal(t, s.Tuning().Lanes[0], s.Player.TargetX)

	for i := 0; i < 5; i++ {
		s.Move(1)
	}
	assert.Equal(t, last, s.Player.Lane)
	assert.Equal(t, s.Tuning().Lanes[last], s.Player.TargetX)
	assert.Equal(t, 1+last, *moves)
}

func TestMoveIgnoredOutsideRunOrAirborne(t *testing.T) {
	s := newTestSim(t)
	mid := s.Player.Lane
	s.Move(1)
	assert.Equal(t, mid, s.Player.Lane, "ready phase")

	s.Start()
	s.Jump()
	s.Move(1)
	assert.Equal(t, mid, s.Player.Lane, "airborne")
}

func TestJumpOncePerCooldown(t *testing.T) {
	s := runningSim(t)
	jumps := countEvents(s, EventJump)

	s.Jump()
	s.Jump()
	assert.Equal(t, 1, *jumps)
	assert.True(t, s.Player.Airborne)
	assert.Equal(t, s.Tuning().JumpImpulse, s.Player.VY)

	for i := 0; i < 5; i++ {
		s.Frame(0.02)
		s.Jump()
	}
	assert.Equal(t, 1, *jumps, "still airborne")

	for i := 0; i < 100 && s.Player.Airborne; i++ {
		s.Frame(0.02)
	}
	require.False(t, s.Player.Airborne)
	assert.Equal(t, s.Tuning().PlayerBaseY, s.Player.Y)
	assert.Zero(t, s.Player.VY)
	assert.Zero(t, s.Player.Pitch)

	s.Player.JumpCooldown = 0.3
	s.Jump()
	assert.Equal(t, 1, *jumps, "cooling down")

	s.Player.JumpCooldown = 0
	s.Jump()
	assert.Equal(t, 2, *jumps)
}

func TestJumpIgnoredWhenNotRunning(t *testing.T) {
	s := newTestSim(t)
	s.Jump()
	assert.False(t, s.Player.Airborne)
}

func TestPlayerEasesTowardLane(t *testing.T) {
	s := runningSim(t)
	s.Move(1)
	target := s.Player.TargetX

	s.Frame(0.05)
	assert.Greater(t, s.Player.X, 0.0)
	assert.Less(t, s.Player.X, target)
	assert.Greater(t, s.Player.Roll, 0.0, "banks into the turn")

	for i := 0; i < 200; i++ {
		s.updatePlayer(0.05)
	}
	assert.InDelta(t, target, s.Player.X, 1e-6)
}
