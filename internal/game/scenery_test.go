package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneryLayout(t *testing.T) {
	scene := newFakeScene()
	s := newTestSim(t, WithScene(scene))
	columns := s.Tuning().LaneCount() - 1

	assert.Len(t, s.Scenery.Markers.Props, markerRows*columns)
	assert.Equal(t, markerRows*columns, scene.count(VisualMarker))
	assert.Equal(t, segmentCount, scene.count(VisualScenery))
	assert.Equal(t, cloudCount, scene.count(VisualCloud))
	assert.Equal(t, 260.0, s.Scenery.Markers.Loop)
	assert.Equal(t, 392.0, s.Scenery.Segments.Loop)
	assert.Equal(t, 552.0, s.Scenery.Clouds.Loop)

	lanes := s.Tuning().Lanes
	assert.Equal(t, (lanes[0]+lanes[1])/2, s.Scenery.Markers.Props[0].X)
}

func TestRecyclerWraps(t *testing.T) {
	s := newTestSim(t)
	m := &s.Scenery.Markers
	require.Equal(t, 0.0, m.Props[0].Z)

	m.Advance(markerSpacing, 0)
	assert.InDelta(t, markerSpacing-m.Loop, m.Props[0].Z, 1e-9)

	m.Reset()
	assert.Equal(t, 0.0, m.Props[0].Z)
}

func TestSegmentsScrollSlower(t *testing.T) {
	s := newTestSim(t)
	z := s.Scenery.Segments.Props[0].Z
	s.Scenery.Update(0.05, 40, 0)
	assert.InDelta(t, z+40*0.05*segmentFactor, s.Scenery.Segments.Props[0].Z, 1e-9)
}

func TestSceneryFrozenOnGameOver(t *testing.T) {
	s := runningSim(t)
	s.Frame(0.02)
	z := s.Scenery.Markers.Props[3].Z

	s.gameOver("test", 0, 0)
	s.Frame(0.05)
	assert.Equal(t, z, s.Scenery.Markers.Props[3].Z)
}

func TestSceneryScrollsWhileReady(t *testing.T) {
	s := newTestSim(t)
	z := s.Scenery.Markers.Props[3].Z
	s.Frame(0.05)
	assert.Greater(t, s.Scenery.Markers.Props[3].Z, z)
}
