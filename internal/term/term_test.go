package term

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"streetsprint/internal/game"
	"streetsprint/internal/scene"
)

func newTestApp(t *testing.T, opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 30)

	g := scene.New()
	hud := NewStatusHUD()
	sim, err := game.New(game.WithScene(g), game.WithHUD(hud), game.WithRand(game.NewRand(11)))
	require.NoError(t, err)
	return New(screen, sim, g, hud, opts, zap.NewNop()), screen
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawReadyScreen(t *testing.T) {
	app, screen := newTestApp(t, Options{})
	app.Draw()

	l := app.layout()
	col, row, ok := l.cell(app.sim.Player.X, 0)
	require.True(t, ok)
	assert.Equal(t, 'A', runeAt(screen, col, row))
	assert.Equal(t, '│', runeAt(screen, l.roadL, row))
	assert.Equal(t, 'S', runeAt(screen, 1, 0))
	assert.Contains(t, app.hud.Line(), "press enter")
}

func TestKeysDriveSim(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	assert.True(t, app.HandleKey(tcell.KeyRune, '3'))
	assert.Equal(t, "hard", app.sim.Tier().ID)

	assert.True(t, app.HandleKey(tcell.KeyEnter, 0))
	assert.Equal(t, game.PhaseRunning, app.sim.Phase)

	lane := app.sim.Player.Lane
	app.HandleKey(tcell.KeyRight, 0)
	assert.Equal(t, lane+1, app.sim.Player.Lane)
	app.HandleKey(tcell.KeyRune, 'a')
	assert.Equal(t, lane, app.sim.Player.Lane)

	app.HandleKey(tcell.KeyRune, ' ')
	assert.True(t, app.sim.Player.Airborne)

	app.HandleKey(tcell.KeyRune, '1')
	assert.Equal(t, "hard", app.sim.Tier().ID, "locked while running")

	assert.False(t, app.HandleKey(tcell.KeyRune, 'q'))
	assert.False(t, app.HandleKey(tcell.KeyEscape, 0))
}

func TestStepAndDrawWhileRunning(t *testing.T) {
	app, screen := newTestApp(t, Options{Autopilot: true})
	for i := 0; i <= 300; i++ {
		app.Step(float64(i) / 60)
		app.Draw()
	}
	assert.NotEqual(t, game.PhaseReady, app.sim.Phase, "autopilot starts the run")
	assert.Greater(t, app.sim.Score, 0.0)
	assert.Contains(t, app.hud.Line(), "km/h")
	assert.Equal(t, 'S', runeAt(screen, 1, 0))
}

func TestLayoutCells(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	l := app.layout()

	c0, r0, ok := l.cell(app.sim.Tuning().LaneX(0), 0)
	require.True(t, ok)
	c2, _, _ := l.cell(app.sim.Tuning().LaneX(2), 0)
	assert.Equal(t, 2*laneCols, c2-c0)
	assert.Equal(t, l.playerRow, r0)

	_, far, ok := l.cell(0, -60)
	assert.True(t, ok)
	assert.Less(t, far, r0)

	_, _, ok = l.cell(0, -500)
	assert.False(t, ok)
}

func TestLoopStopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, app.Loop(ctx))
}
