// Package term is a text-mode frontend on tcell: lanes are columns and depth
// runs up the screen.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"streetsprint/internal/game"
	"streetsprint/internal/scene"
)

const (
	tick       = 16 * time.Millisecond // ~60 FPS
	laneCols   = 7                     // columns per lane
	viewDepth  = 120.0                 // world units shown above the player
	statusRows = 1
	hintRows   = 1
)

type Options struct {
	Autopilot bool
}

// App draws a simulation on a tcell screen and feeds it key presses.
type App struct {
	screen tcell.Screen
	sim    *game.Sim
	graph  *scene.Graph
	hud    *StatusHUD
	driver *game.Driver
	pilot  *game.Autopilot
	log    *zap.Logger
	start  time.Time
}

// New wires an app around an initialised screen. The simulation must have
// been built with graph as its scene and hud as its HUD.
func New(screen tcell.Screen, sim *game.Sim, graph *scene.Graph, hud *StatusHUD, opts Options, log *zap.Logger) *App {
	a := &App{
		screen: screen,
		sim:    sim,
		graph:  graph,
		hud:    hud,
		driver: game.NewDriver(sim),
		log:    log,
		start:  time.Now(),
	}
	if opts.Autopilot {
		a.pilot = game.NewAutopilot()
	}
	return a
}

// Run opens the terminal, runs the app until quit or ctx is done, and
// restores the terminal.
func Run(ctx context.Context, sim *game.Sim, graph *scene.Graph, hud *StatusHUD, opts Options, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	return New(screen, sim, graph, hud, opts, log).Loop(ctx)
}

// Loop ticks the simulation and redraws until quit or ctx is done.
func (a *App) Loop(ctx context.Context) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.HandleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case <-ticker.C:
			a.Step(time.Since(a.start).Seconds())
			a.Draw()
		}
	}
}

// HandleKey applies one key press. It returns false when the user quits.
func (a *App) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.sim.Apply(game.CmdLeft)
	case tcell.KeyRight:
		a.sim.Apply(game.CmdRight)
	case tcell.KeyEnter:
		a.sim.Apply(game.CmdStart)
	case tcell.KeyRune:
		switch {
		case r == 'q':
			return false
		case r == 'a' || r == 'A':
			a.sim.Apply(game.CmdLeft)
		case r == 'd' || r == 'D':
			a.sim.Apply(game.CmdRight)
		case r == ' ':
			a.sim.Apply(game.CmdAction)
		case r >= '1' && r <= '3':
			a.selectTier(int(r - '1'))
		}
	}
	return true
}

func (a *App) selectTier(i int) {
	tiers := a.sim.Tiers()
	if i >= len(tiers) {
		return
	}
	if err := a.sim.SelectTier(tiers[i].ID); err != nil {
		a.log.Debug("tier change ignored", zap.Error(err))
	}
}

// Step advances the simulation to now seconds.
func (a *App) Step(now float64) {
	if a.pilot != nil {
		a.pilot.Steer(a.sim)
	}
	a.driver.Step(now)
}

// layout maps world coordinates to cells for the current screen size.
type layout struct {
	w, h       int
	centre     int
	colsPerU   float64
	playerRow  int
	rowDepth   float64
	roadL      int
	roadR      int
	firstRow   int
	playerBase float64
}

func (a *App) layout() layout {
	w, h := a.screen.Size()
	tu := a.sim.Tuning()
	spacing := 2.6
	if len(tu.Lanes) > 1 {
		spacing = tu.Lanes[1] - tu.Lanes[0]
	}
	l := layout{
		w:          w,
		h:          h,
		centre:     w / 2,
		colsPerU:   laneCols / spacing,
		playerRow:  h - hintRows - 2,
		firstRow:   statusRows,
		playerBase: tu.PlayerBaseY,
	}
	l.rowDepth = viewDepth / float64(max(1, l.playerRow-l.firstRow))
	half := tu.LaneCount() * laneCols / 2
	l.roadL = l.centre - half - 1
	l.roadR = l.centre + half + 1
	return l
}

// cell returns the screen cell for a world point, or ok=false if off screen.
func (l layout) cell(x, z float64) (col, row int, ok bool) {
	col = l.centre + int(math.Round(x*l.colsPerU))
	row = l.playerRow + int(math.Round(z/l.rowDepth))
	ok = col >= 0 && col < l.w && row >= l.firstRow && row < l.h-hintRows
	return
}
