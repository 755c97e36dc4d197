package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"streetsprint/internal/game"
	"streetsprint/internal/scene"
)

var (
	styleRoad     = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 44, 54))
	styleRail     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMarker   = styleRoad.Foreground(tcell.ColorWhite)
	styleBlock    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = styleRoad.Foreground(tcell.ColorYellow).Bold(true)
	styleWrongWay = styleRoad.Foreground(tcell.ColorRed).Bold(true)
	styleBear     = styleRoad.Foreground(tcell.NewRGBColor(170, 110, 60))
	styleCoin     = styleRoad.Foreground(tcell.ColorGold).Bold(true)
	stylePopup    = styleRoad.Foreground(tcell.ColorLightGreen)
	styleDebris   = styleRoad.Foreground(tcell.ColorDarkGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)

	carColors = []tcell.Color{
		tcell.ColorSteelBlue, tcell.ColorWhite, tcell.ColorMediumSeaGreen,
		tcell.ColorMediumPurple, tcell.ColorOrange,
	}
)

// Draw renders the whole frame and shows it.
func (a *App) Draw() {
	l := a.layout()
	a.screen.Clear()

	for row := l.firstRow; row < l.h-hintRows; row++ {
		for col := l.roadL + 1; col < l.roadR; col++ {
			a.screen.SetContent(col, row, ' ', nil, styleRoad)
		}
		a.screen.SetContent(l.roadL, row, '│', nil, styleRail)
		a.screen.SetContent(l.roadR, row, '│', nil, styleRail)
	}

	a.graph.Each(func(n *scene.Node) { a.drawNode(l, n) })

	a.hud.SetState(a.sim.Phase, a.sim.Tier().Label)
	a.text(0, 0, l.w, a.hud.Line(), styleStatus)
	a.text(0, l.h-1, l.w, "←/→ or A/D move  space jump  enter start  1-3 tier  q quit", styleHint)
	a.screen.Show()
}

func (a *App) drawNode(l layout, n *scene.Node) {
	if n.Kind == game.VisualScenery {
		a.drawBlocks(l, n)
		return
	}
	col, row, ok := l.cell(n.X, n.Z)
	if !ok {
		return
	}
	switch n.Kind {
	case game.VisualMarker:
		a.screen.SetContent(col, row, '┆', nil, styleMarker)
	case game.VisualPlayer:
		glyph := 'A'
		if n.Y > l.playerBase+0.05 {
			glyph = '^'
		}
		a.screen.SetContent(col, row, glyph, nil, stylePlayer)
	case game.VisualCar:
		c := carColors[n.Serial%uint64(len(carColors))]
		a.screen.SetContent(col, row, '▮', nil, styleRoad.Foreground(c))
	case game.VisualWrongWayCar:
		a.screen.SetContent(col, row, 'V', nil, styleWrongWay)
	case game.VisualPolice:
		c := tcell.ColorBlue
		if (n.Serial+uint64(row))%2 == 0 {
			c = tcell.ColorRed
		}
		a.screen.SetContent(col, row, 'P', nil, styleRoad.Foreground(c).Bold(true))
	case game.VisualHazard:
		glyph := 'b'
		if n.Rot[0] < -0.2 {
			glyph = 'B' // arms up
		}
		a.screen.SetContent(col, row, glyph, nil, styleBear)
	case game.VisualPickup:
		a.screen.SetContent(col, row, '$', nil, styleCoin)
	case game.VisualPopup:
		if n.Label != "" {
			a.text(col, row, l.w, n.Label, stylePopup)
		}
	case game.VisualDebris:
		a.screen.SetContent(col, row, '*', nil, styleDebris)
	}
}

// drawBlocks shades the roadside on the rows a scenery segment covers.
func (a *App) drawBlocks(l layout, n *scene.Node) {
	glyph := '▓'
	if n.Serial%2 == 0 {
		glyph = '▒'
	}
	_, top, _ := l.cell(0, n.Z-12)
	_, bottom, _ := l.cell(0, n.Z+12)
	for row := max(top, l.firstRow); row <= min(bottom, l.h-hintRows-1); row++ {
		for col := 0; col < l.roadL-1; col++ {
			a.screen.SetContent(col, row, glyph, nil, styleBlock)
		}
		for col := l.roadR + 2; col < l.w; col++ {
			a.screen.SetContent(col, row, glyph, nil, styleBlock)
		}
	}
}

func (a *App) text(x, y, maxW int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxW {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// StatusHUD keeps the numbers for the status line. It implements game.HUD.
type StatusHUD struct {
	score, best, kmh int
	phase            game.RunPhase
	tier             string
}

func NewStatusHUD() *StatusHUD { return &StatusHUD{} }

func (h *StatusHUD) SetScore(score int) { h.score = score }
func (h *StatusHUD) SetBest(best int)   { h.best = best }
func (h *StatusHUD) SetSpeed(kmh int)   { h.kmh = kmh }

func (h *StatusHUD) SetState(phase game.RunPhase, tier string) {
	h.phase, h.tier = phase, tier
}

// Line formats the status line.
func (h *StatusHUD) Line() string {
	line := fmt.Sprintf(" STREET SPRINT [%s]  score %d  best %d  %d km/h ", h.tier, h.score, h.best, h.kmh)
	switch h.phase {
	case game.PhaseReady:
		line += " press enter "
	case game.PhaseGameOver:
		line += " CRASHED, enter to retry "
	}
	return line
}
