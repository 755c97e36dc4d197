package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"streetsprint/internal/game"
)

type binding struct {
	key glfw.Key
	cmd game.Command
}

var bindings = []binding{
	{glfw.KeyLeft, game.CmdLeft},
	{glfw.KeyA, game.CmdLeft},
	{glfw.KeyRight, game.CmdRight},
	{glfw.KeyD, game.CmdRight},
	{glfw.KeySpace, game.CmdAction},
	{glfw.KeyEnter, game.CmdStart},
	{glfw.KeyKPEnter, game.CmdStart},
}

var tierKeys = []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3}

// Input turns key state into edge-triggered presses.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Commands returns the commands whose keys went down since the last call.
func (in *Input) Commands(window *glfw.Window) []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		if in.JustPressed(window, b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}

// TierPressed returns the index of the tier hotkey pressed this frame, or -1.
func (in *Input) TierPressed(window *glfw.Window) int {
	pressed := -1
	for i, k := range tierKeys {
		if in.JustPressed(window, k) && pressed < 0 {
			pressed = i
		}
	}
	return pressed
}
