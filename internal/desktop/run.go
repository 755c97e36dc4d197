// Package desktop is the OpenGL/GLFW frontend: it polls keys, steps the
// simulation on the frame clock and draws the scene graph.
package desktop

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"streetsprint/internal/config"
	"streetsprint/internal/game"
	"streetsprint/internal/scene"
)

const (
	crashShake         = 0.6
	crashShakeDuration = 0.45
)

type Options struct {
	Window    config.WindowConfig
	Autopilot bool
	Seed      uint64
}

// Run opens the window and blocks until it closes or ctx is cancelled. The
// simulation must have been built with graph as its scene and hud as its HUD.
func Run(ctx context.Context, sim *game.Sim, graph *scene.Graph, hud *TitleHUD, opts Options, log *zap.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(opts.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	log.Info("opengl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	cam := NewCamera()
	sim.Events().Subscribe(game.EventCrash, func(game.Event) {
		cam.AddShake(crashShake, crashShakeDuration)
	})

	input := NewInput()
	driver := game.NewDriver(sim)
	var pilot *game.Autopilot
	if opts.Autopilot {
		pilot = game.NewAutopilot()
	}
	var batch Batch

	last := glfw.GetTime()
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := glfw.GetTime()
		dt := min(now-last, 0.1)
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		for _, cmd := range input.Commands(window) {
			sim.Apply(cmd)
		}
		if i := input.TierPressed(window); i >= 0 && i < len(sim.Tiers()) {
			if err := sim.SelectTier(sim.Tiers()[i].ID); err != nil {
				log.Debug("tier change ignored", zap.Error(err))
			}
		}
		if pilot != nil {
			pilot.Steer(sim)
		}
		driver.Step(now)

		cam.Follow(sim.Player.X, dt)
		cam.UpdateShake(dt, opts.Seed^uint64(now*1000))

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		BuildFrame(&batch, graph, &cam, sim.Tuning(), fbW, fbH, now)
		rend.BeginFrame(fbW, fbH, Palette.Sky)
		rend.DrawQuads(batch.Quads)
		rend.DrawGlow(batch.Glow)

		hud.SetState(sim.Phase, sim.Tier().Label)
		if title, changed := hud.Title(); changed {
			window.SetTitle(title)
		}
		window.SwapBuffers()
	}
	return nil
}
