// Package game runs one play session: a level, the body that moves through
// it, the simulator that moves the body and the viewport that follows it.
// It has no terminal dependencies; front ends feed it input frames once per
// tick and draw its frames.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/viewport"
)

const pausedBanner = " PAUSED "

// Game is a single-player session on one level.
type Game struct {
	level   *level.Level
	cfg     config.Config
	sim     *physics.Simulator
	body    physics.Body
	view    viewport.Viewport
	state   core.GameState
	runtime core.RuntimeConfig
	logger  *log.Logger
}

// New creates a session for lvl. A nil logger discards output.
// Call Reset before the first Step.
func New(lvl *level.Level, cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		level:  lvl,
		cfg:    cfg,
		sim:    physics.NewSimulator(cfg.PhysicsParams()),
		logger: logger.WithPrefix("game"),
	}
}

// Title returns the level display name.
func (g *Game) Title() string {
	return g.level.Title()
}

// Reset places the body at the spawn point and sizes the viewport to the
// world area of rc (ScreenW x ScreenH).
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.body = physics.NewBody(g.level.SpawnX, g.level.SpawnY)
	g.state = core.GameState{}

	w := g.level.World
	g.view = viewport.New(rc.ScreenW, rc.ScreenH, w.Width(), w.Height(), g.cfg.Band())
	g.view.Follow(g.body.Pos.X, g.body.Pos.Y)

	g.logger.Info("session reset",
		"level", g.level.ID,
		"world", fmt.Sprintf("%dx%d", w.Width(), w.Height()),
		"view", fmt.Sprintf("%dx%d", g.view.Width, g.view.Height),
		"spawn", fmt.Sprintf("%d,%d", g.level.SpawnX, g.level.SpawnY))
}

// Resize adapts the viewport to a new world area without touching the
// simulation.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.view.Resize(screenW, screenH)
	g.view.Follow(g.body.Pos.X, g.body.Pos.Y)
}

// Step advances the session by one fixed tick.
//
// Actions apply in the order they were received. Quit ends the session
// without simulating. Restart respawns, clears the counters and ends the
// tick. Pause toggles the pause flag; movement actions received while
// paused are dropped, and nothing moves while paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		switch a {
		case core.ActionQuit:
			g.logger.Info("session quit", "ticks", g.state.Ticks, "falls", g.state.Falls)
			return core.StepResult{State: g.state, Quit: true}
		case core.ActionRestart:
			g.logger.Info("session restart", "ticks", g.state.Ticks)
			g.Reset(g.runtime)
			return core.StepResult{State: g.state}
		case core.ActionPause:
			g.state.Paused = !g.state.Paused
		default:
			if !g.state.Paused {
				g.apply(a)
			}
		}
	}
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}

	airborne := !g.body.OnGround
	if hit := g.sim.Step(g.level.World, &g.body); airborne && hit.Has(physics.ContactFloor) {
		g.logger.Debug("landed", "pos", g.body.Pos)
	}
	g.state.Ticks++

	if g.fellOut() {
		g.state.Falls++
		g.logger.Info("fell out of the world, respawning", "x", g.body.Pos.X, "falls", g.state.Falls)
		g.body = physics.NewBody(g.level.SpawnX, g.level.SpawnY)
	}

	g.view.Follow(g.body.Pos.X, g.body.Pos.Y)
	return core.StepResult{State: g.state}
}

// apply feeds one movement action to the simulator.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionJump:
		if g.sim.Jump(&g.body) {
			g.logger.Debug("jump", "pos", g.body.Pos)
		}
	case core.ActionWalkLeft:
		g.sim.ToggleWalk(&g.body, physics.DirLeft)
		g.logger.Debug("walk", "dir", g.body.Walk)
	case core.ActionWalkRight:
		g.sim.ToggleWalk(&g.body, physics.DirRight)
		g.logger.Debug("walk", "dir", g.body.Walk)
	}
}

// fellOut reports whether the body is far enough below the world to respawn.
func (g *Game) fellOut() bool {
	if !g.cfg.Gameplay.RespawnOnFall {
		return false
	}
	limit := float64(g.level.World.Height() + g.cfg.Gameplay.FallMargin)
	return g.body.Pos.Y >= limit
}

// Frame renders the viewport, one row per visible world row. A paused
// session carries a centered PAUSED banner on the middle row.
func (g *Game) Frame() *core.Screen {
	frame := render.Frame(g.level.World, g.view, g.body)
	if g.state.Paused {
		frame.DrawTextCentered(frame.Height()/2, pausedBanner)
	}
	return frame
}

// HUD returns the status line text.
func (g *Game) HUD() string {
	status := ""
	if g.state.Paused {
		status = " PAUSED"
	}
	ground := "air"
	if g.body.OnGround {
		ground = "ground"
	}
	return fmt.Sprintf("%s | pos %5.1f,%5.1f | vel %+.2f,%+.2f | %s | walk %s | t %d | falls %d%s",
		g.Title(), g.body.Pos.X, g.body.Pos.Y, g.body.Vel.X, g.body.Vel.Y,
		ground, g.body.Walk, g.state.Ticks, g.state.Falls, status)
}

// State returns the session counters.
func (g *Game) State() core.GameState {
	return g.state
}

// Body returns a copy of the body state.
func (g *Game) Body() physics.Body {
	return g.body
}
