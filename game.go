package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/entity"
	"github.com/milk9111/duojump/ecs/render"
	"github.com/milk9111/duojump/ecs/system"
	"github.com/milk9111/duojump/prefabs"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

type GameOptions struct {
	ArenaFile string
	Debug     bool
	Watch     bool
	Log       logrus.FieldLogger
}

type Game struct {
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	state     *control.State
	arenaFile string

	width      float64
	height     float64
	background color.Color

	rects *render.RectRenderer
	hud   *render.HUD

	watcher  *prefabs.Watcher
	exporter *snapshotExporter

	log         logrus.FieldLogger
	debug       bool
	showPhysics bool
}

func NewGame(opts GameOptions) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	spec, err := prefabs.LoadArena(opts.ArenaFile)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld(entity.PhysicsConfig(spec), log.WithField("component", "physics")))
	state := control.NewState(control.DefaultBindings(), entity.Tuning(spec))
	if _, err := entity.BuildArena(world, spec, state); err != nil {
		return nil, fmt.Errorf("build arena %s: %w", opts.ArenaFile, err)
	}

	hud := render.NewHUD()
	hud.Debug = opts.Debug

	g := &Game{
		world: world,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(&keyboard{}),
			system.NewMovementSystem(state, log.WithField("component", "movement")),
			system.NewPhysicsSystem(),
			system.NewJumpResetSystem(state, log.WithField("component", "jumps")),
		),
		state:      state,
		arenaFile:  opts.ArenaFile,
		width:      spec.Width,
		height:     spec.Height,
		background: spec.Background.Or(colornames.Black),
		rects:      render.NewRectRenderer(),
		hud:        hud,
		log:        log,
		debug:      opts.Debug,
	}

	if opts.Watch {
		g.startWatching()
	}
	if opts.Debug {
		g.exporter = newSnapshotExporter(log.WithField("component", "export"))
	}

	log.WithFields(logrus.Fields{
		"arena":     spec.Name,
		"players":   len(spec.Players),
		"platforms": len(spec.Platforms),
	}).Info("arena loaded")
	return g, nil
}

func (g *Game) startWatching() {
	path, ok := prefabs.DiskPath(g.arenaFile)
	if !ok {
		g.log.WithField("path", g.arenaFile).Warn("arena is embedded, hot reload disabled")
		return
	}
	w, err := prefabs.NewWatcher(path)
	if err != nil {
		g.log.WithError(err).WithField("path", path).Warn("failed to watch arena")
		return
	}
	g.watcher = w
	g.log.WithField("path", path).Info("watching arena for changes")
}

// Close stops the arena watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	g.pollReload()
	if g.debug {
		if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
			g.showPhysics = !g.showPhysics
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
			if err := g.exporter.Export(system.Snapshot(g.world, g.state)); err != nil {
				g.log.WithError(err).Warn("snapshot export failed")
			}
		}
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("arena watcher error")
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	spec, err := prefabs.LoadArena(path)
	if err != nil {
		g.log.WithError(err).WithField("path", path).Warn("arena reload rejected")
		return
	}
	entity.ApplyConstants(g.world, spec, g.state)
	g.background = spec.Background.Or(g.background)
	g.log.WithField("path", path).Info("arena constants reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.rects.Draw(g.world, screen)
	if g.showPhysics {
		render.DrawPhysicsDebug(g.world.PhysicsWorld().Space(), screen)
	}
	g.hud.Draw(screen, system.Snapshot(g.world, g.state))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
