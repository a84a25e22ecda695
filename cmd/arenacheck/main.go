package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/entity"
	"github.com/milk9111/duojump/ecs/system"
	"github.com/milk9111/duojump/prefabs"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// arenacheck validates arena prefabs and, with -ticks, runs them headless
// with no input and prints where everything came to rest.
func main() {
	ticks := flag.Int("ticks", 0, "simulate this many ticks and print the resulting snapshot")
	verbose := flag.Bool("v", false, "log collision resets")
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{prefabs.DefaultArena}
	}

	failed := false
	for _, file := range files {
		log := logger.WithField("arena", file)
		gs, err := check(file, *ticks, log)
		if err != nil {
			log.WithError(err).Error("invalid arena")
			failed = true
			continue
		}
		log.Info("ok")
		if *ticks > 0 {
			out, err := yaml.Marshal(gs)
			if err != nil {
				log.WithError(err).Error("marshal snapshot")
				failed = true
				continue
			}
			fmt.Printf("# %s after %d ticks\n%s", file, *ticks, out)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(file string, ticks int, log logrus.FieldLogger) (control.GameState, error) {
	spec, err := prefabs.LoadArena(file)
	if err != nil {
		return control.GameState{}, err
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(entity.PhysicsConfig(spec), log))
	state := control.NewState(control.DefaultBindings(), entity.Tuning(spec))
	if _, err := entity.BuildArena(w, spec, state); err != nil {
		return control.GameState{}, err
	}

	scheduler := ecs.NewScheduler(
		system.NewMovementSystem(state, log),
		system.NewPhysicsSystem(),
		system.NewJumpResetSystem(state, log),
	)
	for i := 0; i < ticks; i++ {
		scheduler.Update(w)
	}
	return system.Snapshot(w, state), nil
}
