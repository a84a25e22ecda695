package entity

import (
	"fmt"

	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
	"github.com/milk9111/duojump/prefabs"
	"golang.org/x/image/colornames"
)

func NewPlatform(w *ecs.World, spec prefabs.PlatformSpec) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, ErrNoPhysicsWorld
	}

	e := w.CreateEntity()
	shape := pw.AddStaticBox(e, ecs.BoxSpec{
		X:        spec.X,
		Y:        spec.Y,
		Width:    spec.Width,
		Height:   spec.Height,
		Friction: spec.Friction,
	})

	if err := ecs.Add(w, e, component.PlatformComponent, component.Platform{Name: spec.Name}); err != nil {
		return 0, fmt.Errorf("platform %s: add platform: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: spec.X, Y: spec.Y}); err != nil {
		return 0, fmt.Errorf("platform %s: add transform: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Body:     shape.Body(),
		Shape:    shape,
		Width:    spec.Width,
		Height:   spec.Height,
		Friction: spec.Friction,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("platform %s: add physics body: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.RectStyleComponent, component.RectStyle{
		Fill: spec.Color.Or(colornames.Slategray),
	}); err != nil {
		return 0, fmt.Errorf("platform %s: add rect style: %w", spec.Name, err)
	}
	return e, nil
}
