package entity

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
	"github.com/milk9111/duojump/prefabs"
	"golang.org/x/image/colornames"
)

var ErrNoPhysicsWorld = errors.New("entity: world has no physics world")

var playerFallbackColors = []color.RGBA{colornames.Red, colornames.Blue}

// NewPlayer creates player index from spec and gives it a dynamic body.
func NewPlayer(w *ecs.World, index int, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, ErrNoPhysicsWorld
	}

	e := w.CreateEntity()
	body, shape := pw.AddPlayerBox(e, ecs.BoxSpec{
		X:        spec.X,
		Y:        spec.Y,
		Width:    spec.Width,
		Height:   spec.Height,
		Mass:     spec.Mass(),
		Friction: spec.Friction,
	})

	var fallback color.Color = colornames.White
	if index >= 0 && index < len(playerFallbackColors) {
		fallback = playerFallbackColors[index]
	}

	if err := ecs.Add(w, e, component.PlayerComponent, component.Player{Index: index, Name: spec.Name}); err != nil {
		return 0, fmt.Errorf("player %d: add player: %w", index, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: spec.X, Y: spec.Y}); err != nil {
		return 0, fmt.Errorf("player %d: add transform: %w", index, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Body:     body,
		Shape:    shape,
		Width:    spec.Width,
		Height:   spec.Height,
		Mass:     spec.Mass(),
		Friction: spec.Friction,
	}); err != nil {
		return 0, fmt.Errorf("player %d: add physics body: %w", index, err)
	}
	if err := ecs.Add(w, e, component.RectStyleComponent, component.RectStyle{
		Fill:  spec.Color.Or(fallback),
		Layer: 1,
	}); err != nil {
		return 0, fmt.Errorf("player %d: add rect style: %w", index, err)
	}
	return e, nil
}
