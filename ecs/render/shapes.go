package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
)

// RectRenderer fills every styled physics box at its transform.
type RectRenderer struct{}

func NewRectRenderer() *RectRenderer {
	return &RectRenderer{}
}

func (r *RectRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(
		component.TransformComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.RectStyleComponent.Kind(),
	)
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.RectStyleComponent)
		sj, _ := ecs.Get(w, entities[j], component.RectStyleComponent)
		return si.Layer < sj.Layer
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		style, _ := ecs.Get(w, e, component.RectStyleComponent)
		if style.Fill == nil {
			continue
		}
		x := float32(t.X - body.Width/2)
		y := float32(t.Y - body.Height/2)
		vector.DrawFilledRect(screen, x, y, float32(body.Width), float32(body.Height), style.Fill, false)
	}
}
