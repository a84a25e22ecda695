package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/duojump/control"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudLineSpacing = 16

// HUD prints each player's jump budget, plus frame timing in debug mode.
type HUD struct {
	face  text.Face
	color color.Color
	Debug bool
}

func NewHUD() *HUD {
	return &HUD{
		face:  text.NewGoXFace(basicfont.Face7x13),
		color: colornames.Whitesmoke,
	}
}

// Lines returns the text the HUD would draw for gs.
func (h *HUD) Lines(gs control.GameState, fps, tps float64) []string {
	lines := make([]string, 0, len(gs.Players)+1)
	for _, p := range gs.Players {
		lines = append(lines, fmt.Sprintf("P%d  jumps %d/%d  facing %s", p.ID+1, control.MaxJumps-p.Jumps, control.MaxJumps, p.Direction))
	}
	if h != nil && h.Debug {
		lines = append(lines, fmt.Sprintf("FPS %.1f  TPS %.1f", fps, tps))
		for _, p := range gs.Players {
			lines = append(lines, fmt.Sprintf("P%d  x %.1f  y %.1f", p.ID+1, p.X, p.Y))
		}
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, gs control.GameState) {
	if h == nil || screen == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(h.color)
	op.LineSpacing = hudLineSpacing
	text.Draw(screen, strings.Join(h.Lines(gs, ebiten.ActualFPS(), ebiten.ActualTPS()), "\n"), h.face, op)
}
