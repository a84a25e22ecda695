package component

import "image/color"

// RectStyle fills the entity's physics box. Lower layers draw first.
type RectStyle struct {
	Fill  color.Color
	Layer int
}

var RectStyleComponent = NewComponent[RectStyle]()
