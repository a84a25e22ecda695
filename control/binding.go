package control

// Binding maps one player's actions to keys.
type Binding struct {
	Left  Key
	Right Key
	Jump  Key
}

// Horizontal reports whether k is one of the binding's movement keys.
func (b Binding) Horizontal(k Key) bool {
	return k != "" && (k == b.Left || k == b.Right)
}

// DefaultBindings returns WASD-style keys for player one and arrow keys for
// player two.
func DefaultBindings() []Binding {
	return []Binding{
		{Left: KeyA, Right: KeyD, Jump: KeyW},
		{Left: KeyArrowLeft, Right: KeyArrowRight, Jump: KeyArrowUp},
	}
}
