package component

// Player marks an avatar. Index is the stable player number used by the
// control state (0 for player one).
type Player struct {
	Index int
	Name  string
}

var PlayerComponent = NewComponent[Player]()
