package control

// PlayerState is a read-only view of one player.
type PlayerState struct {
	ID        int     `yaml:"id"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Direction Facing  `yaml:"direction"`
	IsJumping bool    `yaml:"is_jumping"`
	Jumps     int     `yaml:"jumps"`
}

// PlatformState describes a platform rectangle by its top-left corner.
type PlatformState struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameState is a read-only view of the whole arena.
type GameState struct {
	Players   []PlayerState   `yaml:"players"`
	Platforms []PlatformState `yaml:"platforms"`
}

// Player returns the state for id, if present.
func (g GameState) Player(id int) (PlayerState, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerState{}, false
}
