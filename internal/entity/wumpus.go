package entity

import "github.com/samdwyer/wumpus/internal/world"

// Wumpus is the beast the player hunts. It sleeps until disturbed.
type Wumpus struct {
	Room int // Current room, 0-based
}

// NewWumpus creates a wumpus sleeping in the given room.
func NewWumpus(room int) *Wumpus {
	return &Wumpus{Room: room}
}

// Wake makes the wumpus either stay or wander through one of its tunnels.
// One draw in [0, Tunnels] decides: the last value means it stays, every
// other value picks that tunnel. Reports whether it moved.
func (w *Wumpus) Wake(rng world.Source, tunnels [world.Tunnels]int) bool {
	i := rng.IntN(world.Tunnels + 1)
	if i == world.Tunnels {
		return false
	}
	w.Room = tunnels[i]
	return true
}
