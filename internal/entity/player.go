// Package entity provides the hunter and the wumpus.
package entity

// Player is the hunter: the room they stand in and the arrows they carry.
type Player struct {
	Room   int // Current room, 0-based
	Arrows int // Arrows left in the quiver
}

// NewPlayer creates a hunter in the given room with a full quiver.
func NewPlayer(room, arrows int) *Player {
	return &Player{
		Room:   room,
		Arrows: arrows,
	}
}

// MoveTo puts the player in another room.
func (p *Player) MoveTo(room int) {
	p.Room = room
}

// SpendArrow removes one arrow. An empty quiver stays empty.
func (p *Player) SpendArrow() {
	if p.Arrows > 0 {
		p.Arrows--
	}
}

// OutOfArrows reports whether the quiver is empty.
func (p *Player) OutOfArrows() bool {
	return p.Arrows <= 0
}
