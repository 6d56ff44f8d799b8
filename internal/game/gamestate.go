package game

import (
	"github.com/samdwyer/wumpus/internal/entity"
	"github.com/samdwyer/wumpus/internal/gamedata"
	"github.com/samdwyer/wumpus/internal/world"
)

// Ending is how a game finished.
type Ending int

const (
	EndingNone     Ending = iota // Still playing
	EndingWon                    // The arrow found the wumpus
	EndingPit                    // Fell into a pit
	EndingEaten                  // Walked into the wumpus or it walked into the player
	EndingShotSelf               // The arrow came back
	EndingNoArrows               // Missed with the last arrow
)

// String returns a human-readable ending name.
func (e Ending) String() string {
	switch e {
	case EndingNone:
		return "none"
	case EndingWon:
		return "won"
	case EndingPit:
		return "pit"
	case EndingEaten:
		return "eaten"
	case EndingShotSelf:
		return "shot_self"
	case EndingNoArrows:
		return "out_of_arrows"
	default:
		return "unknown"
	}
}

// GameState is everything one game in a cave changes. A replay in the
// same cave starts from a fresh GameState.
type GameState struct {
	Player *entity.Player
	Wumpus *entity.Wumpus
	Ending Ending

	// hazards holds the pit and bat flags of every room. The wumpus is
	// tracked by Wumpus alone since it moves.
	hazards []world.Hazard
}

// newGameState places the hazards and the two creatures. Pits go in
// distinct rooms, bats in rooms with neither pit nor bat, the wumpus
// anywhere, and the player in a room holding none of them.
func newGameState(rooms int, rules gamedata.Rules, rng world.Source) GameState {
	g := GameState{hazards: make([]world.Hazard, rooms)}

	for placed := 0; placed < rules.Pits; {
		r := rng.IntN(rooms)
		if !g.hazards[r].Has(world.HasPit) {
			g.hazards[r] |= world.HasPit
			placed++
		}
	}
	for placed := 0; placed < rules.Bats; {
		r := rng.IntN(rooms)
		if !g.hazards[r].Has(world.HasPit | world.HasBat) {
			g.hazards[r] |= world.HasBat
			placed++
		}
	}

	g.Wumpus = entity.NewWumpus(rng.IntN(rooms))

	for {
		r := rng.IntN(rooms)
		if !g.At(r).Has(world.HasPit | world.HasBat | world.HasWumpus) {
			g.Player = entity.NewPlayer(r, rules.Arrows)
			break
		}
	}
	return g
}

// At returns what occupies a room, the wumpus included.
func (g *GameState) At(room int) world.Hazard {
	h := g.hazards[room]
	if g.Wumpus != nil && g.Wumpus.Room == room {
		h |= world.HasWumpus
	}
	return h
}

// has returns a room predicate for Cave.Near.
func (g *GameState) has(flags world.Hazard) func(room int) bool {
	return func(room int) bool {
		return g.At(room).Has(flags)
	}
}

// roomsWith lists the rooms carrying any of the flags, ascending.
func (g *GameState) roomsWith(flags world.Hazard) []int {
	var rooms []int
	for r := range g.hazards {
		if g.At(r).Has(flags) {
			rooms = append(rooms, r)
		}
	}
	return rooms
}
