package world

import "strings"

// Hazard is a set of flags describing what occupies a room.
type Hazard uint8

const (
	// HasBat marks a room with super bats.
	HasBat Hazard = 1 << iota
	// HasPit marks a room with a bottomless pit.
	HasPit
	// HasWumpus marks the room the wumpus sleeps in.
	HasWumpus
)

// Has reports whether any of the given flags are set.
func (h Hazard) Has(flags Hazard) bool {
	return h&flags != 0
}

// String returns the flag names joined by "|", or "none".
func (h Hazard) String() string {
	var names []string
	if h.Has(HasBat) {
		names = append(names, "bat")
	}
	if h.Has(HasPit) {
		names = append(names, "pit")
	}
	if h.Has(HasWumpus) {
		names = append(names, "wumpus")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
