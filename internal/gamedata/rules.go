package gamedata

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is wrapped by every error Rules.Validate returns.
var ErrInvalidRules = errors.New("invalid rules")

// Limits a cave must respect. Rooms are tracked in a 64-bit set and every
// room has exactly three tunnels, so the room count must be even.
const (
	minRooms        = 4
	maxRooms        = 64
	requiredTunnels = 3
	maxArrowPath    = 5
)

// Rules holds the counts the game is played with, loaded from rules.json.
type Rules struct {
	Rooms        int               `json:"rooms"`        // Rooms in the cave, even
	Tunnels      int               `json:"tunnels"`      // Tunnels per room, always 3
	Pits         int               `json:"pits"`         // Rooms with bottomless pits
	Bats         int               `json:"bats"`         // Rooms with super bats
	Arrows       int               `json:"arrows"`       // Arrows at the start of a game
	MaxArrowPath int               `json:"maxArrowPath"` // Rooms one arrow can fly through
	Palette      map[string]string `json:"palette"`      // Tone name to hex colour
}

// LoadRules loads the rules from the embedded rules.json file.
func LoadRules() (Rules, error) {
	rules, err := Load[Rules]("rules.json")
	if err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// MustLoadRules loads the rules, panicking on error.
func MustLoadRules() Rules {
	rules, err := LoadRules()
	if err != nil {
		panic(err)
	}
	return rules
}

// Validate checks the counts a cave and a game can actually be built from.
func (r Rules) Validate() error {
	switch {
	case r.Rooms < minRooms || r.Rooms > maxRooms:
		return fmt.Errorf("%w: %d rooms, want %d to %d", ErrInvalidRules, r.Rooms, minRooms, maxRooms)
	case r.Rooms%2 != 0:
		return fmt.Errorf("%w: %d rooms, want an even number", ErrInvalidRules, r.Rooms)
	case r.Tunnels != requiredTunnels:
		return fmt.Errorf("%w: %d tunnels per room, want %d", ErrInvalidRules, r.Tunnels, requiredTunnels)
	case r.Arrows < 1:
		return fmt.Errorf("%w: %d arrows", ErrInvalidRules, r.Arrows)
	case r.MaxArrowPath < 1 || r.MaxArrowPath > maxArrowPath:
		return fmt.Errorf("%w: arrow path of %d rooms, want 1 to %d", ErrInvalidRules, r.MaxArrowPath, maxArrowPath)
	case r.Pits < 0 || r.Bats < 0:
		return fmt.Errorf("%w: negative hazard count", ErrInvalidRules)
	case r.Pits+r.Bats+2 > r.Rooms:
		// Pits and bats never share a room, and the player needs a
		// room free of both and of the wumpus.
		return fmt.Errorf("%w: %d pits and %d bats leave no room for the player", ErrInvalidRules, r.Pits, r.Bats)
	}
	for name, hex := range r.Palette {
		if _, err := ParseTone(name); err != nil {
			return fmt.Errorf("%w: palette: %w", ErrInvalidRules, err)
		}
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: palette %s: %w", ErrInvalidRules, name, err)
		}
	}
	return nil
}
