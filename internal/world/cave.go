// Package world provides cave generation, verification and the graph
// queries the game asks every turn.
package world

import (
	"fmt"
	"slices"
)

const (
	// Tunnels is the number of tunnels leaving every room.
	Tunnels = 3

	// DefaultRooms is the room count of the classic cave.
	DefaultRooms = 20

	// MinRooms is the smallest room count a three-tunnel cave can have.
	MinRooms = 4

	// MaxRooms bounds the room count so a RoomSet fits in one word.
	MaxRooms = 64

	// Unmapped marks a tunnel slot that has not been dug yet.
	Unmapped = -1
)

// Cave is the tunnel map: Tunnels neighbor ids for every room.
// A cave returned by Generate or Decode has passed Verify and is never
// modified afterwards.
type Cave struct {
	tunnels [][Tunnels]int
}

// newCave creates a cave whose tunnel slots are all Unmapped.
func newCave(rooms int) *Cave {
	tunnels := make([][Tunnels]int, rooms)
	for r := range tunnels {
		for t := range tunnels[r] {
			tunnels[r][t] = Unmapped
		}
	}
	return &Cave{tunnels: tunnels}
}

// FromTable builds a cave from a neighbor table. The table is copied but
// not verified; run Verify before trusting it.
func FromTable(table [][Tunnels]int) *Cave {
	return &Cave{tunnels: slices.Clone(table)}
}

// Rooms returns the number of rooms in the cave.
func (c *Cave) Rooms() int {
	return len(c.tunnels)
}

// Tunnels returns the rooms reachable through the tunnels of room.
func (c *Cave) Tunnels(room int) [Tunnels]int {
	return c.tunnels[room]
}

// Table returns a copy of the neighbor table.
func (c *Cave) Table() [][Tunnels]int {
	return slices.Clone(c.tunnels)
}

// IsRoom reports whether room is a valid room id for this cave.
func (c *Cave) IsRoom(room int) bool {
	return room >= 0 && room < len(c.tunnels)
}

// Adjacent reports whether a tunnel leads from one room directly to another.
func (c *Cave) Adjacent(from, to int) bool {
	if !c.IsRoom(from) {
		return false
	}
	return slices.Contains(c.tunnels[from][:], to)
}

// Equal reports whether both caves have identical tunnel tables.
func (c *Cave) Equal(other *Cave) bool {
	if c == nil || other == nil {
		return c == other
	}
	return slices.Equal(c.tunnels, other.tunnels)
}

// String renders the table as "1:2 5 8  2:1 3 10 ..." using 1-based ids.
func (c *Cave) String() string {
	s := ""
	for r, row := range c.tunnels {
		if r > 0 {
			s += "  "
		}
		s += fmt.Sprintf("%d:%d %d %d", r+1, row[0]+1, row[1]+1, row[2]+1)
	}
	return s
}

// addDirectTunnel fills the first unmapped slot of from with to.
func (c *Cave) addDirectTunnel(from, to int) {
	for t := range c.tunnels[from] {
		if c.tunnels[from][t] == Unmapped {
			c.tunnels[from][t] = to
			return
		}
	}
}

// addTunnel digs a tunnel in both directions.
func (c *Cave) addTunnel(from, to int) {
	c.addDirectTunnel(from, to)
	c.addDirectTunnel(to, from)
}

// sortTunnels orders every room's slots ascending.
func (c *Cave) sortTunnels() {
	for r := range c.tunnels {
		slices.Sort(c.tunnels[r][:])
	}
}
