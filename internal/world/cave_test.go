package world

import (
	"testing"
)

// cubeTable is the skeleton of a cube: a small three-tunnel cave with
// diameter 3 (room 0 to room 6).
var cubeTable = [][Tunnels]int{
	{1, 3, 4}, {0, 2, 5}, {1, 3, 6}, {0, 2, 7},
	{0, 5, 7}, {1, 4, 6}, {2, 5, 7}, {3, 4, 6},
}

// twoK4Table holds two disjoint complete graphs on four rooms each.
var twoK4Table = [][Tunnels]int{
	{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2},
	{5, 6, 7}, {4, 6, 7}, {4, 5, 7}, {4, 5, 6},
}

func TestNewCaveIsUnmapped(t *testing.T) {
	c := newCave(6)
	if c.Rooms() != 6 {
		t.Fatalf("Rooms() = %d, want 6", c.Rooms())
	}
	for r := range c.Rooms() {
		for _, tn := range c.Tunnels(r) {
			if tn != Unmapped {
				t.Errorf("room %d has tunnel %d, want Unmapped", r, tn)
			}
		}
	}
}

func TestAddTunnelFillsBothRooms(t *testing.T) {
	c := newCave(4)
	c.addTunnel(0, 2)
	c.addTunnel(0, 3)

	if got := c.Tunnels(0); got != [Tunnels]int{2, 3, Unmapped} {
		t.Errorf("Tunnels(0) = %v", got)
	}
	if got := c.Tunnels(2); got != [Tunnels]int{0, Unmapped, Unmapped} {
		t.Errorf("Tunnels(2) = %v", got)
	}
	if !c.Adjacent(3, 0) {
		t.Error("Adjacent(3, 0) = false, want true")
	}
	if c.Adjacent(1, 0) {
		t.Error("Adjacent(1, 0) = true, want false")
	}
}

func TestFromTableCopies(t *testing.T) {
	table := [][Tunnels]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
	c := FromTable(table)
	table[0][0] = 3

	if c.Tunnels(0)[0] != 1 {
		t.Error("FromTable kept a reference to the caller's table")
	}
	out := c.Table()
	out[1][1] = 0
	if c.Tunnels(1)[1] != 2 {
		t.Error("Table() returned the cave's own storage")
	}
}

func TestAdjacentRejectsBadRoom(t *testing.T) {
	c := FromTable(cubeTable)
	if c.Adjacent(-1, 0) || c.Adjacent(8, 0) {
		t.Error("Adjacent accepted a room outside the cave")
	}
	if c.IsRoom(8) || !c.IsRoom(7) {
		t.Error("IsRoom disagrees with the room count")
	}
}

func TestCaveEqual(t *testing.T) {
	a := FromTable(cubeTable)
	b := FromTable(cubeTable)
	if !a.Equal(b) {
		t.Error("identical tables are not Equal")
	}
	if a.Equal(FromTable(twoK4Table)) {
		t.Error("different tables are Equal")
	}
	var none *Cave
	if a.Equal(none) || !none.Equal(nil) {
		t.Error("Equal mishandles nil caves")
	}
}

func TestCaveStringIsOneBased(t *testing.T) {
	c := FromTable([][Tunnels]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}})
	want := "1:2 3 4  2:1 3 4  3:1 2 4  4:1 2 3"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSortTunnels(t *testing.T) {
	c := FromTable([][Tunnels]int{{3, 1, 2}, {2, 3, 0}, {1, 0, 3}, {0, 2, 1}})
	c.sortTunnels()
	for r := range c.Rooms() {
		tn := c.Tunnels(r)
		if tn[0] > tn[1] || tn[1] > tn[2] {
			t.Errorf("room %d tunnels %v not sorted", r, tn)
		}
	}
}

func TestHazardString(t *testing.T) {
	tests := []struct {
		h    Hazard
		want string
	}{
		{0, "none"},
		{HasBat, "bat"},
		{HasPit | HasWumpus, "pit|wumpus"},
		{HasBat | HasPit | HasWumpus, "bat|pit|wumpus"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hazard(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
	if (HasBat | HasPit).Has(HasWumpus) {
		t.Error("Has reported a flag that is not set")
	}
}
