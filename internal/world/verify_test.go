package world

import (
	"context"
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestVerifyAcceptsKnownCaves(t *testing.T) {
	tests := []struct {
		name string
		cave *Cave
	}{
		{"dodecahedron", Dodecahedron()},
		{"cube", FromTable(cubeTable)},
		{"k4", FromTable([][Tunnels]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.cave); err != nil {
				t.Errorf("Verify() error = %v", err)
			}
		})
	}
}

func TestVerifyRejects(t *testing.T) {
	tests := []struct {
		name  string
		table [][Tunnels]int
		want  error
	}{
		{"too small", [][Tunnels]int{{1, 1, 1}, {0, 0, 0}}, ErrShape},
		{"out of range", [][Tunnels]int{{1, 2, 4}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}, ErrRoomOutOfRange},
		{"unmapped", [][Tunnels]int{{1, 2, Unmapped}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}, ErrRoomOutOfRange},
		{"self loop", [][Tunnels]int{{0, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}, ErrSelfLoop},
		{"duplicate", [][Tunnels]int{{1, 1, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}, ErrDuplicateTunnel},
		{"in-degree", [][Tunnels]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {1, 2, 0}, {0, 1, 2}, {0, 1, 2}}, ErrNotRegular},
		{"one-way", [][Tunnels]int{
			{1, 2, 3}, {2, 3, 4}, {3, 4, 5}, {4, 5, 6},
			{5, 6, 7}, {6, 7, 0}, {7, 0, 1}, {0, 1, 2},
		}, ErrOneWay},
		{"two regions", twoK4Table, ErrDisconnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(FromTable(tt.table))
			if !errors.Is(err, tt.want) {
				t.Errorf("Verify() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestVerifyNil(t *testing.T) {
	if !errors.Is(Verify(nil), ErrShape) {
		t.Error("Verify(nil) should report ErrShape")
	}
}

func TestVerifyDisconnectedCountsRegions(t *testing.T) {
	c := FromTable(twoK4Table)
	var disconnected *DisconnectedError
	if err := Verify(c); !errors.As(err, &disconnected) {
		t.Fatalf("Verify() error = %v, want *DisconnectedError", err)
	}
	if disconnected.From != 4 || disconnected.To != 0 {
		t.Errorf("unreachable pair = %d -> %d, want 4 -> 0", disconnected.From, disconnected.To)
	}
	if len(disconnected.Regions) != 2 {
		t.Errorf("Regions = %v, want 2 regions", disconnected.Regions)
	}
	seen := 0
	for _, region := range disconnected.Regions {
		seen += len(region)
	}
	if seen != c.Rooms() {
		t.Errorf("regions cover %d rooms, want %d", seen, c.Rooms())
	}

	if got := len(c.Regions()); got != 2 {
		t.Errorf("len(Regions()) = %d, want 2", got)
	}
	if got := len(Dodecahedron().Regions()); got != 1 {
		t.Errorf("dodecahedron has %d regions, want 1", got)
	}
}

// generatedCave draws a verified cave of random even size.
func generatedCave(t *rapid.T) *Cave {
	rooms := 2 * rapid.IntRange(MinRooms/2, MaxRooms/2).Draw(t, "half")
	seed := rapid.Int64().Draw(t, "seed")
	c, err := NewGenerator(rooms, NewSource(seed), nil).Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return c
}

func TestVerifyCatchesCorruption(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := generatedCave(t)
		table := c.Table()
		rooms := c.Rooms()
		r := rapid.IntRange(0, rooms-1).Draw(t, "room")
		slot := rapid.IntRange(0, Tunnels-1).Draw(t, "slot")

		var want error
		switch rapid.IntRange(0, 4).Draw(t, "mutation") {
		case 0:
			table[r][slot] = rooms + rapid.IntRange(0, 10).Draw(t, "beyond")
			want = ErrRoomOutOfRange
		case 1:
			table[r][slot] = Unmapped
			want = ErrRoomOutOfRange
		case 2:
			table[r][slot] = r
			want = ErrSelfLoop
		case 3:
			table[r][slot] = table[r][(slot+1)%Tunnels]
			want = ErrDuplicateTunnel
		case 4:
			// Point the far end of one tunnel somewhere else.
			far := table[r][slot]
			var strangers []int
			for x := range rooms {
				if x != far && !slices.Contains(table[far][:], x) {
					strangers = append(strangers, x)
				}
			}
			if len(strangers) == 0 {
				return // every room already borders far
			}
			back := slices.Index(table[far][:], r)
			table[far][back] = rapid.SampledFrom(strangers).Draw(t, "stranger")
			want = ErrNotRegular
		}

		if err := Verify(FromTable(table)); !errors.Is(err, want) {
			t.Fatalf("Verify() error = %v, want %v", err, want)
		}
	})
}

func TestVerifyDoesNotModify(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := generatedCave(t)
		before := c.Table()
		if err := Verify(c); err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if !c.Equal(FromTable(before)) {
			t.Fatal("Verify modified the cave")
		}
	})
}
