package world

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrShape means the table cannot be a cave at all (nil, too few or too many rooms).
	ErrShape = errors.New("tunnel table has the wrong shape")
	// ErrRoomOutOfRange means a tunnel leads to a room id outside the cave.
	ErrRoomOutOfRange = errors.New("tunnel leads outside the cave")
	// ErrSelfLoop means a tunnel leads back into its own room.
	ErrSelfLoop = errors.New("tunnel loops back into its own room")
	// ErrDuplicateTunnel means two tunnels of one room lead to the same room.
	ErrDuplicateTunnel = errors.New("two tunnels lead to the same room")
	// ErrNotRegular means a room is not entered by exactly Tunnels tunnels.
	ErrNotRegular = errors.New("room is not entered by exactly three tunnels")
	// ErrOneWay means a tunnel has no tunnel leading back.
	ErrOneWay = errors.New("tunnel has no way back")
	// ErrDisconnected means some room cannot be reached from another.
	ErrDisconnected = errors.New("cave is not connected")
)

// DisconnectedError names a pair of rooms with no way between them and
// lists the separate parts of the cave. It matches ErrDisconnected.
type DisconnectedError struct {
	From, To int
	Regions  [][]int
}

func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("no way from room %d to room %d, %d regions: %s",
		e.From, e.To, len(e.Regions), ErrDisconnected)
}

func (e *DisconnectedError) Unwrap() error {
	return ErrDisconnected
}

// Verify checks that the cave is a valid playing field: ids in range, no
// self-loops, three distinct tunnels per room, every room entered exactly
// three times, every tunnel two-way, and one connected region. It never
// assumes the table came from the generator and never modifies it.
func Verify(c *Cave) error {
	if c == nil {
		return ErrShape
	}
	rooms := c.Rooms()
	if rooms < MinRooms || rooms > MaxRooms {
		return fmt.Errorf("%d rooms: %w", rooms, ErrShape)
	}

	entered := make([]int, rooms)
	for r, row := range c.tunnels {
		for i, t := range row {
			if t < 0 || t >= rooms {
				return fmt.Errorf("room %d tunnel %d leads to %d: %w", r, i, t, ErrRoomOutOfRange)
			}
			if t == r {
				return fmt.Errorf("room %d: %w", r, ErrSelfLoop)
			}
			for _, u := range row[:i] {
				if u == t {
					return fmt.Errorf("room %d leads to %d twice: %w", r, t, ErrDuplicateTunnel)
				}
			}
			entered[t]++
		}
	}
	for r, n := range entered {
		if n != Tunnels {
			return fmt.Errorf("room %d entered %d times: %w", r, n, ErrNotRegular)
		}
	}

	for r, row := range c.tunnels {
		for _, t := range row {
			if !slices.Contains(c.tunnels[t][:], r) {
				return fmt.Errorf("room %d leads to %d but not back: %w", r, t, ErrOneWay)
			}
		}
	}

	for r1 := 0; r1 < rooms; r1++ {
		for r2 := r1 + 1; r2 < rooms; r2++ {
			if _, ok := c.Search(r2, r1, rooms-1, false); !ok {
				return &DisconnectedError{From: r2, To: r1, Regions: c.Regions()}
			}
		}
	}
	return nil
}
