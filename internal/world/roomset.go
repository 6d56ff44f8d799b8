package world

import "math/bits"

// RoomSet is a bitset of rooms that are still candidates while tunnels
// are being dug. Bit r set means room r is vacant.
type RoomSet uint64

// FullRoomSet returns a set holding every room of a cave with the given size.
func FullRoomSet(rooms int) RoomSet {
	return RoomSet(^uint64(0) >> (64 - rooms))
}

// Occupy removes room from the set.
func (s *RoomSet) Occupy(room int) {
	*s &^= 1 << room
}

// Has reports whether room is still vacant.
func (s RoomSet) Has(room int) bool {
	return s&(1<<room) != 0
}

// Len returns the number of vacant rooms.
func (s RoomSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether no vacant room is left.
func (s RoomSet) Empty() bool {
	return s == 0
}

// PickAndOccupy draws a uniformly random vacant room, occupies it and
// returns it. The draw selects the n-th vacant room in ascending order.
// The set must not be empty.
func (s *RoomSet) PickAndOccupy(rng Source) int {
	n := rng.IntN(s.Len())
	rest := uint64(*s)
	for ; n > 0; n-- {
		rest &= rest - 1
	}
	room := bits.TrailingZeros64(rest)
	s.Occupy(room)
	return room
}
