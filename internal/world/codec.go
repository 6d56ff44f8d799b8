package world

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// MarshalBinary encodes the cave as its raw tunnel table: one byte per
// tunnel slot, Tunnels bytes per room, no header.
func (c *Cave) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, c.Rooms()*Tunnels)
	for r, row := range c.tunnels {
		for _, t := range row {
			if t < 0 || t > 0xff {
				return nil, fmt.Errorf("room %d: tunnel %d does not fit a byte", r, t)
			}
			data = append(data, byte(t))
		}
	}
	return data, nil
}

// Decode rebuilds a cave of the given size from bytes written by
// MarshalBinary. The bytes are never trusted: the result must pass Verify.
func Decode(data []byte, rooms int) (*Cave, error) {
	if rooms < MinRooms || rooms > MaxRooms || len(data) != rooms*Tunnels {
		return nil, fmt.Errorf("decode %d bytes as %d rooms: %w", len(data), rooms, ErrShape)
	}
	c := newCave(rooms)
	for i, b := range data {
		c.tunnels[i/Tunnels][i%Tunnels] = int(b)
	}
	if err := Verify(c); err != nil {
		return nil, fmt.Errorf("decode cave: %w", err)
	}
	return c, nil
}

// Fingerprint hashes the encoded table; equal caves have equal fingerprints.
func (c *Cave) Fingerprint() uint64 {
	data, err := c.MarshalBinary()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
