package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Near reports whether a room within depth tunnel hops of room satisfies
// has. Depth 1 means the adjacent rooms only. Rooms on short cycles may be
// checked twice, which costs time but never changes the answer.
func (c *Cave) Near(room, depth int, has func(room int) bool) bool {
	for _, t := range c.tunnels[room] {
		if has(t) {
			return true
		}
		if depth > 1 && c.Near(t, depth-1, has) {
			return true
		}
	}
	return false
}

// Search reports whether to can be reached from from in at most maxDepth
// hops. A depth of 0 only succeeds when from and to are the same room.
//
// When record is set the returned path holds the rooms strictly between
// from and to, appended as the recursion unwinds: the room next to to
// comes first and the room next to from comes last.
func (c *Cave) Search(from, to, maxDepth int, record bool) ([]int, bool) {
	if from == to {
		return nil, true
	}
	s := &searcher{
		cave:   c,
		target: to,
		record: record,
		budget: make(map[int]int, c.Rooms()),
	}
	found := s.visit(from, maxDepth)
	return s.path, found
}

// searcher holds the scratch state of one Search call.
type searcher struct {
	cave   *Cave
	target int
	record bool
	path   []int

	// budget remembers the most hops left when a room was expanded, so a
	// room first met deep in a branch is expanded again when met sooner.
	budget map[int]int
}

func (s *searcher) visit(room, depth int) bool {
	if depth <= 0 {
		return false
	}
	if left, seen := s.budget[room]; seen && left >= depth {
		return false
	}
	s.budget[room] = depth

	tunnels := s.cave.tunnels[room]
	if slices.Contains(tunnels[:], s.target) {
		return true
	}
	for _, t := range tunnels {
		if s.visit(t, depth-1) {
			if s.record {
				s.path = append(s.path, t)
			}
			return true
		}
	}
	return false
}

// Regions splits the cave into its connected parts, each listed in the
// order rooms were reached. A verified cave has exactly one region.
func (c *Cave) Regions() [][]int {
	seen := mapset.New[int]()
	var regions [][]int
	for start := range c.tunnels {
		if seen.Has(start) {
			continue
		}
		seen.Put(start)
		region := []int{start}
		for i := 0; i < len(region); i++ {
			for _, t := range c.tunnels[region[i]] {
				if c.IsRoom(t) && !seen.Has(t) {
					seen.Put(t)
					region = append(region, t)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
