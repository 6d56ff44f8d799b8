// Package combat resolves the flight of crooked arrows through the cave.
package combat

import "github.com/samdwyer/wumpus/internal/world"

// Outcome is how an arrow's flight ended.
type Outcome int

const (
	// OutcomeMiss means the arrow flew its whole path and hit nothing.
	OutcomeMiss Outcome = iota
	// OutcomeHitWumpus means the arrow entered the wumpus's room.
	OutcomeHitWumpus
	// OutcomeHitSelf means the arrow came back into the shooter's room.
	OutcomeHitSelf
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHitWumpus:
		return "hit_wumpus"
	case OutcomeHitSelf:
		return "hit_self"
	default:
		return "unknown"
	}
}

// Hop is one room the arrow entered.
type Hop struct {
	Room    int  // Room entered, 0-based
	Crooked bool // No tunnel led to the aimed room, so the arrow picked its own
}

// Flight is the record of one arrow.
type Flight struct {
	Hops    []Hop
	Outcome Outcome
}

// Resolver flies arrows through one cave.
type Resolver struct {
	cave    *world.Cave
	rng     world.Source
	maxPath int
}

// NewResolver creates a resolver for arrows that fly at most maxPath rooms.
func NewResolver(cave *world.Cave, rng world.Source, maxPath int) *Resolver {
	return &Resolver{
		cave:    cave,
		rng:     rng,
		maxPath: maxPath,
	}
}

// Fly shoots an arrow from the shooter's room along the aimed rooms.
// Every hop, the first included, must follow a tunnel from the room the
// arrow is in; when none leads to the aimed room the arrow takes one of
// the three tunnels at random, which may lead back to the shooter.
// Rooms beyond the resolver's path limit are ignored. onHop, when not
// nil, sees each hop before it is judged.
func (r *Resolver) Fly(shooter, wumpus int, aim []int, onHop func(Hop)) Flight {
	var f Flight
	at := shooter
	for i, target := range aim {
		if i >= r.maxPath {
			break
		}

		hop := Hop{Room: target}
		if !r.cave.Adjacent(at, target) {
			tunnels := r.cave.Tunnels(at)
			hop = Hop{Room: tunnels[r.rng.IntN(world.Tunnels)], Crooked: true}
		}
		f.Hops = append(f.Hops, hop)
		if onHop != nil {
			onHop(hop)
		}

		switch hop.Room {
		case shooter:
			f.Outcome = OutcomeHitSelf
			return f
		case wumpus:
			f.Outcome = OutcomeHitWumpus
			return f
		}
		at = hop.Room
	}
	f.Outcome = OutcomeMiss
	return f
}
