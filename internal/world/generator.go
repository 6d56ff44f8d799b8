package world

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpus/internal/telemetry"
)

// ExhaustedError reports a construction attempt that ran out of partners
// while adding third tunnels. It is expected now and then and the
// generator simply starts over.
type ExhaustedError struct {
	Pairing int // index of the pairing that failed
	Room    int // room left without a partner
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no partner left for room %d at pairing %d", e.Room, e.Pairing)
}

// Generator builds random caves in which every room has exactly three
// tunnels to three different rooms and every room can be reached.
type Generator struct {
	rooms  int
	rng    Source
	logger *log.Logger

	// OnRetry, when set, is called with the reason every time an attempt
	// is thrown away.
	OnRetry func(err error)

	attempts int
}

// NewGenerator creates a generator for caves of the given size.
// The room count must be even and within [MinRooms, MaxRooms].
func NewGenerator(rooms int, rng Source, logger *log.Logger) *Generator {
	if rooms%2 != 0 || rooms < MinRooms || rooms > MaxRooms {
		panic(fmt.Sprintf("world: cannot build a three-tunnel cave with %d rooms", rooms))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{rooms: rooms, rng: rng, logger: logger}
}

// Attempts returns how many construction attempts the last Generate made.
func (g *Generator) Attempts() int {
	return g.attempts
}

// Generate builds caves until one passes Verify. Failed attempts are
// discarded whole and retried with fresh draws; only ctx ends the loop early.
func (g *Generator) Generate(ctx context.Context) (*Cave, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "cave.generate")
	defer span.End()

	startTime := time.Now()
	g.attempts = 0

	cave, err := backoff.Retry(ctx, func() (*Cave, error) {
		g.attempts++
		c, err := g.attempt()
		if err != nil {
			return nil, err
		}
		if err := Verify(c); err != nil {
			return nil, fmt.Errorf("generated cave rejected: %w", err)
		}
		return c, nil
	},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, _ time.Duration) {
			g.logger.Debug("cave attempt discarded", "attempt", g.attempts, "reason", err)
			if g.OnRetry != nil {
				g.OnRetry(err)
			}
		}),
	)
	if err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return nil, fmt.Errorf("generate cave: %w", err)
	}

	dodecahedron := IsDodecahedron(cave)
	span.SetAttributes(
		attribute.Int("cave.rooms", g.rooms),
		attribute.Int("cave.attempts", g.attempts),
		attribute.Bool("cave.dodecahedron", dodecahedron),
		attribute.Int64("cave.generation_us", time.Since(startTime).Microseconds()),
	)
	g.logger.Info("cave generated", "rooms", g.rooms, "attempts", g.attempts, "dodecahedron", dodecahedron)
	return cave, nil
}

// attempt runs one pass of the construction: a random Hamiltonian cycle,
// then a random pairing for the third tunnels, then sorting.
func (g *Generator) attempt() (*Cave, error) {
	c := newCave(g.rooms)

	// Phase 1: a cycle through every room starting and ending at room 0.
	open := FullRoomSet(g.rooms)
	r := 0
	open.Occupy(r)
	for !open.Empty() {
		e := open.PickAndOccupy(g.rng)
		c.addTunnel(r, e)
		r = e
	}
	c.addTunnel(r, 0)

	// Phase 2: pair up rooms for their third tunnel.
	open = FullRoomSet(g.rooms)
	for n := 0; n < g.rooms/2; n++ {
		lead := open.PickAndOccupy(g.rng)
		saved := open
		for _, t := range c.tunnels[lead] {
			if t != Unmapped {
				open.Occupy(t)
			}
		}
		if open.Empty() {
			return nil, &ExhaustedError{Pairing: n, Room: lead}
		}
		partner := open.PickAndOccupy(g.rng)
		open = saved
		open.Occupy(partner)
		c.addTunnel(lead, partner)
	}

	// Phase 3: cosmetic, keeps dumps and tests stable.
	c.sortTunnels()
	return c, nil
}
