package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpus/internal/combat"
	"github.com/samdwyer/wumpus/internal/gamedata"
	"github.com/samdwyer/wumpus/internal/world"
)

// How far the player can sense each hazard, in tunnel hops.
const (
	wumpusScent = 2
	batNoise    = 1
	pitDraft    = 1
)

// handler runs one state and returns the next.
type handler func(ctx context.Context, s *Session) (State, error)

var handlers = map[State]handler{
	StateStart:         handleStart,
	StateInstructions:  handleInstructions,
	StateInitCave:      handleInitCave,
	StateSetup:         handleSetup,
	StateTurnStart:     handleTurnStart,
	StateAwaitCommand:  handleAwaitCommand,
	StateMove:          handleMove,
	StateShoot:         handleShoot,
	StateDisturbWumpus: handleDisturbWumpus,
	StateDump:          handleDump,
	StateBestShot:      handleBestShot,
	StateGameOver:      handleGameOver,
	StateLeave:         handleLeave,
}

func handleStart(ctx context.Context, s *Session) (State, error) {
	s.say(gamedata.ToneTitle, gamedata.MsgWelcome)

	s.loadSaved(ctx)
	if s.saved != nil {
		yes, err := s.ask(gamedata.MsgPromptSavedCave, true)
		if err != nil {
			return StateExit, err
		}
		if yes {
			s.cave = s.saved
		}
	}

	wants, err := s.ask(gamedata.MsgPromptInstructions, false)
	if err != nil {
		return StateExit, err
	}
	if wants {
		return StateInstructions, nil
	}
	return s.firstCave(), nil
}

// firstCave skips digging when a saved cave was accepted.
func (s *Session) firstCave() State {
	if s.cave != nil {
		return StateSetup
	}
	return StateInitCave
}

func handleInstructions(_ context.Context, s *Session) (State, error) {
	r := s.rules
	s.say(gamedata.ToneText, gamedata.MsgInstructions,
		r.Rooms, r.Tunnels, r.Pits, r.Bats, r.Arrows, r.MaxArrowPath)
	return s.firstCave(), nil
}

func handleInitCave(ctx context.Context, s *Session) (State, error) {
	s.say(gamedata.ToneTitle, gamedata.MsgCreatingCave)

	cave, err := world.NewGenerator(s.rules.Rooms, s.rng, s.logger).Generate(ctx)
	if err != nil {
		return StateExit, err
	}
	s.cave = cave
	if world.IsDodecahedron(cave) {
		s.say(gamedata.ToneTitle, gamedata.MsgDodecahedron)
	}
	s.write(gamedata.ToneText, "\n")
	return StateSetup, nil
}

func handleSetup(ctx context.Context, s *Session) (State, error) {
	_, span := s.tracer.Start(ctx, "game.setup")
	defer span.End()

	s.game = newGameState(s.cave.Rooms(), s.rules, s.rng)
	s.games++

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("game.number", s.games),
		attribute.Int("player.room", s.game.Player.Room+1),
		attribute.Int("wumpus.room", s.game.Wumpus.Room+1),
	)
	s.logger.Info("game set up", "game", s.games,
		"player", s.game.Player.Room+1, "wumpus", s.game.Wumpus.Room+1)
	return StateTurnStart, nil
}

func handleTurnStart(_ context.Context, s *Session) (State, error) {
	p := s.game.Player
	s.say(gamedata.ToneText, gamedata.MsgInRoom, p.Room+1)

	here := s.game.At(p.Room)
	switch {
	case here.Has(world.HasPit):
		s.say(gamedata.ToneDanger, gamedata.MsgFellInPit)
		s.game.Ending = EndingPit
		return StateGameOver, nil
	case here.Has(world.HasWumpus):
		s.say(gamedata.ToneDanger, gamedata.MsgEaten)
		s.game.Ending = EndingEaten
		return StateGameOver, nil
	case here.Has(world.HasBat):
		s.say(gamedata.ToneSense, gamedata.MsgBatCarries)
		p.MoveTo(s.rng.IntN(s.cave.Rooms()))
		return StateTurnStart, nil
	}

	if s.cave.Near(p.Room, wumpusScent, s.game.has(world.HasWumpus)) {
		s.say(gamedata.ToneSense, gamedata.MsgSmellWumpus)
	}
	if s.cave.Near(p.Room, batNoise, s.game.has(world.HasBat)) {
		s.say(gamedata.ToneSense, gamedata.MsgBatsNearby)
	}
	if s.cave.Near(p.Room, pitDraft, s.game.has(world.HasPit)) {
		s.say(gamedata.ToneSense, gamedata.MsgFeelDraft)
	}
	t := s.cave.Tunnels(p.Room)
	s.say(gamedata.ToneText, gamedata.MsgTunnels, t[0]+1, t[1]+1, t[2]+1)
	return StateAwaitCommand, nil
}

func handleAwaitCommand(_ context.Context, s *Session) (State, error) {
	s.say(gamedata.TonePrompt, gamedata.MsgPromptCommand)
	cmd, err := s.read()
	if err != nil {
		return StateExit, err
	}
	s.cmd = cmd

	switch cmd.Verb {
	case VerbNone:
		return StateAwaitCommand, nil
	case VerbMove:
		return StateMove, nil
	case VerbShoot:
		return StateShoot, nil
	case VerbDump:
		if s.cfg.Cheat {
			return StateDump, nil
		}
	case VerbBest:
		if s.cfg.Cheat {
			return StateBestShot, nil
		}
	}
	s.say(gamedata.ToneDanger, gamedata.MsgWhat)
	return StateAwaitCommand, nil
}

func handleMove(_ context.Context, s *Session) (State, error) {
	if len(s.cmd.Args) == 0 {
		s.say(gamedata.TonePrompt, gamedata.MsgWhichRoom)
		return StateAwaitCommand, nil
	}
	room, ok := s.roomArg(s.cmd.Args[0])
	if !ok {
		return StateAwaitCommand, nil
	}

	p := s.game.Player
	if !s.cave.Adjacent(p.Room, room) {
		s.say(gamedata.ToneDanger, gamedata.MsgHitWall)
		return StateAwaitCommand, nil
	}
	p.MoveTo(room)
	if room == s.game.Wumpus.Room {
		return StateDisturbWumpus, nil
	}
	return StateTurnStart, nil
}

func handleShoot(ctx context.Context, s *Session) (State, error) {
	if len(s.cmd.Args) == 0 {
		s.say(gamedata.TonePrompt, gamedata.MsgWhichTunnels)
		return StateAwaitCommand, nil
	}
	aim := make([]int, 0, len(s.cmd.Args))
	for _, arg := range s.cmd.Args {
		room, ok := s.roomArg(arg)
		if !ok {
			return StateAwaitCommand, nil
		}
		aim = append(aim, room)
	}

	_, span := s.tracer.Start(ctx, "game.shoot")
	defer span.End()

	p := s.game.Player
	s.write(gamedata.ToneText, "\n")
	resolver := combat.NewResolver(s.cave, s.rng, s.rules.MaxArrowPath)
	flight := resolver.Fly(p.Room, s.game.Wumpus.Room, aim, func(h combat.Hop) {
		s.pause()
		s.say(gamedata.ToneArrow, gamedata.MsgArrowHop, h.Room+1)
	})

	crooked := 0
	for _, h := range flight.Hops {
		if h.Crooked {
			crooked++
		}
	}
	span.SetAttributes(
		attribute.Int("arrow.hops", len(flight.Hops)),
		attribute.Int("arrow.crooked", crooked),
		attribute.String("arrow.outcome", flight.Outcome.String()),
	)
	s.logger.Debug("arrow flew", "aim", len(aim), "hops", len(flight.Hops),
		"crooked", crooked, "outcome", flight.Outcome)

	switch flight.Outcome {
	case combat.OutcomeHitSelf:
		s.say(gamedata.ToneDanger, gamedata.MsgShotYourself)
		s.game.Ending = EndingShotSelf
		return StateGameOver, nil
	case combat.OutcomeHitWumpus:
		last := flight.Hops[len(flight.Hops)-1]
		s.say(gamedata.ToneVictory, gamedata.MsgSlewWumpus, last.Room+1)
		s.game.Ending = EndingWon
		return StateGameOver, nil
	}

	s.say(gamedata.ToneText, gamedata.MsgMissed)
	p.SpendArrow()
	if p.OutOfArrows() {
		s.say(gamedata.ToneDanger, gamedata.MsgLastShot)
		s.game.Ending = EndingNoArrows
		return StateGameOver, nil
	}
	s.write(gamedata.ToneText, "\n")
	return StateDisturbWumpus, nil
}

func handleDisturbWumpus(_ context.Context, s *Session) (State, error) {
	w := s.game.Wumpus
	moved := w.Wake(s.rng, s.cave.Tunnels(w.Room))
	s.logger.Debug("wumpus woke", "moved", moved, "room", w.Room+1)

	if w.Room == s.game.Player.Room {
		if moved {
			s.say(gamedata.ToneDanger, gamedata.MsgWumpusMovedAte)
		} else {
			s.say(gamedata.ToneDanger, gamedata.MsgWumpusAte)
		}
		s.game.Ending = EndingEaten
		return StateGameOver, nil
	}
	return StateTurnStart, nil
}

func handleDump(_ context.Context, s *Session) (State, error) {
	var b strings.Builder
	for r := range s.cave.Rooms() {
		if r%4 == 0 {
			b.WriteString("\n")
		}
		t := s.cave.Tunnels(r)
		fmt.Fprintf(&b, "%02d:%02d %02d %02d  ", r+1, t[0]+1, t[1]+1, t[2]+1)
	}
	b.WriteString(s.msgs.Text(gamedata.MsgDumpPlacement, s.game.Player.Room+1, s.game.Wumpus.Room+1))
	for _, r := range s.game.roomsWith(world.HasPit) {
		fmt.Fprintf(&b, "%02d ", r+1)
	}
	b.WriteString(s.msgs.Text(gamedata.MsgDumpBats))
	for _, r := range s.game.roomsWith(world.HasBat) {
		fmt.Fprintf(&b, "%02d ", r+1)
	}
	b.WriteString("\n")
	s.write(gamedata.ToneCheat, b.String())
	return StateAwaitCommand, nil
}

func handleBestShot(_ context.Context, s *Session) (State, error) {
	s.say(gamedata.ToneCheat, gamedata.MsgBestShot)
	shot, ok := s.bestShot()
	if !ok {
		s.say(gamedata.ToneCheat, gamedata.MsgBestNone)
	} else {
		words := make([]string, len(shot))
		for i, r := range shot {
			words[i] = strconv.Itoa(r + 1)
		}
		s.write(gamedata.ToneCheat, strings.Join(words, " "))
	}
	s.write(gamedata.ToneText, "\n")
	return StateAwaitCommand, nil
}

// bestShot finds the shortest arrow path from the player to the wumpus
// that the remaining arrows and the path limit allow. The search runs
// from the wumpus so the recorded rooms come out in flight order.
func (s *Session) bestShot() ([]int, bool) {
	w := s.game.Wumpus.Room
	limit := min(s.game.Player.Arrows, s.rules.MaxArrowPath)
	for depth := 1; depth <= limit; depth++ {
		if path, ok := s.cave.Search(w, s.game.Player.Room, depth, true); ok {
			return append(path, w), true
		}
	}
	return nil, false
}

func handleGameOver(ctx context.Context, s *Session) (State, error) {
	_, span := s.tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("game.number", s.games),
		attribute.String("game.ending", s.game.Ending.String()),
		attribute.Int("player.arrows", s.game.Player.Arrows),
	)
	span.End()
	s.logger.Info("game over", "game", s.games, "ending", s.game.Ending)

	again, err := s.ask(gamedata.MsgPromptAnother, true)
	if err != nil {
		return StateExit, err
	}
	if !again {
		return StateLeave, nil
	}
	same, err := s.ask(gamedata.MsgPromptSameCave, true)
	if err != nil {
		return StateExit, err
	}
	if same {
		return StateSetup, nil
	}
	return StateInitCave, nil
}

func handleLeave(_ context.Context, s *Session) (State, error) {
	s.storeCave()
	s.say(gamedata.ToneTitle, gamedata.MsgBye)
	return StateExit, nil
}
