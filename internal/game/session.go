package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wumpus/internal/gamedata"
	"github.com/samdwyer/wumpus/internal/storage"
	"github.com/samdwyer/wumpus/internal/telemetry"
	"github.com/samdwyer/wumpus/internal/world"
)

// Console is where the hunt is played. Text goes out tagged with a tone
// and whole lines come back. ReadLine returns io.EOF once input ends.
type Console interface {
	ReadLine() (string, error)
	Write(tone gamedata.Tone, text string)
}

// Session owns everything one run of the game needs: the cave, the
// current game and the console. Nothing outside it is mutated.
type Session struct {
	ID string

	cfg     Config
	rules   gamedata.Rules
	msgs    *gamedata.Messages
	console Console
	slot    storage.Slot
	rng     world.Source
	logger  *log.Logger
	tracer  trace.Tracer
	sleep   func(time.Duration)

	cave      *world.Cave
	saved     *world.Cave // cave found in the slot at start, if valid
	stored    bool        // slot holds a cave with fingerprint storedSum
	storedSum uint64

	game  GameState
	cmd   Command
	games int
}

// New creates a session. A nil slot keeps the cave in memory and a nil
// logger discards log output.
func New(cfg Config, rules gamedata.Rules, console Console, slot storage.Slot, logger *log.Logger) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	msgs, err := gamedata.LoadMessages()
	if err != nil {
		return nil, err
	}
	if slot == nil {
		slot = storage.NewMemorySlot(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("game")
	}

	id := uuid.NewString()
	seed := cfg.ResolveSeed()
	s := &Session{
		ID:      id,
		cfg:     cfg,
		rules:   rules,
		msgs:    msgs,
		console: console,
		slot:    slot,
		rng:     world.NewSource(seed),
		logger:  logger.With("session", id),
		tracer:  tracer,
		sleep:   time.Sleep,
	}
	s.logger.Debug("session created", "seed", seed, "rooms", rules.Rooms, "cheat", cfg.Cheat)
	return s, nil
}

// Run plays until the player leaves or input ends.
func (s *Session) Run(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "game.session")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int64("session.seed", s.cfg.Seed),
	)

	state := StateStart
	for state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		handle, ok := handlers[state]
		if !ok {
			return fmt.Errorf("no handler for state %s", state)
		}

		next, err := handle(ctx, s)
		var inErr *inputError
		if errors.As(err, &inErr) && state != StateLeave {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("input closed", "state", state)
			} else {
				s.logger.Warn("input failed, leaving", "state", state, "err", inErr.err)
			}
			next, err = StateLeave, nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", state, err)
		}
		s.logger.Debug("state change", "from", state, "to", next)
		state = next
	}

	span.SetAttributes(attribute.Int("session.games", s.games))
	return nil
}

// say writes a catalog message.
func (s *Session) say(tone gamedata.Tone, key string, args ...any) {
	s.console.Write(tone, s.msgs.Text(key, args...))
}

// write sends text that does not come from the catalog.
func (s *Session) write(tone gamedata.Tone, text string) {
	s.console.Write(tone, text)
}

// inputError reports that the console could not deliver a line. Run
// leaves the game on it so the cave is still saved.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return "read input: " + e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

// read waits for one line and parses it.
func (s *Session) read() (Command, error) {
	line, err := s.console.ReadLine()
	if err != nil {
		return Command{}, &inputError{err}
	}
	return ParseCommand(line, s.rules.MaxArrowPath), nil
}

// ask shows a yes/no prompt. An empty answer takes the default.
func (s *Session) ask(prompt string, defaultYes bool) (bool, error) {
	s.say(gamedata.TonePrompt, prompt)
	cmd, err := s.read()
	if err != nil {
		return false, err
	}
	if defaultYes {
		return cmd.Verb == VerbNone || cmd.Verb == VerbYes, nil
	}
	return cmd.Verb != VerbNone && cmd.Verb != VerbNo, nil
}

// roomArg turns a 1-based room number typed by the player into a room id.
func (s *Session) roomArg(word string) (int, bool) {
	n, err := strconv.Atoi(word)
	room := n - 1
	if err != nil || !s.cave.IsRoom(room) {
		s.say(gamedata.ToneDanger, gamedata.MsgNotARoom, word)
		return 0, false
	}
	return room, true
}

// pause holds the arrow between rooms.
func (s *Session) pause() {
	if s.cfg.Pace > 0 {
		s.sleep(s.cfg.Pace)
	}
}

// loadSaved reads the slot and keeps the cave when it verifies.
func (s *Session) loadSaved(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "cave.verify")
	defer span.End()

	data, err := s.slot.Load()
	if errors.Is(err, storage.ErrEmpty) {
		span.SetAttributes(attribute.Bool("cave.found", false))
		return
	}
	if err != nil {
		s.logger.Warn("saved cave unreadable", "err", err)
		return
	}
	span.SetAttributes(attribute.Bool("cave.found", true))

	cave, err := world.Decode(data, s.rules.Rooms)
	if err != nil {
		span.SetAttributes(attribute.Bool("cave.valid", false))
		s.logger.Warn("saved cave discarded", "err", err)
		return
	}
	span.SetAttributes(attribute.Bool("cave.valid", true))
	s.saved = cave
	s.stored = true
	s.storedSum = cave.Fingerprint()
}

// storeCave writes the current cave unless the slot already holds it.
func (s *Session) storeCave() {
	if s.cave == nil {
		return
	}
	sum := s.cave.Fingerprint()
	if s.stored && sum == s.storedSum {
		s.logger.Debug("cave unchanged, not saved")
		return
	}
	data, err := s.cave.MarshalBinary()
	if err != nil {
		s.logger.Warn("cave not saved", "err", err)
		return
	}
	if err := s.slot.Store(data); err != nil {
		s.logger.Warn("cave not saved", "err", err)
		return
	}
	s.stored = true
	s.storedSum = sum
	s.logger.Info("cave saved", "rooms", s.cave.Rooms())
}
