package game

import (
	"io"
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/wumpus/internal/entity"
	"github.com/samdwyer/wumpus/internal/gamedata"
	"github.com/samdwyer/wumpus/internal/storage"
	"github.com/samdwyer/wumpus/internal/world"
)

// scriptConsole feeds fixed input lines and records everything written.
type scriptConsole struct {
	lines []string
	out   strings.Builder
	tones map[gamedata.Tone]int
}

func (c *scriptConsole) ReadLine() (string, error) {
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *scriptConsole) Write(tone gamedata.Tone, text string) {
	if c.tones == nil {
		c.tones = map[gamedata.Tone]int{}
	}
	c.tones[tone]++
	c.out.WriteString(text)
}

func (c *scriptConsole) String() string {
	return c.out.String()
}

// tester is what the helpers need from *testing.T and *rapid.T.
type tester interface {
	require.TestingT
	Helper()
	Fatalf(format string, args ...any)
}

// scriptRand hands out fixed draws and fails the test on any extra draw.
type scriptRand struct {
	t     tester
	draws []int
}

func (r *scriptRand) IntN(n int) int {
	r.t.Helper()
	if len(r.draws) == 0 {
		r.t.Fatalf("unexpected random draw in [0,%d)", n)
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scripted draw %d outside [0,%d)", v, n)
	}
	return v
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Pace = 0
	cfg.SavePath = ""
	return cfg
}

// newTestSession builds a session on the reference dodecahedron. Its
// rooms, 0-based: 0:{1,4,7} 1:{0,2,9} 2:{1,3,11} 3:{2,4,13} 4:{0,3,5}
// 5:{4,6,14} 7:{0,6,8} 9:{1,8,10} 19:{12,15,18}.
func newTestSession(t tester, input ...string) (*Session, *scriptConsole) {
	t.Helper()
	console := &scriptConsole{lines: input}
	s, err := New(testConfig(), gamedata.MustLoadRules(), console, storage.NewMemorySlot(nil), nil)
	require.NoError(t, err)
	s.cave = world.Dodecahedron()
	s.rng = &scriptRand{t: t}
	return s, console
}

// place puts the player, the wumpus and the hazards in fixed rooms.
func place(s *Session, player, wumpus int, pits, bats []int) {
	g := GameState{hazards: make([]world.Hazard, s.cave.Rooms())}
	for _, r := range pits {
		g.hazards[r] |= world.HasPit
	}
	for _, r := range bats {
		g.hazards[r] |= world.HasBat
	}
	g.Player = entity.NewPlayer(player, s.rules.Arrows)
	g.Wumpus = entity.NewWumpus(wumpus)
	s.game = g
}

// draws scripts the session's random source.
func draws(t tester, s *Session, values ...int) {
	s.rng = &scriptRand{t: t, draws: values}
}
