package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		verb Verb
		word string
		args []string
	}{
		{"", VerbNone, "", nil},
		{" , ,  ", VerbNone, "", nil},
		{"M 5", VerbMove, "m", []string{"5"}},
		{"move,12", VerbMove, "move", []string{"12"}},
		{"shoot 1,2 3", VerbShoot, "shoot", []string{"1", "2", "3"}},
		{"s 1 2 3 4 5 6 7", VerbShoot, "s", []string{"1", "2", "3", "4", "5"}},
		{"s Ab", VerbShoot, "s", []string{"Ab"}},
		{"Yes", VerbYes, "yes", []string{}},
		{"nope", VerbNo, "nope", []string{}},
		{"dump", VerbDump, "dump", []string{}},
		{"BEST", VerbBest, "best", []string{}},
		{"quit", VerbOther, "quit", []string{}},
		{"\tm\t3\r\n", VerbMove, "m", []string{"3"}},
	}
	for _, tt := range tests {
		cmd := ParseCommand(tt.line, 5)
		assert.Equal(t, tt.verb, cmd.Verb, "verb of %q", tt.line)
		assert.Equal(t, tt.word, cmd.Word, "word of %q", tt.line)
		if len(tt.args) == 0 {
			assert.Empty(t, cmd.Args, "args of %q", tt.line)
		} else {
			assert.Equal(t, tt.args, cmd.Args, "args of %q", tt.line)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateStart, "start"},
		{StateInstructions, "instructions"},
		{StateInitCave, "init_cave"},
		{StateSetup, "setup"},
		{StateTurnStart, "turn_start"},
		{StateAwaitCommand, "await_command"},
		{StateMove, "move"},
		{StateShoot, "shoot"},
		{StateDisturbWumpus, "disturb_wumpus"},
		{StateDump, "dump"},
		{StateBestShot, "best_shot"},
		{StateGameOver, "game_over"},
		{StateLeave, "leave"},
		{StateExit, "exit"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestEveryStateHasAHandler(t *testing.T) {
	for s := StateStart; s < StateExit; s++ {
		if _, ok := handlers[s]; !ok {
			t.Errorf("no handler for %s", s)
		}
	}
}
