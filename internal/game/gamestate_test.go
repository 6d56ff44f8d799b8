package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/wumpus/internal/world"
)

func TestEndingString(t *testing.T) {
	tests := []struct {
		ending Ending
		want   string
	}{
		{EndingNone, "none"},
		{EndingWon, "won"},
		{EndingPit, "pit"},
		{EndingEaten, "eaten"},
		{EndingShotSelf, "shot_self"},
		{EndingNoArrows, "out_of_arrows"},
		{Ending(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ending.String())
	}
}

func TestGameStateAt(t *testing.T) {
	s, _ := newTestSession(t)
	place(s, 0, 5, []int{5, 9}, []int{3})

	assert.Equal(t, world.HasPit|world.HasWumpus, s.game.At(5))
	assert.Equal(t, world.HasBat, s.game.At(3))
	assert.Equal(t, world.Hazard(0), s.game.At(0))

	assert.Equal(t, []int{5, 9}, s.game.roomsWith(world.HasPit))
	assert.Equal(t, []int{3, 5}, s.game.roomsWith(world.HasBat|world.HasWumpus))

	// The wumpus moves; the pit stays.
	s.game.Wumpus.Room = 9
	assert.Equal(t, world.HasPit, s.game.At(5))
	assert.True(t, s.game.has(world.HasWumpus)(9))
}
