// Package game provides the turn loop and the states of a hunt.
package game

// State names a step of the turn loop.
type State int

const (
	// StateStart greets the player and offers a saved cave.
	StateStart State = iota
	// StateInstructions prints the rules.
	StateInstructions
	// StateInitCave digs a new cave.
	StateInitCave
	// StateSetup places the hazards, the wumpus and the player.
	StateSetup
	// StateTurnStart checks the player's room and reports what they sense.
	StateTurnStart
	// StateAwaitCommand asks the player what to do.
	StateAwaitCommand
	// StateMove walks the player through a tunnel.
	StateMove
	// StateShoot flies an arrow.
	StateShoot
	// StateDisturbWumpus lets the woken wumpus move or stay.
	StateDisturbWumpus
	// StateDump prints the cave and every placement.
	StateDump
	// StateBestShot prints the shortest arrow path to the wumpus.
	StateBestShot
	// StateGameOver offers another game.
	StateGameOver
	// StateLeave saves the cave and says goodbye.
	StateLeave
	// StateExit ends the loop.
	StateExit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateInstructions:
		return "instructions"
	case StateInitCave:
		return "init_cave"
	case StateSetup:
		return "setup"
	case StateTurnStart:
		return "turn_start"
	case StateAwaitCommand:
		return "await_command"
	case StateMove:
		return "move"
	case StateShoot:
		return "shoot"
	case StateDisturbWumpus:
		return "disturb_wumpus"
	case StateDump:
		return "dump"
	case StateBestShot:
		return "best_shot"
	case StateGameOver:
		return "game_over"
	case StateLeave:
		return "leave"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}
