package game

import (
	"strings"
)

// Verb is what a command asks for, decided by the first letter of its
// first word.
type Verb int

const (
	VerbNone  Verb = iota // Empty line
	VerbMove              // m...
	VerbShoot             // s...
	VerbDump              // d...
	VerbBest              // b...
	VerbYes               // y...
	VerbNo                // n...
	VerbOther             // Anything else
)

// Command is one parsed input line.
type Command struct {
	Verb Verb
	Word string   // First word, lowercased
	Args []string // Remaining words
}

// ParseCommand splits a line on blanks and commas. Only the first word is
// lowercased, and at most maxArgs words after it are kept.
func ParseCommand(line string, maxArgs int) Command {
	words := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\r' || r == '\n'
	})
	if len(words) == 0 {
		return Command{Verb: VerbNone}
	}
	if len(words) > maxArgs+1 {
		words = words[:maxArgs+1]
	}

	cmd := Command{Word: strings.ToLower(words[0]), Args: words[1:]}
	switch cmd.Word[0] {
	case 'm':
		cmd.Verb = VerbMove
	case 's':
		cmd.Verb = VerbShoot
	case 'd':
		cmd.Verb = VerbDump
	case 'b':
		cmd.Verb = VerbBest
	case 'y':
		cmd.Verb = VerbYes
	case 'n':
		cmd.Verb = VerbNo
	default:
		cmd.Verb = VerbOther
	}
	return cmd
}
