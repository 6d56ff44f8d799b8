package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Tone classifies a piece of console output so each console can style it.
type Tone int

const (
	ToneText    Tone = iota // Narration and room descriptions
	ToneTitle               // Welcome banner and cave announcements
	TonePrompt              // Questions waiting for input
	ToneSense               // Smells, drafts and rustling bats
	ToneDanger              // Losses and rejected input
	ToneVictory             // Winning the game
	ToneArrow               // Arrow flight
	ToneCheat               // Dump and best shot output
)

var toneNames = [...]string{
	ToneText:    "text",
	ToneTitle:   "title",
	TonePrompt:  "prompt",
	ToneSense:   "sense",
	ToneDanger:  "danger",
	ToneVictory: "victory",
	ToneArrow:   "arrow",
	ToneCheat:   "cheat",
}

// String returns the palette key of the tone.
func (t Tone) String() string {
	if t < 0 || int(t) >= len(toneNames) {
		return "unknown"
	}
	return toneNames[t]
}

// ParseTone maps a palette key back to its tone.
func ParseTone(name string) (Tone, error) {
	for t, n := range toneNames {
		if n == name {
			return Tone(t), nil
		}
	}
	return ToneText, fmt.Errorf("unknown tone %q", name)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}
	rgb, err := strconv.ParseUint(digits, 16, 24)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette maps tones to screen colours.
type Palette map[Tone]tcell.Color

// NewPalette resolves the hex colours of the rules. Tones the rules leave
// out fall back to the terminal's default colour.
func NewPalette(hexes map[string]string) (Palette, error) {
	p := make(Palette, len(toneNames))
	for name, hex := range hexes {
		tone, err := ParseTone(name)
		if err != nil {
			return nil, err
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		p[tone] = c
	}
	return p, nil
}

// Color returns the colour of a tone.
func (p Palette) Color(t Tone) tcell.Color {
	if c, ok := p[t]; ok {
		return c
	}
	return tcell.ColorDefault
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
