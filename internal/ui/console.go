package ui

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wumpus/internal/gamedata"
)

// scrollback is how many written lines the console keeps.
const scrollback = 500

// Console is a full-screen game console: a scrolling transcript with a
// line editor on its last line.
type Console struct {
	screen   *Screen
	renderer *Renderer
	lines    []line
	input    []rune
}

// NewConsole creates a console drawing on screen in the palette's colours.
func NewConsole(screen *Screen, palette gamedata.Palette) *Console {
	c := &Console{
		screen:   screen,
		renderer: NewRenderer(screen, palette),
		lines:    []line{nil},
	}
	c.draw()
	return c
}

// Write appends text to the transcript. Each newline starts a new line.
func (c *Console) Write(tone gamedata.Tone, text string) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			c.lines = append(c.lines, nil)
		}
		if part != "" {
			last := len(c.lines) - 1
			c.lines[last] = append(c.lines[last], span{tone, part})
		}
	}
	if extra := len(c.lines) - scrollback; extra > 0 {
		c.lines = c.lines[extra:]
	}
	c.draw()
}

// ReadLine edits a line until Enter and echoes it into the transcript.
// Escape, Ctrl-C, Ctrl-D and a closed screen end input with io.EOF.
func (c *Console) ReadLine() (string, error) {
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				text := string(c.input)
				c.input = c.input[:0]
				c.Write(gamedata.ToneText, text+"\n")
				return text, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len(c.input); n > 0 {
					c.input = c.input[:n-1]
				}
			case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
				return "", io.EOF
			case tcell.KeyRune:
				c.input = append(c.input, ev.Rune())
			}
		}
		c.draw()
	}
}

func (c *Console) draw() {
	c.renderer.Render(c.lines, c.input)
}
