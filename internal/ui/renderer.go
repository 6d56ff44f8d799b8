package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wumpus/internal/gamedata"
)

// span is a run of text written in one tone.
type span struct {
	tone gamedata.Tone
	text string
}

// line is one scrollback line as written, before wrapping.
type line []span

type cell struct {
	r     rune
	style tcell.Style
}

// Renderer draws the scrollback and the line being typed.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render wraps the lines to the screen width and draws the newest ones
// that fit. The input follows the last line, with the cursor after it.
func (r *Renderer) Render(lines []line, input []rune) {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	var rows [][]cell
	for i, l := range lines {
		var cells []cell
		for _, sp := range l {
			style := r.style(sp.tone)
			for _, ch := range sp.text {
				cells = append(cells, cell{ch, style})
			}
		}
		if i == len(lines)-1 {
			style := r.style(gamedata.ToneText)
			for _, ch := range input {
				cells = append(cells, cell{ch, style})
			}
		}
		rows = append(rows, wrap(cells, width)...)
	}
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}

	r.screen.Clear()
	for y, row := range rows {
		for x, c := range row {
			r.screen.SetContent(x, y, c.r, c.style)
		}
	}
	if n := len(rows); n > 0 {
		r.screen.ShowCursor(min(len(rows[n-1]), width-1), n-1)
	}
	r.screen.Show()
}

func (r *Renderer) style(tone gamedata.Tone) tcell.Style {
	if c := r.palette.Color(tone); c != tcell.ColorDefault {
		return backdrop.Foreground(c)
	}
	return backdrop
}

// wrap splits cells into rows of at most width. An empty line still
// takes a row.
func wrap(cells []cell, width int) [][]cell {
	if len(cells) == 0 {
		return [][]cell{nil}
	}
	var rows [][]cell
	for len(cells) > width {
		rows = append(rows, cells[:width])
		cells = cells[width:]
	}
	return append(rows, cells)
}
