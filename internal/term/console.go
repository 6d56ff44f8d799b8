// Package term plays the game on a plain line terminal.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	xterm "golang.org/x/term"

	"github.com/samdwyer/wumpus/internal/gamedata"
)

// maxLine bounds how much of one input line is kept. The rest of a longer
// line is read and dropped.
const maxLine = 4096

// Console reads whole lines and prints text, coloured by tone when styled.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles map[gamedata.Tone]color.RGBColor
	styled bool
}

// New creates a console over in and out. The palette maps tone names to
// hex colours and is only used when styled is set.
func New(in io.Reader, out io.Writer, palette map[string]string, styled bool) (*Console, error) {
	styles := make(map[gamedata.Tone]color.RGBColor, len(palette))
	for name, hex := range palette {
		tone, err := gamedata.ParseTone(name)
		if err != nil {
			return nil, err
		}
		if _, err := gamedata.ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		styles[tone] = color.HEX(hex)
	}
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
		styled: styled,
	}, nil
}

// Styled reports whether output to f should carry colour codes.
func Styled(f *os.File, noColor bool) bool {
	return !noColor && xterm.IsTerminal(int(f.Fd()))
}

// ReadLine returns the next input line without its line ending, cut to
// maxLine bytes, or io.EOF once input is exhausted.
func (c *Console) ReadLine() (string, error) {
	var line []byte
	for {
		chunk, more, err := c.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}
		if room := maxLine - len(line); room > 0 {
			line = append(line, chunk[:min(len(chunk), room)]...)
		}
		if !more {
			return string(line), nil
		}
	}
}

// Write prints text in the colour of its tone.
func (c *Console) Write(tone gamedata.Tone, text string) {
	if style, ok := c.styles[tone]; ok && c.styled {
		text = style.Sprint(text)
	}
	fmt.Fprint(c.out, text)
}
