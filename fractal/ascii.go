package fractal

import (
	"fmt"
	"io"
	"strconv"
)

// Cell scale of the ASCII rendering: each grid cell is drawn cellDX
// characters wide and cellDY lines tall, plus a shared border.
const (
	cellDX = 2
	cellDY = 1
)

// asciiCanvas accumulates box-drawing characters for a partition dump.
type asciiCanvas struct {
	rows [][]byte
}

func newASCIICanvas(width, height int) *asciiCanvas {
	c := &asciiCanvas{}
	sw, sh := width*cellDX+1, height*cellDY+1
	c.rows = make([][]byte, sh)
	for i := range c.rows {
		row := make([]byte, sw)
		for j := range row {
			row[j] = ' '
		}
		c.rows[i] = row
	}
	return c
}

// mark places a line character, upgrading crossings to '+'.
func (c *asciiCanvas) mark(x, y int, ch byte) {
	old := c.rows[y][x]
	if (ch == '|' && (old == '-' || old == '+')) ||
		(ch == '-' && (old == '|' || old == '+')) {
		ch = '+'
	}
	c.rows[y][x] = ch
}

func (c *asciiCanvas) horizontalLine(x, y, length int) {
	for i := 0; i < length; i++ {
		c.mark(x+i, y, '-')
	}
}

func (c *asciiCanvas) verticalLine(x, y, length int) {
	for i := 0; i < length; i++ {
		c.mark(x, y+i, '|')
	}
}

// drawBox outlines an unscaled rectangle and, where it fits, writes the
// label inside the upper-left corner.
func (c *asciiCanvas) drawBox(rc Rect, label string) {
	left, top := rc.LeftX*cellDX, rc.UpperY*cellDY
	right, bottom := (rc.LeftX+rc.Width)*cellDX, (rc.UpperY+rc.Height)*cellDY
	c.horizontalLine(left, top, rc.Width*cellDX+1)
	c.horizontalLine(left, bottom, rc.Width*cellDX+1)
	c.verticalLine(left, top, rc.Height*cellDY+1)
	c.verticalLine(right, top, rc.Height*cellDY+1)
	if len(label) < cellDX*rc.Width && cellDY*rc.Height > 1 {
		x := left + 1
		for i := 0; i < len(label); i++ {
			c.rows[rc.UpperY+1][x+i] = label[i]
		}
	}
}

// RenderASCII writes a box-drawing diagram of the tree's leaf regions,
// each labelled with its region index in leaf order.
func (t *Tree) RenderASCII(w io.Writer) error {
	c := newASCIICanvas(t.Width(), t.Height())
	for i, leaf := range t.Leaves() {
		c.drawBox(leaf.Rect, strconv.Itoa(i))
	}
	for _, row := range c.rows {
		if _, err := fmt.Fprintf(w, "%s\n", row); err != nil {
			return err
		}
	}
	return nil
}
