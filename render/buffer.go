package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Buffer is a compositor over a cell array with dirty tracking and an optional clip rect
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int

	clip    CellRect
	clipped bool
}

// CellRect is an integer rect in screen cells
type CellRect struct {
	X, Y, W, H int
}

func (r CellRect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

var emptyCell = Cell{Fg: RgbHeaderText, Bg: RgbBackground}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	b.clipped = false
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// SetClip restricts writes to the given cell rect until ResetClip
func (b *Buffer) SetClip(x, y, w, h int) {
	b.clip = CellRect{x, y, w, h}
	b.clipped = true
}

func (b *Buffer) ResetClip() {
	b.clipped = false
}

func (b *Buffer) inBounds(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return !b.clipped || b.clip.contains(x, y)
}

// Get returns the cell at x, y, the empty cell when out of range
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether anything wrote a background at x, y
func (b *Buffer) Touched(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.touched[y*b.width+x]
}

// Set composites a cell with the given blend mode, a zero rune keeps the existing glyph
func (b *Buffer) Set(x, y int, r rune, fg, bg colorful.Color, mode BlendMode, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
		dst.Attrs = attrs
	}

	if flags&flagBg != 0 {
		switch op {
		case opReplace:
			dst.Bg = bg
		case opAlpha:
			dst.Bg = Blend(dst.Bg, bg, alpha)
		case opMax:
			dst.Bg = Max(dst.Bg, bg)
		}
		b.touched[idx] = true
	}

	if flags&flagFg != 0 {
		switch op {
		case opReplace:
			dst.Fg = fg
		case opAlpha:
			dst.Fg = Blend(dst.Fg, fg, alpha)
		case opMax:
			dst.Fg = Max(dst.Fg, fg)
		}
	}
}

// SetWithBg writes an opaque cell
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetBgOnly updates the background while keeping glyph and foreground
func (b *Buffer) SetBgOnly(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// Fill composites bg over a rect, r replaces the glyphs unless zero
func (b *Buffer) Fill(x, y, w, h int, r rune, bg colorful.Color, mode BlendMode, alpha float64) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, bg, bg, mode&BlendMode(0x0F|flagBg), alpha, 0)
		}
	}
}

// Text writes s from x on row y, truncated to maxWidth cells, and returns the cells used
// Wide runes occupy two cells, the second keeps a zero rune
func (b *Buffer) Text(x, y int, s string, fg colorful.Color, maxWidth int, attrs tcell.AttrMask) int {
	if maxWidth <= 0 {
		return 0
	}
	s = runewidth.Truncate(s, maxWidth, "…")
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(x+used, y, r, fg, fg, BlendFgOnly, 1, attrs)
		if w == 2 {
			b.Set(x+used+1, y, 0, fg, fg, BlendFgOnly, 1, attrs)
			if b.inBounds(x+used+1, y) {
				b.cells[y*b.width+x+used+1].Rune = 0
			}
		}
		used += w
	}
	return used
}

// Flush writes every cell to screen, untouched cells get the default background
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; {
			c := b.cells[y*b.width+x]
			if !b.touched[y*b.width+x] {
				c.Bg = RgbBackground
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style())
			x += max(runewidth.RuneWidth(r), 1)
		}
	}
}
