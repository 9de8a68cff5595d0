package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	Attrs tcell.AttrMask
}

// Style converts the cell colours to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(c.Fg)).
		Background(toTcell(c.Bg)).
		Attributes(c.Attrs)
}
