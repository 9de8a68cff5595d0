package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/reorder/board"
)

// cardFace returns the label and colour used to draw item
func cardFace(item any) (string, colorful.Color) {
	switch v := item.(type) {
	case *board.Card:
		return v.Label, v.Color
	case *board.Column:
		return v.Title, RgbHeaderDim
	}
	return fmt.Sprint(item), RgbHeaderDim
}

// drawCard paints item into r, opacity below one blends it over what is underneath
func drawCard(buf *Buffer, r CellRect, item any, opacity float64, attrs tcell.AttrMask) {
	if r.W <= 0 || r.H <= 0 || opacity <= 0 {
		return
	}
	label, bg := cardFace(item)
	buf.Fill(r.X, r.Y, r.W, r.H, ' ', bg, BlendAlpha, opacity)

	fg := TextOn(bg)
	pad := min(1, (r.W-1)/2)
	width := r.W - 2*pad
	row := r.Y + (r.H-1)/2
	if opacity >= 1 {
		buf.Text(r.X+pad, row, label, fg, width, attrs)
		return
	}
	used := buf.Text(r.X+pad, row, label, fg, width, attrs)
	// Fade the glyphs toward the blended background
	for x := r.X + pad; x < r.X+pad+used; x++ {
		c := buf.Get(x, row)
		buf.Set(x, row, 0, Blend(c.Bg, fg, opacity), c.Bg, BlendFgOnly, 1, 0)
	}
}

// drawPlaceholder outlines the slot of an item whose proxy is in flight
func drawPlaceholder(buf *Buffer, r CellRect) {
	for x := r.X; x < r.X+r.W; x++ {
		buf.Set(x, r.Y, '╌', RgbPlaceholder, RgbPlaceholder, BlendFgOnly, 1, 0)
		buf.Set(x, r.Y+r.H-1, '╌', RgbPlaceholder, RgbPlaceholder, BlendFgOnly, 1, 0)
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		buf.Set(r.X, y, '┆', RgbPlaceholder, RgbPlaceholder, BlendFgOnly, 1, 0)
		buf.Set(r.X+r.W-1, y, '┆', RgbPlaceholder, RgbPlaceholder, BlendFgOnly, 1, 0)
	}
}
