// Package board holds the demo data model: named columns of coloured cards
package board

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrNoColumns   = errors.New("board has no columns")
	ErrInvalidCard = errors.New("invalid card")
)

// Card is the item dragged between columns, compared by pointer identity
type Card struct {
	ID    uuid.UUID
	Label string
	Color colorful.Color
}

// Column is a titled run of cards
type Column struct {
	Title string
	Cards []*Card
}

// Board is an ordered set of columns
type Board struct {
	Title   string
	Columns []*Column
}

// File is the on-disk TOML shape of a board
type File struct {
	Title   string       `toml:"title"`
	Columns []ColumnFile `toml:"column"`
}

type ColumnFile struct {
	Title string     `toml:"title"`
	Cards []CardFile `toml:"card,omitempty"`
}

type CardFile struct {
	ID    string `toml:"id,omitempty"`
	Label string `toml:"label"`
	Color string `toml:"color,omitempty"`
}

// SampleTitles are the column titles of the sample board
var SampleTitles = []string{"Backlog", "To Do", "In Progress", "Fixed", "Done", "Released", "Bug of Release"}

// sampleCards is the card count of every populated sample column
const sampleCards = 16

// Sample builds the demo board: every second column holds cards "0" to "15" in random colours
func Sample(rng *rand.Rand) *Board {
	b := &Board{Title: "Sample"}
	for i, title := range SampleTitles {
		col := &Column{Title: title}
		if (i+1)%2 == 0 {
			for n := range sampleCards {
				col.Cards = append(col.Cards, &Card{
					ID:    uuid.New(),
					Label: fmt.Sprint(n),
					Color: colorful.FastHappyColorWithRand(rng),
				})
			}
		}
		b.Columns = append(b.Columns, col)
	}
	return b
}

// Load reads a board from a TOML file
func Load(path string) (*Board, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	b, err := f.Board()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return b, nil
}

// Decode reads a board from TOML text
func Decode(data string) (*Board, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("parsing board: %w", err)
	}
	return f.Board()
}

// Board converts the file shape, generating IDs and colours that are missing
func (f *File) Board() (*Board, error) {
	if len(f.Columns) == 0 {
		return nil, ErrNoColumns
	}
	b := &Board{Title: f.Title}
	seen := make(map[uuid.UUID]bool)
	for ci, cf := range f.Columns {
		col := &Column{Title: cf.Title}
		if col.Title == "" {
			col.Title = fmt.Sprintf("Column %d", ci+1)
		}
		for i, card := range cf.Cards {
			c, err := card.card()
			if err != nil {
				return nil, fmt.Errorf("column %q card %d: %w", col.Title, i, err)
			}
			if seen[c.ID] {
				return nil, fmt.Errorf("column %q card %d: %w: duplicate id %s", col.Title, i, ErrInvalidCard, c.ID)
			}
			seen[c.ID] = true
			col.Cards = append(col.Cards, c)
		}
		b.Columns = append(b.Columns, col)
	}
	return b, nil
}

func (cf CardFile) card() (*Card, error) {
	c := &Card{Label: cf.Label}

	if cf.ID == "" {
		c.ID = uuid.New()
	} else {
		id, err := uuid.Parse(cf.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q: %w", ErrInvalidCard, cf.ID, err)
		}
		c.ID = id
	}

	if cf.Color == "" {
		c.Color = colorful.FastHappyColor()
	} else {
		col, err := colorful.Hex(cf.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: color %q: %w", ErrInvalidCard, cf.Color, err)
		}
		c.Color = col
	}
	return c, nil
}

// File converts the board back into its TOML shape
func (b *Board) File() File {
	f := File{Title: b.Title}
	for _, col := range b.Columns {
		cf := ColumnFile{Title: col.Title}
		for _, c := range col.Cards {
			cf.Cards = append(cf.Cards, CardFile{
				ID:    c.ID.String(),
				Label: c.Label,
				Color: c.Color.Hex(),
			})
		}
		f.Columns = append(f.Columns, cf)
	}
	return f
}

// Encode writes the board as TOML
func (b *Board) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(b.File())
}

// Save writes the board to path, replacing any existing file
func (b *Board) Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := b.Encode(fh); err != nil {
		fh.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return fh.Close()
}

// Len is the total card count
func (b *Board) Len() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Cards)
	}
	return n
}
