package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opMax     uint8 = 0x02
)

// Blend flags
const (
	flagBg uint8 = 0x10 // Apply operation to background
	flagFg uint8 = 0x20 // Apply operation to foreground
)

const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)

	BlendFgOnly  = BlendMode(opReplace | flagFg) // Replace fg, keep bg
	BlendAlphaBg = BlendMode(opAlpha | flagBg)   // Shadows: darken bg, keep glyph
)
