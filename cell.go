package softterm

// Attribute is a bitmask of cell rendering attributes.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrInvisible
	AttrStrikethrough
)

// Colour is a true-colour value with an alpha channel.  Cells always store
// true colour; palette reduction happens on output.
type Colour struct {
	Alpha, Red, Green, Blue uint8
}

// ColourPair is a foreground and background colour.
type ColourPair struct {
	Foreground, Background Colour
}

// CharacterCell is the unit of the display grid.  Character may be NUL for
// "blank".
type CharacterCell struct {
	Character  rune
	Attributes Attribute
	Foreground Colour
	Background Colour
}

// HasAttribute reports whether the given attribute bits are all set.
func (c *CharacterCell) HasAttribute(a Attribute) bool {
	return c.Attributes&a == a
}
