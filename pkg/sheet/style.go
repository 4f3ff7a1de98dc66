package sheet

import "github.com/fatih/color"

// Style decorates cell text. It must not change the visible content,
// only wrap it, since padding is computed on the undecorated text.
type Style interface {
	Name(text string) string
	Cell(text string, column int) string
}

// Plain leaves every cell untouched
type Plain struct{}

func (Plain) Name(text string) string { return text }

func (Plain) Cell(text string, _ int) string { return text }

// Palette selects the colors of a styled table. Content columns alternate
// between Even and Odd by index; the name column always uses Name.
type Palette struct {
	Name *color.Color
	Even *color.Color
	Odd  *color.Color
}

// DefaultPalette returns bold cyan names with green and yellow columns
func DefaultPalette() Palette {
	return Palette{
		Name: color.New(color.FgCyan, color.Bold),
		Even: color.New(color.FgGreen),
		Odd:  color.New(color.FgYellow),
	}
}

// Forced returns the palette with color output enabled regardless of the
// terminal detection done by the color package
func (p Palette) Forced() Palette {
	for _, c := range []*color.Color{p.Name, p.Even, p.Odd} {
		if c != nil {
			c.EnableColor()
		}
	}
	return p
}

// Styled colors cells with a palette
type Styled struct {
	Palette Palette
}

// NewStyled returns a Styled strategy for the given palette
func NewStyled(palette Palette) Styled {
	return Styled{Palette: palette}
}

func (s Styled) Name(text string) string {
	return paint(s.Palette.Name, text)
}

func (s Styled) Cell(text string, column int) string {
	if column%2 == 0 {
		return paint(s.Palette.Even, text)
	}
	return paint(s.Palette.Odd, text)
}

func paint(c *color.Color, text string) string {
	if c == nil || text == "" {
		return text
	}
	return c.Sprint(text)
}
