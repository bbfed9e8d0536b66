package guard

import (
	"strconv"
	"unicode/utf8"

	"github.com/launchrctl/sizeguard/pkg/canvas"
	"github.com/launchrctl/sizeguard/pkg/policy"
)

// Overlay texts.
const (
	headerCurrent = "Terminal size too small:"
	headerNeeded  = "Needed for current config:"
	tooSmall      = "Too small"
)

// Minimal terminal height for the full overlay.
const fullOverlayMinHeight = 5

// TerminalSize is a terminal size in cells.
type TerminalSize struct {
	Width  uint32
	Height uint32
}

// String implements [fmt.Stringer] interface.
func (t TerminalSize) String() string {
	return strconv.FormatUint(uint64(t.Width), 10) + "x" + strconv.FormatUint(uint64(t.Height), 10)
}

// Glyph is a character of the overlay.
// Uncoloured glyphs are drawn with the default colours.
type Glyph struct {
	X, Y     uint32
	Char     rune
	Coloured bool
	Fg, Bg   canvas.Colour
}

func sizeLine(width, height uint32) string {
	return "Width = " + strconv.FormatUint(uint64(width), 10) + " Height = " + strconv.FormatUint(uint64(height), 10)
}

func textWidth(s string) uint32 {
	return uint32(utf8.RuneCountInString(s))
}

// centered returns the column to center a text, false if it doesn't fit.
func centered(termWidth uint32, s string) (uint32, bool) {
	w := textWidth(s)
	if w > termWidth {
		return 0, false
	}
	return (termWidth - w) / 2, true
}

func appendText(glyphs []Glyph, x, y uint32, s string) ([]Glyph, uint32) {
	for _, c := range s {
		glyphs = append(glyphs, Glyph{X: x, Y: y, Char: c})
		x++
	}
	return glyphs, x
}

func appendColoured(glyphs []Glyph, x, y uint32, s string, fg canvas.Colour) ([]Glyph, uint32) {
	for _, c := range s {
		glyphs = append(glyphs, Glyph{X: x, Y: y, Char: c, Coloured: true, Fg: fg, Bg: canvas.ColourReset})
		x++
	}
	return glyphs, x
}

func sizeColour(actual, required uint32) canvas.Colour {
	if actual < required {
		return canvas.ColourLightRed
	}
	return canvas.ColourLightGreen
}

// Layout computes the overlay for a terminal which is smaller than required.
//
// The full overlay shows the current and the required sizes as two blocks
// separated by a blank row. It needs 5 rows and every line to fit the width.
// Otherwise a single "Too small" line is shown if the terminal has
// at least 9 columns. Smaller terminals get nothing.
func Layout(term TerminalSize, minSize policy.MinimumSize) []Glyph {
	lines := [4]string{
		headerCurrent,
		sizeLine(term.Width, term.Height),
		headerNeeded,
		sizeLine(minSize.Width, minSize.Height),
	}
	var cols [4]uint32
	fits := term.Height >= fullOverlayMinHeight
	for i := 0; fits && i < len(lines); i++ {
		cols[i], fits = centered(term.Width, lines[i])
	}

	if fits {
		top := uint32(0)
		if term.Height > 6 {
			top = (term.Height - 6) / 2
		}
		glyphs := make([]Glyph, 0, len(lines[0])+len(lines[1])+len(lines[2])+len(lines[3]))
		glyphs, _ = appendText(glyphs, cols[0], top, lines[0])

		x := cols[1]
		glyphs, x = appendText(glyphs, x, top+1, "Width = ")
		glyphs, x = appendColoured(glyphs, x, top+1, strconv.FormatUint(uint64(term.Width), 10), sizeColour(term.Width, minSize.Width))
		glyphs, x = appendText(glyphs, x, top+1, " Height = ")
		glyphs, _ = appendColoured(glyphs, x, top+1, strconv.FormatUint(uint64(term.Height), 10), sizeColour(term.Height, minSize.Height))

		glyphs, _ = appendText(glyphs, cols[2], top+3, lines[2])
		glyphs, _ = appendText(glyphs, cols[3], top+4, lines[3])
		return glyphs
	}

	if term.Height >= 1 {
		if x, ok := centered(term.Width, tooSmall); ok {
			glyphs, _ := appendText(make([]Glyph, 0, len(tooSmall)), x, (term.Height-1)/2, tooSmall)
			return glyphs
		}
	}
	return nil
}
