package guard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchrctl/sizeguard/pkg/canvas"
	"github.com/launchrctl/sizeguard/pkg/policy"
)

// rows renders glyphs to text rows for the terminal size.
func rows(term TerminalSize, glyphs []Glyph) []string {
	grid := make([][]rune, term.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", int(term.Width)))
	}
	for _, g := range glyphs {
		grid[g.Y][g.X] = g.Char
	}
	res := make([]string, len(grid))
	for i, r := range grid {
		res[i] = strings.TrimRight(string(r), " ")
	}
	return res
}

func colourAt(glyphs []Glyph, x, y uint32) (canvas.Colour, bool) {
	for _, g := range glyphs {
		if g.X == x && g.Y == y {
			return g.Fg, g.Coloured
		}
	}
	return canvas.ColourReset, false
}

func Test_Layout(t *testing.T) {
	t.Parallel()
	minSize := policy.MinimumSize{Width: 100, Height: 50}

	type testCase struct {
		name string
		term TerminalSize
		min  policy.MinimumSize
		exp  map[int]string
	}
	tts := []testCase{
		{
			"full overlay",
			TerminalSize{80, 24},
			minSize,
			map[int]string{
				9:  strings.Repeat(" ", 28) + "Terminal size too small:",
				10: strings.Repeat(" ", 29) + "Width = 80 Height = 24",
				12: strings.Repeat(" ", 27) + "Needed for current config:",
				13: strings.Repeat(" ", 28) + "Width = 100 Height = 50",
			},
		},
		{
			"full overlay without top offset",
			TerminalSize{30, 5},
			minSize,
			map[int]string{
				0: "   Terminal size too small:",
				1: "    Width = 30 Height = 5",
				3: "  Needed for current config:",
				4: "   Width = 100 Height = 50",
			},
		},
		{
			"exact fit",
			TerminalSize{26, 6},
			minSize,
			map[int]string{
				0: " Terminal size too small:",
				1: "  Width = 26 Height = 6",
				3: "Needed for current config:",
				4: " Width = 100 Height = 50",
			},
		},
		{
			"too narrow for full overlay",
			TerminalSize{25, 24},
			minSize,
			map[int]string{11: "        Too small"},
		},
		{
			"too short for full overlay",
			TerminalSize{80, 4},
			minSize,
			map[int]string{1: strings.Repeat(" ", 35) + "Too small"},
		},
		{
			"fallback exact fit",
			TerminalSize{9, 1},
			minSize,
			map[int]string{0: "Too small"},
		},
		{
			"nothing fits",
			TerminalSize{8, 3},
			minSize,
			map[int]string{},
		},
		{
			"no rows",
			TerminalSize{80, 0},
			minSize,
			map[int]string{},
		},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			glyphs := Layout(tt.term, tt.min)
			for y, row := range rows(tt.term, glyphs) {
				assert.Equal(t, tt.exp[y], row, "row %d", y)
			}
		})
	}
}

func Test_LayoutColours(t *testing.T) {
	t.Parallel()
	minSize := policy.MinimumSize{Width: 100, Height: 20}
	term := TerminalSize{80, 24}
	glyphs := Layout(term, minSize)

	// "Width = 80 Height = 24" starts at column 29, row 10.
	fg, coloured := colourAt(glyphs, 29+8, 10)
	assert.True(t, coloured)
	assert.Equal(t, canvas.ColourLightRed, fg)
	fg, coloured = colourAt(glyphs, 29+20, 10)
	assert.True(t, coloured)
	assert.Equal(t, canvas.ColourLightGreen, fg)

	// Labels and the required size use default colours.
	_, coloured = colourAt(glyphs, 29, 10)
	assert.False(t, coloured)
	_, coloured = colourAt(glyphs, 28+8, 13)
	assert.False(t, coloured)

	for _, g := range Layout(TerminalSize{9, 1}, minSize) {
		assert.False(t, g.Coloured)
	}
}
