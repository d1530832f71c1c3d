package font

import "strings"

// DefaultName is the font used when neither the TIMER_FONT environment
// variable nor the --font flag selects one.
const DefaultName = "block"

// Seven-segment display segments. A is the top bar, G the middle, D the
// bottom; B/C are the right verticals and F/E the left ones, top to bottom.
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

// digitSegments holds the lit segments for digits 0 through 9.
var digitSegments = [10]int{
	segA | segB | segC | segD | segE | segF,
	segB | segC,
	segA | segB | segG | segE | segD,
	segA | segB | segG | segC | segD,
	segF | segG | segB | segC,
	segA | segF | segG | segC | segD,
	segA | segF | segG | segE | segC | segD,
	segA | segB | segC,
	segA | segB | segC | segD | segE | segF | segG,
	segA | segB | segC | segD | segF | segG,
}

// sevenSegment generates a 5-row glyph set from the segment table, drawing
// lit cells with the given rune at the given cell width.
func sevenSegment(name string, cell rune, cellWidth int) *Font {
	on := strings.Repeat(string(cell), cellWidth)
	off := strings.Repeat(" ", cellWidth)

	pick := func(mask, seg int) string {
		if mask&seg != 0 {
			return on
		}
		return off
	}

	glyphs := make(map[rune][]string, 11)
	for d, mask := range digitSegments {
		a := pick(mask, segA)
		b := pick(mask, segB)
		c := pick(mask, segC)
		dd := pick(mask, segD)
		e := pick(mask, segE)
		f := pick(mask, segF)
		g := pick(mask, segG)

		// Trailing off column provides the inter-glyph gap.
		glyphs[rune('0'+d)] = []string{
			off + a + a + off + off,
			f + off + off + b + off,
			off + g + g + off + off,
			e + off + off + c + off,
			off + dd + dd + off + off,
		}
	}
	glyphs[':'] = []string{
		off + off,
		on + off,
		off + off,
		on + off,
		off + off,
	}

	return &Font{name: name, height: 5, glyphs: glyphs}
}

// miniFont is the classic 3-row underscore-and-pipe clock face.
func miniFont() *Font {
	glyphs := map[rune][]string{
		'0': {" _ ", "| |", "|_|"},
		'1': {"   ", "  |", "  |"},
		'2': {" _ ", " _|", "|_ "},
		'3': {" _ ", " _|", " _|"},
		'4': {"   ", "|_|", "  |"},
		'5': {" _ ", "|_ ", " _|"},
		'6': {" _ ", "|_ ", "|_|"},
		'7': {" _ ", "  |", "  |"},
		'8': {" _ ", "|_|", "|_|"},
		'9': {" _ ", "|_|", " _|"},
		':': {" ", ".", "."},
	}
	for c, lines := range glyphs {
		for i := range lines {
			lines[i] += " "
		}
		glyphs[c] = lines
	}
	return &Font{name: "mini", height: 3, glyphs: glyphs}
}

// plainFont renders characters as themselves on a single row.
func plainFont() *Font {
	glyphs := make(map[rune][]string, 11)
	for _, c := range "0123456789:" {
		glyphs[c] = []string{string(c)}
	}
	return &Font{name: "plain", height: 1, glyphs: glyphs}
}

// Builtin returns a registry preloaded with the built-in fonts.
func Builtin() *Registry {
	return NewRegistry(
		sevenSegment("block", '█', 2),
		sevenSegment("digital", '#', 1),
		miniFont(),
		plainFont(),
	)
}
