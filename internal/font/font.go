// Package font defines the large-character glyph sets used to render the
// countdown clock, and the registry they are looked up in.
package font

import (
	"fmt"
	"sort"
	"strings"
)

// Font is an immutable named glyph set. Every glyph spans the same number
// of rows; widths may vary per glyph.
type Font struct {
	name   string
	height int
	glyphs map[rune][]string
}

// Name returns the registry name of the font.
func (f *Font) Name() string { return f.name }

// Height returns the number of rows every glyph in the font occupies.
func (f *Font) Height() int { return f.height }

// Render draws the given text as a block of f.Height() lines joined with
// newlines. Inter-glyph spacing is part of the glyphs themselves;
// characters without a glyph render as a single blank column.
func (f *Font) Render(text string) string {
	rows := make([]strings.Builder, f.height)
	for _, c := range text {
		glyph, ok := f.glyphs[c]
		for row := range rows {
			if ok {
				rows[row].WriteString(glyph[row])
			} else {
				rows[row].WriteByte(' ')
			}
		}
	}

	lines := make([]string, f.height)
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return strings.Join(lines, "\n")
}

// clockChars is the minimum character set a font must cover to render a
// clock face.
const clockChars = "0123456789:"

// New builds a font from explicit glyph lines, validating that the glyph
// set covers the clock characters and that every glyph has the same height.
func New(name string, glyphs map[rune][]string) (*Font, error) {
	if name == "" {
		return nil, fmt.Errorf("font name must not be empty")
	}

	height := 0
	for c, lines := range glyphs {
		if len(lines) == 0 {
			return nil, fmt.Errorf("font %q: glyph %q has no lines", name, c)
		}
		if height == 0 {
			height = len(lines)
		} else if len(lines) != height {
			return nil, fmt.Errorf("font %q: glyph %q is %d lines tall, want %d", name, c, len(lines), height)
		}
	}
	for _, c := range clockChars {
		if _, ok := glyphs[c]; !ok {
			return nil, fmt.Errorf("font %q: missing glyph for %q", name, c)
		}
	}

	return &Font{name: name, height: height, glyphs: glyphs}, nil
}

// UnknownFontError reports a font name that is not present in the
// registry. Known carries the sorted valid names for the error message.
type UnknownFontError struct {
	Name  string
	Known []string
}

// Error implements the error interface for UnknownFontError.
func (e *UnknownFontError) Error() string {
	return fmt.Sprintf("unknown font %q, valid fonts: %s", e.Name, strings.Join(e.Known, ", "))
}

// Registry maps font names to glyph sets. It is built once at startup and
// passed explicitly to whoever renders; there is no package-level registry.
type Registry struct {
	fonts map[string]*Font
}

// NewRegistry returns a registry holding the given fonts.
func NewRegistry(fonts ...*Font) *Registry {
	r := &Registry{fonts: make(map[string]*Font, len(fonts))}
	for _, f := range fonts {
		r.Add(f)
	}
	return r
}

// Add inserts a font, replacing any existing font with the same name.
// Later additions shadowing built-ins is how custom fonts override them.
func (r *Registry) Add(f *Font) {
	r.fonts[f.name] = f
}

// Lookup returns the named font, or an UnknownFontError naming the valid
// choices.
func (r *Registry) Lookup(name string) (*Font, error) {
	f, ok := r.fonts[name]
	if !ok {
		return nil, &UnknownFontError{Name: name, Known: r.Names()}
	}
	return f, nil
}

// Names returns all registered font names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int { return len(r.fonts) }
