package font

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/tickdown/internal/ctxlog"
	"github.com/vk/tickdown/internal/fsutil"
)

// manifest is the top-level structure of a font manifest file.
type manifest struct {
	Fonts []*fontBlock `hcl:"font,block"`
}

// fontBlock represents a single `font "name" { ... }` block.
type fontBlock struct {
	Glyphs []*glyphBlock `hcl:"glyph,block"`
	Name   string        `hcl:"name,label"`
}

// glyphBlock maps one character to its rows of art.
type glyphBlock struct {
	Char  string         `hcl:"char,label"`
	Lines hcl.Expression `hcl:"lines"`
}

// LoadDir discovers *.hcl font manifests under dir (recursively) and
// returns the fonts they define. Any parse or validation failure aborts
// the whole load; a half-usable font set is worse than a clean error.
func LoadDir(ctx context.Context, dir string) ([]*Font, error) {
	logger := ctxlog.FromContext(ctx)

	paths, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("searching %s for font manifests: %w", dir, err)
	}
	logger.Debug("Discovered font manifests.", "dir", dir, "count", len(paths))

	parser := hclparse.NewParser()
	var fonts []*Font
	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing font manifest %s: %w", path, diags)
		}

		var m manifest
		if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
			return nil, fmt.Errorf("decoding font manifest %s: %w", path, diags)
		}

		for _, block := range m.Fonts {
			f, err := buildFont(block)
			if err != nil {
				return nil, fmt.Errorf("font manifest %s: %w", path, err)
			}
			logger.Debug("Loaded custom font.", "name", f.Name(), "height", f.Height())
			fonts = append(fonts, f)
		}
	}

	return fonts, nil
}

// buildFont evaluates a decoded font block into a validated Font.
func buildFont(block *fontBlock) (*Font, error) {
	glyphs := make(map[rune][]string, len(block.Glyphs))
	for _, g := range block.Glyphs {
		c, size := utf8.DecodeRuneInString(g.Char)
		if c == utf8.RuneError || size != len(g.Char) {
			return nil, fmt.Errorf("font %q: glyph label %q must be a single character", block.Name, g.Char)
		}

		lines, err := stringList(g.Lines)
		if err != nil {
			return nil, fmt.Errorf("font %q glyph %q: %w", block.Name, g.Char, err)
		}
		glyphs[c] = lines
	}

	return New(block.Name, glyphs)
}

// stringList evaluates an HCL expression into a []string, converting
// through cty so numeric or tuple values are coerced like any other
// manifest attribute.
func stringList(expr hcl.Expression) ([]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating lines: %w", diags)
	}

	val, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("lines must be a list of strings: %w", err)
	}
	if val.IsNull() || val.LengthInt() == 0 {
		return nil, fmt.Errorf("lines must not be empty")
	}

	var lines []string
	for _, v := range val.AsValueSlice() {
		if v.IsNull() {
			return nil, fmt.Errorf("lines must not contain null")
		}
		lines = append(lines, v.AsString())
	}
	return lines, nil
}
