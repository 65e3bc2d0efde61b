// Package highlighter classifies each character of a text by the Go syntax
// node it belongs to, so the renderer can tint characters as they move.
package highlighter

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/jumble/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
)

// goHighlightsQuery captures the node kinds worth tinting. Capture names are
// theme style names.
const goHighlightsQuery = `
(comment) @comment

[
  (interpreted_string_literal)
  (raw_string_literal)
] @string

(rune_literal) @string.special
(escape_sequence) @string.escape

[
  (int_literal)
  (float_literal)
  (imaginary_literal)
] @number

[
  (true)
  (false)
  (nil)
  (iota)
] @constant

(type_identifier) @type
(package_identifier) @type

(function_declaration name: (identifier) @function)
(method_declaration name: (field_identifier) @function)
(call_expression function: (identifier) @function)
(call_expression function: (selector_expression field: (field_identifier) @function))

[
  "break" "case" "chan" "const" "continue" "default" "defer" "else"
  "fallthrough" "for" "func" "go" "goto" "if" "import" "interface" "map"
  "package" "range" "return" "select" "struct" "switch" "type" "var"
] @keyword

[
  "(" ")" "[" "]" "{" "}" "," ";" "." ":"
] @punctuation
`

// Classes holds one style name per code point; "" means untinted.
type Classes []string

// Highlighter parses text with tree-sitter and maps captures to code points.
// A Highlighter is safe for use by one goroutine at a time.
type Highlighter struct {
	parser *sitter.Parser
	lang   *sitter.Language
	query  *sitter.Query
}

// New compiles the Go highlight query.
func New() (*Highlighter, error) {
	lang := gosrc.GetLanguage()
	query, err := sitter.NewQuery([]byte(goHighlightsQuery), lang)
	if err != nil {
		return nil, fmt.Errorf("query parse failed: %w", err)
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	return &Highlighter{parser: parser, lang: lang, query: query}, nil
}

// Close releases the parser and the compiled query.
func (h *Highlighter) Close() {
	h.query.Close()
	h.parser.Close()
}

// Classify returns the style class of every code point of text. Later
// captures win over earlier ones where they nest.
func (h *Highlighter) Classify(ctx context.Context, text string) (Classes, error) {
	source := []byte(text)
	tree, err := h.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	runeAt := byteToRuneIndex(source)
	classes := make(Classes, utf8.RuneCount(source))

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(h.query, tree.RootNode())

	captures := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			name := h.query.CaptureNameForId(capture.Index)
			start, end := int(capture.Node.StartByte()), int(capture.Node.EndByte())
			if start >= end || end > len(source) {
				continue
			}
			for i := runeAt[start]; i < runeAt[end]; i++ {
				classes[i] = name
			}
			captures++
		}
	}

	logger.DebugTagf("highlight", "Classified %d code points with %d captures", len(classes), captures)
	return classes, nil
}

// byteToRuneIndex maps every byte offset, including len(source), to the index
// of the code point starting at or containing it.
func byteToRuneIndex(source []byte) []int {
	index := make([]int, len(source)+1)
	r := 0
	for offset := 0; offset < len(source); {
		_, size := utf8.DecodeRune(source[offset:])
		for i := 0; i < size; i++ {
			index[offset+i] = r
		}
		offset += size
		r++
	}
	index[len(source)] = r
	return index
}
