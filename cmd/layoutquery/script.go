package main

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	queryLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(queryLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

// Script is a sequence of query statements.
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one query command.
type Statement struct {
	Pos lexer.Position

	Font   *FontStmt   `parser:"  @@"`
	Width  *WidthStmt  `parser:"| @@"`
	Text   *TextStmt   `parser:"| @@"`
	Lines  *LinesStmt  `parser:"| @@"`
	Size   *SizeStmt   `parser:"| @@"`
	Point  *PointStmt  `parser:"| @@"`
	Offset *OffsetStmt `parser:"| @@"`
	Range  *RangeStmt  `parser:"| @@"`
}

// FontStmt selects a family and size: font "Go Regular" 16
type FontStmt struct {
	Family string  `parser:"'font' @String"`
	Size   float64 `parser:"@Number"`
}

// WidthStmt sets the wrap width: width 25, or width inf
type WidthStmt struct {
	Value *WidthValue `parser:"'width' @@"`
}

// WidthValue is a number or the keyword inf.
type WidthValue struct {
	Inf    bool     `parser:"  @'inf'"`
	Number *float64 `parser:"| @Number"`
}

// TextStmt sets the text: text "piet  text!"
type TextStmt struct {
	Value string `parser:"'text' @String"`
}

// LinesStmt prints the line metrics.
type LinesStmt struct {
	Keyword bool `parser:"@'lines'"`
}

// SizeStmt prints the layout size.
type SizeStmt struct {
	Keyword bool `parser:"@'size'"`
}

// PointStmt hit-tests a point: point 10 3
type PointStmt struct {
	X float64 `parser:"'point' @Number"`
	Y float64 `parser:"@Number"`
}

// OffsetStmt maps an offset to a point: offset 5
type OffsetStmt struct {
	Offset int `parser:"'offset' @Number"`
}

// RangeStmt prints selection rectangles: range 0 7
type RangeStmt struct {
	Start int `parser:"'range' @Number"`
	End   int `parser:"@Number"`
}

// parseScript parses a query script. Errors carry the file position.
func parseScript(filename string, r io.Reader) (*Script, error) {
	return scriptParser.Parse(filename, r)
}

// parseScriptString parses a query script held in a string.
func parseScriptString(filename, src string) (*Script, error) {
	return scriptParser.ParseString(filename, src)
}
