package parser

import (
	"regexp"

	"github.com/dshills/leaderkey/internal/keymap"
)

// fencePattern matches a fence line: three or more backticks at the start
// of a line, optionally followed by a language tag. The tag is ignored.
var fencePattern = regexp.MustCompile("(?m)^`{3,}.*$")

// ExtractCodeBlock returns the text of the first fenced code block in a
// Markdown document: everything strictly between the end of the first
// fence line and the start of the second. Blocks after the first are
// ignored. Returns false if fewer than two fence lines exist.
func ExtractCodeBlock(doc string) (string, bool) {
	fences := fencePattern.FindAllStringIndex(doc, 2)
	if len(fences) < 2 {
		return "", false
	}
	return doc[fences[0][1]:fences[1][0]], true
}

// ParseMarkdown parses a keymap document hosted in the first fenced code
// block of a Markdown file. See ParseYAML for the extend semantics.
func ParseMarkdown(text string, extend *keymap.Group) (*keymap.Group, error) {
	block, ok := ExtractCodeBlock(text)
	if !ok {
		return nil, &ParseError{Message: "no code block found"}
	}
	return ParseYAML(block, extend)
}
