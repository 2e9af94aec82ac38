// Package sdl implements the core of the Simple Declarative Language: a
// lexer, parser, and serializer for SDL's tag-tree configuration format.
package sdl

import (
	"io"

	"github.com/ikayzo/sdl-go/internal/lexer"
)

// ParseDocument parses every tag in r into a forest of top-level Tags,
// consuming r until exhaustion.
func ParseDocument(r io.Reader) ([]*Tag, error) {
	src, err := lexer.NewLineSource(r)
	if err != nil {
		return nil, err
	}
	return newAssembler(src).parseForest()
}

// ParseDocumentReader is an alias for ParseDocument, named to mirror
// ParseDocumentString.
func ParseDocumentReader(r io.Reader) ([]*Tag, error) {
	return ParseDocument(r)
}

// ParseDocumentString parses text as a full SDL document.
func ParseDocumentString(text string) ([]*Tag, error) {
	src := lexer.NewLineSourceFromString(text)
	return newAssembler(src).parseForest()
}

// ParseValues parses text as the value list of an implicit root tag and
// returns its first child's values.
func ParseValues(text string) ([]Value, error) {
	tags, err := ParseDocumentString(text)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags[0].Values, nil
}

// ParseAttributes parses text as the attribute list of an implicit "atts"
// tag and returns its attributes as a name->Value mapping.
func ParseAttributes(text string) (map[string]Value, error) {
	tags, err := ParseDocumentString("atts " + text)
	if err != nil {
		return nil, err
	}
	out := map[string]Value{}
	if len(tags) == 0 {
		return out, nil
	}
	for _, name := range tags[0].AttributeNames() {
		v, _, _ := tags[0].Attribute(name)
		out[name] = v
	}
	return out, nil
}

// ParseLiteral parses text as a single literal, dispatching on its
// leading character(s) exactly as the tokenizer does: quote family -> string, apostrophe -> char,
// null/true/on/false/off -> bool or null, '[' -> binary, a '/' after a
// non-'/' leading character -> date, a ':' after a non-':' leading
// character -> time span, leading 0-9/-/. -> number. Anything else, or
// more than one resulting token, is a format error.
func ParseLiteral(text string) (Value, error) {
	src := lexer.NewLineSourceFromString(text)
	tz := lexer.NewTokenizer(src)
	line, err := tz.NextTokenLine()
	if err != nil {
		return Value{}, wrapTokenErr(err)
	}
	if len(line) == 0 {
		return Value{}, &ParseError{Message: "empty literal", Line: 1, Column: 1}
	}
	if len(line) != 1 || !isLiteralKind(line[0].Kind) {
		return Value{}, &ParseError{Message: "text is not a single literal", Line: 1, Column: 1}
	}
	v, err := valueFromToken(line[0])
	if err != nil {
		return Value{}, wrapTokenErr(err)
	}
	return v, nil
}
