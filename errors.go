package sdl

import (
	"fmt"

	"github.com/ikayzo/sdl-go/internal/token"
)

// ParseError is a syntactic or lexical failure during document or literal
// parsing. Line and Column are 1-based.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sdl: line %d, col %d: %s", e.Line, e.Column, e.Message)
}

func parseErrorFrom(err *token.PositionedError) *ParseError {
	return &ParseError{Message: err.Msg, Line: err.Pos.Line, Column: err.Pos.Column}
}

// CoercionError is an attempt to store a host value with no SDL variant.
type CoercionError struct {
	Type string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("sdl: cannot store %s as an SDL value", e.Type)
}
