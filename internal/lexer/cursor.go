package lexer

import "github.com/ikayzo/sdl-go/internal/token"

// cursor walks one physical line at a time, pulling further raw lines
// from the owning Tokenizer's LineSource when a literal spans more than
// one line. Column is 1-based and counts runes already consumed.
type cursor struct {
	tz     *Tokenizer
	r      []rune
	pos    int
	lineNo int
}

func newCursor(tz *Tokenizer, line string, lineNo int) *cursor {
	return &cursor{tz: tz, r: []rune(line), lineNo: lineNo}
}

func (c *cursor) eof() bool { return c.pos >= len(c.r) }

func (c *cursor) peek() rune {
	if c.eof() {
		return 0
	}
	return c.r[c.pos]
}

func (c *cursor) peekAt(offset int) rune {
	i := c.pos + offset
	if i < 0 || i >= len(c.r) {
		return 0
	}
	return c.r[i]
}

func (c *cursor) advance() { c.pos++ }

func (c *cursor) column() int { return c.pos + 1 }

func (c *cursor) pos_() token.Position { return token.Position{Line: c.lineNo, Column: c.column()} }

// restIsBlank reports whether everything after the current rune (not
// including it) is whitespace.
func (c *cursor) restIsBlank() bool {
	for i := c.pos + 1; i < len(c.r); i++ {
		switch c.r[i] {
		case ' ', '\t':
			continue
		default:
			return false
		}
	}
	return true
}

// pullRawLine advances this cursor onto the next physical raw line from
// the tokenizer's source, for literals that span multiple lines. Returns
// false at end of source.
func (c *cursor) pullRawLine() bool {
	line, lineNo, ok := c.tz.src.NextRaw()
	if !ok {
		return false
	}
	c.r = []rune(line)
	c.pos = 0
	c.lineNo = lineNo
	return true
}

func (c *cursor) skipSpaces() {
	for !c.eof() {
		switch c.peek() {
		case ' ', '\t':
			c.advance()
		default:
			return
		}
	}
}
