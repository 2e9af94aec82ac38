package lexer

import (
	"strings"
	"unicode"

	"github.com/ikayzo/sdl-go/internal/literal"
	"github.com/ikayzo/sdl-go/internal/token"
)

// Tokenizer performs a single pass per logical line over a LineSource,
// producing token-lines. It is not safe for concurrent use.
type Tokenizer struct {
	src *LineSource
}

// NewTokenizer wraps src.
func NewTokenizer(src *LineSource) *Tokenizer {
	return &Tokenizer{src: src}
}

// CurrentLine is the 1-based line number of the most recently consumed
// physical line.
func (tz *Tokenizer) CurrentLine() int { return tz.src.CurrentLine() }

// NextTokenLine scans and returns the next non-empty token-line, or
// nil, nil at end of source. Blank and comment-only lines never produce
// an empty result to the caller: the loop tail-recurses past them.
func (tz *Tokenizer) NextTokenLine() ([]token.Token, error) {
	for {
		line, lineNo, ok := tz.src.NextCooked()
		if !ok {
			return nil, nil
		}
		toks, err := tz.scanLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if len(toks) > 0 {
			return toks, nil
		}
	}
}

func (tz *Tokenizer) scanLine(line string, lineNo int) ([]token.Token, error) {
	c := newCursor(tz, line, lineNo)
	var toks []token.Token
	for {
		c.skipSpaces()
		if c.eof() {
			return toks, nil
		}
		ch := c.peek()
		switch {
		case ch == '"':
			tok, err := scanDoubleQuoted(c)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case ch == '`':
			tok, err := scanBackQuoted(c)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case ch == '\'':
			tok, err := scanChar(c)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case ch == '[':
			tok, err := scanBinary(c)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case ch == '{':
			pos := c.pos_()
			c.advance()
			toks = append(toks, token.Token{Kind: token.StartBlock, Pos: pos})
		case ch == '}':
			pos := c.pos_()
			c.advance()
			toks = append(toks, token.Token{Kind: token.EndBlock, Pos: pos})
		case ch == '=':
			pos := c.pos_()
			c.advance()
			toks = append(toks, token.Token{Kind: token.Equals, Pos: pos})
		case ch == ':':
			pos := c.pos_()
			c.advance()
			toks = append(toks, token.Token{Kind: token.Colon, Pos: pos})
		case ch == '#':
			return toks, nil
		case ch == '/' && c.peekAt(1) == '/':
			return toks, nil
		case ch == '/' && c.peekAt(1) == '*':
			if err := scanBlockComment(c); err != nil {
				return nil, err
			}
		case ch == '\\' && c.restIsBlank():
			nl, nlNo, ok := tz.src.NextCooked()
			if !ok {
				return toks, nil
			}
			c.r = []rune(nl)
			c.pos = 0
			c.lineNo = nlNo
		case ch >= '0' && ch <= '9' || ch == '-' || ch == '.':
			if ch == '-' && c.peekAt(1) == '-' {
				return toks, nil
			}
			tok, err := scanNumberDateOrSpan(c)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case unicode.IsLetter(ch) || ch == '_':
			tok := scanIdentifierOrKeyword(c)
			toks = append(toks, tok)
		default:
			return nil, token.Errorf(c.pos_(), "illegal character %q", ch)
		}
	}
}

func scanIdentifierOrKeyword(c *cursor) token.Token {
	pos := c.pos_()
	start := c.pos
	c.advance()
	for !c.eof() {
		r := c.peek()
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			c.advance()
			continue
		}
		break
	}
	text := string(c.r[start:c.pos])
	switch text {
	case "null":
		return token.Token{Kind: token.Null, Pos: pos, Text: text}
	case "true", "on":
		return token.Token{Kind: token.Bool, Pos: pos, Text: text, Value: true}
	case "false", "off":
		return token.Token{Kind: token.Bool, Pos: pos, Text: text, Value: false}
	default:
		return token.Token{Kind: token.Identifier, Pos: pos, Text: text}
	}
}

func scanNumberDateOrSpan(c *cursor) (token.Token, error) {
	pos := c.pos_()
	start := c.pos
	for !c.eof() {
		r := c.peek()
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r == '.', r == '-', r == '+', r == ':':
			c.advance()
		case r == '/':
			if c.peekAt(1) == '*' {
				goto done
			}
			c.advance()
		default:
			goto done
		}
	}
done:
	text := string(c.r[start:c.pos])
	switch {
	case strings.ContainsRune(text, '/'):
		d, err := literal.ParseDate(text)
		if err != nil {
			return token.Token{}, token.Errorf(pos, "%s", err)
		}
		return token.Token{Kind: token.Date, Pos: pos, Text: text, Value: d}, nil
	case strings.ContainsRune(text, ':'):
		ts, err := literal.ParseTimeOrSpan(text)
		if err != nil {
			return token.Token{}, token.Errorf(pos, "%s", err)
		}
		return token.Token{Kind: token.TimeOrSpan, Pos: pos, Text: text, Value: ts}, nil
	default:
		n, err := literal.ParseNumber(text)
		if err != nil {
			return token.Token{}, token.Errorf(pos, "%s", err)
		}
		return token.Token{Kind: token.Number, Pos: pos, Text: text, Value: n}, nil
	}
}

func scanDoubleQuoted(c *cursor) (token.Token, error) {
	pos := c.pos_()
	c.advance() // opening quote
	var raw []rune
	for {
		if c.eof() {
			if !c.pullRawLine() {
				return token.Token{}, token.Errorf(pos, "unterminated string literal")
			}
			raw = append(raw, '\n')
			continue
		}
		ch := c.peek()
		if ch == '"' {
			c.advance()
			s, err := literal.ParseDoubleQuotedString(string(raw))
			if err != nil {
				return token.Token{}, token.Errorf(pos, "%s", err)
			}
			return token.Token{Kind: token.String, Pos: pos, Text: string(raw), Value: s}, nil
		}
		if ch == '\\' {
			raw = append(raw, ch)
			c.advance()
			if !c.eof() {
				raw = append(raw, c.peek())
				c.advance()
			}
			continue
		}
		raw = append(raw, ch)
		c.advance()
	}
}

func scanBackQuoted(c *cursor) (token.Token, error) {
	pos := c.pos_()
	c.advance() // opening backtick
	var raw []rune
	for {
		if c.eof() {
			if !c.pullRawLine() {
				return token.Token{}, token.Errorf(pos, "unterminated raw string literal")
			}
			raw = append(raw, '\n')
			continue
		}
		ch := c.peek()
		if ch == '`' {
			c.advance()
			s, _ := literal.ParseBackQuotedString(string(raw))
			return token.Token{Kind: token.String, Pos: pos, Text: string(raw), Value: s}, nil
		}
		raw = append(raw, ch)
		c.advance()
	}
}

func scanChar(c *cursor) (token.Token, error) {
	pos := c.pos_()
	c.advance() // opening quote
	var raw []rune
	for i := 0; i < 2; i++ {
		if c.eof() {
			return token.Token{}, token.Errorf(pos, "unterminated character literal")
		}
		ch := c.peek()
		raw = append(raw, ch)
		c.advance()
		if ch != '\\' {
			break
		}
	}
	if c.eof() || c.peek() != '\'' {
		return token.Token{}, token.Errorf(pos, "character literal must be closed with '")
	}
	c.advance()
	r, err := literal.ParseChar(string(raw))
	if err != nil {
		return token.Token{}, token.Errorf(pos, "%s", err)
	}
	return token.Token{Kind: token.Char, Pos: pos, Text: string(raw), Value: r}, nil
}

func scanBinary(c *cursor) (token.Token, error) {
	pos := c.pos_()
	c.advance() // opening bracket
	var raw []rune
	for {
		if c.eof() {
			if !c.pullRawLine() {
				return token.Token{}, token.Errorf(pos, "unterminated binary literal")
			}
			raw = append(raw, '\n')
			continue
		}
		ch := c.peek()
		if ch == ']' {
			c.advance()
			b, err := literal.ParseBinary(string(raw))
			if err != nil {
				return token.Token{}, token.Errorf(pos, "%s", err)
			}
			return token.Token{Kind: token.Binary, Pos: pos, Text: string(raw), Value: b}, nil
		}
		raw = append(raw, ch)
		c.advance()
	}
}

func scanBlockComment(c *cursor) error {
	pos := c.pos_()
	c.advance()
	c.advance() // "/*"
	for {
		if c.eof() {
			if !c.pullRawLine() {
				return token.Errorf(pos, "unterminated block comment")
			}
			continue
		}
		if c.peek() == '*' && c.peekAt(1) == '/' {
			c.advance()
			c.advance()
			return nil
		}
		c.advance()
	}
}
