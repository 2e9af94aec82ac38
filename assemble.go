package sdl

import (
	"github.com/ikayzo/sdl-go/internal/lexer"
	"github.com/ikayzo/sdl-go/internal/literal"
	"github.com/ikayzo/sdl-go/internal/token"
)

// assembler consumes token-lines from a Tokenizer and builds a forest of
// Tags.
type assembler struct {
	tz *lexer.Tokenizer
}

func newAssembler(src *lexer.LineSource) *assembler {
	return &assembler{tz: lexer.NewTokenizer(src)}
}

// parseForest parses every top-level token-line until end of source.
func (a *assembler) parseForest() ([]*Tag, error) {
	return a.parseBlock(nil)
}

// parseBlock collects tags until end of source (openPos == nil, the top
// level) or a balancing EndBlock (openPos pins the position of the
// StartBlock that opened this block, for the "missing brace" error).
func (a *assembler) parseBlock(openPos *token.Position) ([]*Tag, error) {
	var tags []*Tag
	for {
		line, err := a.tz.NextTokenLine()
		if err != nil {
			return nil, wrapTokenErr(err)
		}
		if line == nil {
			if openPos != nil {
				return nil, wrapTokenErr(token.Errorf(*openPos, "missing closing brace for block opened here"))
			}
			return tags, nil
		}
		if line[0].Kind == token.EndBlock {
			if openPos == nil {
				return nil, wrapTokenErr(token.Errorf(line[0].Pos, "No opening block for close block"))
			}
			if len(line) != 1 {
				return nil, wrapTokenErr(token.Errorf(line[len(line)-1].Pos, "unexpected tokens after closing brace"))
			}
			return tags, nil
		}

		last := line[len(line)-1]
		if last.Kind == token.StartBlock {
			tag, err := buildTag(line[:len(line)-1])
			if err != nil {
				return nil, wrapTokenErr(err)
			}
			pos := last.Pos
			children, err := a.parseBlock(&pos)
			if err != nil {
				return nil, err
			}
			tag.Children = children
			tags = append(tags, tag)
			continue
		}

		tag, err := buildTag(line)
		if err != nil {
			return nil, wrapTokenErr(err)
		}
		tags = append(tags, tag)
	}
}

func wrapTokenErr(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*token.PositionedError); ok {
		return parseErrorFrom(pe)
	}
	return err
}

func isLiteralKind(k token.Kind) bool {
	switch k {
	case token.String, token.Char, token.Number, token.Bool, token.Null, token.Binary, token.Date, token.TimeOrSpan:
		return true
	}
	return false
}

// buildTag constructs one Tag from the token sequence of a single
// token-line.
func buildTag(tokens []token.Token) (*Tag, error) {
	if len(tokens) == 0 {
		return nil, token.Errorf(token.Position{Line: 0, Column: 0}, "empty token line")
	}

	var namespace, name string
	idx := 0
	if tokens[0].Kind != token.Identifier {
		if !isLiteralKind(tokens[0].Kind) {
			return nil, token.Errorf(tokens[0].Pos, "expecting a tag name or a value but got %s", tokens[0].Kind)
		}
		name = contentName
	} else if len(tokens) > 2 && tokens[1].Kind == token.Colon {
		if tokens[2].Kind != token.Identifier {
			return nil, token.Errorf(tokens[2].Pos, "expecting Identifier but got %s", tokens[2].Kind)
		}
		namespace = tokens[0].Text
		name = tokens[2].Text
		idx = 3
	} else {
		name = tokens[0].Text
		idx = 1
	}

	tag := mustNewTag(namespace, name)

	for idx < len(tokens) {
		t := tokens[idx]
		if t.Kind == token.Identifier {
			break
		}
		if !isLiteralKind(t.Kind) {
			return nil, token.Errorf(t.Pos, "expecting a value but got %s", t.Kind)
		}
		if t.Kind == token.Date && idx+1 < len(tokens) && tokens[idx+1].Kind == token.TimeOrSpan {
			v, err := combineDateTime(t, tokens[idx+1])
			if err != nil {
				return nil, err
			}
			tag.Values = append(tag.Values, v)
			idx += 2
			continue
		}
		v, err := valueFromToken(t)
		if err != nil {
			return nil, err
		}
		tag.Values = append(tag.Values, v)
		idx++
	}

	for idx < len(tokens) {
		if tokens[idx].Kind != token.Identifier {
			return nil, token.Errorf(tokens[idx].Pos, "Expecting Identifier but got %s", tokens[idx].Kind)
		}
		attrNamespace := ""
		attrName := tokens[idx].Text
		namePos := tokens[idx].Pos
		idx++
		if idx < len(tokens) && tokens[idx].Kind == token.Colon {
			idx++
			if idx >= len(tokens) || tokens[idx].Kind != token.Identifier {
				return nil, token.Errorf(namePos, "Expecting Identifier after ':' but got end of line")
			}
			attrNamespace = attrName
			attrName = tokens[idx].Text
			idx++
		}
		if idx >= len(tokens) || tokens[idx].Kind != token.Equals {
			return nil, token.Errorf(namePos, "Expecting '=' but got end of line")
		}
		idx++
		if idx >= len(tokens) {
			return nil, token.Errorf(namePos, "Expecting a value after '=' but got end of line")
		}
		valTok := tokens[idx]
		if !isLiteralKind(valTok.Kind) {
			return nil, token.Errorf(valTok.Pos, "Expecting a value but got %s", valTok.Kind)
		}
		var v Value
		if valTok.Kind == token.Date && idx+1 < len(tokens) && tokens[idx+1].Kind == token.TimeOrSpan {
			dv, err := combineDateTime(valTok, tokens[idx+1])
			if err != nil {
				return nil, err
			}
			v = dv
			idx += 2
		} else {
			vv, err := valueFromToken(valTok)
			if err != nil {
				return nil, err
			}
			v = vv
			idx++
		}
		if err := tag.SetAttribute(attrNamespace, attrName, v); err != nil {
			return nil, token.Errorf(namePos, "%s", err)
		}
	}
	return tag, nil
}

// combineDateTime merges a Date token with the TimeOrSpan token that
// immediately follows it into one DateTime value.
func combineDateTime(dateTok, timeTok token.Token) (Value, error) {
	d := dateTok.Value.(literal.Date)
	ts := timeTok.Value.(literal.TimeSpanWithZone)
	if ts.HasDays {
		return Value{}, token.Errorf(timeTok.Pos, "a date-time's time portion cannot have a day component")
	}
	if ts.Negative {
		return Value{}, token.Errorf(timeTok.Pos, "a date-time's time portion cannot be negative")
	}
	dt := DateTimeValue{
		DateValue:   DateValue{Year: d.Year, Month: d.Month, Day: d.Day},
		Hour:        ts.Hours,
		Minute:      ts.Minutes,
		Second:      ts.Seconds,
		Millisecond: ts.Milliseconds,
		HasSeconds:  ts.HasSeconds,
		Zone:        ts.TZ,
		HasZone:     ts.HasTZ,
	}
	return DateTimeValueOf(dt), nil
}

// valueFromToken converts a single literal token into its Value, for
// every literal kind except a Date immediately followed by a TimeOrSpan
// (handled by combineDateTime instead).
func valueFromToken(t token.Token) (Value, error) {
	switch t.Kind {
	case token.String:
		return StrValue(t.Value.(string)), nil
	case token.Char:
		return CharValue(t.Value.(rune)), nil
	case token.Bool:
		return BoolValue(t.Value.(bool)), nil
	case token.Null:
		return NullValue(), nil
	case token.Binary:
		return BinaryValue(t.Value.([]byte)), nil
	case token.Date:
		d := t.Value.(literal.Date)
		return DateValueOf(DateValue{Year: d.Year, Month: d.Month, Day: d.Day}), nil
	case token.TimeOrSpan:
		ts := t.Value.(literal.TimeSpanWithZone)
		if ts.HasTZ {
			return Value{}, token.Errorf(t.Pos, "TimeSpan cannot have a timezone")
		}
		return TimeSpanValueOf(TimeSpanValue{
			Negative:     ts.Negative,
			Days:         ts.Days,
			Hours:        ts.Hours,
			Minutes:      ts.Minutes,
			Seconds:      ts.Seconds,
			Milliseconds: ts.Milliseconds,
			HasDays:      ts.HasDays,
		}), nil
	case token.Number:
		n := t.Value.(literal.Number)
		switch n.Kind {
		case literal.Int32Kind:
			return Int32Value(n.Int32), nil
		case literal.Int64Kind:
			return Int64Value(n.Int64), nil
		case literal.Float32Kind:
			return Float32Value(n.Float32), nil
		case literal.Float64Kind:
			return Float64Value(n.Float64), nil
		case literal.DecimalKind:
			return DecimalValue(n.Decimal), nil
		}
	}
	return Value{}, token.Errorf(t.Pos, "unexpected token %s where a value was expected", t.Kind)
}
