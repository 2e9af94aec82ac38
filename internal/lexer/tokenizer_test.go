package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ikayzo/sdl-go/internal/lexer"
	"github.com/ikayzo/sdl-go/internal/literal"
	"github.com/ikayzo/sdl-go/internal/token"
)

func tokenize(t *testing.T, text string) []token.Token {
	t.Helper()
	src := lexer.NewLineSourceFromString(text)
	tz := lexer.NewTokenizer(src)
	toks, err := tz.NextTokenLine()
	require.NoError(t, err)
	return toks
}

func TestTokenizeSimpleTag(t *testing.T) {
	toks := tokenize(t, `greeting "hello"`)
	require.Len(t, toks, 2)
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, "greeting", toks[0].Text)
	require.Equal(t, token.String, toks[1].Kind)
	require.Equal(t, "hello", toks[1].Value)
}

func TestTokenizeAttributes(t *testing.T) {
	toks := tokenize(t, `size 5 name="joe"`)
	require.Len(t, toks, 5)
	require.Equal(t, token.Number, toks[1].Kind)
	require.Equal(t, token.Identifier, toks[2].Kind)
	require.Equal(t, "name", toks[2].Text)
	require.Equal(t, token.Equals, toks[3].Kind)
}

func TestTokenizeNamespace(t *testing.T) {
	toks := tokenize(t, `my:tag 5`)
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, token.Colon, toks[1].Kind)
	require.Equal(t, token.Identifier, toks[2].Kind)
}

func TestTokenizeStartAndEndBlock(t *testing.T) {
	toks := tokenize(t, `parent {`)
	require.Len(t, toks, 2)
	require.Equal(t, token.StartBlock, toks[1].Kind)

	toks = tokenize(t, `}`)
	require.Len(t, toks, 1)
	require.Equal(t, token.EndBlock, toks[0].Kind)
}

func TestTokenizeLineComment(t *testing.T) {
	toks := tokenize(t, `value 5 // trailing comment`)
	require.Len(t, toks, 2)
}

func TestTokenizeHashCommentLineSkipped(t *testing.T) {
	src := lexer.NewLineSourceFromString("# just a comment\nvalue 5\n")
	tz := lexer.NewTokenizer(src)
	toks, err := tz.NextTokenLine()
	require.NoError(t, err)
	require.Len(t, toks, 2)
}

func TestTokenizeBlockComment(t *testing.T) {
	toks := tokenize(t, `value /* inline */ 5`)
	require.Len(t, toks, 2)
	require.Equal(t, token.Number, toks[1].Kind)
}

func TestTokenizeAmbiguousDoubleDash(t *testing.T) {
	toks := tokenize(t, `value 5 -- should stop here`)
	require.Len(t, toks, 2)
}

func TestTokenizeLineContinuation(t *testing.T) {
	src := lexer.NewLineSourceFromString("value 5 \\\n      6\n")
	tz := lexer.NewTokenizer(src)
	toks, err := tz.NextTokenLine()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, token.Number, toks[2].Kind)
}

func TestTokenizeDateLiteral(t *testing.T) {
	toks := tokenize(t, `date 2005/12/31`)
	require.Len(t, toks, 2)
	require.Equal(t, token.Date, toks[1].Kind)
	d := toks[1].Value.(literal.Date)
	require.Equal(t, 2005, d.Year)
}

func TestTokenizeTimeSpanWithZone(t *testing.T) {
	toks := tokenize(t, `date 2005/12/31 12:30:00.120-JST`)
	require.Len(t, toks, 3)
	require.Equal(t, token.Date, toks[1].Kind)
	require.Equal(t, token.TimeOrSpan, toks[2].Kind)
	ts := toks[2].Value.(literal.TimeSpanWithZone)
	require.True(t, ts.HasTZ)
	require.Equal(t, "JST", ts.TZ)
}

func TestTokenizeNegativeTimeSpan(t *testing.T) {
	toks := tokenize(t, `span -00:30:00`)
	require.Len(t, toks, 2)
	ts := toks[1].Value.(literal.TimeSpanWithZone)
	require.True(t, ts.Negative)
}

func TestTokenizeMultilineString(t *testing.T) {
	src := lexer.NewLineSourceFromString("value \"line one\nline two\"\n")
	tz := lexer.NewTokenizer(src)
	toks, err := tz.NextTokenLine()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.Equal(t, "line one\nline two", toks[1].Value)
}

func TestTokenizeUnterminatedStringErrors(t *testing.T) {
	src := lexer.NewLineSourceFromString(`value "unterminated`)
	tz := lexer.NewTokenizer(src)
	_, err := tz.NextTokenLine()
	require.Error(t, err)
}

func TestTokenizeAnonymousContentValue(t *testing.T) {
	toks := tokenize(t, `"foo"`)
	require.Len(t, toks, 1)
	require.Equal(t, token.String, toks[0].Kind)
}
