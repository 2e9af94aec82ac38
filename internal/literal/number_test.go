package literal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ikayzo/sdl-go/internal/literal"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		text string
		kind literal.NumberKind
	}{
		{"5", literal.Int32Kind},
		{"-5", literal.Int32Kind},
		{"5L", literal.Int64Kind},
		{"5.0", literal.Float64Kind},
		{"5.0F", literal.Float32Kind},
		{"5.0D", literal.Float64Kind},
		{"5.0BD", literal.DecimalKind},
		{"5bd", literal.DecimalKind},
	}
	for _, c := range cases {
		n, err := literal.ParseNumber(c.text)
		require.NoError(t, err, c.text)
		require.Equal(t, c.kind, n.Kind, c.text)
	}
}

func TestParseNumberValues(t *testing.T) {
	n, err := literal.ParseNumber("123")
	require.NoError(t, err)
	require.Equal(t, int32(123), n.Int32)

	n, err = literal.ParseNumber("123L")
	require.NoError(t, err)
	require.Equal(t, int64(123), n.Int64)

	n, err = literal.ParseNumber("1.5F")
	require.NoError(t, err)
	require.InDelta(t, float32(1.5), n.Float32, 0.0001)

	n, err = literal.ParseNumber("1.5BD")
	require.NoError(t, err)
	require.True(t, decimal.NewFromFloat(1.5).Equal(n.Decimal))
}

func TestParseNumberErrors(t *testing.T) {
	for _, text := range []string{"", "-", ".", "1.2.3", "1.", "5X"} {
		_, err := literal.ParseNumber(text)
		require.Error(t, err, text)
	}
}
