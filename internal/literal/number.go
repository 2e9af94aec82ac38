// Package literal holds pure functions that turn the textual form of an
// SDL literal into a typed value. None of these functions know about line
// or column numbers; callers attach position information to any error.
package literal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberKind identifies which of the five numeric variants ParseNumber
// resolved a literal to.
type NumberKind int

const (
	Int32Kind NumberKind = iota
	Int64Kind
	Float32Kind
	Float64Kind
	DecimalKind
)

// Number carries the result of ParseNumber. Exactly one of the typed
// fields is meaningful, selected by Kind.
type Number struct {
	Kind    NumberKind
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	Decimal decimal.Decimal
}

// ParseNumber scans a number literal's digit run and suffix, per spec
// §4.2: a leading run of "-0..9." followed by a case-insensitive suffix
// of "", "L", "F", "D", or "BD".
func ParseNumber(text string) (Number, error) {
	if text == "" {
		return Number{}, errors.New("empty number literal")
	}
	i := 0
	dots := 0
	if i < len(text) && (text[i] == '-' || text[i] == '+') {
		i++
	}
	for i < len(text) {
		c := text[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' {
			dots++
			i++
			continue
		}
		break
	}
	digits := text[:i]
	suffix := text[i:]
	if dots > 1 {
		return Number{}, errors.New("number literal has more than one decimal point")
	}
	if strings.HasSuffix(digits, ".") {
		return Number{}, errors.New("number literal has a trailing decimal point")
	}
	if digits == "" || digits == "-" || digits == "+" {
		return Number{}, errors.New("number literal has no digits")
	}

	hasDot := dots == 1
	switch strings.ToUpper(suffix) {
	case "":
		if hasDot {
			f, err := strconv.ParseFloat(digits, 64)
			if err != nil {
				return Number{}, err
			}
			return Number{Kind: Float64Kind, Float64: f}, nil
		}
		n, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			return Number{}, err
		}
		return Number{Kind: Int32Kind, Int32: int32(n)}, nil
	case "L":
		if hasDot {
			return Number{}, errors.New("integer literal suffix L cannot follow a decimal point")
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Number{}, err
		}
		return Number{Kind: Int64Kind, Int64: n}, nil
	case "F":
		f, err := strconv.ParseFloat(digits, 32)
		if err != nil {
			return Number{}, err
		}
		return Number{Kind: Float32Kind, Float32: float32(f)}, nil
	case "D":
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return Number{}, err
		}
		return Number{Kind: Float64Kind, Float64: f}, nil
	case "BD":
		d, err := decimal.NewFromString(digits)
		if err != nil {
			return Number{}, err
		}
		return Number{Kind: DecimalKind, Decimal: d}, nil
	}
	return Number{}, errors.New("unrecognized number suffix " + suffix)
}
