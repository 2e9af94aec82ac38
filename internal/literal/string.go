package literal

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ParseDoubleQuotedString unescapes the content between a pair of double
// quotes (quotes already stripped by the caller). It recognizes \\ \" \n
// \r \t and the line-continuation form: a backslash followed by optional
// spaces/tabs then a newline discards the backslash and all leading
// whitespace on the following line up to the first non-whitespace rune.
func ParseDoubleQuotedString(content string) (string, error) {
	var b strings.Builder
	r := []rune(content)
	for i := 0; i < len(r); i++ {
		c := r[i]
		if c != '\\' {
			b.WriteRune(c)
			continue
		}
		if i+1 >= len(r) {
			return "", errors.New("string literal ends with a trailing backslash")
		}
		// Look ahead past spaces/tabs for a line continuation.
		j := i + 1
		for j < len(r) && (r[j] == ' ' || r[j] == '\t') {
			j++
		}
		if j < len(r) && (r[j] == '\n' || r[j] == '\r') {
			j++
			if j < len(r) && r[j-1] == '\r' && r[j] == '\n' {
				j++
			}
			for j < len(r) && (r[j] == ' ' || r[j] == '\t') {
				j++
			}
			i = j - 1
			continue
		}
		switch r[i+1] {
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		case 'n':
			b.WriteRune('\n')
		case 'r':
			b.WriteRune('\r')
		case 't':
			b.WriteRune('\t')
		default:
			return "", errors.New("illegal escape sequence \\" + string(r[i+1]) + " in string literal")
		}
		i++
	}
	return b.String(), nil
}

// ParseBackQuotedString returns the content of a raw, back-quoted string
// unmodified: no escapes, newlines preserved verbatim.
func ParseBackQuotedString(content string) (string, error) {
	return content, nil
}

// ParseChar scans the content between a pair of single quotes: either one
// scalar or a recognized backslash escape (\\ \' \n \r \t).
func ParseChar(content string) (rune, error) {
	r := []rune(content)
	switch len(r) {
	case 1:
		return r[0], nil
	case 2:
		if r[0] != '\\' {
			return 0, errors.New("character literal must be one scalar or one escape")
		}
		switch r[1] {
		case '\\':
			return '\\', nil
		case '\'':
			return '\'', nil
		case 'n':
			return '\n', nil
		case 'r':
			return '\r', nil
		case 't':
			return '\t', nil
		}
		return 0, errors.New("illegal escape sequence \\" + string(r[1]) + " in character literal")
	default:
		return 0, errors.New("character literal must contain exactly one scalar or one escape")
	}
}

// ParseBinary strips ASCII whitespace from content and base64-decodes the
// remainder.
func ParseBinary(content string) ([]byte, error) {
	var b strings.Builder
	b.Grow(len(content))
	for _, c := range content {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(c)
	}
	return base64.StdEncoding.DecodeString(b.String())
}
