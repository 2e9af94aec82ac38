package sdl

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format renders v in its canonical textual form. zone is the
// process-local default used when a DateTime has no zone of its own.
func (v Value) Format(zone string) string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		if v.boolV {
			return "true"
		}
		return "false"
	case Str:
		return `"` + escapeQuoted(v.strV, '"') + `"`
	case Char:
		return "'" + escapeQuoted(string(v.charV), '\'') + "'"
	case Int32:
		return strconv.FormatInt(int64(v.i32V), 10)
	case Int64:
		return strconv.FormatInt(v.i64V, 10) + "L"
	case Float32:
		return strconv.FormatFloat(float64(v.f32V), 'f', -1, 32) + "F"
	case Float64:
		s := strconv.FormatFloat(v.f64V, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	case Decimal:
		return v.decV.String() + "BD"
	case Binary:
		return "[" + base64.StdEncoding.EncodeToString(v.binV) + "]"
	case Date:
		return v.dateV.String()
	case DateTime:
		return formatDateTime(v.dtV, zone)
	case TimeSpan:
		return formatTimeSpan(v.spanV)
	}
	return ""
}

// escapeQuoted escapes \\, quoteChar, \t, \r, \n for either string or
// character literals.
func escapeQuoted(s string, quoteChar rune) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case quoteChar:
			b.WriteByte('\\')
			b.WriteRune(quoteChar)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatDateTime(dt DateTimeValue, zone string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %02d:%02d", dt.DateValue.String(), dt.Hour, dt.Minute)
	if dt.HasSeconds || dt.Second != 0 || dt.Millisecond != 0 {
		fmt.Fprintf(&b, ":%02d", dt.Second)
	}
	if dt.Millisecond != 0 {
		fmt.Fprintf(&b, ".%03d", dt.Millisecond)
	}
	z := zone
	if dt.HasZone {
		z = dt.Zone
	}
	b.WriteByte('-')
	b.WriteString(z)
	return b.String()
}

func formatTimeSpan(ts TimeSpanValue) string {
	sign := ""
	if ts.Negative {
		sign = "-"
	}
	var b strings.Builder
	if ts.Days != 0 {
		fmt.Fprintf(&b, "%s%dd:%02d:%02d:%02d", sign, ts.Days, ts.Hours, ts.Minutes, ts.Seconds)
	} else {
		fmt.Fprintf(&b, "%s%02d:%02d:%02d", sign, ts.Hours, ts.Minutes, ts.Seconds)
	}
	if ts.Milliseconds != 0 {
		fmt.Fprintf(&b, ".%03d", ts.Milliseconds)
	}
	return b.String()
}

// String renders t and its subtree in canonical SDL form. Lines inside a
// child block end with CR-LF; the final line (the tag's own line, or its
// closing brace) has no line terminator.
func (t *Tag) String() string {
	var b strings.Builder
	t.write(&b, "")
	return b.String()
}

// WriteTo streams t's canonical form to w.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

func (t *Tag) write(b *strings.Builder, prefix string) {
	b.WriteString(prefix)
	suppressed := t.IsAnonymous()
	if !suppressed {
		b.WriteString(t.QualifiedName())
	}
	for _, v := range t.Values {
		if !suppressed {
			b.WriteByte(' ')
		}
		b.WriteString(v.Format(defaultZone()))
		suppressed = false
	}
	for _, name := range t.AttributeNames() {
		val, ns, _ := t.Attribute(name)
		b.WriteByte(' ')
		if ns != "" {
			b.WriteString(ns)
			b.WriteByte(':')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(val.Format(defaultZone()))
	}
	if len(t.Children) > 0 {
		b.WriteString(" {\r\n")
		for _, c := range t.Children {
			c.write(b, prefix+"    ")
			b.WriteString("\r\n")
		}
		b.WriteString(prefix)
		b.WriteString("}")
	}
}
