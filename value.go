package sdl

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies which of the thirteen SDL value variants a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Str
	Char
	Int32
	Int64
	Float32
	Float64
	Decimal
	Binary
	Date
	DateTime
	TimeSpan
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Str:
		return "Str"
	case Char:
		return "Char"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	case Date:
		return "Date"
	case DateTime:
		return "DateTime"
	case TimeSpan:
		return "TimeSpan"
	}
	return "Invalid"
}

// DateValue is the carried payload of a Date-kind Value: a proleptic
// Gregorian year/month/day triple. Components are not calendar-validated.
type DateValue struct {
	Year, Month, Day int
}

func (d DateValue) String() string {
	return fmt.Sprintf("%d/%02d/%02d", d.Year, d.Month, d.Day)
}

// DateTimeValue is the carried payload of a DateTime-kind Value.
type DateTimeValue struct {
	DateValue
	Hour, Minute, Second, Millisecond int
	HasSeconds                        bool // distinguishes "no :SS" from ":00"
	Zone                              string
	HasZone                           bool
}

// TimeSpanValue is the carried payload of a TimeSpan-kind Value. The sign
// of the whole span is carried once in Negative; the remaining fields are
// non-negative magnitudes.
type TimeSpanValue struct {
	Negative                                    bool
	Days, Hours, Minutes, Seconds, Milliseconds int
	HasDays                                     bool
}

// Value is the closed tagged union of every value an SDL tag can carry,
// either as one of its ordered values or as an attribute value.
type Value struct {
	kind  Kind
	boolV bool
	strV  string
	charV rune
	i32V  int32
	i64V  int64
	f32V  float32
	f64V  float64
	decV  decimal.Decimal
	binV  []byte
	dateV DateValue
	dtV   DateTimeValue
	spanV TimeSpanValue
}

func (v Value) Kind() Kind { return v.kind }

func NullValue() Value                       { return Value{kind: Null} }
func BoolValue(b bool) Value                 { return Value{kind: Bool, boolV: b} }
func StrValue(s string) Value                { return Value{kind: Str, strV: s} }
func CharValue(r rune) Value                 { return Value{kind: Char, charV: r} }
func Int32Value(n int32) Value               { return Value{kind: Int32, i32V: n} }
func Int64Value(n int64) Value               { return Value{kind: Int64, i64V: n} }
func Float32Value(f float32) Value           { return Value{kind: Float32, f32V: f} }
func Float64Value(f float64) Value           { return Value{kind: Float64, f64V: f} }
func DecimalValue(d decimal.Decimal) Value   { return Value{kind: Decimal, decV: d} }
func BinaryValue(b []byte) Value             { return Value{kind: Binary, binV: append([]byte(nil), b...)} }
func DateValueOf(d DateValue) Value          { return Value{kind: Date, dateV: d} }
func DateTimeValueOf(dt DateTimeValue) Value { return Value{kind: DateTime, dtV: dt} }
func TimeSpanValueOf(ts TimeSpanValue) Value { return Value{kind: TimeSpan, spanV: ts} }

// BoolVal, StrVal, etc. return the payload for the matching Kind; the
// second result is false if v is not that Kind.
func (v Value) BoolVal() (bool, bool)               { return v.boolV, v.kind == Bool }
func (v Value) StrVal() (string, bool)              { return v.strV, v.kind == Str }
func (v Value) CharVal() (rune, bool)               { return v.charV, v.kind == Char }
func (v Value) Int32Val() (int32, bool)             { return v.i32V, v.kind == Int32 }
func (v Value) Int64Val() (int64, bool)             { return v.i64V, v.kind == Int64 }
func (v Value) Float32Val() (float32, bool)         { return v.f32V, v.kind == Float32 }
func (v Value) Float64Val() (float64, bool)         { return v.f64V, v.kind == Float64 }
func (v Value) DecimalVal() (decimal.Decimal, bool) { return v.decV, v.kind == Decimal }
func (v Value) BinaryVal() ([]byte, bool)           { return v.binV, v.kind == Binary }
func (v Value) DateVal() (DateValue, bool)          { return v.dateV, v.kind == Date }
func (v Value) DateTimeVal() (DateTimeValue, bool)  { return v.dtV, v.kind == DateTime }
func (v Value) TimeSpanVal() (TimeSpanValue, bool)  { return v.spanV, v.kind == TimeSpan }

// Equal compares two values by their canonical serialized form.
func (v Value) Equal(other Value) bool {
	z := defaultZone()
	return v.Format(z) == other.Format(z)
}

// defaultZone reports the process-local UTC offset in "GMT+HH:MM" form,
// used to format a DateTime whose Zone is absent.
func defaultZone() string {
	_, offset := time.Now().Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h := offset / 3600
	m := (offset % 3600) / 60
	return fmt.Sprintf("GMT%s%02d:%02d", sign, h, m)
}

// coerce implements CoerceOrFail: it lists the host types accepted beyond
// Value itself.
func coerce(x interface{}) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StrValue(t), nil
	case rune:
		// rune is an int32 alias; callers wanting a Char variant use CharValue directly.
		return Int32Value(t), nil
	case int8:
		return Int32Value(int32(t)), nil
	case uint8:
		return Int32Value(int32(t)), nil
	case int16:
		return Int32Value(int32(t)), nil
	case uint16:
		return Int32Value(int32(t)), nil
	case uint32:
		return Int64Value(int64(t)), nil
	case int:
		return Int64Value(int64(t)), nil
	case int64:
		return Int64Value(t), nil
	case float32:
		return Float32Value(t), nil
	case float64:
		return Float64Value(t), nil
	case decimal.Decimal:
		return DecimalValue(t), nil
	case []byte:
		return BinaryValue(t), nil
	case DateValue:
		return DateValueOf(t), nil
	case DateTimeValue:
		return DateTimeValueOf(t), nil
	case TimeSpanValue:
		return TimeSpanValueOf(t), nil
	default:
		return Value{}, &CoercionError{Type: fmt.Sprintf("%T", x)}
	}
}

// CoerceOrFail applies the coercion rule: values already in a
// variant pass through, host narrow integers widen, a host date-only
// temporal becomes a Date, everything else fails.
func CoerceOrFail(x interface{}) (Value, error) {
	return coerce(x)
}
