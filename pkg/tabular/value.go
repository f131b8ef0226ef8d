// Package tabular defines the in-memory table model shared by the loaders,
// the merge engine, and the exporters. A Dataset is an ordered set of named
// columns over ordered rows of tagged cell values; datasets are treated as
// read-only once built.
package tabular

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the type carried by a Value.
type Kind uint8

// Cell value kinds.
const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "missing"
	}
}

// Value is a tagged cell value: string, number, bool, date, or missing.
// The zero Value is missing. Missing is distinct from the empty string.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	t    time.Time
}

// Missing returns the missing marker value.
func Missing() Value {
	return Value{}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Date returns a date value.
func Date(t time.Time) Value {
	return Value{kind: KindDate, t: t}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// AsNumber returns the numeric content, if the value is a number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean content, if the value is a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsDate returns the date content, if the value is a date.
func (v Value) AsDate() (time.Time, bool) {
	return v.t, v.kind == KindDate
}

// String renders the value for display and export. Missing renders as the
// empty string; callers that must distinguish missing from "" check
// IsMissing first.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindDate:
		if v.t.Hour() == 0 && v.t.Minute() == 0 && v.t.Second() == 0 {
			return v.t.Format("2006-01-02")
		}
		return v.t.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.t.Equal(o.t)
	default:
		return true
	}
}

// Parse converts raw text into a typed value: empty text becomes missing,
// numeric text a number, true/false a bool, anything else a string.
func Parse(s string) Value {
	if s == "" {
		return Missing()
	}
	trimmed := strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !hasLeadingZero(trimmed) {
		return Number(f)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return String(s)
}

// hasLeadingZero reports whether text like "007" would lose information if
// coerced to a number. Identifiers with leading zeros stay textual.
func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
