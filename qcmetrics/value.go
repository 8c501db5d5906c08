package qcmetrics

import (
	"strconv"
	"strings"
)

// Kind is the type of a metric Value.
type Kind uint8

const (
	// Absent means the field was not reported for the sample. It is the
	// zero Kind so that a missing map entry reads as Absent.
	Absent Kind = iota
	// Int is an integer count.
	Int
	// Float is a fractional count or a percentage.
	Float
	// NA is the literal "NA" reported in place of a number.
	NA
)

// NAString is the text of an NA value in both output formats.
const NAString = "NA"

// Value is a single metric value.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
}

// IntValue returns an Int value.
func IntValue(v int64) Value { return Value{Kind: Int, Int: v} }

// FloatValue returns a Float value.
func FloatValue(v float64) Value { return Value{Kind: Float, Float: v} }

// NAValue returns an NA value.
func NAValue() Value { return Value{Kind: NA} }

// IsNumeric reports whether v holds an Int or a Float.
func (v Value) IsNumeric() bool { return v.Kind == Int || v.Kind == Float }

// String returns the text of v as written to the TSV summary. Floats
// always carry a fractional part, e.g. "100.0", so that integral floats
// stay distinguishable from counts.
func (v Value) String() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") {
			s += ".0"
		}
		return s
	case NA:
		return NAString
	}
	return ""
}

// round2 rounds f to two decimal places, rounding the exact binary value
// (so 2.675 becomes 2.67, not 2.68).
func round2(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// Fields maps a field name to its value for one sample.
type Fields map[string]Value

// SampleMetrics is the output of one parser for one input file.
type SampleMetrics struct {
	Sample string
	Fields Fields
}
