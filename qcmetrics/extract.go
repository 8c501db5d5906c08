package qcmetrics

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// An Extractor pulls one optional field out of free text: the first
// submatch of Pattern is converted by Convert. A pattern that does not
// match leaves the field absent.
type Extractor struct {
	Field   string
	Pattern *regexp.Regexp
	Convert func(string) (Value, error)
}

// Extract applies e to text. ok is false if the pattern did not match.
func (e Extractor) Extract(text []byte) (v Value, ok bool, err error) {
	m := e.Pattern.FindSubmatch(text)
	if m == nil || len(m) < 2 {
		return Value{}, false, nil
	}
	if v, err = e.Convert(string(m[1])); err != nil {
		return Value{}, false, errors.Wrapf(err, "field %s", e.Field)
	}
	return v, true, nil
}

// ConvertInt parses a decimal integer.
func ConvertInt(s string) (Value, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, errors.Wrapf(err, "parse int %q", s)
	}
	return IntValue(n), nil
}

// ConvertFloat parses a decimal number.
func ConvertFloat(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, errors.Wrapf(err, "parse float %q", s)
	}
	return FloatValue(f), nil
}

// IntExtractor returns an Extractor for an integer captured by pattern.
func IntExtractor(field, pattern string) Extractor {
	return Extractor{Field: field, Pattern: regexp.MustCompile(pattern), Convert: ConvertInt}
}

// FloatExtractor returns an Extractor for a number captured by pattern.
func FloatExtractor(field, pattern string) Extractor {
	return Extractor{Field: field, Pattern: regexp.MustCompile(pattern), Convert: ConvertFloat}
}
