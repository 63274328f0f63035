// Package models defines the data structures produced by an analysis run.
package models

import "time"

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindEmpty is a cell with no content.
	KindEmpty Kind = iota
	// KindBoolean is a boolean cell.
	KindBoolean
	// KindInteger is a whole number.
	KindInteger
	// KindDecimal is a number with a fractional part.
	KindDecimal
	// KindDateTime is a date or timestamp.
	KindDateTime
	// KindText is any other non-empty content.
	KindText
)

// Value is a single cell value as a tagged union. Kind selects which payload
// field is meaningful; Raw always carries the display string the cell had.
type Value struct {
	// Kind selects the variant.
	Kind Kind
	// Bool is the payload for KindBoolean.
	Bool bool
	// Int is the payload for KindInteger.
	Int int64
	// Float is the payload for KindDecimal.
	Float float64
	// Time is the payload for KindDateTime.
	Time time.Time
	// Raw is the display string the cell had in the sheet.
	Raw string
}

// BoolValue returns a boolean cell value.
func BoolValue(b bool, raw string) Value { return Value{Kind: KindBoolean, Bool: b, Raw: raw} }

// IntValue returns a whole-number cell value.
func IntValue(i int64, raw string) Value { return Value{Kind: KindInteger, Int: i, Raw: raw} }

// FloatValue returns a decimal cell value.
func FloatValue(f float64, raw string) Value { return Value{Kind: KindDecimal, Float: f, Raw: raw} }

// TimeValue returns a date or timestamp cell value.
func TimeValue(t time.Time, raw string) Value { return Value{Kind: KindDateTime, Time: t, Raw: raw} }

// TextValue returns a plain text cell value.
func TextValue(raw string) Value { return Value{Kind: KindText, Raw: raw} }

// String returns the cell's display string.
func (v Value) String() string { return v.Raw }
