package types

import (
	"time"
)

// Value is a raw property value as yielded by a property store.
//
// The set of implementations is closed: Null, Text, Int, UInt64, Float,
// Bool, Timestamp and Array. A nil Value means the same as Null.
type Value interface {
	isValue()
}

// Null is an absent value.
type Null struct{}

// Text is a string value.
type Text string

// Int is a signed integer value.
type Int int64

// UInt64 is an unsigned 64-bit value. Duration properties carry their
// 100ns tick count as UInt64.
type UInt64 uint64

// Float is a floating point value.
type Float float64

// Bool is a boolean value.
type Bool bool

// Array is a homogeneous sequence of scalar values.
type Array []Value

// TimeKind qualifies how the clock fields of a Timestamp relate to a zone.
type TimeKind int

const (
	// TimeUnspecified means the clock value has no zone information.
	TimeUnspecified TimeKind = iota
	// TimeUTC means the clock value is in UTC.
	TimeUTC
	// TimeLocal means the clock value is in the machine's local zone.
	TimeLocal
)

// String returns the kind name.
func (k TimeKind) String() string {
	switch k {
	case TimeUTC:
		return "UTC"
	case TimeLocal:
		return "Local"
	default:
		return "Unspecified"
	}
}

// Timestamp is a point in time plus a zone qualifier.
type Timestamp struct {
	Time time.Time
	Kind TimeKind
}

// UTCTime wraps t as a UTC timestamp.
func UTCTime(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC(), Kind: TimeUTC}
}

// LocalTime wraps t as a local-zone timestamp.
func LocalTime(t time.Time) Timestamp {
	return Timestamp{Time: t.Local(), Kind: TimeLocal}
}

func (Null) isValue()      {}
func (Text) isValue()      {}
func (Int) isValue()       {}
func (UInt64) isValue()    {}
func (Float) isValue()     {}
func (Bool) isValue()      {}
func (Array) isValue()     {}
func (Timestamp) isValue() {}

// TextArray builds an Array of Text values.
func TextArray(items ...string) Array {
	arr := make(Array, len(items))
	for i, s := range items {
		arr[i] = Text(s)
	}
	return arr
}
