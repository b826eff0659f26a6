package listprops

import (
	"github.com/simonhull/listprops/internal/types"
)

// Key is an alias to types.Key.
// Re-exporting from internal/types to maintain public API.
type Key = types.Key

// Descriptor is an alias to types.Descriptor.
type Descriptor = types.Descriptor

// TypeFlags is an alias to types.TypeFlags.
type TypeFlags = types.TypeFlags

// Value and its variants are aliases to the internal/types value union.
type (
	Value     = types.Value
	Null      = types.Null
	Text      = types.Text
	Int       = types.Int
	UInt64    = types.UInt64
	Float     = types.Float
	Bool      = types.Bool
	Array     = types.Array
	Timestamp = types.Timestamp
	TimeKind  = types.TimeKind
)

// Re-export the timestamp kinds and type flags.
const (
	TimeUnspecified = types.TimeUnspecified
	TimeUTC         = types.TimeUTC
	TimeLocal       = types.TimeLocal

	FlagSystem    = types.FlagSystem
	FlagInnate    = types.FlagInnate
	FlagPurgeable = types.FlagPurgeable
	FlagViewable  = types.FlagViewable
)

// NullKey is the key of synthesized rows.
var NullKey = types.NullKey

// DurationKey is the key whose UInt64 values are 100ns tick counts
// (System.Media.Duration).
var DurationKey = types.KeyMediaDuration

// ParseKey is a wrapper around types.ParseKey.
func ParseKey(s string) (Key, error) {
	return types.ParseKey(s)
}
