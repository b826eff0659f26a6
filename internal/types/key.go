// Package types defines the property keys, raw values, descriptors and
// errors shared by the property store, the container reader and the
// listing pipeline.
package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Key identifies a single property: a format (namespace) id plus a
// property id within that format.
//
// Two keys are equal iff both components match, so Key is usable as a
// map key and with ==.
type Key struct {
	FormatID uuid.UUID
	PropID   uint32
}

// NullKey is the key carried by rows that do not come from a property store.
var NullKey = Key{}

// NewKey builds a key from a textual format id and a property id.
// It panics if fmtid is not a valid UUID; use it for compile-time constants only.
func NewKey(fmtid string, pid uint32) Key {
	return Key{FormatID: uuid.MustParse(fmtid), PropID: pid}
}

// ParseKey parses the canonical textual form produced by Key.String.
// The braces around the format id are optional.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	id, pid, ok := strings.Cut(s, " ")
	if !ok {
		return Key{}, fmt.Errorf("parse key %q: missing property id", s)
	}

	fmtid, err := uuid.Parse(strings.Trim(id, "{}"))
	if err != nil {
		return Key{}, fmt.Errorf("parse key %q: %w", s, err)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(pid), 10, 32)
	if err != nil {
		return Key{}, fmt.Errorf("parse key %q: %w", s, err)
	}

	return Key{FormatID: fmtid, PropID: uint32(n)}, nil
}

// IsNull reports whether k is NullKey.
func (k Key) IsNull() bool {
	return k == NullKey
}

// String returns the canonical form, e.g. "{64440490-4C8B-11D1-8B70-080036B11A03} 3".
func (k Key) String() string {
	return "{" + strings.ToUpper(k.FormatID.String()) + "} " + strconv.FormatUint(uint64(k.PropID), 10)
}
