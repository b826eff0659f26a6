package types

// TypeFlags is the bitset of property type attributes reported by a
// descriptor. Bit values follow the Windows property system.
type TypeFlags uint32

const (
	// FlagInnate marks values computed from the file itself.
	FlagInnate TypeFlags = 0x00000002
	// FlagViewable marks properties meant to be shown to users.
	FlagViewable TypeFlags = 0x00000100
	// FlagPurgeable marks properties that can be removed from a file.
	FlagPurgeable TypeFlags = 0x00000200
	// FlagSystem marks properties defined by the platform.
	FlagSystem TypeFlags = 0x80000000
)

// Has reports whether all bits of flag are set.
func (f TypeFlags) Has(flag TypeFlags) bool {
	return f&flag == flag
}

// Descriptor is the read-only metadata a resolver supplies for a key.
// Either name may be empty.
type Descriptor struct {
	DisplayName   string
	CanonicalName string
	TypeFlags     TypeFlags
}
