package listprops

// Flags strings of rows that do not come from a described property.
const (
	FlagsUnknown   = "????"
	FlagsSynthetic = "----"
)

// Row is one displayable property of a file.
//
// DisplayName and CanonicalName are never empty, and Flags always has
// four characters.
type Row struct {
	Key           Key
	DisplayName   string
	CanonicalName string
	Value         string
	Flags         string
}

// NewRow builds the row of a store property.
//
// With a descriptor, the display name falls back to the canonical name and
// then to the key text; the canonical name falls back to the display name.
// Without one, both names are the key text and Flags is "????".
func NewRow(key Key, desc Descriptor, found bool, value Value) Row {
	row := Row{
		Key:   key,
		Value: FormatValue(value, key),
	}

	if !found {
		row.DisplayName = key.String()
		row.CanonicalName = row.DisplayName
		row.Flags = FlagsUnknown
		return row
	}

	row.DisplayName = desc.DisplayName
	row.CanonicalName = desc.CanonicalName
	if row.DisplayName == "" {
		row.DisplayName = row.CanonicalName
		if row.DisplayName == "" {
			row.DisplayName = key.String()
		}
	}
	if row.CanonicalName == "" {
		row.CanonicalName = row.DisplayName
	}
	row.Flags = FlagString(desc.TypeFlags)

	return row
}

// NewSyntheticRow builds a row that has no property key, such as the
// container metadata rows.
func NewSyntheticRow(name, value string) Row {
	return Row{
		Key:           NullKey,
		DisplayName:   name,
		CanonicalName: name,
		Value:         value,
		Flags:         FlagsSynthetic,
	}
}

// flagLetters pairs each tested bit with its marker, in output order.
var flagLetters = [4]struct {
	flag   TypeFlags
	letter byte
}{
	{FlagSystem, 'S'},
	{FlagInnate, 'I'},
	{FlagPurgeable, 'P'},
	{FlagViewable, 'V'},
}

// FlagString encodes f as four characters from "SIPV", "-" for unset bits.
func FlagString(f TypeFlags) string {
	var out [4]byte
	for i, fl := range flagLetters {
		out[i] = '-'
		if f.Has(fl.flag) {
			out[i] = fl.letter
		}
	}
	return string(out[:])
}
