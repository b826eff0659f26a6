package listprops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testKey = newTestKey()

func newTestKey() Key {
	k, _ := ParseKey("{D5CDD505-2E9C-101B-9397-08002B2CF9AE} 7")
	return k
}

func TestNewRowNames(t *testing.T) {
	keyText := testKey.String()

	tests := []struct {
		name          string
		desc          Descriptor
		found         bool
		wantDisplay   string
		wantCanonical string
		wantFlags     string
	}{
		{
			name:          "both names",
			desc:          Descriptor{DisplayName: "Title", CanonicalName: "System.Title", TypeFlags: FlagSystem | FlagViewable},
			found:         true,
			wantDisplay:   "Title",
			wantCanonical: "System.Title",
			wantFlags:     "S--V",
		},
		{
			name:          "no display name",
			desc:          Descriptor{CanonicalName: "System.FileExtension"},
			found:         true,
			wantDisplay:   "System.FileExtension",
			wantCanonical: "System.FileExtension",
			wantFlags:     "----",
		},
		{
			name:          "no canonical name",
			desc:          Descriptor{DisplayName: "Length"},
			found:         true,
			wantDisplay:   "Length",
			wantCanonical: "Length",
			wantFlags:     "----",
		},
		{
			name:          "no names",
			desc:          Descriptor{TypeFlags: FlagInnate},
			found:         true,
			wantDisplay:   keyText,
			wantCanonical: keyText,
			wantFlags:     "-I--",
		},
		{
			name:          "not found",
			desc:          Descriptor{DisplayName: "ignored", TypeFlags: FlagSystem},
			found:         false,
			wantDisplay:   keyText,
			wantCanonical: keyText,
			wantFlags:     FlagsUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewRow(testKey, tt.desc, tt.found, Text("v"))
			assert.Equal(t, tt.wantDisplay, row.DisplayName)
			assert.Equal(t, tt.wantCanonical, row.CanonicalName)
			assert.Equal(t, tt.wantFlags, row.Flags)
			assert.Equal(t, "v", row.Value)
			assert.Equal(t, testKey, row.Key)
		})
	}
}

func TestNewRowFormatsValue(t *testing.T) {
	row := NewRow(DurationKey, Descriptor{DisplayName: "Length"}, true, UInt64(36000000000))
	assert.Equal(t, "01:00:00", row.Value)

	row = NewRow(testKey, Descriptor{}, false, nil)
	assert.Equal(t, NullText, row.Value)
}

func TestNewSyntheticRow(t *testing.T) {
	row := NewSyntheticRow(IsomBrandName, "M4A ")
	assert.Equal(t, IsomBrandName, row.DisplayName)
	assert.Equal(t, IsomBrandName, row.CanonicalName)
	assert.Equal(t, FlagsSynthetic, row.Flags)
	assert.True(t, row.Key.IsNull())
}

func TestFlagString(t *testing.T) {
	tests := []struct {
		flags TypeFlags
		want  string
	}{
		{0, "----"},
		{FlagSystem, "S---"},
		{FlagInnate | FlagViewable, "-I-V"},
		{FlagPurgeable, "--P-"},
		{FlagSystem | FlagInnate | FlagPurgeable | FlagViewable, "SIPV"},
		{0xFFFFFFFF, "SIPV"},
		{0x1 | 0x4, "----"},
	}

	for _, tt := range tests {
		got := FlagString(tt.flags)
		assert.Equal(t, tt.want, got, "flags %#x", uint32(tt.flags))
		assert.Len(t, got, 4)
		assert.Empty(t, strings.Trim(got, "SIPV-"))
	}
}
