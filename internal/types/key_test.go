package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_String(t *testing.T) {
	assert.Equal(t, "{64440490-4C8B-11D1-8B70-080036B11A03} 3", KeyMediaDuration.String())
	assert.Equal(t, "{00000000-0000-0000-0000-000000000000} 0", NullKey.String())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{in: "{64440490-4C8B-11D1-8B70-080036B11A03} 3", want: KeyMediaDuration},
		{in: "b725f130-47ef-101a-a5f1-02608c9eebac 12", want: KeySize},
		{in: "  {B725F130-47EF-101A-A5F1-02608C9EEBAC}   14 ", want: KeyDateModified},
		{in: "{64440490-4C8B-11D1-8B70-080036B11A03}", wantErr: true},
		{in: "{not-a-guid} 3", wantErr: true},
		{in: "{64440490-4C8B-11D1-8B70-080036B11A03} -1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey_RoundTrip(t *testing.T) {
	for _, k := range []Key{KeyTitle, KeyMusicComposer, KeyMIMEType, NullKey} {
		got, err := ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestKey_IsNull(t *testing.T) {
	assert.True(t, NullKey.IsNull())
	assert.False(t, KeyTitle.IsNull())
}

func TestTypeFlags_Has(t *testing.T) {
	f := FlagInnate | FlagViewable
	assert.True(t, f.Has(FlagInnate))
	assert.True(t, f.Has(FlagViewable))
	assert.False(t, f.Has(FlagSystem))
	assert.False(t, f.Has(FlagPurgeable))
}
