package types

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutOfBoundsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OutOfBoundsError
		contains []string
	}{
		{
			name:     "offset beyond file size",
			err:      &OutOfBoundsError{Path: "clip.mp4", Offset: 1000, Length: 4, Size: 500, What: "ftyp box"},
			contains: []string{"clip.mp4", "offset 1000 out of bounds", "file size: 500", "ftyp box"},
		},
		{
			name:     "read would exceed file size",
			err:      &OutOfBoundsError{Path: "audio.m4a", Offset: 100, Length: 50, Size: 120, What: "box header"},
			contains: []string{"audio.m4a", "read of 50 bytes", "offset 100", "exceed file size 120", "box header"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, msg, substr)
			}
		})
	}
}

func TestOpenError(t *testing.T) {
	err := &OpenError{Path: "a.txt", Op: "open", Err: fs.ErrPermission}

	assert.Equal(t, "a.txt: open: permission denied", err.Error())
	assert.True(t, errors.Is(err, fs.ErrPermission))

	bare := &OpenError{Path: "a.txt", Err: fs.ErrNotExist}
	assert.Equal(t, "a.txt: file does not exist", bare.Error())
}

func TestPathResolutionError(t *testing.T) {
	err := &PathResolutionError{Pattern: "*.jpg", Reason: "no matching files"}
	assert.Equal(t, "*.jpg: no matching files", err.Error())

	wrapped := &PathResolutionError{Pattern: "missing/*.jpg", Reason: "cannot read directory", Err: fs.ErrNotExist}
	assert.Contains(t, wrapped.Error(), "cannot read directory")
	assert.True(t, errors.Is(wrapped, fs.ErrNotExist))
}

func TestWarning_String(t *testing.T) {
	assert.Equal(t, "mvhd (at offset 256): short read", Warning{Stage: "mvhd", Message: "short read", Offset: 256}.String())
	assert.Equal(t, "xattr: not supported", Warning{Stage: "xattr", Message: "not supported"}.String())
}
