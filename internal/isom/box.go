// Package isom reads container-level metadata from ISO base media files
// (MP4, M4A, M4B, MOV, 3GP, HEIF and relatives).
package isom

import (
	"fmt"

	"github.com/simonhull/listprops/internal/binary"
	"github.com/simonhull/listprops/internal/types"
)

// Box is an ISO base media box (called an atom in QuickTime).
type Box struct {
	Size     uint64 // Total size including header
	Type     string // 4-character type code
	Offset   int64  // Position in file
	Extended bool   // Whether this uses 64-bit extended size
}

func (b *Box) headerSize() uint64 {
	if b.Extended {
		return 16
	}
	return 8
}

// DataSize returns the size of the box payload (excluding header).
func (b *Box) DataSize() uint64 {
	if b.Size < b.headerSize() {
		return 0
	}
	return b.Size - b.headerSize()
}

// DataOffset returns the file offset where the payload starts.
func (b *Box) DataOffset() int64 {
	return b.Offset + int64(b.headerSize())
}

// End returns the file offset just past the box.
func (b *Box) End() int64 {
	return b.Offset + int64(b.Size)
}

// readBoxHeader reads a box header at the given offset.
//
// A size field of 0 means the box extends to the end of the file.
func readBoxHeader(sr *binary.SafeReader, offset int64) (*Box, error) {
	size32, err := binary.Read[uint32](sr, offset, "box size")
	if err != nil {
		return nil, err
	}

	typeBytes := make([]byte, 4)
	if err := sr.ReadAt(typeBytes, offset+4, "box type"); err != nil {
		return nil, err
	}

	box := &Box{
		Type:   string(typeBytes),
		Offset: offset,
	}

	switch size32 {
	case 0:
		box.Size = uint64(sr.Size() - offset)
	case 1:
		size64, err := binary.Read[uint64](sr, offset+8, "extended box size")
		if err != nil {
			return nil, err
		}
		box.Size = size64
		box.Extended = true
	default:
		box.Size = uint64(size32)
	}

	if box.Size < box.headerSize() {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("invalid box size %d (minimum is %d)", box.Size, box.headerSize()),
		}
	}
	if remaining := uint64(sr.Size() - offset); box.Size > remaining {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("box size %d exceeds the %d bytes left in the file", box.Size, remaining),
		}
	}

	return box, nil
}

// next returns the offset of the box following b, failing when it would
// not move past offset.
func next(sr *binary.SafeReader, b *Box, offset int64) (int64, error) {
	end := b.End()
	if end <= offset {
		return 0, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("box %q does not advance the scan", b.Type),
		}
	}
	return end, nil
}

// findBox searches for the first box of the given type within [start, end).
func findBox(sr *binary.SafeReader, start, end int64, boxType string) (*Box, error) {
	offset := start

	for offset+8 <= end {
		box, err := readBoxHeader(sr, offset)
		if err != nil {
			return nil, err
		}

		if box.Type == boxType {
			return box, nil
		}

		if offset, err = next(sr, box, offset); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("box '%s' not found", boxType)
}

// findPath descends through nested containers, e.g. findPath(sr, moov, "trak", "mdia").
func findPath(sr *binary.SafeReader, parent *Box, path ...string) (*Box, error) {
	box := parent
	for _, boxType := range path {
		child, err := findBox(sr, box.DataOffset(), box.End(), boxType)
		if err != nil {
			return nil, err
		}
		box = child
	}
	return box, nil
}
