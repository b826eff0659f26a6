package isom

import (
	"io"

	"github.com/simonhull/listprops/internal/binary"
)

// containerTypes are the boxes whose payload is a sequence of boxes.
var containerTypes = map[string]bool{
	"moov": true,
	"trak": true,
	"mdia": true,
	"minf": true,
	"stbl": true,
	"udta": true,
	"meta": true,
	"ilst": true,
	"edts": true,
	"dinf": true,
	"moof": true,
	"traf": true,
	"mvex": true,
}

// WalkFunc is called for each box in file order. depth is 0 for top-level
// boxes.
type WalkFunc func(depth int, b *Box) error

// Walk visits every box of r, descending into container boxes. It stops
// at the first malformed header and returns its error.
func Walk(r io.ReaderAt, size int64, path string, fn WalkFunc) error {
	sr := binary.NewSafeReader(r, size, path)
	return walk(sr, 0, size, 0, fn)
}

func walk(sr *binary.SafeReader, offset, end int64, depth int, fn WalkFunc) error {
	for offset+8 <= end {
		b, err := readBoxHeader(sr, offset)
		if err != nil {
			return err
		}
		if err := fn(depth, b); err != nil {
			return err
		}

		if containerTypes[b.Type] {
			start := b.DataOffset()
			if b.Type == "meta" {
				start += 4 // version and flags
			}
			if err := walk(sr, start, min(b.End(), end), depth+1, fn); err != nil {
				return err
			}
		}

		if offset, err = next(sr, b, offset); err != nil {
			return err
		}
	}
	return nil
}
