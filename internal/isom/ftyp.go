package isom

import (
	"fmt"

	"github.com/simonhull/listprops/internal/binary"
	"github.com/simonhull/listprops/internal/types"
)

// parseFtyp reads the file type box: major brand, minor version and the
// list of compatible brands.
func parseFtyp(sr *binary.SafeReader, box *Box, md *Metadata) error {
	if box.DataSize() < 8 {
		return &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: box.Offset,
			Reason: fmt.Sprintf("ftyp payload of %d bytes is too small", box.DataSize()),
		}
	}

	cr := binary.NewChainReader(binary.NewReader(sr, box.DataOffset()))
	md.MajorBrand = cr.String(4, "ftyp major brand")
	md.MinorVersion = binary.ReadChained[uint32](cr, "ftyp minor version")

	for n := (box.DataSize() - 8) / 4; n > 0 && cr.Err() == nil; n-- {
		if brand := cr.String(4, "ftyp compatible brand"); brand != "" {
			md.CompatibleBrands = append(md.CompatibleBrands, brand)
		}
	}

	return cr.Err()
}
