package isom

import (
	"strconv"
	"strings"

	"github.com/simonhull/listprops/internal/binary"
	"github.com/simonhull/listprops/internal/types"
)

// Tags holds the iTunes-style text items found under moov/udta/meta/ilst.
type Tags struct {
	Title     string
	Artist    string
	Album     string
	Comment   string
	Genres    []string
	Composers []string
	Year      int
}

// IsZero reports whether no tag was found.
func (t Tags) IsZero() bool {
	return t.Title == "" && t.Artist == "" && t.Album == "" && t.Comment == "" &&
		len(t.Genres) == 0 && len(t.Composers) == 0 && t.Year == 0
}

// parseIlst walks moov/udta/meta/ilst and maps known text items onto md.Tags.
func parseIlst(sr *binary.SafeReader, moov *Box, md *Metadata) error {
	meta, err := findPath(sr, moov, "udta", "meta")
	if err != nil {
		return nil //nolint:nilerr // Files without user data are common
	}

	// meta is a full box: 4 bytes of version+flags precede its children.
	ilst, err := findBox(sr, meta.DataOffset()+4, meta.End(), "ilst")
	if err != nil {
		return nil //nolint:nilerr // No iTunes list
	}

	offset := ilst.DataOffset()
	for offset+8 <= ilst.End() {
		item, err := readBoxHeader(sr, offset)
		if err != nil {
			return err
		}

		value, err := itemText(sr, item)
		if err != nil {
			md.Warnings = append(md.Warnings, types.Warning{
				Stage:   "ilst",
				Message: "failed to read item " + strconv.Quote(item.Type) + ": " + err.Error(),
				Offset:  item.Offset,
			})
		} else if value != "" {
			mapItem(item.Type, value, &md.Tags)
		}

		if offset, err = next(sr, item, offset); err != nil {
			return err
		}
	}

	return nil
}

// itemText returns the UTF-8 payload of an item's data box.
func itemText(sr *binary.SafeReader, item *Box) (string, error) {
	data, err := findBox(sr, item.DataOffset(), item.End(), "data")
	if err != nil {
		return "", nil //nolint:nilerr // Item without data box carries no value
	}

	// Skip type indicator (4 bytes) and locale (4 bytes).
	size := int64(data.DataSize()) - 8
	if size <= 0 {
		return "", nil
	}

	buf := make([]byte, size)
	if err := sr.ReadAt(buf, data.DataOffset()+8, "ilst data"); err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.TrimRight(string(buf), "\x00")), nil
}

// mapItem maps an item type onto a tag field.
// The © sign is byte 0xA9 in item types, so "©nam" is "\xA9nam".
func mapItem(itemType, value string, tags *Tags) {
	switch itemType {
	case "\xA9nam":
		tags.Title = value
	case "\xA9ART":
		tags.Artist = value
	case "\xA9alb":
		tags.Album = value
	case "\xA9cmt":
		tags.Comment = value
	case "\xA9gen":
		tags.Genres = append(tags.Genres, value)
	case "\xA9wrt":
		tags.Composers = append(tags.Composers, value)
	case "\xA9day":
		// Dates may be full timestamps ("2019-05-01T00:00:00Z"); keep the year.
		if len(value) >= 4 {
			if year, err := strconv.Atoi(value[:4]); err == nil {
				tags.Year = year
			}
		}
	}
}
