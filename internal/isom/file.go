package isom

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/simonhull/listprops/internal/binary"
	"github.com/simonhull/listprops/internal/types"
)

// Metadata is the container-level information of an ISO base media file.
type Metadata struct {
	// ftyp
	MajorBrand       string
	MinorVersion     uint32
	CompatibleBrands []string

	// moov/mvhd; nil when the field is zero or the header is missing
	CreationTime     *time.Time
	ModificationTime *time.Time
	Timescale        uint32
	Duration         uint64 // in Timescale units

	// moov/trak/.../stsd
	Codec      string
	SampleRate int
	Channels   int

	// moov/udta/meta/ilst
	Tags Tags

	// Non-fatal issues met past the ftyp box
	Warnings []types.Warning
}

// File is an opened ISO base media file. Close releases the file handle.
type File struct {
	Metadata
	Path string

	f *os.File
}

// TryOpen opens path and reads its container metadata.
//
// It returns (nil, nil) when the file is not an ISO base media file, i.e.
// it does not start with an ftyp box. The caller must Close a non-nil File.
func TryOpen(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.OpenError{Path: path, Op: "open", Err: err}
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &types.OpenError{Path: path, Op: "stat", Err: err}
	}

	md, err := Read(f, stat.Size(), path)
	if err != nil || md == nil {
		f.Close()
		return nil, err
	}

	return &File{Metadata: *md, Path: path, f: f}, nil
}

// Close releases the file handle. It is safe to call more than once.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

// Read parses container metadata from r.
//
// It returns (nil, nil) when r does not start with an ftyp box, and an
// error only when the ftyp box itself is unreadable. Problems in later
// boxes are reported in Metadata.Warnings.
func Read(r io.ReaderAt, size int64, path string) (*Metadata, error) {
	if size < 8 {
		return nil, nil
	}

	sr := binary.NewSafeReader(r, size, path)

	ftyp, err := readBoxHeader(sr, 0)
	if err != nil || ftyp.Type != "ftyp" {
		return nil, nil //nolint:nilerr // Not an ISO base media file
	}

	md := &Metadata{}
	if err := parseFtyp(sr, ftyp, md); err != nil {
		return nil, fmt.Errorf("parse ftyp: %w", err)
	}

	moov, err := findBox(sr, ftyp.End(), size, "moov")
	if err != nil {
		md.warn("moov", err, 0)
		return md, nil
	}

	if mvhd, err := findBox(sr, moov.DataOffset(), moov.End(), "mvhd"); err != nil {
		md.warn("mvhd", err, moov.Offset)
	} else if err := parseMvhd(sr, mvhd, md); err != nil {
		md.warn("mvhd", err, mvhd.Offset)
	}

	if err := parseStsd(sr, moov, md); err != nil {
		md.warn("stsd", err, moov.Offset)
	}

	if err := parseIlst(sr, moov, md); err != nil {
		md.warn("ilst", err, moov.Offset)
	}

	return md, nil
}

func (md *Metadata) warn(stage string, err error, offset int64) {
	md.Warnings = append(md.Warnings, types.Warning{
		Stage:   stage,
		Message: err.Error(),
		Offset:  offset,
	})
}
