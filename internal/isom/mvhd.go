package isom

import (
	"math/bits"
	"time"

	"github.com/simonhull/listprops/internal/binary"
)

// secondsFrom1904To1970 is the distance between the ISO base media epoch
// (1904-01-01 UTC) and the Unix epoch.
const secondsFrom1904To1970 = 2082844800

// ticksPerSecond is the resolution of duration properties (100ns).
const ticksPerSecond = 10_000_000

// isoTime converts a 1904-based second count. Zero means the field is unset.
func isoTime(secs uint64) *time.Time {
	if secs == 0 {
		return nil
	}
	t := time.Unix(int64(secs)-secondsFrom1904To1970, 0).UTC()
	return &t
}

// parseMvhd parses the movie header for creation and modification time,
// timescale and duration.
func parseMvhd(sr *binary.SafeReader, box *Box, md *Metadata) error {
	cr := binary.NewChainReader(binary.NewReader(sr, box.DataOffset()))

	version := binary.ReadChained[uint8](cr, "mvhd version")
	cr.Skip(3) // flags

	var created, modified, duration uint64
	var timescale uint32

	if version == 1 {
		created = binary.ReadChained[uint64](cr, "mvhd creation time")
		modified = binary.ReadChained[uint64](cr, "mvhd modification time")
		timescale = binary.ReadChained[uint32](cr, "mvhd timescale")
		duration = binary.ReadChained[uint64](cr, "mvhd duration")
	} else {
		created = uint64(binary.ReadChained[uint32](cr, "mvhd creation time"))
		modified = uint64(binary.ReadChained[uint32](cr, "mvhd modification time"))
		timescale = binary.ReadChained[uint32](cr, "mvhd timescale")
		duration = uint64(binary.ReadChained[uint32](cr, "mvhd duration"))
	}

	if err := cr.Err(); err != nil {
		return err
	}

	md.CreationTime = isoTime(created)
	md.ModificationTime = isoTime(modified)
	md.Timescale = timescale
	md.Duration = duration

	return nil
}

// DurationTicks returns the movie duration in 100ns ticks. It reports
// false when the header carried no timescale or the value overflows.
func (md *Metadata) DurationTicks() (uint64, bool) {
	if md.Timescale == 0 {
		return 0, false
	}

	hi, lo := bits.Mul64(md.Duration, ticksPerSecond)
	if hi >= uint64(md.Timescale) {
		return 0, false
	}
	ticks, _ := bits.Div64(hi, lo, uint64(md.Timescale))
	return ticks, true
}

// handlerType reads the handler type of a trak from its mdia/hdlr box.
func handlerType(sr *binary.SafeReader, trak *Box) string {
	hdlr, err := findPath(sr, trak, "mdia", "hdlr")
	if err != nil {
		return ""
	}
	cr := binary.NewChainReader(binary.NewReader(sr, hdlr.DataOffset()))
	cr.Skip(4 + 4) // version + flags, pre_defined
	handler := cr.String(4, "hdlr handler type")
	if cr.Err() != nil {
		return ""
	}
	return handler
}

// soundTrack returns the first trak whose handler is "soun".
func soundTrack(sr *binary.SafeReader, moov *Box) *Box {
	offset, end := moov.DataOffset(), moov.End()
	for offset+8 <= end {
		trak, err := findBox(sr, offset, end, "trak")
		if err != nil {
			return nil
		}
		if handlerType(sr, trak) == "soun" {
			return trak
		}
		if offset, err = next(sr, trak, offset); err != nil {
			return nil
		}
	}
	return nil
}

// parseStsd reads channel count and sample rate from the first sample
// entry of the first sound track.
func parseStsd(sr *binary.SafeReader, moov *Box, md *Metadata) error {
	trak := soundTrack(sr, moov)
	if trak == nil {
		return nil
	}
	stsd, err := findPath(sr, trak, "mdia", "minf", "stbl", "stsd")
	if err != nil {
		return nil //nolint:nilerr // Audio details are optional
	}

	cr := binary.NewChainReader(binary.NewReader(sr, stsd.DataOffset()))
	cr.Skip(4) // version + flags
	if entries := binary.ReadChained[uint32](cr, "stsd entry count"); entries == 0 {
		return cr.Err()
	}

	// Sample entry: size, format, 6 reserved, data reference index,
	// then version, revision level and vendor of the audio entry.
	cr.Skip(4)
	md.Codec = cr.String(4, "stsd format")
	cr.Skip(6 + 2 + 8)

	channels := binary.ReadChained[uint16](cr, "channels")
	cr.Skip(2 + 4) // sample size, compression id, packet size
	sampleRate := binary.ReadChained[uint32](cr, "sample rate")

	if err := cr.Err(); err != nil {
		return err
	}

	md.Channels = int(channels)
	md.SampleRate = int(sampleRate >> 16) // 16.16 fixed point
	return nil
}
