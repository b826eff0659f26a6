package propstore

import (
	"github.com/simonhull/listprops/internal/isom"
	"github.com/simonhull/listprops/internal/registry"
	"github.com/simonhull/listprops/internal/types"
)

// mediaSource yields media properties of ISO base media files: duration,
// audio format details and iTunes text tags.
type mediaSource struct{}

func (mediaSource) Name() string { return "media" }

func (mediaSource) Collect(t *registry.Target, emit registry.Emit) error {
	md, err := isom.Read(t.Reader, t.Info.Size(), t.Path)
	if err != nil {
		return err
	}
	if md == nil {
		return nil
	}

	if ticks, ok := md.DurationTicks(); ok {
		emit(types.KeyMediaDuration, types.UInt64(ticks))
	}
	if md.CreationTime != nil {
		emit(types.KeyMediaDateEncoded, types.UTCTime(*md.CreationTime))
	}
	if md.Codec != "" {
		emit(types.KeyAudioFormat, types.Text(md.Codec))
	}
	if md.SampleRate > 0 {
		emit(types.KeyAudioSampleRate, types.Int(md.SampleRate))
	}
	if md.Channels > 0 {
		emit(types.KeyAudioChannelCount, types.Int(md.Channels))
	}

	emitTags(md.Tags, emit)

	if len(md.Warnings) > 0 {
		return Warnings(md.Warnings)
	}
	return nil
}

func emitTags(tags isom.Tags, emit registry.Emit) {
	if tags.Title != "" {
		emit(types.KeyTitle, types.Text(tags.Title))
	}
	if tags.Artist != "" {
		emit(types.KeyMusicArtist, types.TextArray(tags.Artist))
	}
	if tags.Album != "" {
		emit(types.KeyMusicAlbumTitle, types.Text(tags.Album))
	}
	if len(tags.Genres) > 0 {
		emit(types.KeyMusicGenre, types.TextArray(tags.Genres...))
	}
	if len(tags.Composers) > 0 {
		emit(types.KeyMusicComposer, types.TextArray(tags.Composers...))
	}
	if tags.Comment != "" {
		emit(types.KeyComment, types.Text(tags.Comment))
	}
	if tags.Year > 0 {
		emit(types.KeyMediaYear, types.Int(tags.Year))
	}
}
