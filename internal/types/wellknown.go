package types

// Format ids of the property sets used by the built-in property sources.
const (
	fmtidStorage     = "b725f130-47ef-101a-a5f1-02608c9eebac"
	fmtidSummary     = "f29f85e0-4ff9-1068-ab91-08002b27b3d9"
	fmtidDocument    = "d5cdd502-2e9c-101b-9397-08002b2cf9ae"
	fmtidMusic       = "56a3372e-ce9c-11d2-9f0e-006097c686f6"
	fmtidAudio       = "64440490-4c8b-11d1-8b70-080036b11a03"
	fmtidMediaExt    = "64440492-4c8b-11d1-8b70-080036b11a03"
	fmtidFileName    = "41cf5ae0-f75a-4806-bd87-59c7d9248eb9"
	fmtidFileExt     = "e4f10a3c-49e6-405d-8288-a23bd4eeaa6c"
	fmtidItemPath    = "e3e0584c-b788-4a5a-bb20-7f5a44c9acdd"
	fmtidMIME        = "0b63e350-9ccc-11d0-bcdb-00805fccce04"
	fmtidLink        = "5cbf2787-48cf-4208-b90e-ee5e5d420294"
	fmtidDateEncoded = "2e4b640d-5019-46d8-8881-55414cc5caa0"
)

// Well-known property keys.
var (
	KeyItemNameDisplay       = NewKey(fmtidStorage, 10)
	KeySize                  = NewKey(fmtidStorage, 12)
	KeyFileAttributes        = NewKey(fmtidStorage, 13)
	KeyDateModified          = NewKey(fmtidStorage, 14)
	KeyTitle                 = NewKey(fmtidSummary, 2)
	KeyAuthor                = NewKey(fmtidSummary, 4)
	KeyKeywords              = NewKey(fmtidSummary, 5)
	KeyComment               = NewKey(fmtidSummary, 6)
	KeyLanguage              = NewKey(fmtidDocument, 28)
	KeyMusicArtist           = NewKey(fmtidMusic, 2)
	KeyMusicAlbumTitle       = NewKey(fmtidMusic, 4)
	KeyMediaYear             = NewKey(fmtidMusic, 5)
	KeyMusicGenre            = NewKey(fmtidMusic, 11)
	KeyMediaDuration         = NewKey(fmtidAudio, 3)
	KeyAudioSampleRate       = NewKey(fmtidAudio, 5)
	KeyAudioChannelCount     = NewKey(fmtidAudio, 7)
	KeyAudioFormat           = NewKey(fmtidAudio, 2)
	KeyMusicComposer         = NewKey(fmtidMediaExt, 19)
	KeyFileName              = NewKey(fmtidFileName, 100)
	KeyFileExtension         = NewKey(fmtidFileExt, 100)
	KeyItemFolderPathDisplay = NewKey(fmtidItemPath, 6)
	KeyItemPathDisplay       = NewKey(fmtidItemPath, 7)
	KeyMIMEType              = NewKey(fmtidMIME, 5)
	KeyLinkTargetURL         = NewKey(fmtidLink, 2)
	KeyMediaDateEncoded      = NewKey(fmtidDateEncoded, 100)
)
