package propstore

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/simonhull/listprops/internal/types"
)

// xattrNamespace seeds the name-based format ids of unmapped attributes.
var xattrNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:listprops:xattr"))

// xattrPropID is the property id of unmapped attributes (PID_FIRST_USABLE).
const xattrPropID = 2

// xdgKeys maps freedesktop.org attribute names onto system properties.
var xdgKeys = map[string]types.Key{
	"user.xdg.comment":    types.KeyComment,
	"user.xdg.tags":       types.KeyKeywords,
	"user.xdg.creator":    types.KeyAuthor,
	"user.xdg.origin.url": types.KeyLinkTargetURL,
	"user.xdg.language":   types.KeyLanguage,
}

// XattrKey returns the property key an extended attribute is listed under.
func XattrKey(name string) types.Key {
	if key, ok := xdgKeys[name]; ok {
		return key
	}
	return types.Key{FormatID: uuid.NewSHA1(xattrNamespace, []byte(name)), PropID: xattrPropID}
}

// xattrProperty converts a raw attribute into a property.
func xattrProperty(name string, raw []byte) (types.Key, types.Value) {
	key := XattrKey(name)

	if !utf8.Valid(raw) {
		return key, types.Text(hex.EncodeToString(raw))
	}
	text := strings.TrimRight(string(raw), "\x00")

	switch key {
	case types.KeyKeywords:
		var tags []string
		for _, tag := range strings.Split(text, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		return key, types.TextArray(tags...)
	case types.KeyAuthor:
		return key, types.TextArray(text)
	default:
		return key, types.Text(text)
	}
}
