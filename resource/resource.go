package resource

import (
	"encoding/binary"

	"github.com/sctoolkit/scfile/buffer"
)

// Kind is the tagged-variant discriminant for a Document's resource map.
type Kind uint8

const (
	KindShape Kind = iota
	KindMovieClip
	KindTextField
	KindMovieClipModifier
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "Shape"
	case KindMovieClip:
		return "MovieClip"
	case KindTextField:
		return "TextField"
	case KindMovieClipModifier:
		return "MovieClipModifier"
	default:
		return "Unknown"
	}
}

// Resource is one opaque record: the codec does not interpret Payload,
// it only frames and re-emits it under the same tag id. By convention
// every kind's payload opens with its own little-endian uint16 id, which
// ID() extracts for keying the document's resource map.
type Resource struct {
	Kind    Kind
	TagID   uint8
	Payload []byte
}

// ID returns the resource's 16-bit id, read from the first two bytes of
// Payload. A payload shorter than 2 bytes has no id and ID returns 0.
func (r Resource) ID() uint16 {
	if len(r.Payload) < 2 {
		return 0
	}

	return binary.LittleEndian.Uint16(r.Payload[:2])
}

// Read consumes length bytes from r as a Resource's raw payload.
func Read(kind Kind, tagID uint8, length int32, r *buffer.Buffer) (Resource, error) {
	payload, err := r.ReadBytes(int(length))
	if err != nil {
		return Resource{}, err
	}

	return Resource{Kind: kind, TagID: tagID, Payload: payload}, nil
}

// Write re-emits the resource under its own tag id.
func (r Resource) Write(w *buffer.Buffer) {
	w.SaveTag(r.TagID, r.Payload)
}
