package texture

import (
	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/errs"
	"github.com/sctoolkit/scfile/format"
	"github.com/sctoolkit/scfile/pixel"
)

// Texture is one texture record: a pixel format, a filter/layout
// configuration, and (unless externally stored) a decoded pixel matrix.
type Texture struct {
	PixelFormat   format.PixelFormat
	MagFilter     format.FilterMode
	MinFilter     format.FilterMode
	Linear        bool
	Downscaling   bool
	Width, Height int
	Pixels        *pixel.Buffer // nil when externally stored and absent from this file
}

// TagID returns the wire tag id for t's filter/layout configuration,
// per spec.md §4.4's minimal-match write rule.
func (t Texture) TagID() uint8 {
	return tagForFilters(t.MagFilter, t.MinFilter, t.Linear, t.Downscaling)
}

// normalizeFormat returns format corrected to the channel kind's
// canonical default if it disagrees with channels. This auto-correction
// mirrors the original writer's surprising behavior: it is preserved here
// rather than treated as an error because the original source silently
// performs it on every save.
func normalizeFormat(want format.PixelFormat, channels int) format.PixelFormat {
	if pixel.Channels(want) == channels {
		return want
	}

	return pixel.DefaultForChannels(channels)
}

// Write emits t as a texture tag. includePixels is false when the
// document has split texture payloads into an external companion file.
func (t Texture) Write(w *buffer.Buffer, includePixels bool) {
	payload := buffer.New(w.Engine())
	defer payload.Release()

	pf := t.PixelFormat
	px := t.Pixels
	if includePixels && px != nil {
		// The header must name the format the payload below is encoded
		// with. The nominal PixelFormat is kept when its channel count
		// matches the pixel buffer's; otherwise normalizeFormat replaces
		// it with the default for the buffer's channel count, and the
		// payload is encoded in that same format.
		pf = normalizeFormat(t.PixelFormat, pixel.Channels(px.Format))
		if px.Format != pf {
			px = px.Clone()
			px.Format = pf
		}
	}

	payload.WriteU8(uint8(pf))
	payload.WriteU16(uint16(t.Width))  //nolint:gosec
	payload.WriteU16(uint16(t.Height)) //nolint:gosec

	if includePixels && px != nil {
		if t.Linear {
			_ = px.WriteLinear(payload)
		} else {
			_ = px.WriteBlock(payload)
		}
	}

	w.SaveTag(t.TagID(), payload.Bytes())
}

// Read decodes one texture tag's payload, previously framed by length,
// from r. When includePixels is false the pixel matrix is left nil.
func Read(tagID uint8, length int32, r *buffer.Buffer, includePixels bool) (Texture, error) {
	mag, min, linear, downscaling, ok := filtersForTag(tagID)
	if !ok {
		return Texture{}, errs.ErrUnknownPixelFormat
	}

	start := r.Pos()
	pfIdx, err := r.ReadU8()
	if err != nil {
		return Texture{}, err
	}
	pf := format.PixelFormat(pfIdx)
	if !pf.IsValid() {
		return Texture{}, errs.ErrUnknownPixelFormat
	}

	width, err := r.ReadU16()
	if err != nil {
		return Texture{}, err
	}
	height, err := r.ReadU16()
	if err != nil {
		return Texture{}, err
	}

	t := Texture{
		PixelFormat: pf, MagFilter: mag, MinFilter: min, Linear: linear, Downscaling: downscaling,
		Width: int(width), Height: int(height),
	}

	remaining := int(length) - (r.Pos() - start)
	if includePixels && remaining > 0 {
		buf := pixel.New(pf, int(width), int(height))
		if linear {
			err = buf.ReadLinear(r)
		} else {
			err = buf.ReadBlock(r)
		}
		if err != nil {
			return Texture{}, err
		}
		t.Pixels = buf
	} else if remaining > 0 {
		if err := r.Skip(remaining); err != nil {
			return Texture{}, err
		}
	}

	return t, nil
}
