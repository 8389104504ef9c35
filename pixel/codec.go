package pixel

import (
	"github.com/sctoolkit/scfile/errs"
	"github.com/sctoolkit/scfile/format"
)

// BytesPerPixel returns the packed size of one pixel in f.
func BytesPerPixel(f format.PixelFormat) int {
	switch f {
	case format.PixelFormatRGBA8888, format.PixelFormatRGBA8888v1,
		format.PixelFormatRGBA8888v5, format.PixelFormatRGBA8888v7, format.PixelFormatRGBA8888v8:
		return 4
	case format.PixelFormatRGBA4444, format.PixelFormatRGBA4444v9,
		format.PixelFormatRGBA5551, format.PixelFormatRGB565, format.PixelFormatLUMINANCE8A8:
		return 2
	case format.PixelFormatLUMINANCE8:
		return 1
	default:
		return 0
	}
}

// Channels returns the logical channel count of f: 4 for every RGBA
// variant regardless of byte packing, 3 for RGB565, 2 for LUMINANCE8A8,
// 1 for LUMINANCE8.
func Channels(f format.PixelFormat) int {
	switch f {
	case format.PixelFormatRGB565:
		return 3
	case format.PixelFormatLUMINANCE8A8:
		return 2
	case format.PixelFormatLUMINANCE8:
		return 1
	default:
		return 4
	}
}

// DefaultForChannels returns the canonical pixel format for a given
// logical channel count, used to auto-correct a mismatched format on
// texture write (see texture.Texture.normalizeFormat).
func DefaultForChannels(channels int) format.PixelFormat {
	switch channels {
	case 1:
		return format.PixelFormatLUMINANCE8
	case 2:
		return format.PixelFormatLUMINANCE8A8
	case 3:
		return format.PixelFormatRGB565
	default:
		return format.PixelFormatRGBA8888
	}
}

// HasAlpha reports whether f carries an alpha channel.
func HasAlpha(f format.PixelFormat) bool {
	switch f {
	case format.PixelFormatRGBA8888, format.PixelFormatRGBA8888v1, format.PixelFormatRGBA8888v5,
		format.PixelFormatRGBA8888v7, format.PixelFormatRGBA8888v8,
		format.PixelFormatRGBA4444, format.PixelFormatRGBA4444v9,
		format.PixelFormatRGBA5551, format.PixelFormatLUMINANCE8A8:
		return true
	default:
		return false
	}
}

// Encode packs p into its wire representation for format f, applying the
// zero-alpha write policy first.
func Encode(f format.PixelFormat, p RGBA) ([]byte, error) {
	if !f.IsValid() {
		return nil, errs.ErrUnknownPixelFormat
	}

	p = zeroIfTransparent(p, HasAlpha(f))

	switch f {
	case format.PixelFormatRGBA8888, format.PixelFormatRGBA8888v1,
		format.PixelFormatRGBA8888v5, format.PixelFormatRGBA8888v7, format.PixelFormatRGBA8888v8:
		return []byte{p.R, p.G, p.B, p.A}, nil

	case format.PixelFormatRGBA4444, format.PixelFormatRGBA4444v9:
		r, g, b, a := scaleDown(p.R, 15), scaleDown(p.G, 15), scaleDown(p.B, 15), scaleDown(p.A, 15)
		v := uint16(r)<<12 | uint16(g)<<8 | uint16(b)<<4 | uint16(a)
		return []byte{byte(v), byte(v >> 8)}, nil

	case format.PixelFormatRGBA5551:
		r, g, b, a := scaleDown(p.R, 31), scaleDown(p.G, 31), scaleDown(p.B, 31), scaleDown(p.A, 1)
		v := uint16(r)<<11 | uint16(g)<<6 | uint16(b)<<1 | uint16(a)
		return []byte{byte(v), byte(v >> 8)}, nil

	case format.PixelFormatRGB565:
		r, g, b := scaleDown(p.R, 31), scaleDown(p.G, 63), scaleDown(p.B, 31)
		v := uint16(r)<<11 | uint16(g)<<5 | uint16(b)
		return []byte{byte(v), byte(v >> 8)}, nil

	case format.PixelFormatLUMINANCE8A8:
		return []byte{p.R, p.A}, nil

	case format.PixelFormatLUMINANCE8:
		return []byte{p.R}, nil

	default:
		return nil, errs.ErrUnknownPixelFormat
	}
}

// Decode unpacks b (exactly BytesPerPixel(f) bytes) into an RGBA pixel.
func Decode(f format.PixelFormat, b []byte) (RGBA, error) {
	if !f.IsValid() {
		return RGBA{}, errs.ErrUnknownPixelFormat
	}

	switch f {
	case format.PixelFormatRGBA8888, format.PixelFormatRGBA8888v1,
		format.PixelFormatRGBA8888v5, format.PixelFormatRGBA8888v7, format.PixelFormatRGBA8888v8:
		return RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil

	case format.PixelFormatRGBA4444, format.PixelFormatRGBA4444v9:
		v := uint16(b[0]) | uint16(b[1])<<8
		r := scaleUp(uint8(v>>12&0xF), 15)  //nolint:gosec
		g := scaleUp(uint8(v>>8&0xF), 15)   //nolint:gosec
		bl := scaleUp(uint8(v>>4&0xF), 15)  //nolint:gosec
		a := scaleUp(uint8(v&0xF), 15)      //nolint:gosec
		return RGBA{R: r, G: g, B: bl, A: a}, nil

	case format.PixelFormatRGBA5551:
		v := uint16(b[0]) | uint16(b[1])<<8
		r := scaleUp(uint8(v>>11&0x1F), 31) //nolint:gosec
		g := scaleUp(uint8(v>>6&0x1F), 31)  //nolint:gosec
		bl := scaleUp(uint8(v>>1&0x1F), 31) //nolint:gosec
		a := scaleUp(uint8(v&0x1), 1)       //nolint:gosec
		return RGBA{R: r, G: g, B: bl, A: a}, nil

	case format.PixelFormatRGB565:
		v := uint16(b[0]) | uint16(b[1])<<8
		r := scaleUp(uint8(v>>11&0x1F), 31) //nolint:gosec
		g := scaleUp(uint8(v>>5&0x3F), 63)  //nolint:gosec
		bl := scaleUp(uint8(v&0x1F), 31)    //nolint:gosec
		return RGBA{R: r, G: g, B: bl, A: 255}, nil

	case format.PixelFormatLUMINANCE8A8:
		return RGBA{R: b[0], G: b[0], B: b[0], A: b[1]}, nil

	case format.PixelFormatLUMINANCE8:
		return RGBA{R: b[0], G: b[0], B: b[0], A: 255}, nil

	default:
		return RGBA{}, errs.ErrUnknownPixelFormat
	}
}
