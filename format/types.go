// Package format defines the small closed enumerations shared by every
// layer of the .sc codec: the whole-file compression method, the texture
// pixel-format index, and the GL-style filter modes. Keeping them in one
// leaf package avoids import cycles between compress, pixel, texture and
// container.
package format

// CompressionType identifies the whole-file compression envelope wrapping
// a .sc payload.
type CompressionType uint8

const (
	CompressionNone  CompressionType = 0x0 // CompressionNone means the payload is raw, unwrapped bytes.
	CompressionLZMA  CompressionType = 0x1 // CompressionLZMA is a classic LZMA1 stream with a Supercell-style 5+4 byte header.
	CompressionLZHAM CompressionType = 0x2 // CompressionLZHAM is the "SCLZ"-tagged wrapper.
	CompressionZstd  CompressionType = 0x3 // CompressionZstd is a standard Zstandard frame.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZMA:
		return "LZMA"
	case CompressionLZHAM:
		return "LZHAM"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// PixelFormat is the OpenGL-like pixel format index stored in a texture
// tag's first payload byte. Index values outside [0,10] are invalid.
type PixelFormat uint8

const (
	PixelFormatRGBA8888     PixelFormat = 0
	PixelFormatRGBA8888v1   PixelFormat = 1
	PixelFormatRGBA4444     PixelFormat = 2
	PixelFormatRGBA5551     PixelFormat = 3
	PixelFormatRGB565       PixelFormat = 4
	PixelFormatRGBA8888v5   PixelFormat = 5
	PixelFormatLUMINANCE8A8 PixelFormat = 6
	PixelFormatRGBA8888v7   PixelFormat = 7
	PixelFormatRGBA8888v8   PixelFormat = 8
	PixelFormatRGBA4444v9   PixelFormat = 9
	PixelFormatLUMINANCE8   PixelFormat = 10
)

// IsValid reports whether p is one of the eleven recognised indices.
func (p PixelFormat) IsValid() bool {
	return p <= PixelFormatLUMINANCE8
}

// FilterMode is one of the three GL-style texture filters the texture
// record's tag id encodes.
type FilterMode uint8

const (
	FilterLinear              FilterMode = iota // FilterLinear: GL_LINEAR
	FilterNearest                                // FilterNearest: GL_NEAREST
	FilterLinearMipmapNearest                    // FilterLinearMipmapNearest: GL_LINEAR_MIPMAP_NEAREST
)

func (f FilterMode) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterNearest:
		return "Nearest"
	case FilterLinearMipmapNearest:
		return "LinearMipmapNearest"
	default:
		return "Unknown"
	}
}
