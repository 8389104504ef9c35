package compress

import (
	"fmt"

	"github.com/sctoolkit/scfile/format"
)

// Compressor compresses a whole decoded .sc payload into one envelope body.
type Compressor interface {
	// Compress compresses data and returns the envelope body.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor for one envelope format.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload.
	//
	// Error conditions:
	//   - Returns an error if data is corrupted or was not produced by this method
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression method.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec for method.
//
// Parameters:
//   - method: one of CompressionNone, CompressionLZMA, CompressionLZHAM, CompressionZstd
//
// Returns an error for any other value.
func CreateCodec(method format.CompressionType) (Codec, error) {
	switch method {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionLZMA:
		return NewLZMACompressor(), nil
	case format.CompressionLZHAM:
		return NewLZHAMCompressor(), nil
	default:
		return nil, fmt.Errorf("compress: unknown compression method %s", method)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:  NewNoOpCompressor(),
	format.CompressionZstd:  NewZstdCompressor(),
	format.CompressionLZMA:  NewLZMACompressor(),
	format.CompressionLZHAM: NewLZHAMCompressor(),
}

// GetCodec retrieves the built-in Codec singleton for method.
func GetCodec(method format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression method %s", method)
}
