package compress

import (
	"encoding/binary"
	"fmt"

	"github.com/sctoolkit/scfile/errs"
	"github.com/sctoolkit/scfile/format"
)

// outerMagicLen is the 6-byte "SC"+version Supercell envelope magic.
const outerMagicLen = 6

// outerHashLen is the metadata hash trailing the outer magic.
const outerHashLen = 16

// outerHeaderLen is the total size of the optional outer envelope.
const outerHeaderLen = outerMagicLen + outerHashLen

// zstdFrameMagic is the little-endian Zstandard frame magic number.
const zstdFrameMagic = 0xFD2FB528

// hasOuterEnvelope reports whether data opens with the "SC"+version magic
// and is long enough to carry the trailing metadata hash. A stream opening
// with the "SCLZ" LZHAM magic is not an outer envelope.
func hasOuterEnvelope(data []byte) bool {
	return len(data) >= outerHeaderLen && data[0] == 'S' && data[1] == 'C' && string(data[:4]) != lzhamMagic
}

// DetectMethod inspects data's leading bytes and reports the compression
// method it appears to carry, stripping an outer envelope first if
// present. It never returns an error: an unrecognised stream classifies
// as CompressionNone.
func DetectMethod(data []byte) format.CompressionType {
	if hasOuterEnvelope(data) {
		data = data[outerHeaderLen:]
	}

	switch {
	case len(data) >= 4 && string(data[:4]) == lzhamMagic:
		return format.CompressionLZHAM
	case len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == zstdFrameMagic:
		return format.CompressionZstd
	case looksLikeLZMAHeader(data):
		return format.CompressionLZMA
	default:
		return format.CompressionNone
	}
}

// lzmaPropsByte is the LZMA1 properties byte for lc=3, lp=0, pb=2
// ((pb*5+lp)*9+lc = 0x5D), the encoder default and the value
// LZMACompressor writes.
const lzmaPropsByte = 0x5D

// looksLikeLZMAHeader reports whether data opens with an LZMA1 properties
// header: the properties byte 0x5D followed by a dictionary-size field
// that is a nonzero power of two. A power-of-two check alone is too weak
// for an uncompressed tag stream, whose leading bytes are small header
// counts (a single texture puts 00 00 00 01 in bytes 1-4, i.e. 2^24), so
// the properties byte must match exactly; LZMA streams written with other
// lc/lp/pb values are not recognised.
func looksLikeLZMAHeader(data []byte) bool {
	if len(data) < 5 || data[0] != lzmaPropsByte {
		return false
	}

	dictSize := binary.LittleEndian.Uint32(data[1:5])

	return dictSize != 0 && dictSize&(dictSize-1) == 0
}

// Decompress strips an outer Supercell envelope if present, detects the
// inner compression method, and returns (method, plain bytes, nil).
//
// Decompress is total with respect to detection: if no method is
// recognised it returns (CompressionNone, data, nil), with only the outer
// envelope (if any) removed. It only
// returns an error when a method IS detected but the payload fails to
// decompress under that method.
func Decompress(data []byte) (format.CompressionType, []byte, error) {
	body := data
	if hasOuterEnvelope(body) {
		body = body[outerHeaderLen:]
	}

	method := DetectMethod(data)
	if method == format.CompressionNone {
		return format.CompressionNone, body, nil
	}

	codec, err := CreateCodec(method)
	if err != nil {
		return format.CompressionNone, body, nil
	}

	plain, err := codec.Decompress(body)
	if err != nil {
		return method, nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}

	return method, plain, nil
}

// Compress wraps plain in the envelope for method. CompressionNone
// returns plain unchanged; Compress never adds the optional outer
// Supercell envelope, which is a container-level concern layered above
// the compression method itself.
func Compress(method format.CompressionType, plain []byte) ([]byte, error) {
	codec, err := CreateCodec(method)
	if err != nil {
		return nil, err
	}

	return codec.Compress(plain)
}
