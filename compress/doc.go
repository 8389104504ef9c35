// Package compress implements the whole-file compression envelope wrapping
// a .sc payload: detection, stripping, and re-framing for the closed set
// {None, LZMA, LZHAM, Zstd}.
//
// # Architecture
//
// The package defines a Compressor/Decompressor/Codec interface split,
// one Codec per method:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// # Supported methods
//
//   - None: raw bytes, no envelope.
//   - LZMA: classic LZMA1 stream with a Supercell-flavored 5-byte
//     properties header plus a 4-byte little-endian uncompressed size
//     (not the 8-byte size of the standard .lzma container), via
//     github.com/ulikunitz/xz/lzma.
//   - LZHAM: a custom "SCLZ"-tagged wrapper. No portable Go decoder
//     exists for LZHAM; Decompress/Compress both fail with
//     errs.ErrCompressionFailure (see DESIGN.md Open Question 3).
//   - Zstd: a standard Zstandard frame, via github.com/klauspost/
//     compress/zstd.
//
// # Detection
//
// DetectMethod inspects the first handful of bytes in the order spec.md
// §4.1 prescribes: outer Supercell envelope -> "SCLZ" magic -> Zstd frame
// magic -> LZMA properties-byte heuristic -> None. Decompress is total: an
// unrecognised stream yields (None, bytes with any outer envelope removed,
// nil) rather than an error, since the reader detects malformed headers
// downstream.
package compress
