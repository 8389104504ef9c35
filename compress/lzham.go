package compress

import "github.com/sctoolkit/scfile/errs"

// lzhamMagic is the 4-byte tag prefixing an LZHAM envelope.
const lzhamMagic = "SCLZ"

// LZHAMCompressor is the CompressionLZHAM envelope.
//
// No portable pure-Go LZHAM implementation exists, so both directions
// fail with ErrCompressionFailure. DetectMethod still recognizes the
// "SCLZ" magic so callers get a clear, attributable error instead of
// silently misreading the stream as something else.
type LZHAMCompressor struct{}

var _ Codec = (*LZHAMCompressor)(nil)

// NewLZHAMCompressor returns an LZHAMCompressor.
func NewLZHAMCompressor() LZHAMCompressor {
	return LZHAMCompressor{}
}

func (c LZHAMCompressor) Compress(data []byte) ([]byte, error) {
	return nil, errs.ErrCompressionFailure
}

func (c LZHAMCompressor) Decompress(data []byte) ([]byte, error) {
	return nil, errs.ErrCompressionFailure
}
