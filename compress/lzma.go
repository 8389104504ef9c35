package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"

	"github.com/sctoolkit/scfile/errs"
)

// lzmaDictCap is the dictionary size written into the properties header
// when compressing. Decompression always honors whatever size the
// incoming header declares.
const lzmaDictCap = 1 << 20

// LZMACompressor is the CompressionLZMA envelope.
//
// The wire format is the classic LZMA1 stream's 5-byte properties header
// (1 properties byte packing lc/lp/pb, plus a 4-byte little-endian
// dictionary size) followed by a 4-byte little-endian uncompressed size
// and the raw compressed stream. This differs from the standalone .lzma
// file format only in that last field's width: .lzma uses 8 bytes there,
// this format uses 4. Compress/Decompress bridge the difference by
// re-framing through github.com/ulikunitz/xz/lzma's classic 13-byte
// header (5 + 8) and swapping the size field's width at the boundary.
type LZMACompressor struct{}

var _ Codec = (*LZMACompressor)(nil)

// NewLZMACompressor returns an LZMACompressor.
func NewLZMACompressor() LZMACompressor {
	return LZMACompressor{}
}

// Compress returns data framed as properties(1) + dictCap(4) + size(4) + stream.
// The properties byte packs lc/lp/pb as (pb*5+lp)*9+lc, the standard LZMA1 encoding.
func (c LZMACompressor) Compress(data []byte) ([]byte, error) {
	lc, lp, pb := 3, 0, 2
	props, err := lzma.NewProperties(lc, lp, pb)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}

	var buf bytes.Buffer
	wc := lzma.WriterConfig{
		Properties:   &props,
		DictCap:      lzmaDictCap,
		Size:         int64(len(data)),
		SizeInHeader: true,
	}
	w, err := wc.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}

	classic := buf.Bytes()
	if len(classic) < 13 {
		return nil, fmt.Errorf("%w: short lzma header", errs.ErrCompressionFailure)
	}
	header5 := classic[:5]
	stream := classic[13:]

	out := make([]byte, 0, 5+4+len(stream))
	out = append(out, header5...)
	size := uint32(len(data)) //nolint:gosec
	out = append(out, byte(size), byte(size>>8), byte(size>>16), byte(size>>24))
	out = append(out, stream...)

	return out, nil
}

// Decompress reverses Compress.
func (c LZMACompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) < 9 {
		return nil, fmt.Errorf("%w: lzma envelope too short", errs.ErrCompressionFailure)
	}

	header5 := data[:5]
	size := uint32(data[5]) | uint32(data[6])<<8 | uint32(data[7])<<16 | uint32(data[8])<<24
	stream := data[9:]

	classic := make([]byte, 0, 13+len(stream))
	classic = append(classic, header5...)
	classic = append(classic, byte(size), byte(size>>8), byte(size>>16), byte(size>>24), 0, 0, 0, 0)
	classic = append(classic, stream...)

	r, err := lzma.NewReader(bytes.NewReader(classic))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}

	out := make([]byte, 0, size)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}

	return buf.Bytes(), nil
}
