package pixel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/endian"
	"github.com/sctoolkit/scfile/format"
)

func fillCheckerboard(b *Buffer) {
	for y := range b.Height {
		for x := range b.Width {
			v := uint8((x*7 + y*13) % 256) //nolint:gosec
			b.Set(x, y, RGBA{R: v, G: v, B: v, A: 255})
		}
	}
}

func TestBuffer_LinearRoundTrip(t *testing.T) {
	src := New(format.PixelFormatRGBA8888, 4, 3)
	fillCheckerboard(src)

	w := buffer.New(endian.GetLittleEndianEngine())
	defer w.Release()
	require.NoError(t, src.WriteLinear(w))

	dst := New(format.PixelFormatRGBA8888, 4, 3)
	r := buffer.FromBytes(endian.GetLittleEndianEngine(), w.Bytes())
	require.NoError(t, dst.ReadLinear(r))

	require.Equal(t, src.pixels, dst.pixels)
}

func TestBuffer_BlockAndLinearAgreeOnPixelValues(t *testing.T) {
	// A 65x40 image exercises full blocks plus truncated edge blocks in
	// both dimensions. Block layout only changes write/read ORDER, not
	// which pixel value ends up at which (x,y).
	const w, h = 65, 40
	src := New(format.PixelFormatRGBA8888, w, h)
	fillCheckerboard(src)

	linear := buffer.New(endian.GetLittleEndianEngine())
	defer linear.Release()
	require.NoError(t, src.WriteLinear(linear))

	block := buffer.New(endian.GetLittleEndianEngine())
	defer block.Release()
	require.NoError(t, src.WriteBlock(block))

	linearOut := New(format.PixelFormatRGBA8888, w, h)
	require.NoError(t, linearOut.ReadLinear(buffer.FromBytes(endian.GetLittleEndianEngine(), linear.Bytes())))

	blockOut := New(format.PixelFormatRGBA8888, w, h)
	require.NoError(t, blockOut.ReadBlock(buffer.FromBytes(endian.GetLittleEndianEngine(), block.Bytes())))

	require.Equal(t, linearOut.pixels, blockOut.pixels)
	require.Equal(t, src.pixels, blockOut.pixels)
}

func TestBuffer_Resize(t *testing.T) {
	src := New(format.PixelFormatRGBA8888, 8, 8)
	fillCheckerboard(src)

	out := src.Resize(4, 4)
	require.Equal(t, 4, out.Width)
	require.Equal(t, 4, out.Height)
}
