package resource

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/endian"
)

func TestResource_RoundTrip(t *testing.T) {
	w := buffer.New(endian.GetLittleEndianEngine())
	defer w.Release()
	w.WriteU16(42)
	w.WriteBytes([]byte{1, 2, 3})
	payload := append([]byte(nil), w.Bytes()...)

	r := buffer.FromBytes(endian.GetLittleEndianEngine(), payload)
	res, err := Read(KindShape, 2, int32(len(payload)), r)
	require.NoError(t, err)
	require.Equal(t, uint16(42), res.ID())
	require.Equal(t, KindShape, res.Kind)

	out := buffer.New(endian.GetLittleEndianEngine())
	defer out.Release()
	res.Write(out)

	readBack := buffer.FromBytes(endian.GetLittleEndianEngine(), out.Bytes())
	id, length, err := readBack.ReadTagHeader()
	require.NoError(t, err)
	require.Equal(t, uint8(2), id)
	require.Equal(t, int32(len(payload)), length)
}
