package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZMACompressor_HeaderShape(t *testing.T) {
	c := NewLZMACompressor()
	plain := make([]byte, 256)
	for i := range plain {
		plain[i] = byte(i)
	}

	wrapped, err := c.Compress(plain)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(wrapped), 9)
	require.True(t, looksLikeLZMAHeader(wrapped))

	size := uint32(wrapped[5]) | uint32(wrapped[6])<<8 | uint32(wrapped[7])<<16 | uint32(wrapped[8])<<24
	require.Equal(t, uint32(len(plain)), size)

	out, err := c.Decompress(wrapped)
	require.NoError(t, err)
	require.Equal(t, plain, out)
}
