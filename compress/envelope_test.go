package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sctoolkit/scfile/format"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	methods := []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionLZMA}
	plain := []byte("a small but repeated payload payload payload payload")

	for _, method := range methods {
		t.Run(method.String(), func(t *testing.T) {
			wrapped, err := Compress(method, plain)
			require.NoError(t, err)

			got, out, err := Decompress(wrapped)
			require.NoError(t, err)
			require.Equal(t, method, got)
			require.Equal(t, plain, out)
		})
	}
}

func TestEnvelope_UndetectedIsTotal(t *testing.T) {
	junk := []byte{0xFE, 0xFE, 0xFE, 0xFE, 0xFE}
	method, out, err := Decompress(junk)
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, method)
	require.Equal(t, junk, out)
}

func TestEnvelope_LZHAMFailsCleanly(t *testing.T) {
	data := append([]byte(lzhamMagic), 0, 0, 0, 0)
	method := DetectMethod(data)
	require.Equal(t, format.CompressionLZHAM, method)

	_, _, err := Decompress(data)
	require.Error(t, err)
}

func TestEnvelope_OuterEnvelopeStripped(t *testing.T) {
	plain := []byte("payload under an outer supercell envelope")
	outer := make([]byte, 0, outerHeaderLen+len(plain))
	outer = append(outer, 'S', 'C', 4, 0, 0, 0)
	outer = append(outer, make([]byte, outerHashLen)...)
	outer = append(outer, plain...)

	method, out, err := Decompress(outer)
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, method)
	require.Equal(t, plain, out)
}
