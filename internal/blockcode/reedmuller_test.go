package blockcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srsnr/uci-nr/internal/blockcode"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	codec := blockcode.New()
	for a := 3; a <= 11; a++ {
		a := a
		payload := make([]byte, a)
		for i := range payload {
			payload[i] = byte((i + a) % 2)
		}

		out := make([]byte, 64)
		require.NoError(t, codec.Encode(payload, a, out, 64))

		// The codec decodes in the positive => 1 domain (uci negates the
		// external LLRs before calling it).
		llr := make([]int8, 64)
		for i, bit := range out {
			if bit == 1 {
				llr[i] = 100
			} else {
				llr[i] = -100
			}
		}

		decoded := make([]byte, a)
		corr, err := codec.Decode(llr, 64, decoded, a)
		require.NoError(t, err)
		assert.Greater(t, corr, float32(0.9), "a=%d correlation should be near 1", a)
		assert.Equal(t, payload, decoded, "a=%d", a)
	}
}

func TestDecode_AllZeroLLRReturnsZeroCorrelation(t *testing.T) {
	codec := blockcode.New()
	llr := make([]int8, 32)
	decoded := make([]byte, 5)
	corr, err := codec.Decode(llr, 32, decoded, 5)
	require.NoError(t, err)
	assert.Equal(t, float32(0), corr)
}
