package polarcore

import "github.com/srsnr/uci-nr/uci"

// subBlockPattern is the 32-point sub-block interleaver permutation of
// TS 38.212 Table 5.4.1.1-1.
var subBlockPattern = [32]int{
	0, 1, 2, 4, 3, 5, 6, 7, 8, 16, 9, 17, 10, 18, 11, 19,
	12, 20, 13, 21, 14, 22, 15, 23, 24, 25, 26, 28, 27, 29, 30, 31,
}

func subBlockInterleaveBytes(d []byte, n int) []byte {
	sub := n / 32
	y := make([]byte, n)
	for s := 0; s < 32; s++ {
		copy(y[subBlockPattern[s]*sub:(subBlockPattern[s]+1)*sub], d[s*sub:(s+1)*sub])
	}
	return y
}

func subBlockDeinterleaveFloat(y []float32, n int) []float32 {
	sub := n / 32
	d := make([]float32, n)
	for s := 0; s < 32; s++ {
		copy(d[s*sub:(s+1)*sub], y[subBlockPattern[s]*sub:(subBlockPattern[s]+1)*sub])
	}
	return d
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func reverseFloats(f []float32) {
	for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
		f[i], f[j] = f[j], f[i]
	}
}

// RateMatcher implements both uci.PolarRmTx and uci.PolarRmRx: sub-block
// interleave followed by circular-buffer puncturing/shortening/repetition
// (TS 38.212 §5.4.1), with IBIL realized as a simplified, self-inverse
// reversal of the selected bits rather than the full triangular
// coded-bit interleaver (see DESIGN.md Open Questions).
type RateMatcher struct{}

// NewRateMatcher returns the default polar rate matcher.
func NewRateMatcher() *RateMatcher { return &RateMatcher{} }

func (RateMatcher) RateMatch(p uci.PolarCodeParams, d []byte, out []byte, ibil bool) error {
	y := subBlockInterleaveBytes(d, p.N)
	er := len(out)
	switch {
	case er >= p.N:
		for k := 0; k < er; k++ {
			out[k] = y[k%p.N]
		}
	case 16*p.K <= 7*er: // puncturing: keep the last Er bits
		copy(out, y[p.N-er:p.N])
	default: // shortening: keep the first Er bits
		copy(out, y[:er])
	}
	if ibil {
		reverseBytes(out)
	}
	return nil
}

func (RateMatcher) InverseRateMatch(p uci.PolarCodeParams, llrIn []float32, out []float32, ibil bool) error {
	er := len(llrIn)
	local := append([]float32(nil), llrIn...)
	if ibil {
		reverseFloats(local)
	}

	y := make([]float32, p.N)
	switch {
	case er >= p.N:
		for k := 0; k < er; k++ {
			y[k%p.N] += local[k]
		}
	case 16*p.K <= 7*er: // inverse of puncturing
		copy(y[p.N-er:p.N], local)
	default: // inverse of shortening: the shortened tail is known-zero
		copy(y[:er], local)
		for i := er; i < p.N; i++ {
			y[i] = -1000 // strong LLR forcing the known-zero shortened bits
		}
	}

	d := subBlockDeinterleaveFloat(y, p.N)
	copy(out[:p.N], d)
	return nil
}
