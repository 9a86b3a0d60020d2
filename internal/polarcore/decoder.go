package polarcore

import (
	"math"

	"github.com/srsnr/uci-nr/uci"
)

// Decoder implements uci.PolarDecoder as a successive-cancellation
// decoder operating in the log-likelihood domain with the min-sum f
// function. §9 names this collaborator "SCL-class"; this default is a
// plain SC decoder (list size 1) rather than a full path-splitting SCL
// decoder — see DESIGN.md Open Questions for the tradeoff.
type Decoder struct{}

// NewDecoder returns the default polar decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// fFunc is the min-sum check-node update in the positive => 1 domain: the
// XOR of two bits is 0 (negative) when their LLR signs agree.
func fFunc(a, b float32) float32 {
	sign := float32(1)
	if (a < 0) == (b < 0) {
		sign = -1
	}
	abs := math.Abs(float64(a))
	if bb := math.Abs(float64(b)); bb < abs {
		abs = bb
	}
	return sign * float32(abs)
}

func gFunc(a, b float32, u byte) float32 {
	if u == 0 {
		return b + a
	}
	return b - a
}

// scDecode recursively decodes llr (length a power of two), starting at
// absolute index base within the N-length input vector and consulting
// frozen to force frozen positions to 0. It returns the re-encoded
// codeword estimate (the partial sums the parent's g step needs), not the
// decided input bits themselves.
func scDecode(llr []float32, base int, frozen []bool) []byte {
	n := len(llr)
	if n == 1 {
		if frozen[base] {
			return []byte{0}
		}
		if llr[0] >= 0 {
			return []byte{1}
		}
		return []byte{0}
	}
	half := n / 2
	a := llr[:half]
	b := llr[half:]

	fcomb := make([]float32, half)
	for i := 0; i < half; i++ {
		fcomb[i] = fFunc(a[i], b[i])
	}
	u1 := scDecode(fcomb, base, frozen)

	gcomb := make([]float32, half)
	for i := 0; i < half; i++ {
		gcomb[i] = gFunc(a[i], b[i], u1[i])
	}
	u2 := scDecode(gcomb, base+half, frozen)

	out := make([]byte, n)
	for i := 0; i < half; i++ {
		out[i] = u1[i] ^ u2[i]
		out[half+i] = u2[i]
	}
	return out
}

func (Decoder) Decode(p uci.PolarCodeParams, llr []float32, out []byte) error {
	frozen := make([]bool, p.N)
	for i := range frozen {
		frozen[i] = true
	}
	for _, pos := range p.KSet {
		frozen[pos] = false
	}
	res := scDecode(llr[:p.N], 0, frozen)
	// The polar transform is its own inverse: re-encoding the codeword
	// estimate yields the decided N-bit input vector.
	encodeRecursive(res, out[:p.N])
	return nil
}
