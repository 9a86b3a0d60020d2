package polarcore

import "github.com/srsnr/uci-nr/uci"

// Encoder implements uci.PolarEncoder: the standard recursive Arikan
// transform, Encode(u) = [Encode(a XOR b), Encode(b)] for u = a||b.
type Encoder struct{}

// NewEncoder returns the default polar encoder.
func NewEncoder() *Encoder { return &Encoder{} }

func encodeRecursive(u []byte, out []byte) {
	n := len(u)
	if n == 1 {
		out[0] = u[0]
		return
	}
	half := n / 2
	ab := make([]byte, half)
	for i := 0; i < half; i++ {
		ab[i] = u[i] ^ u[half+i]
	}
	encodeRecursive(ab, out[:half])
	encodeRecursive(u[half:], out[half:])
}

func (Encoder) Encode(p uci.PolarCodeParams, allocated []byte, out []byte) error {
	encodeRecursive(allocated[:p.N], out[:p.N])
	return nil
}
