// Package polarcore implements the default §4.4/§6 polar-pipeline
// collaborators: code selection, encode, SC decode, rate matching and
// channel allocation. The code-size rule (n1/n2/nmin) follows TS 38.212
// §5.3.1.2; the reliability ordering uses the classical Bhattacharyya-
// parameter recursion for a binary erasure channel rather than the exact
// 3GPP frozen-set table, which — like the polar primitives themselves — is
// an injected algorithmic dependency per uci §1.
package polarcore

import (
	"errors"
	"sort"

	"github.com/srsnr/uci-nr/uci"
)

// Selector is the default uci.PolarCode collaborator.
type Selector struct{}

// NewSelector returns the default polar code selector.
func NewSelector() *Selector { return &Selector{} }

func ceilLog2(v int) int {
	n := 0
	for (1 << uint(n)) < v {
		n++
	}
	return n
}

// selectN implements the TS 38.212 §5.3.1.2 polar code size rule.
func selectN(k, e, nMax int) int {
	if e < 1 {
		e = 1
	}
	n1 := ceilLog2(e)
	if n1 > 0 {
		rhs := 9 * (1 << uint(n1-1))
		if 8*e <= rhs && 16*k < 9*e {
			n1--
		}
	}
	n2 := ceilLog2(8 * k)
	n := n1
	if n2 < n {
		n = n2
	}
	if nMax < n {
		n = nMax
	}
	if n < 5 {
		n = 5
	}
	return n
}

// bhattacharyya computes the N-length Bhattacharyya-parameter vector for a
// binary erasure channel via Arikan's recursion, starting from an erasure
// probability of 0.5 (worst case, used only for relative ranking).
func bhattacharyya(n int) []float64 {
	z := []float64{0.5}
	for lvl := 0; lvl < n; lvl++ {
		nz := make([]float64, len(z)*2)
		for i, zi := range z {
			nz[2*i] = 2*zi - zi*zi
			nz[2*i+1] = zi * zi
		}
		z = nz
	}
	return z
}

// Select implements uci.PolarCode. Parity-check bits are not used by this
// default collaborator (NPC is always 0): the per-segment CRC already
// attached by the C4 pipeline provides the error-detection a real SCL
// decoder would otherwise lean on PC bits for (see DESIGN.md).
func (Selector) Select(k, e, nMax int) (uci.PolarCodeParams, error) {
	if k <= 0 {
		return uci.PolarCodeParams{}, errors.New("K must be positive")
	}
	n := selectN(k, e, nMax)
	nn := 1 << uint(n)
	if k > nn {
		return uci.PolarCodeParams{}, errors.New("K exceeds mother code length N")
	}
	z := bhattacharyya(n)
	idx := make([]int, nn)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return z[idx[a]] < z[idx[b]] })

	kset := append([]int(nil), idx[:k]...)
	fset := append([]int(nil), idx[k:]...)
	sort.Ints(kset)
	sort.Ints(fset)

	return uci.PolarCodeParams{
		N:     nn,
		Nlog2: n,
		K:     k,
		NPC:   0,
		KSet:  kset,
		PCSet: nil,
		FSet:  fset,
	}, nil
}
