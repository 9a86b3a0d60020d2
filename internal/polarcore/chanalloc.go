package polarcore

import "github.com/srsnr/uci-nr/uci"

// ChanAlloc implements both uci.ChanAllocTx and uci.ChanAllocRx: place the
// K_r-bit codeword into the N-element polar container at the info
// positions (KSet, ascending), zero-filling the frozen positions.
type ChanAlloc struct{}

// NewChanAlloc returns the default channel allocator.
func NewChanAlloc() *ChanAlloc { return &ChanAlloc{} }

func (ChanAlloc) Allocate(p uci.PolarCodeParams, c []byte, allocated []byte) error {
	for i := range allocated {
		allocated[i] = 0
	}
	for i, pos := range p.KSet {
		allocated[pos] = c[i]
	}
	return nil
}

func (ChanAlloc) Deallocate(p uci.PolarCodeParams, d []byte, c []byte) error {
	for i, pos := range p.KSet {
		c[i] = d[pos]
	}
	return nil
}
