// Package simplecsi is a minimal uci.CsiCodec: it packs/unpacks a fixed-width
// bit vector per CsiReport with no part-2 structure. Real CSI report content
// encoding is out of scope of the channel-coding core (uci §1); this
// implementation exists so the CSI-only and combined PUCCH/PUSCH code paths
// are exercisable in tests without pulling in a real CSI measurement stack.
package simplecsi

import (
	"fmt"
	"strings"

	"github.com/srsnr/uci-nr/uci"
)

// Value is the concrete payload simplecsi.Codec expects as UciValue.Csi:
// one bit slice per report, in report order.
type Value struct {
	Bits [][]byte
}

// Codec implements uci.CsiCodec.
type Codec struct{}

// New returns the default simple CSI codec.
func New() *Codec { return &Codec{} }

func (Codec) NofBits(reports []uci.CsiReport) int {
	n := 0
	for _, r := range reports {
		n += r.Bits
	}
	return n
}

// HasPart2 is always false: this codec carries no part-2 CSI reports.
func (Codec) HasPart2([]uci.CsiReport) bool { return false }

func (Codec) Pack(reports []uci.CsiReport, value interface{}, out []byte, maxBits int) int {
	v, ok := value.(Value)
	if !ok {
		return -1
	}
	if len(v.Bits) != len(reports) {
		return -1
	}
	total := 0
	for i, r := range reports {
		if len(v.Bits[i]) != r.Bits {
			return -1
		}
		total += r.Bits
	}
	if total > maxBits || total > len(out) {
		return -1
	}
	off := 0
	for i, r := range reports {
		copy(out[off:off+r.Bits], v.Bits[i])
		off += r.Bits
	}
	return total
}

func (Codec) Unpack(reports []uci.CsiReport, bits []byte, value interface{}) int {
	v, ok := value.(*Value)
	if !ok {
		return -1
	}
	v.Bits = v.Bits[:0]
	off := 0
	for _, r := range reports {
		if off+r.Bits > len(bits) {
			return -1
		}
		b := append([]byte(nil), bits[off:off+r.Bits]...)
		v.Bits = append(v.Bits, b)
		off += r.Bits
	}
	return off
}

func (Codec) ToString(value interface{}) string {
	v, ok := value.(Value)
	if !ok || len(v.Bits) == 0 {
		return ""
	}
	var parts []string
	for _, b := range v.Bits {
		var sb strings.Builder
		for _, bit := range b {
			if bit != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		parts = append(parts, sb.String())
	}
	return fmt.Sprintf("csi=%s", strings.Join(parts, ","))
}
