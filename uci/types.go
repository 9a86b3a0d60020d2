// Package uci implements the 5G NR Uplink Control Information channel
// coding core: payload packing, length-dependent channel coding (1-bit,
// 2-bit, Reed-Muller, polar) and PUCCH/PUSCH rate-matched sizing, per
// 3GPP TS 38.212 §5.3.3 and §6.3.1/§6.3.2.
package uci

// Output alphabet for coded bit streams. Fixed ABI values shared with the
// downstream modulator.
const (
	Bit0          byte = 0
	Bit1          byte = 1
	BitRepetition byte = 2
	BitPlaceholder byte = 3
)

// Scratch-buffer sizing limits (§3).
const (
	AMax = 1706 // max payload bits entering the channel coder
	LMax = 11   // max CRC length
	NMax = 2048 // max polar mother-code length
)

// Modulation is the PUSCH/PUCCH modulation order, expressed as bits per
// symbol (Qm).
type Modulation int

const (
	ModBPSK   Modulation = 1
	ModQPSK   Modulation = 2
	Mod16QAM  Modulation = 4
	Mod64QAM  Modulation = 6
	Mod256QAM Modulation = 8
)

// qm returns the bits-per-symbol for m, or an error if m is not one of the
// supported orders (InvalidModulation, §7).
func qm(m Modulation) (int, error) {
	switch m {
	case ModBPSK, ModQPSK, Mod16QAM, Mod64QAM, Mod256QAM:
		return int(m), nil
	default:
		return 0, newError(InvalidModulation, nil, "unsupported modulation order %d", m)
	}
}

// CsiReport is an opaque descriptor for a single CSI report; its content is
// only meaningful to the injected CsiCodec (§1 deliberately out of scope).
type CsiReport struct {
	Kind string
	Bits int
}

// PuschCfg carries the PUSCH-specific multiplexing parameters of §3.
type PuschCfg struct {
	Modulation        Modulation
	NofLayers         int
	R                 float64
	Alpha             float64
	BetaHarqAckOffset float64
	BetaCsi1Offset    float64
	MUciSc            [14]int // per-symbol UCI RE counts
	L0                int     // first UCI-eligible symbol
	KSum              int     // sum of TB segment sizes; 0 => CSI-only PUSCH
	CsiPart2Present   bool
}

// PucchCfg carries PUCCH parameters consumed by the modulator, not by the
// coding core itself, beyond the RNTI used in Info().
type PucchCfg struct {
	Rnti uint16
}

// UciCfg describes what to encode/decode for the current slot (§3).
type UciCfg struct {
	OAck   int
	OSr    int
	Csi    []CsiReport
	NofCsi int
	Pusch  PuschCfg
	Pucch  PucchCfg
}

// UciValue is the structured UCI payload (§3).
type UciValue struct {
	Ack   []byte // ordered HARQ-ACK bits, each 0 or 1
	Sr    uint32
	Csi   interface{} // opaque, consumed only by the CsiCodec
	Valid bool        // populated by the decoder only
}

// PucchResource describes the PUCCH physical resource (§3).
type PucchResource struct {
	Format       int // 2, 3 or 4
	NofSymbols   int
	NofPrb       int
	OccLength    int // 1 or 2, format 4 only
	EnablePiBpsk bool
}
