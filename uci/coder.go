package uci

import "math"

// UciCoderOpts wires the collaborator interfaces of §6 and the tuning
// thresholds of §6 into a UciCoder. PolarEncoder through BlockCodec are
// mandatory; CsiCodec defaults to a codec that reports zero CSI bits
// (CSI-absent path only); Logger and Metrics default to no-ops.
type UciCoderOpts struct {
	PolarEncoder PolarEncoder
	PolarDecoder PolarDecoder
	PolarRmTx    PolarRmTx
	PolarRmRx    PolarRmRx
	ChanAllocTx  ChanAllocTx
	ChanAllocRx  ChanAllocRx
	PolarCode    PolarCode
	Crc6         Crc
	Crc11        Crc
	BlockCodec   BlockCodec
	CsiCodec     CsiCodec

	Logger  Logger
	Metrics Metrics

	// DisableSimd is a pure performance knob (§6): when false and the
	// injected implementations expose a vectorized path they may use it.
	// It has no semantic effect on this core.
	DisableSimd bool

	// BlockCodeThreshold and OneBitThreshold default to 0.5 when not a
	// finite positive number (§6).
	BlockCodeThreshold float32
	OneBitThreshold    float32
}

// UciCoder is the per-worker coder state of §3: it exclusively owns its
// scratch buffers and injected collaborator state and is not safe for
// concurrent use across goroutines (§5). Construct one per worker.
type UciCoder struct {
	polarEncoder PolarEncoder
	polarDecoder PolarDecoder
	polarRmTx    PolarRmTx
	polarRmRx    PolarRmRx
	chanAllocTx  ChanAllocTx
	chanAllocRx  ChanAllocRx
	polarCode    PolarCode
	crc6         Crc
	crc11        Crc
	blockCodec   BlockCodec
	csiCodec     CsiCodec

	logger  Logger
	metrics Metrics

	disableSimd bool

	blockCodeThreshold float32
	oneBitThreshold     float32

	// Scratch buffers, preallocated once and reused across calls (§3, §9).
	bitSequence [AMax]byte
	c           [AMax + LMax]byte
	allocated   [NMax]byte
	d           [NMax]byte
}

type nullCsiCodec struct{}

func (nullCsiCodec) Pack([]CsiReport, interface{}, []byte, int) int { return 0 }
func (nullCsiCodec) Unpack([]CsiReport, []byte, interface{}) int    { return 0 }
func (nullCsiCodec) NofBits([]CsiReport) int                        { return 0 }
func (nullCsiCodec) HasPart2([]CsiReport) bool                      { return false }
func (nullCsiCodec) ToString(interface{}) string                    { return "" }

// NewUciCoder constructs a coder from its collaborators. It is the Go
// analogue of the teacher's NewPacketPolarParamsFromA-style constructors
// (fec/packet_polar.go): validate inputs, wire defaults, return a ready
// object whose scratch buffers are allocated once here. Not every decode
// path is allocation-free: decodePolar, decodeBlock's LLR negation, the
// small-block pattern builders and the default polar decoder still
// allocate per call.
func NewUciCoder(opts UciCoderOpts) (*UciCoder, error) {
	required := []struct {
		name string
		v    interface{}
	}{
		{"PolarEncoder", opts.PolarEncoder},
		{"PolarDecoder", opts.PolarDecoder},
		{"PolarRmTx", opts.PolarRmTx},
		{"PolarRmRx", opts.PolarRmRx},
		{"ChanAllocTx", opts.ChanAllocTx},
		{"ChanAllocRx", opts.ChanAllocRx},
		{"PolarCode", opts.PolarCode},
		{"Crc6", opts.Crc6},
		{"Crc11", opts.Crc11},
		{"BlockCodec", opts.BlockCodec},
	}
	for _, r := range required {
		if r.v == nil {
			return nil, newError(InvalidInput, nil, "missing required collaborator %s", r.name)
		}
	}

	c := &UciCoder{
		polarEncoder: opts.PolarEncoder,
		polarDecoder: opts.PolarDecoder,
		polarRmTx:    opts.PolarRmTx,
		polarRmRx:    opts.PolarRmRx,
		chanAllocTx:  opts.ChanAllocTx,
		chanAllocRx:  opts.ChanAllocRx,
		polarCode:    opts.PolarCode,
		crc6:         opts.Crc6,
		crc11:        opts.Crc11,
		blockCodec:   opts.BlockCodec,
		csiCodec:     opts.CsiCodec,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		disableSimd:  opts.DisableSimd,
	}
	if c.csiCodec == nil {
		c.csiCodec = nullCsiCodec{}
	}
	if c.logger == nil {
		c.logger = noopLogger{}
	}
	if c.metrics == nil {
		c.metrics = noopMetrics{}
	}
	c.blockCodeThreshold = opts.BlockCodeThreshold
	if !(c.blockCodeThreshold > 0) || math.IsInf(float64(c.blockCodeThreshold), 1) {
		c.blockCodeThreshold = 0.5
	}
	c.oneBitThreshold = opts.OneBitThreshold
	if !(c.oneBitThreshold > 0) || math.IsInf(float64(c.oneBitThreshold), 1) {
		c.oneBitThreshold = 0.5
	}
	return c, nil
}
