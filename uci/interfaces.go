package uci

// Logger is the injected tracing collaborator (§9): the core must not hold
// package-level verbosity globals, so any diagnostic output goes through
// this interface. The zero value of UciCoderOpts wires a no-op logger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Warnf(string, ...interface{})  {}

// CsiCodec is the injected CSI report collaborator (§1, §6). CSI report
// content encoding is deliberately out of scope of this core; callers
// supply their own implementation. Pack/Unpack return -1 on failure.
type CsiCodec interface {
	Pack(reports []CsiReport, value interface{}, out []byte, maxBits int) int
	Unpack(reports []CsiReport, bits []byte, value interface{}) int
	NofBits(reports []CsiReport) int
	HasPart2(reports []CsiReport) bool
	ToString(value interface{}) string
}

// BlockCodec is the injected Reed-Muller (3-11 bit) collaborator (§4.3, §6).
type BlockCodec interface {
	Encode(payload []byte, a int, out []byte, e int) error
	Decode(llr []int8, e int, out []byte, a int) (correlation float32, err error)
}

// PolarCodeParams is the result of PolarCode.Select: the mother-code length
// N=2^n and the index sets partitioning the N positions (§6).
type PolarCodeParams struct {
	N      int
	Nlog2  int
	K      int
	NPC    int
	KSet   []int // info+PC positions, ascending, len K
	PCSet  []int // parity-check positions within KSet, len NPC
	FSet   []int // frozen positions, ascending, len N-K
}

// PolarCode selects the polar code parameters for a (K, E) pair (§6).
type PolarCode interface {
	Select(k, e, nMax int) (PolarCodeParams, error)
}

// PolarEncoder performs the polar transform u*G_N. allocated and out are
// both length p.N; out is owned by the caller (coder scratch).
type PolarEncoder interface {
	Encode(p PolarCodeParams, allocated []byte, out []byte) error
}

// PolarDecoder is the SCL-class soft decoder. llr has length p.N and uses
// the sign-flipped convention (§6, §9); out has length p.N.
type PolarDecoder interface {
	Decode(p PolarCodeParams, llr []float32, out []byte) error
}

// PolarRmTx rate-matches the N-bit polar codeword d down to Er coded bits.
type PolarRmTx interface {
	RateMatch(p PolarCodeParams, d []byte, out []byte, ibil bool) error
}

// PolarRmRx inverse rate-matches Er soft bits back up to an N-length LLR
// vector.
type PolarRmRx interface {
	InverseRateMatch(p PolarCodeParams, llrIn []float32, out []float32, ibil bool) error
}

// ChanAllocTx places the K_r-bit codeword c into the N-element polar
// container according to p.KSet, zero-filling p.FSet.
type ChanAllocTx interface {
	Allocate(p PolarCodeParams, c []byte, allocated []byte) error
}

// ChanAllocRx extracts the K_r-bit codeword back out of the N-element
// decoded vector d.
type ChanAllocRx interface {
	Deallocate(p PolarCodeParams, d []byte, c []byte) error
}

// Crc is the injected CRC collaborator (§6). Attach appends the checksum
// to buf[:length] and returns the new length; Len reports the CRC size in
// bits (6 or 11).
type Crc interface {
	Attach(buf []byte, length int) int
	Checksum(buf []byte, length int) uint32
	Len() int
}
