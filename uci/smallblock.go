package uci

import "math"

func onePattern(c0 byte, qmv int) []byte {
	switch qmv {
	case 1:
		return []byte{c0}
	case 2:
		return []byte{c0, BitRepetition}
	default:
		p := make([]byte, qmv)
		p[0], p[1] = c0, BitRepetition
		for i := 2; i < qmv; i++ {
			p[i] = BitPlaceholder
		}
		return p
	}
}

// encode1Bit implements the A=1 encoder (§4.3). The 64QAM branch's nested
// while loop in the reference is equivalent to the single cyclic loop
// below (§9 "collapse when reimplementing").
func encode1Bit(c0 byte, qmv int, out []byte, e int) {
	pattern := onePattern(c0, qmv)
	for i := 0; i < e; i++ {
		out[i] = pattern[i%len(pattern)]
	}
}

// decode1Bit implements the A=1 decoder (§4.3). Only the first LLR of
// each Qm-wide group is read; the rest are the repetition and placeholder
// positions of onePattern. The core's
// external LLR convention is negative => bit 1 (§9); this is the negated
// domain the polar path also decides in, after its own sign flip.
func decode1Bit(llr []int8, qmv, e int, oneBitThreshold float32) (bit byte, valid bool) {
	var corr, pwr float64
	for g := 0; g*qmv < e; g++ {
		l := -float64(llr[g*qmv])
		corr += l
		pwr += l * l
	}
	norm := float64(qmv) * corr / (float64(e) * math.Sqrt(pwr))
	if corr >= 0 {
		bit = 1
	}
	valid = norm > float64(oneBitThreshold)
	return bit, valid
}

// twoBitPattern builds the A=2 output alphabet of §4.3: for BPSK/QPSK a
// bare 3-cycle of {c0,c1,c2}; for higher modulations, three Qm-wide
// groups each carrying one adjacent pair of codewords plus placeholders.
func twoBitPattern(c0, c1, c2 byte, qmv int) []byte {
	if qmv < 4 {
		return []byte{c0, c1, c2}
	}
	pairs := [3][2]byte{{c0, c1}, {c2, c0}, {c1, c2}}
	p := make([]byte, 0, 3*qmv)
	for _, pr := range pairs {
		p = append(p, pr[0], pr[1])
		for i := 2; i < qmv; i++ {
			p = append(p, BitPlaceholder)
		}
	}
	return p
}

func encode2Bit(b0, b1 byte, qmv int, out []byte, e int) {
	c0, c1, c2 := b0, b1, b0^b1
	pattern := twoBitPattern(c0, c1, c2, qmv)
	for i := 0; i < e; i++ {
		out[i] = pattern[i%len(pattern)]
	}
}

// decode2Bit implements the A=2 decoder (§4.3). §9 records that the
// reference overwrites rather than accumulates the rotating 3-cell
// correlator (`corr[i%3] = llr[i]`); that behavior is preserved here for
// interop fidelity even though it means only the last-wrapped triple of
// LLRs drives the decision.
// TODO(suspected upstream defect): corr should accumulate across all E/3
// repetitions, not just keep the most recent one.
func decode2Bit(llr []int8, qmv, e int) (c0, c1, c2 byte, valid bool) {
	var corr [3]float64
	if qmv < 4 {
		for i := 0; i < e; i++ {
			corr[i%3] = -float64(llr[i])
		}
	} else {
		for g := 0; g*qmv < e; g++ {
			base := g * qmv
			if base+1 >= len(llr) {
				break
			}
			idx0 := (2 * g) % 3
			idx1 := (2*g + 1) % 3
			corr[idx0] = -float64(llr[base])
			corr[idx1] = -float64(llr[base+1])
		}
	}
	sign := func(v float64) byte {
		if v >= 0 {
			return 1
		}
		return 0
	}
	c0, c1, c2 = sign(corr[0]), sign(corr[1]), sign(corr[2])
	valid = c2 == (c0 ^ c1)
	return
}

// encodeBlock dispatches the 3-11 bit Reed-Muller path to the injected
// BlockCodec (§4.3, §6).
func (c *UciCoder) encodeBlock(a int, out []byte, e int) error {
	return c.blockCodec.Encode(c.bitSequence[:a], a, out, e)
}

// negateLLR flips an external (negative=>1) LLR slice into the positive=>1
// domain the injected BlockCodec decodes in, saturating at math.MinInt8 so
// the negation never overflows.
func negateLLR(llr []int8, e int) []int8 {
	out := make([]int8, e)
	for i, v := range llr[:e] {
		if v == math.MinInt8 {
			out[i] = math.MaxInt8
			continue
		}
		out[i] = -v
	}
	return out
}

// decodeBlock implements the 3-11 bit Reed-Muller decode path, including
// the AllZeros and UnderRateMatched edge cases of §4.3/§7.
func (c *UciCoder) decodeBlock(llr []int8, a, e int) (bool, error) {
	if a == 11 && e <= 16 {
		return false, newError(UnderRateMatched, nil, "A=11 requires E>16, got E=%d", e)
	}
	var pwr float64
	for _, l := range llr[:e] {
		v := float64(l)
		pwr += v * v
	}
	pwr /= float64(e)
	if pwr == 0 || math.IsNaN(pwr) || math.IsInf(pwr, 0) {
		return false, newError(AllZeros, nil, "LLR power is not normal (pwr=%v)", pwr)
	}
	corr, err := c.blockCodec.Decode(negateLLR(llr, e), e, c.bitSequence[:a], a)
	if err != nil {
		return false, err
	}
	return corr > c.blockCodeThreshold, nil
}
