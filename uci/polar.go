package uci

// polarSegmentation computes (C, Aprime, L) for a payload of a bits given
// the total coded-bit budget euci (§4.4).
func polarSegmentation(a, euci int) (segments, aPrime, crcLen int) {
	iSeg := 0
	if (a >= 360 && euci >= 1088) || a >= 1013 {
		iSeg = 1
	}
	c := iSeg + 1
	ap := ((a + c - 1) / c) * c
	return c, ap, CrcLen(a)
}

func (c *UciCoder) crcFor(l int) (Crc, error) {
	switch l {
	case 6:
		return c.crc6, nil
	case 11:
		return c.crc11, nil
	default:
		return nil, newError(InvalidInput, nil, "unsupported CRC length %d", l)
	}
}

// segmentEr splits euci evenly across C segments, the remainder landing on
// the last segment.
func segmentEr(euci, segments, r int) int {
	base := euci / segments
	if r < segments-1 {
		return base
	}
	return euci - base*(segments-1)
}

// encodePolar implements C4's encode loop (§4.4): segmentation, per-segment
// CRC attach, polar channel allocation, polar encode and rate matching.
func (c *UciCoder) encodePolar(a, euci int, out []byte) error {
	segments, aPrime, l := polarSegmentation(a, euci)
	infoPerSeg := aPrime / segments
	kr := infoPerSeg + l

	crc, err := c.crcFor(l)
	if err != nil {
		return err
	}

	srcOff := 0
	dstOff := 0
	for r := 0; r < segments; r++ {
		er := segmentEr(euci, segments, r)
		code, err := c.polarCode.Select(kr, er, 10)
		if err != nil {
			return newError(PolarCodeSelectFailed, err, "select(K=%d,E=%d) failed", kr, er)
		}

		buf := c.c[:kr]
		pad := 0
		if r == 0 {
			pad = aPrime - a
			for i := 0; i < pad; i++ {
				buf[i] = 0
			}
		}
		n := infoPerSeg - pad
		copy(buf[pad:infoPerSeg], c.bitSequence[srcOff:srcOff+n])
		srcOff += n

		crc.Attach(buf, infoPerSeg)

		allocated := c.allocated[:code.N]
		if err := c.chanAllocTx.Allocate(code, buf[:kr], allocated); err != nil {
			return err
		}
		encoded := c.d[:code.N]
		if err := c.polarEncoder.Encode(code, allocated, encoded); err != nil {
			return err
		}
		if err := c.polarRmTx.RateMatch(code, encoded, out[dstOff:dstOff+er], true); err != nil {
			return err
		}
		dstOff += er
	}
	return nil
}

// decodePolar implements C4's decode loop (§4.4), writing the recovered
// info bits into the coder's bit_sequence and returning the combined
// (AND-accumulated across segments) validity verdict.
func (c *UciCoder) decodePolar(llr []int8, a, euci int) (bool, error) {
	segments, aPrime, l := polarSegmentation(a, euci)
	infoPerSeg := aPrime / segments
	kr := infoPerSeg + l

	crc, err := c.crcFor(l)
	if err != nil {
		return false, err
	}

	// Sign-flip all input LLRs once before the polar path (§4.4, §9).
	flipped := make([]float32, len(llr))
	for i, v := range llr {
		flipped[i] = -float32(v)
	}

	valid := true
	dstOff := 0
	srcOff := 0
	for r := 0; r < segments; r++ {
		er := segmentEr(euci, segments, r)
		code, err := c.polarCode.Select(kr, er, 10)
		if err != nil {
			return false, newError(PolarCodeSelectFailed, err, "select(K=%d,E=%d) failed", kr, er)
		}

		softN := make([]float32, code.N)
		if err := c.polarRmRx.InverseRateMatch(code, flipped[srcOff:srcOff+er], softN, true); err != nil {
			return false, err
		}
		srcOff += er

		decodedN := c.d[:code.N]
		if err := c.polarDecoder.Decode(code, softN, decodedN); err != nil {
			return false, newError(PolarDecodeFailed, err, "SCL decode failed")
		}

		buf := c.c[:kr]
		if err := c.chanAllocRx.Deallocate(code, decodedN, buf); err != nil {
			return false, err
		}

		info := buf[:infoPerSeg]
		crcBits := buf[infoPerSeg:kr]
		computed := crc.Checksum(info, infoPerSeg)
		received := unpackBitsMSB(crcBits, l)
		if computed != received {
			valid = false
		}

		pad := 0
		if r == 0 {
			pad = aPrime - a
		}
		n := infoPerSeg - pad
		copy(c.bitSequence[dstOff:dstOff+n], info[pad:infoPerSeg])
		dstOff += n
	}
	return valid, nil
}
