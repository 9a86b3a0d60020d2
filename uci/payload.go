package uci

// packBitsMSB writes the low n bits of v into out[0:n], most-significant
// bit first (§4.2 "little-endian unpack: MSB first").
func packBitsMSB(v uint32, n int, out []byte) {
	for i := 0; i < n; i++ {
		out[i] = byte((v >> uint(n-1-i)) & 1)
	}
}

func unpackBitsMSB(in []byte, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<1 | uint32(in[i]&1)
	}
	return v
}

// PackPucch packs {ACK, SR, CSI1} into the coder's bit_sequence scratch
// buffer and returns the resulting payload length A (§4.2).
func (c *UciCoder) PackPucch(cfg UciCfg, value UciValue) (int, error) {
	oCsi := c.csiCodec.NofBits(cfg.Csi)

	switch {
	case oCsi == 0:
		if len(value.Ack) < cfg.OAck {
			return 0, newError(InvalidInput, nil, "value.Ack has %d bits, want %d", len(value.Ack), cfg.OAck)
		}
		copy(c.bitSequence[:cfg.OAck], value.Ack[:cfg.OAck])
		packBitsMSB(value.Sr, cfg.OSr, c.bitSequence[cfg.OAck:cfg.OAck+cfg.OSr])
		return cfg.OAck + cfg.OSr, nil

	case cfg.OAck == 0 && cfg.OSr == 0:
		n := c.csiCodec.Pack(cfg.Csi, value.Csi, c.bitSequence[:], AMax)
		if n < 0 {
			return 0, newError(CsiPackFailed, nil, "csi codec pack returned %d", n)
		}
		return n, nil

	default:
		copy(c.bitSequence[:cfg.OAck], value.Ack[:cfg.OAck])
		packBitsMSB(value.Sr, cfg.OSr, c.bitSequence[cfg.OAck:cfg.OAck+cfg.OSr])
		base := cfg.OAck + cfg.OSr
		n := c.csiCodec.Pack(cfg.Csi, value.Csi, c.bitSequence[base:], AMax-base)
		if n < 0 {
			return 0, newError(CsiPackFailed, nil, "csi codec pack returned %d", n)
		}
		return base + n, nil
	}
}

// UnpackPucch mirrors PackPucch. The CSI-only and combined ACK/SR+CSI
// receive paths are not implemented (§1 Non-goals, §4.2) and return
// Unsupported.
func (c *UciCoder) UnpackPucch(cfg UciCfg, bitSequence []byte, value *UciValue) error {
	oCsi := c.csiCodec.NofBits(cfg.Csi)
	if oCsi != 0 {
		return newError(Unsupported, nil, "CSI-containing PUCCH unpack is not implemented")
	}
	value.Ack = append(value.Ack[:0], bitSequence[:cfg.OAck]...)
	value.Sr = unpackBitsMSB(bitSequence[cfg.OAck:cfg.OAck+cfg.OSr], cfg.OSr)
	return nil
}

// ComputeA returns A without decoding (§4.2): the decoder needs A before
// the bits are known. It succeeds only for the ACK/SR-only and CSI-only
// cases; the combined case's numeric A is not derivable without decoding
// and returns Unsupported.
func (c *UciCoder) ComputeA(cfg UciCfg) (int, error) {
	oCsi := c.csiCodec.NofBits(cfg.Csi)
	switch {
	case oCsi == 0:
		return cfg.OAck + cfg.OSr, nil
	case cfg.OAck == 0 && cfg.OSr == 0:
		return oCsi, nil
	default:
		return 0, newError(Unsupported, nil, "combined ACK/SR+CSI payload length is not derivable without decoding")
	}
}
