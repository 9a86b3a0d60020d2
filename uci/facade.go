package uci

import (
	"fmt"
	"strings"
	"time"
)

// dispatchEncode routes the A-bit payload in bit_sequence through the
// correct coder for its size class (§4.5, §9 "Dispatch by size").
func (c *UciCoder) dispatchEncode(qmv, a int, out []byte, e int) error {
	start := time.Now()
	var path string
	var err error
	switch {
	case a == 1:
		path = "1bit"
		encode1Bit(c.bitSequence[0], qmv, out, e)
	case a == 2:
		path = "2bit"
		encode2Bit(c.bitSequence[0], c.bitSequence[1], qmv, out, e)
	case a >= 3 && a <= 11:
		path = "block"
		err = c.encodeBlock(a, out, e)
	case a >= 12 && a < AMax:
		path = "polar"
		err = c.encodePolar(a, e, out)
	default:
		return newError(InvalidInput, nil, "unsupported payload length A=%d", a)
	}
	c.metrics.ObserveEncode(path, time.Since(start))
	return err
}

// dispatchDecode mirrors dispatchEncode on the receive side.
func (c *UciCoder) dispatchDecode(llr []int8, qmv, a, e int) (bool, error) {
	start := time.Now()
	var path string
	var valid bool
	var err error
	switch {
	case a == 1:
		path = "1bit"
		bit, ok := decode1Bit(llr, qmv, e, c.oneBitThreshold)
		c.bitSequence[0] = bit
		valid = ok
	case a == 2:
		path = "2bit"
		b0, b1, b2, ok := decode2Bit(llr, qmv, e)
		c.bitSequence[0], c.bitSequence[1], c.bitSequence[2] = b0, b1, b2
		valid = ok
	case a >= 3 && a <= 11:
		path = "block"
		valid, err = c.decodeBlock(llr, a, e)
	case a >= 12 && a < AMax:
		path = "polar"
		valid, err = c.decodePolar(llr, a, e)
	default:
		return false, newError(InvalidInput, nil, "unsupported payload length A=%d", a)
	}
	c.metrics.ObserveDecode(path, time.Since(start), valid)
	return valid, err
}

func checkCommon(qmv, e int) error {
	if qmv == 0 {
		return newError(InvalidModulation, nil, "Qm is 0")
	}
	if e < 1 {
		return newError(InvalidInput, nil, "E=%d must be >= 1", e)
	}
	return nil
}

// EncodePucch implements the PUCCH F2/3/4 transmit façade (§4.5).
func (c *UciCoder) EncodePucch(resource PucchResource, cfg UciCfg, value UciValue, out []byte) (int, error) {
	eTot, err := PucchFormat234E(resource)
	if err != nil {
		return 0, err
	}
	a, err := c.PackPucch(cfg, value)
	if err != nil {
		return 0, err
	}
	if a >= 3 && a <= 11 && isCombinedAckSrCsi(cfg, c) {
		return 0, newError(Unsupported, nil, "combined ACK/SR+CSI is not supported on the small-block path")
	}
	qmv := 2 // PUCCH symbols are QPSK-mapped at the coding-core boundary unless pi/2-BPSK is enabled.
	if resource.EnablePiBpsk {
		qmv = 1
	}
	if err := checkCommon(qmv, eTot); err != nil {
		return 0, err
	}
	if len(out) < eTot {
		return 0, newError(InvalidInput, nil, "out buffer too small: have %d, need %d", len(out), eTot)
	}
	if err := c.dispatchEncode(qmv, a, out, eTot); err != nil {
		return 0, err
	}
	return eTot, nil
}

func isCombinedAckSrCsi(cfg UciCfg, c *UciCoder) bool {
	return (cfg.OAck > 0 || cfg.OSr > 0) && c.csiCodec.NofBits(cfg.Csi) > 0
}

// DecodePucch implements the PUCCH F2/3/4 receive façade (§4.5).
func (c *UciCoder) DecodePucch(resource PucchResource, cfg UciCfg, llr []int8, value *UciValue) error {
	eTot, err := PucchFormat234E(resource)
	if err != nil {
		return err
	}
	a, err := c.ComputeA(cfg)
	if err != nil {
		return err
	}
	qmv := 2
	if resource.EnablePiBpsk {
		qmv = 1
	}
	if err := checkCommon(qmv, eTot); err != nil {
		return err
	}
	if len(llr) < eTot {
		return newError(InvalidInput, nil, "llr buffer too small: have %d, need %d", len(llr), eTot)
	}
	valid, err := c.dispatchDecode(llr, qmv, a, eTot)
	if err != nil {
		return err
	}
	value.Valid = valid
	return c.UnpackPucch(cfg, c.bitSequence[:a], value)
}

// EncodePuschAck implements the PUSCH HARQ-ACK multiplexing transmit
// façade, including the A=2 coercion edge case of §4.5.
func (c *UciCoder) EncodePuschAck(cfg UciCfg, value UciValue, out []byte) (int, error) {
	a := cfg.OAck
	forced := cfg.Pusch.KSum == 0 && cfg.NofCsi > 1 && !c.csiCodec.HasPart2(cfg.Csi) && a < 2
	if forced {
		a = 2
		c.bitSequence[1] = 0
		if len(value.Ack) > 0 {
			c.bitSequence[0] = value.Ack[0]
		} else {
			c.bitSequence[0] = 0
		}
	} else if a == 0 {
		return 0, nil
	} else {
		if len(value.Ack) < a {
			return 0, newError(InvalidInput, nil, "value.Ack has %d bits, want %d", len(value.Ack), a)
		}
		copy(c.bitSequence[:a], value.Ack[:a])
	}

	qmv, err := qm(cfg.Pusch.Modulation)
	if err != nil {
		return 0, err
	}
	euci, err := c.PuschAckNofBits(cfg.Pusch, a)
	if err != nil {
		return 0, err
	}
	if err := checkCommon(qmv, euci); err != nil {
		return 0, err
	}
	if len(out) < euci {
		return 0, newError(InvalidInput, nil, "out buffer too small: have %d, need %d", len(out), euci)
	}
	if err := c.dispatchEncode(qmv, a, out, euci); err != nil {
		return 0, err
	}
	return euci, nil
}

// DecodePuschAck mirrors EncodePuschAck.
func (c *UciCoder) DecodePuschAck(cfg UciCfg, llr []int8, value *UciValue) error {
	a := cfg.OAck
	forced := cfg.Pusch.KSum == 0 && cfg.NofCsi > 1 && !c.csiCodec.HasPart2(cfg.Csi) && a < 2
	if forced {
		a = 2
	} else if a == 0 {
		value.Ack = value.Ack[:0]
		value.Valid = true
		return nil
	}

	qmv, err := qm(cfg.Pusch.Modulation)
	if err != nil {
		return err
	}
	euci, err := c.PuschAckNofBits(cfg.Pusch, a)
	if err != nil {
		return err
	}
	if err := checkCommon(qmv, euci); err != nil {
		return err
	}
	if len(llr) < euci {
		return newError(InvalidInput, nil, "llr buffer too small: have %d, need %d", len(llr), euci)
	}
	valid, err := c.dispatchDecode(llr, qmv, a, euci)
	if err != nil {
		return err
	}
	value.Valid = valid
	value.Ack = append(value.Ack[:0], c.bitSequence[:a]...)
	return nil
}

// EncodePuschCsi1 implements the PUSCH CSI-part-1 multiplexing transmit
// façade (§4.5).
func (c *UciCoder) EncodePuschCsi1(cfg UciCfg, value UciValue, out []byte) (int, error) {
	a := c.csiCodec.Pack(cfg.Csi, value.Csi, c.bitSequence[:], AMax)
	if a < 0 {
		return 0, newError(CsiPackFailed, nil, "csi codec pack returned %d", a)
	}
	if a == 0 {
		return 0, nil
	}
	qmv, err := qm(cfg.Pusch.Modulation)
	if err != nil {
		return 0, err
	}
	euci, err := c.PuschCsi1NofBits(cfg)
	if err != nil {
		return 0, err
	}
	if err := checkCommon(qmv, euci); err != nil {
		return 0, err
	}
	if len(out) < euci {
		return 0, newError(InvalidInput, nil, "out buffer too small: have %d, need %d", len(out), euci)
	}
	if err := c.dispatchEncode(qmv, a, out, euci); err != nil {
		return 0, err
	}
	return euci, nil
}

// DecodePuschCsi1 mirrors EncodePuschCsi1.
func (c *UciCoder) DecodePuschCsi1(cfg UciCfg, llr []int8, value *UciValue) error {
	a := c.csiCodec.NofBits(cfg.Csi)
	if a == 0 {
		value.Valid = true
		return nil
	}
	qmv, err := qm(cfg.Pusch.Modulation)
	if err != nil {
		return err
	}
	euci, err := c.PuschCsi1NofBits(cfg)
	if err != nil {
		return err
	}
	if err := checkCommon(qmv, euci); err != nil {
		return err
	}
	if len(llr) < euci {
		return newError(InvalidInput, nil, "llr buffer too small: have %d, need %d", len(llr), euci)
	}
	valid, err := c.dispatchDecode(llr, qmv, a, euci)
	if err != nil {
		return err
	}
	value.Valid = valid
	n := c.csiCodec.Unpack(cfg.Csi, c.bitSequence[:a], value.Csi)
	if n < 0 {
		return newError(CsiUnpackFailed, nil, "csi codec unpack returned %d", n)
	}
	return nil
}

// Info renders the human-readable summary of §6.
func (c *UciCoder) Info(cfg UciCfg, value UciValue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rnti=0x%04x", cfg.Pucch.Rnti)
	if cfg.OAck > 0 {
		b.WriteString(", ack=")
		for i := 0; i < cfg.OAck && i < len(value.Ack); i++ {
			if value.Ack[i] != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	if s := c.csiCodec.ToString(value.Csi); s != "" {
		b.WriteString(", ")
		b.WriteString(s)
	}
	if cfg.OSr > 0 {
		fmt.Fprintf(&b, ", sr=%d", value.Sr)
	}
	return b.String()
}
