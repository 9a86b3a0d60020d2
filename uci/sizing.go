package uci

import "math"

// CrcLen implements the L(A) rule of §4.2: 0 for A<=11, 6 for 12<=A<=19,
// 11 for A>=20.
func CrcLen(a int) int {
	switch {
	case a <= 11:
		return 0
	case a <= 19:
		return 6
	default:
		return 11
	}
}

// PucchFormat234E computes E_tot for a PUCCH format 2/3/4 resource (§4.1).
func PucchFormat234E(r PucchResource) (int, error) {
	switch r.Format {
	case 2:
		return 16 * r.NofSymbols * r.NofPrb, nil
	case 3:
		if r.EnablePiBpsk {
			return 12 * r.NofSymbols * r.NofPrb, nil
		}
		return 24 * r.NofSymbols * r.NofPrb, nil
	case 4:
		if r.OccLength != 1 && r.OccLength != 2 {
			return 0, newError(InvalidOccLength, nil, "occ_length=%d not in {1,2}", r.OccLength)
		}
		if r.EnablePiBpsk {
			return (12 / r.OccLength) * r.NofSymbols, nil
		}
		return (24 / r.OccLength) * r.NofSymbols, nil
	default:
		return 0, newError(InvalidInput, nil, "unknown pucch format %d", r.Format)
	}
}

func validateRate(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return newError(InvalidRate, nil, "R=%v is not finite and positive", r)
	}
	return nil
}

func sumMUciSc(m [14]int) int {
	s := 0
	for _, v := range m {
		s += v
	}
	return s
}

func sumMUciScFrom(m [14]int, l0 int) int {
	s := 0
	for l := l0; l < len(m); l++ {
		s += m[l]
	}
	return s
}

// qPrimeAck computes Q'_ack (§4.1) for the given HARQ-ACK bit width.
func qPrimeAck(pusch PuschCfg, oAck int) (int, error) {
	if pusch.NofLayers == 0 {
		return 0, newError(InvalidInput, nil, "nof_layers is 0")
	}
	qmv, err := qm(pusch.Modulation)
	if err != nil {
		return 0, err
	}
	if err := validateRate(pusch.R); err != nil {
		return 0, err
	}
	lAck := CrcLen(oAck)
	mSum := sumMUciSc(pusch.MUciSc)
	mL0Sum := sumMUciScFrom(pusch.MUciSc, pusch.L0)

	reBudget := pusch.Alpha * float64(mL0Sum)
	var raw float64
	if pusch.KSum == 0 {
		raw = math.Ceil(float64(oAck+lAck) * pusch.BetaHarqAckOffset / (float64(qmv) * pusch.R))
	} else {
		raw = math.Ceil(float64(oAck+lAck) * pusch.BetaHarqAckOffset * float64(mSum) / float64(pusch.KSum))
	}
	q := math.Min(raw, reBudget)
	if q < raw {
		return int(q), errSizingClamp
	}
	return int(q), nil
}

// errSizingClamp is a sentinel used only internally to let callers observe
// a clamp event without treating it as a failure (§ supplemented features:
// the original srsRAN implementation logs when the RE-budget ceiling bites).
var errSizingClamp = &clampMarker{}

type clampMarker struct{}

func (*clampMarker) Error() string { return "sizing value clamped to RE budget" }

// PuschAckNofBits computes E_ack, the number of PUSCH-multiplexed coded
// bits carrying HARQ-ACK, for a payload of oAck bits (§4.1, §6).
func (c *UciCoder) PuschAckNofBits(pusch PuschCfg, oAck int) (int, error) {
	qmv, err := qm(pusch.Modulation)
	if err != nil {
		return 0, err
	}
	q, err := qPrimeAck(pusch, oAck)
	if err != nil {
		if err == errSizingClamp {
			if c != nil {
				c.metrics.IncSizingClamped()
			}
		} else {
			return 0, err
		}
	}
	return q * pusch.NofLayers * qmv, nil
}

// PuschCsi1NofBits computes E_csi1, the number of PUSCH-multiplexed coded
// bits carrying CSI part 1, for the given configuration (§4.1, §6).
func (c *UciCoder) PuschCsi1NofBits(cfg UciCfg) (int, error) {
	pusch := cfg.Pusch
	qmv, err := qm(pusch.Modulation)
	if err != nil {
		return 0, err
	}
	if pusch.NofLayers == 0 {
		return 0, newError(InvalidInput, nil, "nof_layers is 0")
	}
	if err := validateRate(pusch.R); err != nil {
		return 0, err
	}

	ackReserve := cfg.OAck
	if ackReserve < 2 {
		ackReserve = 2
	}
	qAck, err := qPrimeAck(pusch, ackReserve)
	if err != nil && err != errSizingClamp {
		return 0, err
	}

	oCsi1 := c.csiCodec.NofBits(cfg.Csi)
	hasPart2 := c.csiCodec.HasPart2(cfg.Csi)
	l := CrcLen(oCsi1)
	mSum := sumMUciSc(pusch.MUciSc)

	var q int
	switch {
	case pusch.KSum == 0 && hasPart2:
		raw := math.Ceil(float64(oCsi1+l) * pusch.BetaCsi1Offset / (float64(qmv) * pusch.R))
		reBudget := pusch.Alpha*float64(mSum) - float64(qAck)
		v := math.Min(raw, reBudget)
		if v < raw {
			c.metrics.IncSizingClamped()
		}
		q = int(v)
	case pusch.KSum == 0 && !hasPart2:
		q = mSum - qAck
	default:
		raw := math.Ceil(float64(oCsi1+l) * pusch.BetaCsi1Offset * float64(mSum) / float64(pusch.KSum))
		reBudget := math.Ceil(pusch.Alpha*float64(mSum)) - float64(qAck)
		v := math.Min(raw, reBudget)
		if v < raw {
			c.metrics.IncSizingClamped()
		}
		q = int(v)
	}
	if q < 0 {
		q = 0
	}
	return q * pusch.NofLayers * qmv, nil
}

// TotalBitsBreakdown reports the per-field width accounting the original
// srsRAN implementation logs separately during uci_nr_pack_pucch (see
// SPEC_FULL.md "SUPPLEMENTED FEATURES").
type TotalBitsBreakdown struct {
	Ack int
	Sr  int
	Csi int
}

// TotalBits returns o_ack + o_sr + csi_nof_bits(cfg.csi) (§6).
func (c *UciCoder) TotalBits(cfg UciCfg) int {
	return cfg.OAck + cfg.OSr + c.csiCodec.NofBits(cfg.Csi)
}

// TotalBitsWithBreakdown is TotalBits plus the per-field accounting.
func (c *UciCoder) TotalBitsWithBreakdown(cfg UciCfg) (int, TotalBitsBreakdown) {
	b := TotalBitsBreakdown{Ack: cfg.OAck, Sr: cfg.OSr, Csi: c.csiCodec.NofBits(cfg.Csi)}
	return b.Ack + b.Sr + b.Csi, b
}
