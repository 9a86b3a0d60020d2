package uci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/srsnr/uci-nr/internal/blockcode"
	"github.com/srsnr/uci-nr/internal/crc6_11"
	"github.com/srsnr/uci-nr/internal/polarcore"
	"github.com/srsnr/uci-nr/internal/uccmocks"
	"github.com/srsnr/uci-nr/uci"
)

// newMockCsiCoder wires every real collaborator except CsiCodec, which is
// swapped for a gomock double so CSI content encoding can be observed and
// stubbed independently of the real block/polar coding paths under test.
func newMockCsiCoder(t *testing.T, csi uci.CsiCodec) *uci.UciCoder {
	t.Helper()
	rm := polarcore.NewRateMatcher()
	ca := polarcore.NewChanAlloc()
	c, err := uci.NewUciCoder(uci.UciCoderOpts{
		PolarEncoder: polarcore.NewEncoder(),
		PolarDecoder: polarcore.NewDecoder(),
		PolarRmTx:    rm,
		PolarRmRx:    rm,
		ChanAllocTx:  ca,
		ChanAllocRx:  ca,
		PolarCode:    polarcore.NewSelector(),
		Crc6:         crc6_11.New6(),
		Crc11:        crc6_11.New11(),
		BlockCodec:   blockcode.New(),
		CsiCodec:     csi,
	})
	require.NoError(t, err)
	return c
}

func TestEncodeDecodePuschCsi1_WithMockCsiCodec(t *testing.T) {
	ctrl := gomock.NewController(t)
	csi := uccmocks.NewMockCsiCodec(ctrl)
	reports := []uci.CsiReport{{Kind: "wideband", Bits: 4}}

	csi.EXPECT().Pack(reports, gomock.Any(), gomock.Any(), uci.AMax).Return(4)
	csi.EXPECT().NofBits(reports).Return(4).AnyTimes()
	csi.EXPECT().HasPart2(reports).Return(false).AnyTimes()
	csi.EXPECT().Unpack(reports, gomock.Any(), gomock.Any()).Return(4)

	c := newMockCsiCoder(t, csi)

	cfg := uci.UciCfg{
		Csi: reports,
		Pusch: uci.PuschCfg{
			Modulation:     uci.ModQPSK,
			NofLayers:      1,
			R:              0.5,
			Alpha:          1,
			BetaCsi1Offset: 1,
			MUciSc:         [14]int{0, 0, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 0, 0},
			L0:             2,
		},
	}
	value := uci.UciValue{Csi: "opaque, only the mock cares"}
	out := make([]byte, 4096)

	n, err := c.EncodePuschCsi1(cfg, value, out)
	require.NoError(t, err)
	require.Greater(t, n, 0)

	llr := make([]int8, n)
	for i, b := range out[:n] {
		if b == 1 {
			llr[i] = -100
		} else {
			llr[i] = 100
		}
	}

	var got uci.UciValue
	require.NoError(t, c.DecodePuschCsi1(cfg, llr, &got))
	assert.True(t, got.Valid)
}

func TestEncodePuschCsi1_CsiPackFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	csi := uccmocks.NewMockCsiCodec(ctrl)
	reports := []uci.CsiReport{{Kind: "wideband", Bits: 4}}

	csi.EXPECT().Pack(reports, gomock.Any(), gomock.Any(), uci.AMax).Return(-1)

	c := newMockCsiCoder(t, csi)
	cfg := uci.UciCfg{Csi: reports, Pusch: uci.PuschCfg{Modulation: uci.ModQPSK, NofLayers: 1, R: 0.5, Alpha: 1}}

	_, err := c.EncodePuschCsi1(cfg, uci.UciValue{}, make([]byte, 64))
	require.Error(t, err)
	var uerr *uci.Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, uci.CsiPackFailed, uerr.Kind)
}
