package uci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srsnr/uci-nr/internal/simplecsi"
	"github.com/srsnr/uci-nr/uci"
	"github.com/srsnr/uci-nr/ucidefault"
)

func newCoder(t *testing.T) *uci.UciCoder {
	t.Helper()
	c, err := ucidefault.New(ucidefault.Options{CsiCodec: simplecsi.New()})
	require.NoError(t, err)
	return c
}

func pucchResource(format int) uci.PucchResource {
	return uci.PucchResource{Format: format, NofSymbols: 2, NofPrb: 1}
}

func zeroLLR(bits []byte, e int) []int8 {
	llr := make([]int8, e)
	for i, b := range bits {
		if i >= e {
			break
		}
		if b == 1 {
			llr[i] = -100
		} else {
			llr[i] = 100
		}
	}
	for i := len(bits); i < e; i++ {
		llr[i] = 100
	}
	return llr
}

func TestEncodeDecodePucch_OneBitAck(t *testing.T) {
	c := newCoder(t)
	resource := pucchResource(2)
	cfg := uci.UciCfg{OAck: 1}
	value := uci.UciValue{Ack: []byte{1}}

	out := make([]byte, 64)
	n, err := c.EncodePucch(resource, cfg, value, out)
	require.NoError(t, err)
	require.Greater(t, n, 0)

	llr := zeroLLR(out[:n], n)
	var got uci.UciValue
	err = c.DecodePucch(resource, cfg, llr, &got)
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.Equal(t, []byte{1}, got.Ack)
}

func TestEncodeDecodePucch_TwoBitAck(t *testing.T) {
	c := newCoder(t)
	resource := pucchResource(2)
	cfg := uci.UciCfg{OAck: 2}
	value := uci.UciValue{Ack: []byte{1, 0}}

	out := make([]byte, 64)
	n, err := c.EncodePucch(resource, cfg, value, out)
	require.NoError(t, err)

	llr := zeroLLR(out[:n], n)
	var got uci.UciValue
	require.NoError(t, c.DecodePucch(resource, cfg, llr, &got))
	assert.True(t, got.Valid)
	assert.Equal(t, []byte{1, 0}, got.Ack)
}

func TestEncodeDecodePucch_BlockCodeRange(t *testing.T) {
	c := newCoder(t)
	resource := uci.PucchResource{Format: 3, NofSymbols: 4, NofPrb: 1}

	for a := 3; a <= 11; a++ {
		a := a
		t.Run("", func(t *testing.T) {
			cfg := uci.UciCfg{OAck: a}
			ack := make([]byte, a)
			for i := range ack {
				ack[i] = byte(i % 2)
			}
			value := uci.UciValue{Ack: ack}

			out := make([]byte, 256)
			n, err := c.EncodePucch(resource, cfg, value, out)
			require.NoError(t, err)

			llr := zeroLLR(out[:n], n)
			var got uci.UciValue
			require.NoError(t, c.DecodePucch(resource, cfg, llr, &got))
			assert.True(t, got.Valid, "a=%d should decode validly", a)
			assert.Equal(t, ack, got.Ack)
		})
	}
}

func TestEncodeDecodePucch_PolarRange(t *testing.T) {
	c := newCoder(t)
	resource := uci.PucchResource{Format: 3, NofSymbols: 14, NofPrb: 4}

	for _, a := range []int{12, 20, 100} {
		a := a
		t.Run("", func(t *testing.T) {
			cfg := uci.UciCfg{OAck: a}
			ack := make([]byte, a)
			for i := range ack {
				ack[i] = byte((i * 7) % 2)
			}
			value := uci.UciValue{Ack: ack}

			out := make([]byte, 4096)
			n, err := c.EncodePucch(resource, cfg, value, out)
			require.NoError(t, err)

			llr := zeroLLR(out[:n], n)
			var got uci.UciValue
			require.NoError(t, c.DecodePucch(resource, cfg, llr, &got))
			assert.True(t, got.Valid, "a=%d should decode validly", a)
			assert.Equal(t, ack, got.Ack)
		})
	}
}

func TestDecode_AllZeroLLR_IsInvalid(t *testing.T) {
	c := newCoder(t)
	resource := pucchResource(2)
	cfg := uci.UciCfg{OAck: 1}

	llr := make([]int8, 64)
	var got uci.UciValue
	err := c.DecodePucch(resource, cfg, llr, &got)
	require.NoError(t, err)
	assert.False(t, got.Valid)
}

func TestPucchFormat234E_Format2(t *testing.T) {
	e, err := uci.PucchFormat234E(uci.PucchResource{Format: 2, NofSymbols: 2, NofPrb: 1})
	require.NoError(t, err)
	assert.Equal(t, 32, e)
}

func TestPucchFormat234E_Format3PiBpsk(t *testing.T) {
	e, err := uci.PucchFormat234E(uci.PucchResource{Format: 3, NofSymbols: 14, NofPrb: 1, EnablePiBpsk: true})
	require.NoError(t, err)
	assert.Equal(t, 168, e)
}

func TestPucchFormat234E_Format4BadOccLength(t *testing.T) {
	_, err := uci.PucchFormat234E(uci.PucchResource{Format: 4, NofSymbols: 2, NofPrb: 1, OccLength: 3})
	require.Error(t, err)
	var uerr *uci.Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, uci.InvalidOccLength, uerr.Kind)
}

func TestInfo(t *testing.T) {
	c := newCoder(t)
	cfg := uci.UciCfg{OAck: 2, OSr: 1, Pucch: uci.PucchCfg{Rnti: 0x1234}}
	value := uci.UciValue{Ack: []byte{1, 0}, Sr: 1}
	s := c.Info(cfg, value)
	assert.Contains(t, s, "rnti=0x1234")
	assert.Contains(t, s, "ack=10")
	assert.Contains(t, s, "sr=1")
}

func TestEncodePuschAck_A2Coercion(t *testing.T) {
	c := newCoder(t)
	cfg := uci.UciCfg{
		OAck:   1,
		NofCsi: 2,
		Pusch: uci.PuschCfg{
			Modulation:        uci.ModQPSK,
			NofLayers:         1,
			R:                 0.5,
			Alpha:             1,
			BetaHarqAckOffset: 1,
			MUciSc:            [14]int{0, 0, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 0, 0},
			L0:                2,
		},
	}
	value := uci.UciValue{Ack: []byte{1}}
	out := make([]byte, 4096)
	n, err := c.EncodePuschAck(cfg, value, out)
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	llr := zeroLLR(out[:n], n)
	var got uci.UciValue
	require.NoError(t, c.DecodePuschAck(cfg, llr, &got))
	assert.Len(t, got.Ack, 2, "coercion forces A=2")
}
