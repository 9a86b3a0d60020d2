// Package ucidefault is the composition root wiring the default §6
// collaborators (internal/polarcore, internal/blockcode, internal/crc6_11)
// into a ready uci.UciCoder. It exists as a separate package specifically to
// avoid an import cycle: uci cannot import its own default implementations,
// since those implementations import uci for the collaborator interfaces.
package ucidefault

import (
	"github.com/srsnr/uci-nr/internal/blockcode"
	"github.com/srsnr/uci-nr/internal/crc6_11"
	"github.com/srsnr/uci-nr/internal/polarcore"
	"github.com/srsnr/uci-nr/uci"
)

// Options extends uci.UciCoderOpts with the subset of collaborators this
// package does not supply a default for: CSI content encoding is out of
// scope of the core (uci §1), so callers needing CSI pack/unpack must still
// inject their own uci.CsiCodec.
type Options struct {
	CsiCodec uci.CsiCodec
	Logger   uci.Logger
	Metrics  uci.Metrics

	DisableSimd        bool
	BlockCodeThreshold float32
	OneBitThreshold    float32
}

// New constructs a UciCoder with the default polar, block-code and CRC
// collaborators wired in, analogous to the teacher's NewPacketPolarParams*
// constructors (fec/packet_polar.go) assembling a ready codec from its
// parts.
func New(opts Options) (*uci.UciCoder, error) {
	rm := polarcore.NewRateMatcher()
	ca := polarcore.NewChanAlloc()

	return uci.NewUciCoder(uci.UciCoderOpts{
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
		CsiCodec:     opts.CsiCodec,

		Logger:  opts.Logger,
		Metrics: opts.Metrics,

		DisableSimd:        opts.DisableSimd,
		BlockCodeThreshold: opts.BlockCodeThreshold,
		OneBitThreshold:    opts.OneBitThreshold,
	})
}
