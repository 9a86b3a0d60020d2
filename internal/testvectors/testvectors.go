// Package testvectors loads UCI conformance test fixtures from JSON using
// gojay, the fast streaming JSON decoder the retrieval pack reaches for in
// its own fixture/config loading paths, rather than encoding/json.
package testvectors

import (
	"fmt"

	"github.com/francoispqt/gojay"
)

// Case is one conformance seed scenario: a PUCCH/PUSCH sizing-and-coding
// fixture with an expected coded output, expressed as 0/1 byte vectors so
// it loads directly into the uci package's payload/LLR formats.
type Case struct {
	Name       string
	OAck       int
	OSr        int
	OCsi1      int
	Modulation int
	E          int
	Ack        []byte
	Sr         byte
	ExpectedE  []byte
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (c *Case) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&c.Name)
	case "o_ack":
		return dec.Int(&c.OAck)
	case "o_sr":
		return dec.Int(&c.OSr)
	case "o_csi1":
		return dec.Int(&c.OCsi1)
	case "modulation":
		return dec.Int(&c.Modulation)
	case "e":
		return dec.Int(&c.E)
	case "sr":
		var v int
		if err := dec.Int(&v); err != nil {
			return err
		}
		c.Sr = byte(v)
	case "ack":
		return dec.Array((*bitArray)(&c.Ack))
	case "expected_e":
		return dec.Array((*bitArray)(&c.ExpectedE))
	}
	return nil
}

// NKeys reports the unbounded field count, per gojay's convention for
// objects whose key set is not fixed in advance.
func (c *Case) NKeys() int { return 0 }

type bitArray []byte

func (b *bitArray) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var v int
	if err := dec.Int(&v); err != nil {
		return err
	}
	*b = append(*b, byte(v))
	return nil
}

// Set is a named collection of Case fixtures, implementing
// gojay.UnmarshalerJSONArray so a top-level JSON array decodes directly.
type Set []*Case

func (s *Set) UnmarshalJSONArray(dec *gojay.Decoder) error {
	c := &Case{}
	if err := dec.Object(c); err != nil {
		return err
	}
	*s = append(*s, c)
	return nil
}

// Load decodes a JSON array of Case fixtures from raw.
func Load(raw []byte) (Set, error) {
	var s Set
	if err := gojay.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("testvectors: decode: %w", err)
	}
	return s, nil
}
