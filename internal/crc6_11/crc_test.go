package crc6_11_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srsnr/uci-nr/internal/crc6_11"
)

func TestAttachAndVerify_Crc6(t *testing.T) {
	c := crc6_11.New6()
	buf := make([]byte, 32+c.Len())
	payload := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}
	copy(buf, payload)
	length := c.Attach(buf, len(payload))
	assert.Equal(t, len(payload)+c.Len(), length)

	got := c.Checksum(buf[:len(payload)], len(payload))
	var recv uint32
	for i := 0; i < c.Len(); i++ {
		recv = recv<<1 | uint32(buf[len(payload)+i])
	}
	assert.Equal(t, got, recv)
}

func TestAttachAndVerify_Crc11(t *testing.T) {
	c := crc6_11.New11()
	assert.Equal(t, 11, c.Len())

	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i % 2)
	}
	buf := make([]byte, len(payload)+c.Len())
	copy(buf, payload)
	c.Attach(buf, len(payload))

	payload[3] ^= 1
	buf2 := make([]byte, len(payload)+c.Len())
	copy(buf2, payload)
	c.Attach(buf2, len(payload))
	assert.NotEqual(t, buf[len(payload):], buf2[len(payload):], "a flipped bit must change the checksum")
}
