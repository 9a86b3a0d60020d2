package uci_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srsnr/uci-nr/uci"
)

func TestNewUciCoder_MissingCollaborator(t *testing.T) {
	_, err := uci.NewUciCoder(uci.UciCoderOpts{})
	var uerr *uci.Error
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *uci.Error, got %T: %v", err, err)
	}
	assert.Equal(t, uci.InvalidInput, uerr.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidInput", uci.InvalidInput.String())
	assert.Equal(t, "Unsupported", uci.Unsupported.String())
	assert.Equal(t, "Unknown", uci.Kind(999).String())
}
