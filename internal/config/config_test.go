package config

import (
	"errors"
	"testing"

	"github.com/retroenv/bin2hex/internal/hexfile"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateEncoder(t *testing.T) {
	logger := log.NewTestLogger(t)

	enc, err := CreateEncoder(logger, hexfile.Options{RecordLength: 32, Mode: hexfile.Segment})
	assert.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = CreateEncoder(logger, hexfile.Options{RecordLength: 0, Mode: hexfile.Linear})
	assert.True(t, errors.Is(err, hexfile.ErrInvalidRecordLength))
	assert.ErrorContains(t, err, "creating linear encoder")
}
