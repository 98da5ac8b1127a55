package verification

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/bin2hex/internal/hexfile"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func encodeImage(t *testing.T, opts hexfile.Options, data []byte) ([]byte, hexfile.Stats) {
	t.Helper()

	enc, err := hexfile.New(opts)
	assert.NoError(t, err)

	var buf bytes.Buffer
	stats, err := enc.Encode(&buf, data)
	assert.NoError(t, err)
	return buf.Bytes(), stats
}

func testData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i ^ i>>8)
	}
	return data
}

func TestVerifyOutput(t *testing.T) {
	tests := []struct {
		name string
		opts hexfile.Options
		size int
	}{
		{name: "single byte", opts: hexfile.Options{RecordLength: 16}, size: 1},
		{name: "empty image", opts: hexfile.Options{Offset: 0x100, RecordLength: 16}, size: 0},
		{name: "multiple blocks", opts: hexfile.Options{Offset: 0x08000000, RecordLength: 32}, size: 3*hexfile.BlockSize + 5},
		{name: "unaligned record length", opts: hexfile.Options{Offset: 0xFFF0, RecordLength: 255}, size: 2 * hexfile.BlockSize},
		{name: "segment first block", opts: hexfile.Options{Offset: 0x100, RecordLength: 16, Mode: hexfile.Segment}, size: 0x1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.NewTestLogger(t)
			data := testData(tt.size)
			output, stats := encodeImage(t, tt.opts, data)

			err := VerifyOutput(logger, bytes.NewReader(output), data, stats)
			assert.NoError(t, err)
		})
	}
}

func TestVerifyOutputMismatch(t *testing.T) {
	logger := log.NewTestLogger(t)
	data := testData(64)
	output, stats := encodeImage(t, hexfile.Options{RecordLength: 16}, data)

	t.Run("changed input", func(t *testing.T) {
		changed := bytes.Clone(data)
		changed[10] ^= 0xFF

		err := VerifyOutput(logger, bytes.NewReader(output), changed, stats)
		assert.ErrorContains(t, err, "1 offset mismatches")
	})

	t.Run("shorter input", func(t *testing.T) {
		err := VerifyOutput(logger, bytes.NewReader(output), data[:32], stats)
		assert.ErrorContains(t, err, "mismatched lengths")
	})

	t.Run("wrong start address", func(t *testing.T) {
		moved := stats
		moved.StartAddress = 0x10

		err := VerifyOutput(logger, bytes.NewReader(output), data, moved)
		assert.ErrorContains(t, err, "start address mismatch")
	})

	t.Run("corrupted checksum", func(t *testing.T) {
		corrupted := strings.Replace(string(output), ":00000001FF", ":00000001FE", 1)

		err := VerifyOutput(logger, strings.NewReader(corrupted), data, stats)
		assert.ErrorContains(t, err, "decoding output")
	})
}

func TestVerifyOutputSegmentLimit(t *testing.T) {
	logger := log.NewTestLogger(t)
	data := testData(hexfile.BlockSize + 1)
	output, stats := encodeImage(t, hexfile.Options{RecordLength: 16, Mode: hexfile.Segment}, data)

	err := VerifyOutput(logger, bytes.NewReader(output), data, stats)
	assert.ErrorContains(t, err, "can not verify segment mode output")
}
