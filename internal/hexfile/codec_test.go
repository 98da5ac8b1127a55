package hexfile

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAddressCodecs(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		address    uint32
		extended   string
		start      string
		maxAddress uint64
	}{
		{
			name:       "linear zero",
			mode:       Linear,
			address:    0,
			extended:   ":020000040000FA\n",
			start:      ":0400000500000000F7\n",
			maxAddress: MaxLinearAddress,
		},
		{
			name:       "linear high block",
			mode:       Linear,
			address:    0x08000000,
			extended:   ":020000040800F2\n",
			start:      ":0400000508000000EF\n",
			maxAddress: MaxLinearAddress,
		},
		{
			name:       "segment zero",
			mode:       Segment,
			address:    0,
			extended:   ":020000020000FC\n",
			start:      ":0400000300000000F9\n",
			maxAddress: MaxSegmentAddress,
		},
		{
			name:       "segment with offset",
			mode:       Segment,
			address:    0x0003F800,
			extended:   ":020000023000CC\n",
			start:      ":040000033000F800D1\n",
			maxAddress: MaxSegmentAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := NewAddressCodec(tt.mode)
			assert.NoError(t, err)
			assert.Equal(t, tt.mode, codec.Mode())
			assert.Equal(t, tt.maxAddress, codec.MaxAddress())

			var buf bytes.Buffer
			w := NewRecordWriter(&buf)
			assert.NoError(t, codec.ExtendedAddress(w, tt.address))
			assert.Equal(t, tt.extended, buf.String())

			buf.Reset()
			assert.NoError(t, codec.StartAddress(w, tt.address))
			assert.Equal(t, tt.start, buf.String())
		})
	}
}

func TestNewAddressCodecUnsupported(t *testing.T) {
	_, err := NewAddressCodec(Mode(7))
	assert.ErrorContains(t, err, "unsupported addressing mode")
}

func TestModeFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: Linear},
		{input: "linear", want: Linear},
		{input: "EIP", want: Linear},
		{input: "32", want: Linear},
		{input: "segment", want: Segment},
		{input: "Segmented", want: Segment},
		{input: "20", want: Segment},
		{input: "csip", want: Segment},
		{input: "16", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ModeFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmentOf(t *testing.T) {
	assert.Equal(t, uint16(0x3000), segmentOf(0x0003F800))
	assert.Equal(t, uint16(0xF000), segmentOf(0x000FFFFF))
	assert.Equal(t, uint16(0x0000), segmentOf(0x0000FFFF))
}
