package hexfile

import (
	"fmt"
	"strings"
)

// Mode selects the addressing records used to express addresses above 64 KiB.
type Mode int

// Supported addressing modes.
const (
	Linear  Mode = iota // 32 bit EIP addressing
	Segment             // 20 bit CS:IP addressing
)

// Highest address of each addressing mode.
const (
	MaxLinearAddress  = 0xFFFFFFFF
	MaxSegmentAddress = 0x000FFFFF
)

// ModeFromString returns the addressing mode for the given name.
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "linear", "32", "eip":
		return Linear, nil
	case "segment", "segmented", "20", "csip":
		return Segment, nil
	default:
		return Linear, fmt.Errorf("unsupported addressing mode '%s'", s)
	}
}

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Segment:
		return "segment"
	default:
		return "unknown"
	}
}

// Description returns a short human readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case Linear:
		return "32 bit EIP mode"
	case Segment:
		return "20 bit CS:IP mode"
	default:
		return "unknown mode"
	}
}

// AddressCodec writes the mode specific address records.
type AddressCodec interface {
	// Mode returns the addressing mode that the codec implements.
	Mode() Mode
	// MaxAddress returns the highest address that the codec can express.
	MaxAddress() uint64
	// ExtendedAddress writes the record that sets the base address for following data records.
	ExtendedAddress(w *RecordWriter, address uint32) error
	// StartAddress writes the record that contains the program start address.
	StartAddress(w *RecordWriter, address uint32) error
}

// NewAddressCodec returns the codec for the given addressing mode.
func NewAddressCodec(mode Mode) (AddressCodec, error) {
	switch mode {
	case Linear:
		return LinearCodec{}, nil
	case Segment:
		return SegmentCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported addressing mode %d", mode)
	}
}

// LinearCodec writes extended linear and start linear address records.
type LinearCodec struct{}

// Mode returns Linear.
func (LinearCodec) Mode() Mode { return Linear }

// MaxAddress returns the highest 32 bit address.
func (LinearCodec) MaxAddress() uint64 { return MaxLinearAddress }

// ExtendedAddress writes the upper 16 bits of the address.
func (LinearCodec) ExtendedAddress(w *RecordWriter, address uint32) error {
	return w.writeRecord(ExtendedLinearAddressRecord, uint16(address>>16))
}

// StartAddress writes the address as upper and lower 16 bit halves.
func (LinearCodec) StartAddress(w *RecordWriter, address uint32) error {
	return w.writeRecord(StartLinearAddressRecord, uint16(address>>16), uint16(address))
}

// SegmentCodec writes extended segment and start segment address records.
type SegmentCodec struct{}

// Mode returns Segment.
func (SegmentCodec) Mode() Mode { return Segment }

// MaxAddress returns the highest 20 bit address.
func (SegmentCodec) MaxAddress() uint64 { return MaxSegmentAddress }

// ExtendedAddress writes the segment of the 64 KiB block that contains the address.
func (SegmentCodec) ExtendedAddress(w *RecordWriter, address uint32) error {
	return w.writeRecord(ExtendedSegmentAddressRecord, segmentOf(address))
}

// StartAddress writes the address as CS:IP pair.
func (SegmentCodec) StartAddress(w *RecordWriter, address uint32) error {
	return w.writeRecord(StartSegmentAddressRecord, segmentOf(address), uint16(address))
}

// segmentOf returns the segment value whose base is the 64 KiB block of the address,
// 0x0003F800 results in segment 0x3000.
func segmentOf(address uint32) uint16 {
	return uint16((address >> 4) & 0xF000)
}
