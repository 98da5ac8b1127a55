package hexfile

import (
	"fmt"
	"io"
)

// Options controls the encoding of an image.
type Options struct {
	Offset       uint64 // absolute address of the first image byte
	RecordLength int    // maximum payload bytes per data record
	Mode         Mode   // addressing mode
}

// Stats describes an encoded image.
type Stats struct {
	Mode          Mode
	StartAddress  uint64 // load offset, also written as start address record
	EndAddress    uint64 // first address after the image
	Size          int    // number of encoded image bytes
	RecordLength  int
	Records       int // all written records
	DataRecords   int
	AddressBlocks int // number of extended address records
}

// Encoder converts binary images to Intel HEX records.
// An encoder holds no state between calls and can be used concurrently.
type Encoder struct {
	codec        AddressCodec
	offset       uint64
	recordLength int
}

// cursor tracks the encoding position inside the image.
type cursor struct {
	address   uint64 // absolute address of the next byte
	remaining int    // bytes left to encode
}

// New returns an encoder for the given options.
func New(opts Options) (*Encoder, error) {
	if opts.RecordLength < 1 || opts.RecordLength > MaxRecordLength {
		return nil, fmt.Errorf("%w: %d (0x%02X) is not in range 1-%d",
			ErrInvalidRecordLength, opts.RecordLength, opts.RecordLength, MaxRecordLength)
	}

	codec, err := NewAddressCodec(opts.Mode)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		codec:        codec,
		offset:       opts.Offset,
		recordLength: opts.RecordLength,
	}, nil
}

// Validate checks that an image of the given size fits into the address space.
func (e *Encoder) Validate(size int) error {
	maxAddress := e.codec.MaxAddress()
	if e.offset > maxAddress || uint64(size) > maxAddress-e.offset {
		return fmt.Errorf("%w: load offset 0x%08X with %d bytes exceeds %s maximum address 0x%08X",
			ErrAddressSpaceOverflow, e.offset, size, e.codec.Mode(), maxAddress)
	}
	return nil
}

// Encode writes the complete Intel HEX representation of the image to the writer.
// Nothing is written if the image does not fit into the address space.
func (e *Encoder) Encode(writer io.Writer, data []byte) (Stats, error) {
	stats := Stats{
		Mode:         e.codec.Mode(),
		StartAddress: e.offset,
		RecordLength: e.recordLength,
	}
	if err := e.Validate(len(data)); err != nil {
		return stats, err
	}

	w := NewRecordWriter(writer)
	cur := cursor{
		address:   e.offset,
		remaining: len(data),
	}

	if err := e.codec.ExtendedAddress(w, uint32(cur.address)); err != nil {
		return stats, fmt.Errorf("writing extended address: %w", err)
	}
	stats.AddressBlocks++

	for cur.remaining > 0 {
		length := e.recordLength - int(cur.address%uint64(e.recordLength))
		// record lengths that do not divide the block size would otherwise cross the block end
		length = min(length, cur.remaining, BlockSize-int(cur.address%BlockSize))

		// data record addresses are 16 bit, announce every new block except the first one
		if cur.address != e.offset && cur.address%BlockSize == 0 {
			if err := e.codec.ExtendedAddress(w, uint32(cur.address)); err != nil {
				return stats, fmt.Errorf("writing extended address: %w", err)
			}
			stats.AddressBlocks++
		}

		start := int(cur.address - e.offset)
		if err := writeData(w, uint16(cur.address%BlockSize), data[start:start+length]); err != nil {
			return stats, err
		}
		stats.DataRecords++

		cur.address += uint64(length)
		cur.remaining -= length
	}

	if err := e.codec.StartAddress(w, uint32(e.offset)); err != nil {
		return stats, fmt.Errorf("writing start address: %w", err)
	}
	if err := w.writeRecord(EOFRecord); err != nil {
		return stats, fmt.Errorf("writing end of file: %w", err)
	}

	stats.EndAddress = cur.address
	stats.Size = len(data)
	stats.Records = w.Records()
	return stats, nil
}

func writeData(w *RecordWriter, address uint16, payload []byte) error {
	w.Begin(byte(len(payload)))
	w.Word(address)
	w.Byte(byte(DataRecord))
	w.Bytes(payload)
	if err := w.End(); err != nil {
		return fmt.Errorf("writing data at 0x%04X: %w", address, err)
	}
	return nil
}
