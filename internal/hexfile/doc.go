// Package hexfile encodes raw binary images into the Intel HEX text format.
//
// # Record Format
//
// Every record is one line of uppercase ASCII hex digits:
//
//	:LLAAAATT[DD...]CC
//
// LL is the payload byte count, AAAA the 16 bit load offset field, TT the
// record type, DD the payload and CC the two's complement checksum over all
// preceding bytes of the record.
//
// # Addressing Modes
//
// Data records only carry the low 16 bits of an address. The upper bits are
// announced by extended address records whenever encoding enters a new
// 64 KiB block:
//   - Linear (32 bit EIP): extended linear address (04) and start linear
//     address (05) records, addresses up to 0xFFFFFFFF.
//   - Segment (20 bit CS:IP): extended segment address (02) and start
//     segment address (03) records, addresses up to 0x000FFFFF.
//
// # Output Sequence
//
// An encoded image is always written as:
//  1. Extended address record for the load offset
//  2. Data records, aligned to multiples of the record length, with an
//     extended address record before each new 64 KiB block
//  3. Start address record pointing at the load offset
//  4. End of file record
//
// # Usage Example
//
//	enc, err := hexfile.New(hexfile.Options{
//		Offset:       0x08000000,
//		RecordLength: 16,
//		Mode:         hexfile.Linear,
//	})
//	if err != nil {
//		return fmt.Errorf("creating encoder: %w", err)
//	}
//	stats, err := enc.Encode(w, data)
package hexfile
