// Package verification verifies that the generated output file recreates the input.
package verification

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
	"github.com/retroenv/bin2hex/internal/hexfile"
	"github.com/retroenv/retrogolib/log"
)

const maxReportedMismatches = 10

// VerifyOutput decodes the Intel HEX data of the reader and compares it to the input image.
func VerifyOutput(logger *log.Logger, reader io.Reader, input []byte, stats hexfile.Stats) error {
	// the decoder only understands linear address records, segment files
	// can be checked as long as they do not need any extended address.
	if stats.Mode == hexfile.Segment && stats.EndAddress > hexfile.BlockSize {
		return fmt.Errorf("can not verify %s mode output above address 0x%04X", stats.Mode, hexfile.BlockSize-1)
	}

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(reader); err != nil {
		return fmt.Errorf("decoding output: %w", err)
	}

	if err := checkStartAddress(mem, stats); err != nil {
		return err
	}

	segments := mem.GetDataSegments()
	if len(input) == 0 {
		if len(segments) != 0 {
			return fmt.Errorf("expected no data but found %d segments", len(segments))
		}
		return nil
	}
	if len(segments) != 1 {
		return fmt.Errorf("expected one contiguous data segment but found %d", len(segments))
	}

	segment := segments[0]
	if uint64(segment.Address) != stats.StartAddress {
		return fmt.Errorf("data starts at 0x%08X instead of 0x%08X", segment.Address, stats.StartAddress)
	}

	if err := checkBufferEqual(logger, input, segment.Data); err != nil {
		return fmt.Errorf("data mismatch: %w", err)
	}
	return nil
}

// checkStartAddress compares the start linear address record, segment files have none the decoder reads.
func checkStartAddress(mem *gohex.Memory, stats hexfile.Stats) error {
	if stats.Mode != hexfile.Linear {
		return nil
	}

	address, ok := mem.GetStartAddress()
	if !ok {
		return errors.New("missing start address record")
	}
	if uint64(address) != stats.StartAddress {
		return fmt.Errorf("start address mismatch, expected 0x%08X but got 0x%08X", stats.StartAddress, address)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
