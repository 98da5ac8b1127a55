// Package options contains the program options.
package options

import (
	"github.com/retroenv/bin2hex/internal/hexfile"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // binary file to convert
	Output string // Intel HEX file to write
	Batch  string // glob pattern of files to convert, output names are derived from the input
}

// Flags contains behavior options.
type Flags struct {
	Debug     bool // enable debug logging
	Overwrite bool // overwrite existing output files without asking
	Quiet     bool // suppress banner and report
	Verify    bool // decode the written file and compare it to the input
}

// Encoding contains the numeric encoding options as given on the command line.
type Encoding struct {
	Offset       string // load offset, decimal or 0x prefixed hex
	RecordLength string // data bytes per record, decimal or 0x prefixed hex
	Mode         string // addressing mode name
}

// Program options of the converter.
type Program struct {
	Parameters
	Flags
	Encoding
}

// NewEncoder returns encoder options with default values.
func NewEncoder() hexfile.Options {
	return hexfile.Options{
		RecordLength: hexfile.DefaultRecordLength,
		Mode:         hexfile.Linear,
	}
}
