// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/bin2hex/internal/hexfile"
	"github.com/retroenv/bin2hex/internal/options"
)

// words that show the usage wherever they appear on the command line
var helpArguments = []string{"help", "-help", "--help"}

// ParseFlags parses command line flags and returns program and encoder options
func ParseFlags() (options.Program, hexfile.Options, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.Usage = func() {}
	var opts options.Program
	readOptionFlags(flags, &opts)

	if isHelpRequested(os.Args[1:]) {
		return opts, hexfile.Options{}, &UsageError{flags: flags}
	}

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, hexfile.Options{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, hexfile.Options{}, err
	}

	if err := assignPositional(&opts, args); err != nil {
		return opts, hexfile.Options{}, err
	}

	encoderOptions, err := createEncoderOptions(opts)
	if err != nil {
		return opts, hexfile.Options{}, err
	}

	return opts, encoderOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command line syntax and all flags.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: bin2hex [options] <infile> [outfile] [load offset] [record length]\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
	fmt.Println("Load offset and record length may be given as decimal or as hexadecimal with 0x prefix.")
	fmt.Printf("The largest load offset is %d (0x%08X), the largest record length is %d (0x%02X).\n\n",
		uint64(hexfile.MaxLinearAddress), uint64(hexfile.MaxLinearAddress), hexfile.MaxRecordLength, hexfile.MaxRecordLength)
}

func isHelpRequested(args []string) bool {
	for _, arg := range args {
		for _, help := range helpArguments {
			if strings.EqualFold(arg, help) {
				return true
			}
		}
	}
	return false
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 1 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to convert, please pass all options before the files", arg),
			}
		}
	}
	return nil
}

// assignPositional maps the positional arguments infile, outfile, load offset and record length.
// Values given by flags take precedence and are skipped.
func assignPositional(opts *options.Program, args []string) error {
	if opts.Batch == "" && opts.Input == "" && len(args) > 0 {
		opts.Input = args[0]
		args = args[1:]
	}
	if opts.Batch == "" && opts.Output == "" && len(args) > 0 {
		opts.Output = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		opts.Offset = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		opts.RecordLength = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		return &UsageError{msg: fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " "))}
	}
	return nil
}

// createEncoderOptions converts the command line values to encoder options.
func createEncoderOptions(opts options.Program) (hexfile.Options, error) {
	encoderOptions := options.NewEncoder()

	if opts.Offset != "" {
		offset, err := ParseNumber(opts.Offset)
		if err != nil {
			return hexfile.Options{}, &UsageError{msg: fmt.Sprintf("invalid load offset: %s", err)}
		}
		encoderOptions.Offset = offset
	}

	if opts.RecordLength != "" {
		length, err := ParseNumber(opts.RecordLength)
		if err != nil {
			return hexfile.Options{}, &UsageError{msg: fmt.Sprintf("invalid record length: %s", err)}
		}
		if length > math.MaxInt32 {
			return hexfile.Options{}, fmt.Errorf("%w: %s is too large", hexfile.ErrInvalidRecordLength, opts.RecordLength)
		}
		encoderOptions.RecordLength = int(length)
	}

	mode, err := hexfile.ModeFromString(opts.Mode)
	if err != nil {
		return hexfile.Options{}, &UsageError{msg: err.Error()}
	}
	encoderOptions.Mode = mode

	return encoderOptions, nil
}

// ParseNumber parses a decimal number or a hexadecimal number with 0x prefix.
func ParseNumber(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number '%s': %w", s, err)
	}
	return n, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the binary input file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .hex file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "convert a batch of files matching the given path and file mask with automatic .hex file naming, for example *.bin")
	flags.StringVar(&opts.Offset, "offset", "", "load offset of the first byte, decimal or hex with 0x prefix (default 0)")
	flags.StringVar(&opts.RecordLength, "reclen", "", "maximum data bytes per record, decimal or hex with 0x prefix (default 16)")
	flags.StringVar(&opts.Mode, "mode", "linear", "addressing mode: linear (32 bit EIP) or segment (20 bit CS:IP)")
	flags.BoolVar(&opts.Overwrite, "y", false, "overwrite existing output files without asking")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by decoding it and comparing it to the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
