// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/bin2hex/internal/hexfile"
	"github.com/retroenv/bin2hex/internal/options"
	"github.com/retroenv/bin2hex/internal/pipeline"
	"github.com/retroenv/bin2hex/internal/report"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ErrOverwriteDeclined is returned if the user did not confirm overwriting an existing output file.
var ErrOverwriteDeclined = errors.New("will not overwrite existing file")

// Console streams used for the overwrite confirmation and the conversion report.
var (
	promptInput  *bufio.Reader = bufio.NewReader(os.Stdin)
	promptOutput io.Writer     = os.Stderr
	reportOutput io.Writer     = os.Stdout
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, encoderOpts hexfile.Options) error {
	pipe := pipeline.New(logger)

	stats, err := pipe.Execute(ctx, opts, encoderOpts, func() (io.WriteCloser, error) {
		return createWriter(opts)
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", opts.Input, err)
	}

	if opts.Quiet {
		return nil
	}

	// keep console hex output free of the report
	out := reportOutput
	if opts.Output == "" {
		out = promptOutput
	}
	r := report.Report{
		Input:  opts.Input,
		Output: opts.Output,
		Stats:  stats,
	}
	if err := r.Write(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		// never pick up output of a previous batch run
		files := matches[:0]
		for _, match := range matches {
			if !strings.EqualFold(filepath.Ext(match), ".hex") {
				files = append(files, match)
			}
		}
		return files, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".hex"
}

// ConfirmOverwrite asks whether the existing file should be replaced.
// Only the complete word yes confirms, any other answer declines.
// A single line is consumed from the input, the remaining answers stay buffered for following prompts.
func ConfirmOverwrite(input *bufio.Reader, output io.Writer, fileName string) (bool, error) {
	if _, err := fmt.Fprintf(output, "output file %s exists, overwrite it? (yes/N) ", fileName); err != nil {
		return false, fmt.Errorf("writing prompt: %w", err)
	}

	answer, err := input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	if !opts.Overwrite {
		if _, err := os.Stat(opts.Output); err == nil {
			ok, err := ConfirmOverwrite(promptInput, promptOutput, opts.Output)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%w %s", ErrOverwriteDeclined, opts.Output)
			}
		}
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("bin2hex - binary to Intel HEX converter",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
