// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/bin2hex/internal/config"
	"github.com/retroenv/bin2hex/internal/hexfile"
	"github.com/retroenv/bin2hex/internal/loader"
	"github.com/retroenv/bin2hex/internal/options"
	"github.com/retroenv/bin2hex/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// NewOutputWriter opens the destination of the encoded records. It is only called
// once all options and the input image have been validated.
type NewOutputWriter func() (io.WriteCloser, error)

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete conversion pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, encoderOpts hexfile.Options,
	newWriter NewOutputWriter) (hexfile.Stats, error) {

	if err := ctx.Err(); err != nil {
		return hexfile.Stats{}, err //nolint:wrapcheck // cancellation is checked by the caller
	}

	// invalid options must be rejected before any file is opened
	enc, err := config.CreateEncoder(p.logger, encoderOpts)
	if err != nil {
		return hexfile.Stats{}, err //nolint:wrapcheck // already wrapped
	}

	img, err := p.loader.Load(opts)
	if err != nil {
		return hexfile.Stats{}, fmt.Errorf("loading image: %w", err)
	}
	p.printInfo(opts, encoderOpts, img)

	return p.ExecuteWithImage(ctx, enc, img, opts, newWriter)
}

// ExecuteWithImage runs the conversion pipeline with a pre-loaded image.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, enc *hexfile.Encoder, img *loader.Image,
	opts options.Program, newWriter NewOutputWriter) (hexfile.Stats, error) {

	if err := enc.Validate(len(img.Data)); err != nil {
		return hexfile.Stats{}, fmt.Errorf("validating image %s: %w", img.Name, err)
	}
	if opts.Verify && opts.Output == "" {
		return hexfile.Stats{}, errors.New("can not verify console output")
	}
	if err := ctx.Err(); err != nil {
		return hexfile.Stats{}, err //nolint:wrapcheck // cancellation is checked by the caller
	}

	stats, err := p.runEncoder(enc, img, newWriter)
	if err != nil {
		return stats, err
	}
	p.logger.Debug("Encoded image",
		log.Int("records", stats.Records),
		log.Int("data_records", stats.DataRecords),
		log.Int("address_blocks", stats.AddressBlocks))

	if opts.Verify {
		if err := ctx.Err(); err != nil {
			return stats, err //nolint:wrapcheck // cancellation is checked by the caller
		}
		if err := p.verify(opts.Output, img, stats); err != nil {
			return stats, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return stats, nil
}

// runEncoder writes all records buffered to the output writer.
func (p *Pipeline) runEncoder(enc *hexfile.Encoder, img *loader.Image, newWriter NewOutputWriter) (hexfile.Stats, error) {
	writer, err := newWriter()
	if err != nil {
		return hexfile.Stats{}, fmt.Errorf("creating writer: %w", err)
	}

	buffered := bufio.NewWriter(writer)
	stats, err := enc.Encode(buffered, img.Data)
	if err == nil {
		err = buffered.Flush()
	}
	closeErr := writer.Close()

	if err != nil {
		return stats, fmt.Errorf("encoding: %w", err)
	}
	if closeErr != nil {
		return stats, fmt.Errorf("closing writer: %w", closeErr)
	}
	return stats, nil
}

func (p *Pipeline) verify(output string, img *loader.Image, stats hexfile.Stats) error {
	file, err := os.Open(output)
	if err != nil {
		return fmt.Errorf("opening output file %s: %w", output, err)
	}
	defer func() { _ = file.Close() }()

	if err := verification.VerifyOutput(p.logger, file, img.Data, stats); err != nil {
		return fmt.Errorf("verifying %s: %w", output, err)
	}
	return nil
}

// printInfo prints information about the image being converted.
func (p *Pipeline) printInfo(opts options.Program, encoderOpts hexfile.Options, img *loader.Image) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Converting binary image",
		log.String("file", img.Name),
		log.Int("size", len(img.Data)),
		log.String("mode", encoderOpts.Mode.Description()),
		log.Hex("offset", encoderOpts.Offset),
		log.Int("record_length", encoderOpts.RecordLength),
	)
}
