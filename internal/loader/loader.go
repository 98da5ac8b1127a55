// Package loader handles binary image loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/bin2hex/internal/options"
)

// ErrSameFile is returned if the input and output name the same file.
var ErrSameFile = errors.New("source and destination files are the same")

// Image is a binary file loaded completely into memory.
type Image struct {
	Name string // file the image was loaded from
	Data []byte
}

// Loader handles loading binary images from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete input file of the options.
// It refuses to load if the output refers to the input file.
func (l *Loader) Load(opts options.Program) (*Image, error) {
	if err := CheckDistinct(opts.Input, opts.Output); err != nil {
		return nil, err
	}

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	img, err := l.LoadFromReader(opts.Input, file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	return img, nil
}

// LoadFromReader reads all data of the reader into an image.
func (l *Loader) LoadFromReader(name string, reader io.Reader) (*Image, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	return &Image{
		Name: name,
		Data: data,
	}, nil
}

// CheckDistinct returns ErrSameFile if both paths refer to the same file.
// An empty output refers to the console and is always distinct.
func CheckDistinct(input, output string) error {
	if output == "" {
		return nil
	}
	if filepath.Clean(input) == filepath.Clean(output) {
		return fmt.Errorf("%w: %s", ErrSameFile, input)
	}

	inStat, err := os.Stat(input)
	if err != nil {
		return nil //nolint:nilerr // a missing input is reported when opening it
	}
	outStat, err := os.Stat(output)
	if err != nil {
		return nil //nolint:nilerr // output does not exist yet
	}
	if os.SameFile(inStat, outStat) {
		return fmt.Errorf("%w: %s and %s", ErrSameFile, input, output)
	}
	return nil
}
