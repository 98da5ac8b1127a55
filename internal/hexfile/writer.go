package hexfile

import (
	"fmt"
	"io"
)

const hexDigits = "0123456789ABCDEF"

// longest possible line: marker, count, address, type, 255 payload bytes, checksum and newline.
const maxLineLength = 1 + 2*(1+2+1+MaxRecordLength+1) + 1

// RecordWriter builds single records and writes every finished line to the sink.
// A record is written using the call sequence Begin, Word (address field),
// Byte (record type), Byte or Bytes for the payload and End.
type RecordWriter struct {
	writer  io.Writer
	sum     checksum
	line    []byte
	records int
}

// NewRecordWriter returns a record writer that outputs to the given writer.
func NewRecordWriter(writer io.Writer) *RecordWriter {
	return &RecordWriter{
		writer: writer,
		line:   make([]byte, 0, maxLineLength),
	}
}

// Begin starts a new record with the given payload byte count.
func (w *RecordWriter) Begin(byteCount byte) {
	w.sum.reset()
	w.line = append(w.line[:0], ':')
	w.Byte(byteCount)
}

// Byte emits a single byte as two hex digits and adds it to the checksum.
func (w *RecordWriter) Byte(b byte) {
	w.line = append(w.line, hexDigits[b>>4], hexDigits[b&0x0F])
	w.sum.add(b)
}

// Word emits a 16 bit value in big endian byte order.
func (w *RecordWriter) Word(word uint16) {
	w.Byte(byte(word >> 8))
	w.Byte(byte(word))
}

// Bytes emits all given bytes.
func (w *RecordWriter) Bytes(data []byte) {
	for _, b := range data {
		w.Byte(b)
	}
}

// End emits the checksum, terminates the line and writes it to the sink.
func (w *RecordWriter) End() error {
	w.Byte(w.sum.value())
	w.line = append(w.line, '\n')

	if _, err := w.writer.Write(w.line); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	w.records++
	return nil
}

// Records returns the number of records written so far.
func (w *RecordWriter) Records() int {
	return w.records
}

// writeRecord writes a complete record with a zero address field and words as payload.
func (w *RecordWriter) writeRecord(typ RecordType, words ...uint16) error {
	w.Begin(byte(2 * len(words)))
	w.Word(0)
	w.Byte(byte(typ))
	for _, word := range words {
		w.Word(word)
	}
	return w.End()
}
