package hexfile

import "errors"

var (
	// ErrInvalidRecordLength is returned for a record length outside of 1 to 255.
	ErrInvalidRecordLength = errors.New("invalid record length")
	// ErrAddressSpaceOverflow is returned if the image does not fit into the address space of the mode.
	ErrAddressSpaceOverflow = errors.New("address space overflow")
)
