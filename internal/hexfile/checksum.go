package hexfile

// checksum accumulates the record bytes modulo 256.
type checksum struct {
	sum byte
}

func (c *checksum) reset() {
	c.sum = 0
}

func (c *checksum) add(b byte) {
	c.sum += b
}

// value returns the byte that makes the sum of all accumulated bytes and itself zero.
func (c *checksum) value() byte {
	return -c.sum
}
