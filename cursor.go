package minipng

import "encoding/binary"

// cursor reads forward through an in-memory buffer. It never seeks
// backwards and every read is bounds checked.
type cursor struct {
	b   []byte
	off int
}

func newCursor(b []byte) *cursor {
	return &cursor{b: b}
}

func (c *cursor) remaining() int {
	return len(c.b) - c.off
}

func (c *cursor) readU8() (byte, error) {
	if c.remaining() < 1 {
		return 0, malformed(ErrTruncatedInput, c.off, "need 1 byte, have 0")
	}
	b := c.b[c.off]
	c.off++
	return b, nil
}

func (c *cursor) readU32() (uint32, error) {
	b, err := c.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// readN returns the next n bytes. The returned slice aliases the buffer and
// has its capacity clipped so appending to it cannot clobber what follows.
func (c *cursor) readN(n uint32) ([]byte, error) {
	if uint64(n) > uint64(c.remaining()) {
		return nil, malformed(ErrTruncatedInput, c.off, "need %d bytes, have %d", n, c.remaining())
	}
	end := c.off + int(n)
	b := c.b[c.off:end:end]
	c.off = end
	return b, nil
}
