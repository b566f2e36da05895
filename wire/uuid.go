package wire

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// UUID is written as 16 big-endian bytes, split as two 64-bit halves. This
// matches google/uuid's own in-memory representation exactly, so encoding is
// just a raw byte write.
type UUID uuid.UUID

func (u UUID) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(u[:])
	return int64(n), err
}

func ReadUUID(r io.Reader) (UUID, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return UUID{}, fmt.Errorf("failed to read the UUID: %w", err)
	}
	return UUID(buf), nil
}
