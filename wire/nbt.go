package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
)

// NBT wraps an arbitrary Go value that encodes to the Minecraft "named
// binary tag" format, used only for the server-originated registries blob
// sent during play-login. Packets use the unnamed "network" NBT variant, not
// the file format's root name.
type NBT struct {
	Value interface{}
}

func (n NBT) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	enc := nbt.NewEncoder(&buf)
	enc.NetworkFormat(true)
	if err := enc.Encode(n.Value, ""); err != nil {
		return 0, fmt.Errorf("failed to encode NBT: %w", err)
	}
	written, err := w.Write(buf.Bytes())
	return int64(written), err
}
