package wire

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// String is a VarInt-length-prefixed, UTF-8-encoded string field.
type String string

func (s String) WriteTo(w io.Writer) (int64, error) {
	data := []byte(s)
	n1, err := VarInt(len(data)).WriteTo(w)
	if err != nil {
		return n1, err
	}
	n2, err := w.Write(data)
	return n1 + int64(n2), err
}

// ReadString decodes a length-prefixed UTF-8 string. A negative declared
// length, or invalid UTF-8, fails the read; no upper bound is applied to the
// declared length.
func ReadString(r io.Reader) (String, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return "", fmt.Errorf("failed to read the string length: %w", err)
	}
	if length < 0 {
		return "", fmt.Errorf("string length is negative: %d", length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("failed to read %d string bytes: %w", length, err)
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("string is not valid UTF-8")
	}
	return String(buf), nil
}
