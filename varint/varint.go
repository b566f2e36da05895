// Package varint implements the variable-width integer encoding used to
// prefix every Minecraft packet: seven payload bits per byte, with the high
// bit marking a continuation byte.
package varint

import (
	"errors"
	"fmt"
	"io"
)

// MaxBytes32 is the longest a VarInt encoding a 32-bit value may be.
const MaxBytes32 = 5

// MaxBytes64 is the longest a VarInt encoding a 64-bit value may be.
const MaxBytes64 = 10

// ErrTooLong is returned when a VarInt encoding exceeds its maximum length
// without a terminating byte.
var ErrTooLong = errors.New("varint: value is too long")

// Len32 returns the number of bytes needed to encode v.
func Len32(v int32) int {
	n := 1
	u := uint32(v)
	for u >>= 7; u != 0; u >>= 7 {
		n++
	}
	return n
}

// Len64 returns the number of bytes needed to encode v.
func Len64(v int64) int {
	n := 1
	u := uint64(v)
	for u >>= 7; u != 0; u >>= 7 {
		n++
	}
	return n
}

// Encode32 appends the VarInt encoding of v to buf and returns the result.
func Encode32(buf []byte, v int32) []byte {
	u := uint32(v)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if u == 0 {
			return buf
		}
	}
}

// Encode64 appends the VarLong encoding of v to buf and returns the result.
func Encode64(buf []byte, v int64) []byte {
	u := uint64(v)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if u == 0 {
			return buf
		}
	}
}

// WriteTo32 writes the VarInt encoding of v to w.
func WriteTo32(w io.Writer, v int32) (int64, error) {
	buf := Encode32(make([]byte, 0, MaxBytes32), v)
	n, err := w.Write(buf)
	return int64(n), err
}

// WriteTo64 writes the VarLong encoding of v to w.
func WriteTo64(w io.Writer, v int64) (int64, error) {
	buf := Encode64(make([]byte, 0, MaxBytes64), v)
	n, err := w.Write(buf)
	return int64(n), err
}

func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Read32 decodes a single VarInt from r.
func Read32(r io.Reader) (int32, error) {
	var p PartialInt32
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, fmt.Errorf("varint: failed to read the next byte: %w", err)
		}
		done, err := p.Next(b)
		if err != nil {
			return 0, err
		}
		if done {
			return p.Value, nil
		}
	}
}

// Read64 decodes a single VarLong from r.
func Read64(r io.Reader) (int64, error) {
	var p PartialInt64
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, fmt.Errorf("varint: failed to read the next byte: %w", err)
		}
		done, err := p.Next(b)
		if err != nil {
			return 0, err
		}
		if done {
			return p.Value, nil
		}
	}
}

// PartialInt32 is an incremental VarInt decoder, fed one byte at a time so
// the frame assembler never has to block waiting for the rest of a packet
// that hasn't arrived yet.
type PartialInt32 struct {
	Value  int32
	nbytes int
	done   bool
}

// Next feeds the next byte to the decoder. It returns true once the value is
// complete; calling Next again after that is a no-op returning true.
func (p *PartialInt32) Next(b byte) (bool, error) {
	if p.done {
		return true, nil
	}
	if p.nbytes == MaxBytes32 {
		return false, fmt.Errorf("varint: %w (max %d bytes for a 32-bit value)", ErrTooLong, MaxBytes32)
	}
	p.Value |= int32(b&0x7f) << (7 * p.nbytes)
	p.nbytes++
	if b&0x80 == 0 {
		p.done = true
		return true, nil
	}
	return false, nil
}

// PartialInt64 is the 64-bit analogue of PartialInt32.
type PartialInt64 struct {
	Value  int64
	nbytes int
	done   bool
}

// Next feeds the next byte to the decoder. It returns true once the value is
// complete; calling Next again after that is a no-op returning true.
func (p *PartialInt64) Next(b byte) (bool, error) {
	if p.done {
		return true, nil
	}
	if p.nbytes == MaxBytes64 {
		return false, fmt.Errorf("varint: %w (max %d bytes for a 64-bit value)", ErrTooLong, MaxBytes64)
	}
	p.Value |= int64(b&0x7f) << (7 * p.nbytes)
	p.nbytes++
	if b&0x80 == 0 {
		p.done = true
		return true, nil
	}
	return false, nil
}
