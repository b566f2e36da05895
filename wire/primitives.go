// Package wire implements the typed field codecs used by Minecraft packet
// bodies: booleans, big-endian fixed-width integers, length-prefixed
// strings, UUIDs, identifiers, packed block positions, and the NBT/JSON
// payloads carried by a handful of packets.
//
// Every type implements io.WriterTo and, except NBT (which is only ever
// written), has a matching ReadFrom-style decoder, following the same shape
// the teacher repo used for its own packet field types.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/TheLukeGuy/minestodon/varint"
)

// Bool is a single-byte boolean field; any non-zero byte reads as true.
type Bool bool

func (b Bool) WriteTo(w io.Writer) (int64, error) {
	v := byte(0)
	if b {
		v = 1
	}
	n, err := w.Write([]byte{v})
	return int64(n), err
}

func ReadBool(r io.Reader) (Bool, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return false, fmt.Errorf("failed to read the boolean byte: %w", err)
	}
	return Bool(buf[0] != 0), nil
}

// Byte is a signed 8-bit integer.
type Byte int8

func (b Byte) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte{byte(b)})
	return int64(n), err
}

func ReadByte(r io.Reader) (Byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read the byte: %w", err)
	}
	return Byte(buf[0]), nil
}

// UnsignedByte is an unsigned 8-bit integer.
type UnsignedByte uint8

func (u UnsignedByte) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte{byte(u)})
	return int64(n), err
}

func ReadUnsignedByte(r io.Reader) (UnsignedByte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read the unsigned byte: %w", err)
	}
	return UnsignedByte(buf[0]), nil
}

// UnsignedShort is a big-endian unsigned 16-bit integer, used for the
// handshake server port.
type UnsignedShort uint16

func (u UnsignedShort) WriteTo(w io.Writer) (int64, error) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(u))
	n, err := w.Write(buf[:])
	return int64(n), err
}

func ReadUnsignedShort(r io.Reader) (UnsignedShort, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read the unsigned short: %w", err)
	}
	return UnsignedShort(binary.BigEndian.Uint16(buf[:])), nil
}

// Int is a big-endian signed 32-bit integer.
type Int int32

func (i Int) WriteTo(w io.Writer) (int64, error) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(i))
	n, err := w.Write(buf[:])
	return int64(n), err
}

func ReadInt(r io.Reader) (Int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read the int: %w", err)
	}
	return Int(binary.BigEndian.Uint32(buf[:])), nil
}

// Long is a big-endian signed 64-bit integer.
type Long int64

func (l Long) WriteTo(w io.Writer) (int64, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(l))
	n, err := w.Write(buf[:])
	return int64(n), err
}

func ReadLong(r io.Reader) (Long, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read the long: %w", err)
	}
	return Long(binary.BigEndian.Uint64(buf[:])), nil
}

// Float is a big-endian IEEE-754 single-precision float.
type Float float32

func (f Float) WriteTo(w io.Writer) (int64, error) {
	return Int(math.Float32bits(float32(f))).WriteTo(w)
}

func ReadFloat(r io.Reader) (Float, error) {
	v, err := ReadInt(r)
	if err != nil {
		return 0, err
	}
	return Float(math.Float32frombits(uint32(v))), nil
}

// Double is a big-endian IEEE-754 double-precision float.
type Double float64

func (d Double) WriteTo(w io.Writer) (int64, error) {
	return Long(math.Float64bits(float64(d))).WriteTo(w)
}

func ReadDouble(r io.Reader) (Double, error) {
	v, err := ReadLong(r)
	if err != nil {
		return 0, err
	}
	return Double(math.Float64frombits(uint64(v))), nil
}

// VarInt is a variable-length signed 32-bit integer.
type VarInt int32

func (v VarInt) WriteTo(w io.Writer) (int64, error) {
	return varint.WriteTo32(w, int32(v))
}

func ReadVarInt(r io.Reader) (VarInt, error) {
	v, err := varint.Read32(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read the VarInt: %w", err)
	}
	return VarInt(v), nil
}

// VarLong is a variable-length signed 64-bit integer.
type VarLong int64

func (v VarLong) WriteTo(w io.Writer) (int64, error) {
	return varint.WriteTo64(w, int64(v))
}

func ReadVarLong(r io.Reader) (VarLong, error) {
	v, err := varint.Read64(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read the VarLong: %w", err)
	}
	return VarLong(v), nil
}
