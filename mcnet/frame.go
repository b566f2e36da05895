package mcnet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/TheLukeGuy/minestodon/varint"
	"github.com/TheLukeGuy/minestodon/wire"
	"github.com/klauspost/compress/zlib"
)

// CompressionThreshold is the size, in bytes, of the encoded packet id plus
// body at or above which an outbound packet is zlib-compressed once
// compression is active.
const CompressionThreshold = 256

// partialState is which piece of a packet the assembler is currently
// waiting on.
type partialState int

const (
	awaitingLength partialState = iota
	awaitingBody
	complete
)

// partialPacket assembles one packet body from a byte stream one input byte
// at a time, so the connection never blocks on a partial read.
type partialPacket struct {
	state        partialState
	length       varint.PartialInt32
	remaining    int32
	accumulated  []byte
	body         []byte
}

// feed processes one more byte. It returns true once a full body is ready
// in p.body.
func (p *partialPacket) feed(b byte) (bool, error) {
	switch p.state {
	case awaitingLength:
		done, err := p.length.Next(b)
		if err != nil {
			return false, fmt.Errorf("malformed packet length: %w", err)
		}
		if !done {
			return false, nil
		}
		if p.length.Value < 0 {
			return false, fmt.Errorf("packet length is negative: %d", p.length.Value)
		}
		p.remaining = p.length.Value
		p.accumulated = make([]byte, 0, p.remaining)
		if p.remaining == 0 {
			p.body = p.accumulated
			p.state = complete
			return true, nil
		}
		p.state = awaitingBody
		return false, nil
	case awaitingBody:
		p.accumulated = append(p.accumulated, b)
		p.remaining--
		if p.remaining == 0 {
			p.body = p.accumulated
			p.state = complete
			return true, nil
		}
		return false, nil
	default:
		return true, nil
	}
}

func (p *partialPacket) reset() {
	*p = partialPacket{}
}

// decodedPacket is a fully assembled, decompressed packet ready for
// dispatch: a packet id and the remaining body as a reader.
type decodedPacket struct {
	id   int32
	body io.Reader
}

// decodeFrame takes a complete frame body (after the outer length prefix has
// already been consumed) and, if compression is active, strips the
// compression envelope before reading the packet id.
func decodeFrame(body []byte, compressed bool) (*decodedPacket, error) {
	r := bytes.NewReader(body)
	if compressed {
		uncompressedLen, err := wire.ReadVarInt(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read the uncompressed length: %w", err)
		}
		if uncompressedLen == 0 {
			return decodePayload(r)
		}
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open the zlib stream: %w", err)
		}
		defer zr.Close()
		payload := make([]byte, uncompressedLen)
		if _, err := io.ReadFull(zr, payload); err != nil {
			return nil, fmt.Errorf("failed to decompress the packet body: %w", err)
		}
		return decodePayload(bytes.NewReader(payload))
	}
	return decodePayload(r)
}

func decodePayload(r io.Reader) (*decodedPacket, error) {
	id, err := wire.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the packet id: %w", err)
	}
	return &decodedPacket{id: int32(id), body: r}, nil
}

// encodeFrame builds the full wire bytes for an outbound packet: id and body
// wrapped in the length prefix and, if active, the compression envelope.
func encodeFrame(packetID int32, body []byte, compressed bool) ([]byte, error) {
	var dataBuf bytes.Buffer
	if _, err := wire.VarInt(packetID).WriteTo(&dataBuf); err != nil {
		return nil, err
	}
	if _, err := dataBuf.Write(body); err != nil {
		return nil, err
	}

	if !compressed {
		return prefixLength(dataBuf.Bytes())
	}

	if dataBuf.Len() < CompressionThreshold {
		var inner bytes.Buffer
		if _, err := wire.VarInt(0).WriteTo(&inner); err != nil {
			return nil, err
		}
		inner.Write(dataBuf.Bytes())
		return prefixLength(inner.Bytes())
	}

	var compressedBuf bytes.Buffer
	zw := zlib.NewWriter(&compressedBuf)
	if _, err := zw.Write(dataBuf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to compress the packet body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish the zlib stream: %w", err)
	}

	var inner bytes.Buffer
	if _, err := wire.VarInt(dataBuf.Len()).WriteTo(&inner); err != nil {
		return nil, err
	}
	inner.Write(compressedBuf.Bytes())
	return prefixLength(inner.Bytes())
}

func prefixLength(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if _, err := wire.VarInt(len(data)).WriteTo(&out); err != nil {
		return nil, err
	}
	out.Write(data)
	return out.Bytes(), nil
}
