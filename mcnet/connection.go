package mcnet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// readBufferSize is how many bytes a single tick reads from the stream
// before handing control back to the caller.
const readBufferSize = 1024

// Connection owns one accepted TCP stream and everything needed to frame,
// decompress, and dispatch the bytes arriving on it.
type Connection struct {
	stream net.Conn

	partial          partialPacket
	definitelyModern bool
	seenFirstByte    bool

	// advertisedProtocol is set from the handshake packet and decides
	// which LoginStart body layout to expect: protocol 760 carries an
	// optional signature block, 761 never does.
	advertisedProtocol int32

	state      State
	compressed bool

	playerID *uuid.UUID

	log *zap.Logger
}

// NewConnection wraps an accepted stream in a fresh, Handshake-state
// Connection.
func NewConnection(stream net.Conn) *Connection {
	return &Connection{
		stream: stream,
		state:  StateHandshake,
		log:    zap.L().With(zap.Stringer("remoteAddr", stream.RemoteAddr())),
	}
}

func (c *Connection) State() State { return c.state }

func (c *Connection) setState(s State) {
	c.log.Debug("changing connection state", zap.Stringer("from", c.state), zap.Stringer("to", s))
	c.state = s
}

func (c *Connection) Close() error {
	return c.stream.Close()
}

// Tick reads up to readBufferSize bytes from the stream and feeds them
// through the frame assembler, returning the first non-DoNothing action
// produced by a handler. A zero-byte read reports an orderly peer close.
func (c *Connection) Tick(srv *Server) (Action, error) {
	buf := make([]byte, readBufferSize)
	n, err := c.stream.Read(buf)
	if err != nil {
		if err == io.EOF {
			return Close(), nil
		}
		return Action{}, fmt.Errorf("failed to read from the connection: %w", err)
	}
	if n == 0 {
		return Close(), nil
	}

	for i := 0; i < n; i++ {
		b := buf[i]

		if !c.definitelyModern && !c.seenFirstByte {
			c.seenFirstByte = true
			if b == legacyPingByte {
				rest := buf[i+1 : n]
				response := buildLegacyResponse(rest, srv.Listing())
				if _, err := c.stream.Write(response); err != nil {
					return Action{}, fmt.Errorf("failed to write the legacy ping response: %w", err)
				}
				_ = c.Close()
				return Close(), nil
			}
			c.definitelyModern = true
		}

		done, err := c.partial.feed(b)
		if err != nil {
			return Action{}, err
		}
		if !done {
			continue
		}

		body := c.partial.body
		c.partial.reset()

		decoded, err := decodeFrame(body, c.compressed)
		if err != nil {
			return Action{}, err
		}

		action, err := c.dispatch(decoded, srv)
		if err != nil {
			return Action{}, err
		}
		if action.IsClose() || action.IsCreatePlayer() {
			return action, nil
		}
	}

	return DoNothing(), nil
}

func (c *Connection) dispatch(decoded *decodedPacket, srv *Server) (Action, error) {
	table, ok := dispatchTables[c.state]
	if !ok {
		return Action{}, fmt.Errorf("mcnet: no dispatch table for state %s", c.state)
	}
	decode, ok := table[decoded.id]
	if !ok {
		return Action{}, fmt.Errorf("mcnet: %w: id 0x%02x in state %s", ErrUnknownPacketID, decoded.id, c.state)
	}
	packet, err := decode(decoded.body, c)
	if err != nil {
		return Action{}, fmt.Errorf("mcnet: failed to decode packet 0x%02x: %w", decoded.id, err)
	}
	return packet.Handle(c, srv)
}

// SendPacket builds the wire frame for a server-originated packet and
// writes it to the stream, honoring the current compression state.
func (c *Connection) SendPacket(packetID int32, body io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := body.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode packet 0x%02x: %w", packetID, err)
	}
	frame, err := encodeFrame(packetID, buf.Bytes(), c.compressed)
	if err != nil {
		return fmt.Errorf("failed to frame packet 0x%02x: %w", packetID, err)
	}
	if _, err := c.stream.Write(frame); err != nil {
		return fmt.Errorf("failed to write packet 0x%02x: %w", packetID, err)
	}
	return nil
}

// ErrUnknownPacketID is returned when a received packet id isn't in the
// current state's dispatch table.
var ErrUnknownPacketID = errors.New("unknown packet id")
