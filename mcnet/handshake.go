package mcnet

import (
	"fmt"
	"io"

	"github.com/TheLukeGuy/minestodon/wire"
)

// handshakePacket is the single server-bound packet accepted in the
// Handshake state: it carries the client's advertised protocol version and
// which state to move into next.
type handshakePacket struct {
	protocol   int32
	serverAddr string
	serverPort uint16
	nextState  int32
}

func readHandshakePacket(r io.Reader, c *Connection) (ClientPacket, error) {
	protocol, err := wire.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the protocol version: %w", err)
	}
	addr, err := wire.ReadString(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the server address: %w", err)
	}
	if len(addr) > 255 {
		return nil, fmt.Errorf("server address exceeds 255 bytes")
	}
	port, err := wire.ReadUnsignedShort(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the server port: %w", err)
	}
	nextState, err := wire.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the next state: %w", err)
	}
	if nextState != 1 && nextState != 2 {
		return nil, fmt.Errorf("invalid next state %d, want 1 or 2", nextState)
	}
	return &handshakePacket{
		protocol:   int32(protocol),
		serverAddr: string(addr),
		serverPort: uint16(port),
		nextState:  int32(nextState),
	}, nil
}

func (p *handshakePacket) Handle(c *Connection, srv *Server) (Action, error) {
	c.advertisedProtocol = p.protocol
	switch p.nextState {
	case 1:
		c.setState(StateStatus)
	case 2:
		c.setState(StateLogin)
	}
	return DoNothing(), nil
}
