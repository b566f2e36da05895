package mcnet

import (
	"fmt"
	"io"

	"github.com/TheLukeGuy/minestodon/wire"
)

type statusRequestPacket struct{}

func readStatusRequest(r io.Reader, c *Connection) (ClientPacket, error) {
	return &statusRequestPacket{}, nil
}

func (p *statusRequestPacket) Handle(c *Connection, srv *Server) (Action, error) {
	listing := srv.Listing()
	if err := c.SendPacket(0x00, wire.JSON{Value: listing}); err != nil {
		return Action{}, fmt.Errorf("failed to send the status response: %w", err)
	}
	return DoNothing(), nil
}

type pingRequestPacket struct {
	payload int64
}

func readPingRequest(r io.Reader, c *Connection) (ClientPacket, error) {
	payload, err := wire.ReadLong(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the ping payload: %w", err)
	}
	return &pingRequestPacket{payload: int64(payload)}, nil
}

func (p *pingRequestPacket) Handle(c *Connection, srv *Server) (Action, error) {
	if err := c.SendPacket(0x01, wire.Long(p.payload)); err != nil {
		return Action{}, fmt.Errorf("failed to send the ping response: %w", err)
	}
	return Close(), nil
}
