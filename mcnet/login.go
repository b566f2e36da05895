package mcnet

import (
	"fmt"
	"io"

	"github.com/TheLukeGuy/minestodon/text"
	"github.com/TheLukeGuy/minestodon/wire"
)

// loginStartProtocol760 is the last protocol version whose LoginStart body
// may carry an optional signature block between the name and the uuid.
const loginStartProtocol760 = 760

type loginStartPacket struct {
	username string
}

// readLoginStart decodes LoginStart's body, which differs by advertised
// protocol: 760 may carry an optional signature block between the name and
// the uuid, 761 never does.
func readLoginStart(r io.Reader, c *Connection) (ClientPacket, error) {
	name, err := wire.ReadString(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the username: %w", err)
	}
	if len(name) > 16 {
		return nil, fmt.Errorf("username exceeds 16 characters")
	}

	if c.advertisedProtocol <= loginStartProtocol760 {
		hasSignature, err := wire.ReadBool(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read the signature-present flag: %w", err)
		}
		if hasSignature {
			if _, err := wire.ReadLong(r); err != nil {
				return nil, fmt.Errorf("failed to read the signature expiration: %w", err)
			}
			if err := discardVarLenBytes(r); err != nil {
				return nil, fmt.Errorf("failed to read the public key: %w", err)
			}
			if err := discardVarLenBytes(r); err != nil {
				return nil, fmt.Errorf("failed to read the signature: %w", err)
			}
		}
	}

	// The uuid is prefixed by a presence flag and is optional on every
	// protocol this server accepts; it's unused regardless, since this
	// server assigns its own uuid v4 on join.
	hasUUID, err := wire.ReadBool(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the uuid-present flag: %w", err)
	}
	if hasUUID {
		if _, err := wire.ReadUUID(r); err != nil {
			return nil, fmt.Errorf("failed to read the uuid: %w", err)
		}
	}

	return &loginStartPacket{username: string(name)}, nil
}

func discardVarLenBytes(r io.Reader) error {
	length, err := wire.ReadVarInt(r)
	if err != nil {
		return err
	}
	buf := make([]byte, length)
	_, err = io.ReadFull(r, buf)
	return err
}

func (p *loginStartPacket) Handle(c *Connection, srv *Server) (Action, error) {
	return CreatePlayer(p.username), nil
}

func (c *Connection) sendSetCompression(threshold int32) error {
	return c.SendPacket(0x03, wire.VarInt(threshold))
}

type loginProperty struct {
	Name      string
	Value     string
	Signature string
}

func (p loginProperty) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := wire.String(p.Name).WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	n, err = wire.String(p.Value).WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	hasSig := p.Signature != ""
	n, err = wire.Bool(hasSig).WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	if hasSig {
		n, err = wire.String(p.Signature).WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type loginSuccess struct {
	uuid       wire.UUID
	name       string
	properties []loginProperty
}

func (l loginSuccess) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := l.uuid.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	n, err = wire.String(l.name).WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	n, err = wire.VarInt(len(l.properties)).WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	for _, prop := range l.properties {
		n, err = prop.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *Connection) sendLoginSuccess(id wire.UUID, name string) error {
	success := loginSuccess{uuid: id, name: name}
	return c.SendPacket(0x02, success)
}

func (c *Connection) sendLoginDisconnect(reason text.Text) error {
	return c.SendPacket(0x00, wire.JSON{Value: reason})
}
