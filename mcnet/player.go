package mcnet

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/TheLukeGuy/minestodon/wire"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// keepAliveInterval is how often a joined player receives a keep-alive
// packet. 15 seconds comfortably beats the 20-second vanilla client
// timeout.
const keepAliveInterval = 15 * time.Second

// Player is a Connection that has completed login and is in the Play
// state. Promotion from Connection to Player is one-way: once a User holds
// a Player, the bare Connection is no longer reachable on its own.
type Player struct {
	conn     *Connection
	id       uuid.UUID
	username string
	done     chan struct{}
}

// newPlayer promotes conn into a Player, taking ownership of it.
func newPlayer(conn *Connection, username string) *Player {
	id := uuid.New()
	conn.playerID = &id
	return &Player{conn: conn, id: id, username: username, done: make(chan struct{})}
}

func (p *Player) UUID() uuid.UUID   { return p.id }
func (p *Player) Username() string  { return p.username }

// finishJoining runs the Login->Play handoff: set compression, flip the
// connection's compressed flag, send login success, transition state, and
// run the play-login setup sequence.
func (p *Player) finishJoining(srv *Server) error {
	conn := p.conn

	if err := conn.sendSetCompression(CompressionThreshold); err != nil {
		return fmt.Errorf("failed to send set-compression: %w", err)
	}
	conn.compressed = true

	if err := conn.sendLoginSuccess(wire.UUID(p.id), p.username); err != nil {
		return fmt.Errorf("failed to send login success: %w", err)
	}

	conn.setState(StatePlay)

	if err := conn.SendPlayLoginSequence(srv); err != nil {
		return fmt.Errorf("failed to run the play-login setup sequence: %w", err)
	}

	go p.keepAlive()
	return nil
}

// keepAlive periodically pings the connection so the client doesn't time
// out; it exits once the player's done channel closes.
func (p *Player) keepAlive() {
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			if err := p.conn.SendPacket(0x1F, wire.Long(rand.Int63())); err != nil {
				zap.L().Debug("keep-alive failed, dropping player", zap.String("username", p.username), zap.Error(err))
				close(p.done)
				_ = p.conn.Close()
				return
			}
		}
	}
}
