package mcnet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/TheLukeGuy/minestodon/registry"
	"github.com/TheLukeGuy/minestodon/text"
	"github.com/TheLukeGuy/minestodon/wire"
)

// GameMode is the client-visible play mode; its wire form is a signed byte.
type GameMode int8

const (
	GameModeSurvival  GameMode = 0
	GameModeCreative  GameMode = 1
	GameModeAdventure GameMode = 2
	GameModeSpectator GameMode = 3
)

// PlayLogin is the play-state packet that hands a freshly promoted player
// the world list, registries, and spawn dimension it needs before it can
// render anything.
type PlayLogin struct {
	EntityID            int32
	Hardcore            bool
	GameMode            GameMode
	LastGameMode        *GameMode
	Worlds              []text.Identifier
	Registries          registry.Compound
	DimensionType       text.Identifier
	World               text.Identifier
	HashedSeed          int64
	MaxPlayers          int32
	ViewDistance        int32
	SimulationDistance  int32
	ReducedDebugInfo    bool
	RespawnScreen       bool
	DebugMode           bool
	FlatWorld           bool
	DeathPos            *DeathPosition
}

// DeathPosition names the dimension and block position a player last died
// at, carried optionally in PlayLogin.
type DeathPosition struct {
	Dimension text.Identifier
	Pos       wire.BlockPos
}

func (p PlayLogin) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(v io.WriterTo) error {
		n, err := v.WriteTo(w)
		total += n
		return err
	}

	if err := write(wire.Int(p.EntityID)); err != nil {
		return total, err
	}
	if err := write(wire.Bool(p.Hardcore)); err != nil {
		return total, err
	}
	if err := write(wire.Byte(p.GameMode)); err != nil {
		return total, err
	}
	lastGameMode := wire.Byte(-1)
	if p.LastGameMode != nil {
		lastGameMode = wire.Byte(*p.LastGameMode)
	}
	if err := write(lastGameMode); err != nil {
		return total, err
	}

	if err := write(wire.VarInt(len(p.Worlds))); err != nil {
		return total, err
	}
	for _, world := range p.Worlds {
		if err := write(world); err != nil {
			return total, err
		}
	}

	if err := write(wire.NBT{Value: p.Registries}); err != nil {
		return total, err
	}
	if err := write(p.DimensionType); err != nil {
		return total, err
	}
	if err := write(p.World); err != nil {
		return total, err
	}
	if err := write(wire.Long(p.HashedSeed)); err != nil {
		return total, err
	}
	if err := write(wire.VarInt(p.MaxPlayers)); err != nil {
		return total, err
	}
	if err := write(wire.VarInt(p.ViewDistance)); err != nil {
		return total, err
	}
	if err := write(wire.VarInt(p.SimulationDistance)); err != nil {
		return total, err
	}
	if err := write(wire.Bool(p.ReducedDebugInfo)); err != nil {
		return total, err
	}
	if err := write(wire.Bool(p.RespawnScreen)); err != nil {
		return total, err
	}
	if err := write(wire.Bool(p.DebugMode)); err != nil {
		return total, err
	}
	if err := write(wire.Bool(p.FlatWorld)); err != nil {
		return total, err
	}

	if err := write(wire.Bool(p.DeathPos != nil)); err != nil {
		return total, err
	}
	if p.DeathPos != nil {
		if err := write(p.DeathPos.Dimension); err != nil {
			return total, err
		}
		if err := write(p.DeathPos.Pos); err != nil {
			return total, err
		}
	}

	return total, nil
}

const brandChannel = "minecraft:brand"

// pluginMessage is a server-originated `{channel, data}` packet; a "brand"
// message advertises the server implementation name shown on the client's
// debug screen.
type pluginMessage struct {
	channel text.Identifier
	data    []byte
}

func (m pluginMessage) WriteTo(w io.Writer) (int64, error) {
	n1, err := m.channel.WriteTo(w)
	if err != nil {
		return n1, err
	}
	n2, err := w.Write(m.data)
	return n1 + int64(n2), err
}

func (c *Connection) sendPluginMessage(channel text.Identifier, data []byte) error {
	return c.SendPacket(0x15, pluginMessage{channel: channel, data: data})
}

func (c *Connection) sendBrand(brand string) error {
	var buf bytes.Buffer
	if _, err := wire.String(brand).WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode the server brand: %w", err)
	}
	return c.sendPluginMessage(text.MustIdentifier(brandChannel), buf.Bytes())
}

type syncPlayerPos struct {
	X, Y, Z          float64
	Yaw, Pitch       float32
	Flags            uint8
	TeleportID       int32
	Dismount         bool
}

func (s syncPlayerPos) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(v io.WriterTo) error {
		n, err := v.WriteTo(w)
		total += n
		return err
	}
	if err := write(wire.Double(s.X)); err != nil {
		return total, err
	}
	if err := write(wire.Double(s.Y)); err != nil {
		return total, err
	}
	if err := write(wire.Double(s.Z)); err != nil {
		return total, err
	}
	if err := write(wire.Float(s.Yaw)); err != nil {
		return total, err
	}
	if err := write(wire.Float(s.Pitch)); err != nil {
		return total, err
	}
	if err := write(wire.UnsignedByte(s.Flags)); err != nil {
		return total, err
	}
	if err := write(wire.VarInt(s.TeleportID)); err != nil {
		return total, err
	}
	if err := write(wire.Bool(s.Dismount)); err != nil {
		return total, err
	}
	return total, nil
}

func (c *Connection) sendSyncPlayerPos(pos syncPlayerPos) error {
	return c.SendPacket(0x38, pos)
}

type setSpawnPos struct {
	Pos   wire.BlockPos
	Angle float32
}

func (s setSpawnPos) WriteTo(w io.Writer) (int64, error) {
	n1, err := s.Pos.WriteTo(w)
	if err != nil {
		return n1, err
	}
	n2, err := wire.Float(s.Angle).WriteTo(w)
	return n1 + n2, err
}

func (c *Connection) sendSetSpawnPos(pos wire.BlockPos, angle float32) error {
	return c.SendPacket(0x4C, setSpawnPos{Pos: pos, Angle: angle})
}

func (c *Connection) sendPlayDisconnect(reason text.Text) error {
	return c.SendPacket(0x1A, wire.JSON{Value: reason})
}

// SendPlayLoginSequence sends the full set of play-state setup packets a
// vanilla client needs after login: PlayLogin, the server brand, an initial
// teleport to the spawn point, and the spawn position marker.
func (c *Connection) SendPlayLoginSequence(srv *Server) error {
	world := text.MustIdentifier("minecraft:world")
	overworld := text.MustIdentifier("minecraft:overworld")

	login := PlayLogin{
		EntityID:           srv.NextEntityID(),
		Hardcore:           false,
		GameMode:           GameModeAdventure,
		Worlds:             []text.Identifier{world},
		Registries:         registry.BuildCompound(),
		DimensionType:      overworld,
		World:              world,
		HashedSeed:         0,
		MaxPlayers:         0,
		ViewDistance:       32,
		SimulationDistance: 32,
		ReducedDebugInfo:   false,
		RespawnScreen:      true,
		DebugMode:          false,
		FlatWorld:          true,
	}
	if err := c.SendPacket(0x24, login); err != nil {
		return fmt.Errorf("failed to send the play-login packet: %w", err)
	}
	if err := c.sendBrand("Minestodon"); err != nil {
		return fmt.Errorf("failed to send the server brand: %w", err)
	}
	if err := c.sendSyncPlayerPos(syncPlayerPos{X: 0, Y: 64, Z: 0, TeleportID: 0}); err != nil {
		return fmt.Errorf("failed to send the initial player position: %w", err)
	}
	if err := c.sendSetSpawnPos(wire.BlockPos{X: 0, Y: 64, Z: 0}, 0); err != nil {
		return fmt.Errorf("failed to send the spawn position: %w", err)
	}
	return nil
}
