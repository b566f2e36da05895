package mcnet

import (
	"fmt"
	"math"
	"net"
	"sync/atomic"

	"github.com/TheLukeGuy/minestodon/text"
	"go.uber.org/zap"
)

// ProtocolVersion is the single protocol number this server advertises.
const ProtocolVersion = 761

// ListingVersion names the protocol version shown in the status response.
type ListingVersion struct {
	Protocol int32  `json:"protocol"`
	Name     string `json:"name"`
}

// ListingPlayerSample is one entry in a status response's player sample.
type ListingPlayerSample struct {
	Name string    `json:"name"`
	ID   string    `json:"id"`
}

// ListingPlayers is the online/max/sample block of a status response.
type ListingPlayers struct {
	Current int32                 `json:"online"`
	Max     int32                 `json:"max"`
	Sample  []ListingPlayerSample `json:"sample,omitempty"`
}

// Listing is the immutable snapshot of server metadata sent in a status
// response and used to build legacy ping responses.
type Listing struct {
	Version ListingVersion `json:"version"`
	Players ListingPlayers `json:"players"`
	MOTD    text.Text      `json:"description"`
	Icon    string         `json:"favicon,omitempty"`
}

// Server is the state shared across every connection: the listener whose
// accept loop Serve runs, a monotone entity-id allocator, and the listing
// shown to status/legacy-ping clients.
type Server struct {
	listener     net.Listener
	nextEntityID int32
	log          *zap.Logger
}

// NewServer binds addr and returns a Server ready to accept connections.
func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return &Server{listener: listener, log: zap.L()}, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// NextEntityID atomically returns the current entity id and increments the
// counter, wrapping at int32's maximum.
func (s *Server) NextEntityID() int32 {
	for {
		current := atomic.LoadInt32(&s.nextEntityID)
		next := current + 1
		if current == math.MaxInt32 {
			next = 0
		}
		if atomic.CompareAndSwapInt32(&s.nextEntityID, current, next) {
			return current
		}
	}
}

// Listing builds a fresh snapshot of the server's status metadata.
func (s *Server) Listing() Listing {
	motd := text.Plain("Minestodon!").
		WithColor(mustHexColor("#6364ff")).
		WithBolded(true)
	return Listing{
		Version: ListingVersion{Protocol: ProtocolVersion, Name: "Minestodon 1.19.3"},
		Players: ListingPlayers{Current: 0, Max: 1},
		MOTD:    motd,
	}
}

func mustHexColor(hex string) text.Color {
	c, err := text.HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Serve runs the accept loop: one goroutine per accepted connection, each
// handed to a User driver. It blocks until the listener is closed.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return fmt.Errorf("accept failed: %w", err)
		}
		user := NewUser(NewConnection(conn), s)
		go user.Run()
	}
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	return s.listener.Close()
}
