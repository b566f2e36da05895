package mcnet

import (
	"bytes"
	"net"
	"testing"

	"github.com/TheLukeGuy/minestodon/wire"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return &Server{log: zap.NewNop()}
}

func writePacket(t *testing.T, conn net.Conn, id int32, body []byte) {
	t.Helper()
	frame, err := encodeFrame(id, body, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Write(frame); err != nil {
		t.Fatal(err)
	}
}

func TestModernStatusRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	srv := newTestServer(t)
	conn := NewConnection(server)
	conn.log = zap.NewNop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 3; i++ {
			if _, err := conn.Tick(srv); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	var handshakeBody bytes.Buffer
	wire.VarInt(761).WriteTo(&handshakeBody)
	wire.String("x").WriteTo(&handshakeBody)
	wire.UnsignedShort(25565).WriteTo(&handshakeBody)
	wire.VarInt(1).WriteTo(&handshakeBody)
	writePacket(t, client, 0x00, handshakeBody.Bytes())

	writePacket(t, client, 0x00, nil)

	statusResp := readPacketFromClient(t, client)
	if statusResp.id != 0x00 {
		t.Fatalf("got status response id 0x%x, want 0x00", statusResp.id)
	}

	var pingBody bytes.Buffer
	wire.Long(0x0123456789ABCDEF).WriteTo(&pingBody)
	writePacket(t, client, 0x01, pingBody.Bytes())

	pingResp := readPacketFromClient(t, client)
	if pingResp.id != 0x01 {
		t.Fatalf("got ping response id 0x%x, want 0x01", pingResp.id)
	}
	payload, err := wire.ReadLong(pingResp.body)
	if err != nil {
		t.Fatal(err)
	}
	if payload != 0x0123456789ABCDEF {
		t.Fatalf("got payload 0x%x, want 0x0123456789abcdef", payload)
	}

	<-done
}

func readPacketFromClient(t *testing.T, conn net.Conn) *decodedPacket {
	t.Helper()
	var p partialPacket
	buf := make([]byte, 1)
	for {
		if _, err := conn.Read(buf); err != nil {
			t.Fatal(err)
		}
		done, err := p.feed(buf[0])
		if err != nil {
			t.Fatal(err)
		}
		if done {
			break
		}
	}
	decoded, err := decodeFrame(p.body, false)
	if err != nil {
		t.Fatal(err)
	}
	return decoded
}
