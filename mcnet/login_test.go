package mcnet

import (
	"bytes"
	"net"
	"testing"

	"github.com/TheLukeGuy/minestodon/wire"
	"go.uber.org/zap"
)

// TestLoginAndCompressionHandoff drives handshake->login_start through the
// full login sequence and checks that compression flips on exactly where
// the protocol says it should: the set-compression packet itself is sent
// uncompressed, and everything from login success onward is compressed.
func TestLoginAndCompressionHandoff(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	srv := newTestServer(t)
	conn := NewConnection(server)
	conn.log = zap.NewNop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		u := NewUser(conn, srv)
		u.Run()
	}()

	var handshakeBody bytes.Buffer
	wire.VarInt(761).WriteTo(&handshakeBody)
	wire.String("x").WriteTo(&handshakeBody)
	wire.UnsignedShort(25565).WriteTo(&handshakeBody)
	wire.VarInt(2).WriteTo(&handshakeBody)
	writePacket(t, client, 0x00, handshakeBody.Bytes())

	// Protocol 761 never carries the optional signature block, and this
	// client omits the optional uuid entirely: username, then a single
	// false byte for the uuid-present flag.
	var loginBody bytes.Buffer
	wire.String("Notch").WriteTo(&loginBody)
	wire.Bool(false).WriteTo(&loginBody)
	writePacket(t, client, 0x00, loginBody.Bytes())

	setCompression := readUncompressedPacket(t, client)
	if setCompression.id != 0x03 {
		t.Fatalf("got packet id 0x%x, want 0x03 (set compression)", setCompression.id)
	}
	threshold, err := wire.ReadVarInt(setCompression.body)
	if err != nil {
		t.Fatal(err)
	}
	if threshold != CompressionThreshold {
		t.Fatalf("got threshold %d, want %d", threshold, CompressionThreshold)
	}

	loginSuccess := readCompressedPacket(t, client)
	if loginSuccess.id != 0x02 {
		t.Fatalf("got packet id 0x%x, want 0x02 (login success)", loginSuccess.id)
	}

	playLogin := readCompressedPacket(t, client)
	if playLogin.id != 0x24 {
		t.Fatalf("got packet id 0x%x, want 0x24 (play login)", playLogin.id)
	}

	brand := readCompressedPacket(t, client)
	if brand.id != 0x15 {
		t.Fatalf("got packet id 0x%x, want 0x15 (plugin message)", brand.id)
	}

	client.Close()
	server.Close()
	<-done
}

// TestReadLoginStartUUIDPresence checks that the optional uuid field is only
// read when the presence flag says it's there, for both a client that omits
// it and one that sends it, and that in neither case does the decoder touch
// a byte belonging to whatever follows in the stream.
func TestReadLoginStartUUIDPresence(t *testing.T) {
	conn := &Connection{advertisedProtocol: 761}
	sentinel := []byte{0xAB}

	t.Run("hasUUID=false", func(t *testing.T) {
		var body bytes.Buffer
		wire.String("Notch").WriteTo(&body)
		wire.Bool(false).WriteTo(&body)
		body.Write(sentinel)

		r := bytes.NewReader(body.Bytes())
		packet, err := readLoginStart(r, conn)
		if err != nil {
			t.Fatal(err)
		}
		if packet.(*loginStartPacket).username != "Notch" {
			t.Fatalf("got username %q, want %q", packet.(*loginStartPacket).username, "Notch")
		}
		assertNextByteIsSentinel(t, r, sentinel[0])
	})

	t.Run("hasUUID=true", func(t *testing.T) {
		var body bytes.Buffer
		wire.String("Notch").WriteTo(&body)
		wire.Bool(true).WriteTo(&body)
		var id wire.UUID
		id.WriteTo(&body)
		body.Write(sentinel)

		r := bytes.NewReader(body.Bytes())
		packet, err := readLoginStart(r, conn)
		if err != nil {
			t.Fatal(err)
		}
		if packet.(*loginStartPacket).username != "Notch" {
			t.Fatalf("got username %q, want %q", packet.(*loginStartPacket).username, "Notch")
		}
		assertNextByteIsSentinel(t, r, sentinel[0])
	})
}

func assertNextByteIsSentinel(t *testing.T, r *bytes.Reader, want byte) {
	t.Helper()
	got, err := r.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got next byte 0x%x, want sentinel 0x%x: decoder over/under-read the uuid field", got, want)
	}
	if r.Len() != 0 {
		t.Fatalf("got %d bytes left over, want 0", r.Len())
	}
}

func readUncompressedPacket(t *testing.T, conn net.Conn) *decodedPacket {
	t.Helper()
	return readFramedPacket(t, conn, false)
}

func readCompressedPacket(t *testing.T, conn net.Conn) *decodedPacket {
	t.Helper()
	return readFramedPacket(t, conn, true)
}

func readFramedPacket(t *testing.T, conn net.Conn, compressed bool) *decodedPacket {
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
	decoded, err := decodeFrame(p.body, compressed)
	if err != nil {
		t.Fatal(err)
	}
	return decoded
}
