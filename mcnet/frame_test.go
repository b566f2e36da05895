package mcnet

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeFrameUncompressedRoundTrip(t *testing.T) {
	body := []byte("hello")
	frame, err := encodeFrame(0x05, body, false)
	if err != nil {
		t.Fatal(err)
	}

	var p partialPacket
	var complete bool
	for _, b := range frame {
		done, err := p.feed(b)
		if err != nil {
			t.Fatal(err)
		}
		if done {
			complete = true
			break
		}
	}
	if !complete {
		t.Fatal("frame never completed")
	}

	decoded, err := decodeFrame(p.body, false)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.id != 0x05 {
		t.Fatalf("got id 0x%x, want 0x05", decoded.id)
	}
	got := make([]byte, len(body))
	if _, err := decoded.body.Read(got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("got %q, want %q", got, body)
	}
}

func TestEncodeFrameBelowThresholdIsLiteral(t *testing.T) {
	body := bytes.Repeat([]byte{0x42}, 10)
	frame, err := encodeFrame(0x01, body, true)
	if err != nil {
		t.Fatal(err)
	}

	var p partialPacket
	for _, b := range frame {
		if done, err := p.feed(b); err != nil {
			t.Fatal(err)
		} else if done {
			break
		}
	}
	if want := append([]byte{0x00, 0x01}, body...); !bytes.Equal(p.body, want) {
		t.Fatalf("got envelope %x, want a zero uncompressed length followed by the literal packet %x", p.body, want)
	}

	decoded, err := decodeFrame(p.body, true)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.id != 0x01 {
		t.Fatalf("got id 0x%x, want 0x01", decoded.id)
	}
}

func TestEncodeFrameAtOrAboveThresholdIsCompressed(t *testing.T) {
	body := bytes.Repeat([]byte{0x42}, CompressionThreshold+10)
	frame, err := encodeFrame(0x02, body, true)
	if err != nil {
		t.Fatal(err)
	}

	var p partialPacket
	for _, b := range frame {
		if done, err := p.feed(b); err != nil {
			t.Fatal(err)
		} else if done {
			break
		}
	}
	if p.body[0] == 0x00 {
		t.Fatal("got a zero uncompressed length, want a compressed envelope")
	}

	decoded, err := decodeFrame(p.body, true)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.id != 0x02 {
		t.Fatalf("got id 0x%x, want 0x02", decoded.id)
	}
	got := make([]byte, len(body))
	if _, err := decoded.body.Read(got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Fatal("decompressed body mismatch")
	}
}
