package mcnet

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/TheLukeGuy/minestodon/text"
)

func TestLegacyPre14Response(t *testing.T) {
	listing := Listing{
		Players: ListingPlayers{Current: 0, Max: 1},
		MOTD:    text.Plain("Minestodon"),
	}
	got := buildLegacyResponse(nil, listing)

	want := buildExpectedFrame("Minestodon§0§1")
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestLegacy14To16Response(t *testing.T) {
	listing := Listing{
		Version: ListingVersion{Protocol: 761, Name: "Minestodon 1.19.3"},
		Players: ListingPlayers{Current: 0, Max: 1},
		MOTD:    text.Plain("Minestodon"),
	}
	got := buildLegacyResponse([]byte{0x01}, listing)

	if got[0] != 0xFF {
		t.Fatalf("frame must start with 0xFF, got 0x%x", got[0])
	}
	length := binary.BigEndian.Uint16(got[1:3])
	payload := decodeUTF16BE(got[3:])
	if len(payload) != int(length) {
		t.Fatalf("declared length %d, got %d code units", length, len(payload))
	}
	want := "§1\x00761\x00Minestodon 1.19.3\x00Minestodon\x000\x001"
	if payload != want {
		t.Fatalf("got %q, want %q", payload, want)
	}
}

func buildExpectedFrame(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 1+2+len(units)*2)
	out[0] = 0xFF
	binary.BigEndian.PutUint16(out[1:3], uint16(len(units)))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[3+i*2:5+i*2], u)
	}
	return out
}

func decodeUTF16BE(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(b[i*2 : i*2+2])
	}
	return string(utf16.Decode(units))
}
