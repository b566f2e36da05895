package mcnet

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"unicode/utf16"
)

// legacyPingByte is the single byte (sent in place of a modern handshake)
// that identifies a pre-netty client probing the server list.
const legacyPingByte = 0xFE

// buildLegacyResponse renders the pre-1.4 or 1.4-1.6 ping response,
// depending on whether any bytes followed the initial 0xFE, and frames it
// as UTF-16BE.
func buildLegacyResponse(rest []byte, listing Listing) []byte {
	var payload string
	if len(rest) == 0 {
		payload = listing.MOTD.Plaintext() + "§" + strconv.Itoa(int(listing.Players.Current)) + "§" + strconv.Itoa(int(listing.Players.Max))
	} else {
		payload = fmt.Sprintf("§1\x00%d\x00%s\x00%s\x00%d\x00%d",
			listing.Version.Protocol,
			listing.Version.Name,
			listing.MOTD.Legacy(),
			listing.Players.Current,
			listing.Players.Max,
		)
	}
	return frameLegacy(payload)
}

// frameLegacy encodes s as UTF-16BE and wraps it in the legacy response
// envelope: 0xFF, a big-endian code-unit length, then the encoded bytes.
func frameLegacy(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 1+2+len(units)*2)
	out[0] = 0xFF
	binary.BigEndian.PutUint16(out[1:3], uint16(len(units)))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[3+i*2:5+i*2], u)
	}
	return out
}
