package text

import "testing"

func TestNearestNamedExactMatches(t *testing.T) {
	for i, info := range namedColors {
		hex, err := HexColor(rgbHex(info.r, info.g, info.b))
		if err != nil {
			t.Fatal(err)
		}
		got := hex.nearestNamed()
		// reset and white share RGB (255,255,255); either is an acceptable
		// argmin, but ties break toward the earlier enumeration entry.
		if info.r == 255 && info.g == 255 && info.b == 255 {
			if got != White {
				t.Fatalf("white-valued hex resolved to %v, want White (first in enumeration order)", got)
			}
			continue
		}
		if int(got) != i {
			t.Fatalf("hex %s resolved to %v, want %v", hex.hex, got, NamedColor(i))
		}
	}
}

func TestNearestNamedHexMinestodonBrand(t *testing.T) {
	hex, err := HexColor("#6364ff")
	if err != nil {
		t.Fatal(err)
	}
	got := hex.nearestNamed()
	if got != Blue && got != LightPurple {
		t.Fatalf("got %v, want a plausible purple/blue neighbor", got)
	}
}

func rgbHex(r, g, b uint8) string {
	const hexDigits = "0123456789abcdef"
	buf := [7]byte{'#'}
	buf[1], buf[2] = hexDigits[r>>4], hexDigits[r&0xf]
	buf[3], buf[4] = hexDigits[g>>4], hexDigits[g&0xf]
	buf[5], buf[6] = hexDigits[b>>4], hexDigits[b&0xf]
	return string(buf[:])
}
