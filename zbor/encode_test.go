package zbor

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestEncodeChoosesShortestHead(t *testing.T) {
	cases := []struct {
		name string
		item Item
		hex  string
	}{
		{"direct-23", NewUint(23), "17"},
		{"uint8-24", NewUint(24), "1818"},
		{"uint8-255", NewUint(255), "18ff"},
		{"uint16-256", NewUint(256), "190100"},
		{"uint16-65535", NewUint(65535), "19ffff"},
		{"uint32-65536", NewUint(65536), "1a00010000"},
		{"uint32-max", NewUint(0xffffffff), "1affffffff"},
		{"uint64-2^32", NewUint(1 << 32), "1b0000000100000000"},
		{"neg-one", NewInt(-1), "20"},
		{"neg-25", NewInt(-25), "3818"}, // -25 = -1-24, magnitude 24
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.item)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if gotHex := hex.EncodeToString(got); gotHex != c.hex {
				t.Fatalf("Encode(%#v) = %s, want %s", c.item, gotHex, c.hex)
			}
		})
	}
}

func TestEncodeDecodeRoundTripsAllVariants(t *testing.T) {
	items := []Item{
		NewUint(0),
		NewInt(-1),
		NewUint(1 << 40),
		NewBytes([]byte{1, 2, 3}),
		NewBytes(nil),
		NewText("hello, cbor"),
		NewText(""),
		NewArray(),
		NewArray(NewUint(1), NewText("x"), NewArray(NewUint(2))),
		NewMap(),
		NewMap(Pair{Key: NewUint(1), Value: NewText("one")}),
		NewTag(0, NewText("2013-03-21T20:04:00Z")),
		NewFloat16FromValue(0.5),
		NewFloat32FromValue(3.14),
		NewFloat64FromValue(3.14159265358979),
		NewSimple(SimpleFalse),
		NewSimple(SimpleTrue),
		NewSimple(SimpleNull),
		NewSimple(SimpleUndefined),
	}
	for _, item := range items {
		encoded, err := Encode(item)
		if err != nil {
			t.Fatalf("Encode(%#v): %v", item, err)
		}
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(%#v)): %v", item, err)
		}
		if !Equal(item, decoded) {
			t.Fatalf("round trip mismatch: got %#v, want %#v", decoded, item)
		}
	}
}

func TestEncodeNilItemIsMalformed(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, ErrMalformed) {
		t.Fatalf("Encode(nil) error = %v, want KindMalformed", err)
	}
}
