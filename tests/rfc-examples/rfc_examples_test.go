// Package rfcexamples exercises zbor against vectors taken from, or
// modeled on, the worked examples of RFC 8949 Appendix A.
package rfcexamples

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ekoeppen/zbor/zbor"
)

type rfcExample struct {
	name string
	hex  string
	want zbor.Item
}

var rfcExamples = []rfcExample{
	{name: "text-a", hex: "6161", want: zbor.NewText("a")},
	{name: "zero", hex: "00", want: zbor.NewUint(0)},
	{name: "minus-one", hex: "20", want: zbor.NewInt(-1)},
	{name: "bytes-010203", hex: "43010203", want: zbor.NewBytes([]byte{1, 2, 3})},
	{
		name: "array-1-2-3",
		hex:  "83010203",
		want: zbor.NewArray(zbor.NewUint(1), zbor.NewUint(2), zbor.NewUint(3)),
	},
	{
		name: "map-a1-b2",
		hex:  "a2616101616202",
		want: zbor.NewMap(
			zbor.Pair{Key: zbor.NewText("a"), Value: zbor.NewUint(1)},
			zbor.Pair{Key: zbor.NewText("b"), Value: zbor.NewUint(2)},
		),
	},
	{
		name: "tag-epoch-datetime",
		hex:  "c11a514b67b0",
		want: zbor.NewTag(1, zbor.NewUint(1363896240)),
	},
	{name: "float-zero", hex: "fb0000000000000000", want: zbor.NewFloat64(0)},
	{name: "float-1.5-double", hex: "fb3ff8000000000000", want: zbor.NewFloat64FromValue(1.5)},
	{name: "simple-false", hex: "f4", want: zbor.NewSimple(zbor.SimpleFalse)},
	{name: "simple-true", hex: "f5", want: zbor.NewSimple(zbor.SimpleTrue)},
	{name: "simple-null", hex: "f6", want: zbor.NewSimple(zbor.SimpleNull)},
}

func TestRFCExamplesDecode(t *testing.T) {
	for _, ex := range rfcExamples {
		ex := ex
		t.Run(ex.name, func(t *testing.T) {
			msg, err := hex.DecodeString(ex.hex)
			if err != nil {
				t.Fatalf("bad hex %q: %v", ex.hex, err)
			}

			got, err := zbor.Decode(msg)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !zbor.Equal(got, ex.want) {
				t.Fatalf("Decode(%s) = %#v, want %#v", ex.hex, got, ex.want)
			}
		})
	}
}

func TestRFCExamplesRoundTrip(t *testing.T) {
	for _, ex := range rfcExamples {
		ex := ex
		t.Run(ex.name, func(t *testing.T) {
			out, err := zbor.Encode(ex.want)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got := hex.EncodeToString(out); got != ex.hex {
				t.Fatalf("Encode(%#v) = %s, want %s", ex.want, got, ex.hex)
			}
		})
	}
}

// Indefinite-length items are outside this package's supported subset
// (spec non-goal); the indefinite-length array "[_ 1, 2]" must fail decode rather
// than silently succeed or hang.
func TestIndefiniteArrayUnsupported(t *testing.T) {
	msg, err := hex.DecodeString("9f0102ff")
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	_, err = zbor.Decode(msg)
	if err == nil {
		t.Fatal("Decode of indefinite-length array succeeded, want error")
	}
	if !errors.Is(err, zbor.ErrUnsupported) {
		t.Fatalf("Decode error = %v, want KindUnsupported", err)
	}
}
