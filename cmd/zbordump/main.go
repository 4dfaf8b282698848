// Command zbordump decodes hex-encoded CBOR items from stdin, one item per
// line, and prints each item's value-tree structure to stdout: one line per
// node, plus a "key:"/"value:" label line before each map entry's key and
// value. It exists for
// interactive poking at wire bytes, the same role the teacher's cborgen
// CLI filled for its generated code — this package has no code generator
// to wrap, so the only CLI surface left is a dump tool over the decoder
// itself.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ekoeppen/zbor/zbor"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "zbordump: %v\n", err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		data, err := hex.DecodeString(line)
		if err != nil {
			return fmt.Errorf("decode hex %q: %w", line, err)
		}
		item, err := zbor.Decode(data)
		if err != nil {
			return fmt.Errorf("decode %q: %w", line, err)
		}
		dump(out, item, 0)
	}
	return scanner.Err()
}

func dump(out *os.File, item zbor.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := item.(type) {
	case nil:
		fmt.Fprintf(out, "%snil\n", indent)
	default:
		switch {
		case zbor.IsInt(v):
			i := v.(*zbor.IntItem)
			fmt.Fprintf(out, "%sint %s\n", indent, i.BigInt())
		case zbor.IsBytes(v):
			b := v.(*zbor.BytesItem)
			fmt.Fprintf(out, "%sbytes %s\n", indent, hex.EncodeToString(b.Data))
		case zbor.IsText(v):
			t := v.(*zbor.TextItem)
			fmt.Fprintf(out, "%stext %q\n", indent, t.Data)
		case zbor.IsArray(v):
			a := v.(*zbor.ArrayItem)
			fmt.Fprintf(out, "%sarray[%d]\n", indent, len(a.Elems))
			for _, e := range a.Elems {
				dump(out, e, depth+1)
			}
		case zbor.IsMap(v):
			m := v.(*zbor.MapItem)
			fmt.Fprintf(out, "%smap[%d]\n", indent, len(m.Pairs))
			for _, p := range m.Pairs {
				fmt.Fprintf(out, "%s  key:\n", indent)
				dump(out, p.Key, depth+2)
				fmt.Fprintf(out, "%s  value:\n", indent)
				dump(out, p.Value, depth+2)
			}
		case zbor.IsTag(v):
			tg := v.(*zbor.TagItem)
			fmt.Fprintf(out, "%stag %d\n", indent, tg.Number)
			dump(out, tg.Child, depth+1)
		case zbor.IsFloat(v):
			f := v.(*zbor.FloatItem)
			fmt.Fprintf(out, "%sfloat(width=%d) %v\n", indent, f.Width, f.Float64())
		case zbor.IsSimple(v):
			s := v.(*zbor.SimpleItem)
			fmt.Fprintf(out, "%ssimple %d\n", indent, s.Value)
		}
	}
}
