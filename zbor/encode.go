package zbor

import "encoding/binary"

// Encode serializes item as a single CBOR item using the preferred
// (shortest-head) encoding of spec §4.3: every length and integer
// argument is written in the smallest of the five wire size classes that
// can hold it. This is "preferred serialization", not full canonical
// form — map key ordering and float-narrowing are left untouched, since
// spec.md lists deterministic/canonical encoding as a non-goal.
func Encode(item Item, opts ...Option) ([]byte, error) {
	if item == nil {
		return nil, errMalformed("encode: nil item")
	}
	c := newConfig(opts)
	buf := getByteBuffer()
	defer putByteBuffer(buf)

	if err := encodeItem(buf, item, c, 0); err != nil {
		return nil, err
	}
	return buf.bytes(), nil
}

func encodeItem(buf *byteBuffer, item Item, c *config, depth int) error {
	if c.maxDepth > 0 && depth > c.maxDepth {
		return errUnsupported("max encode depth exceeded")
	}

	switch v := item.(type) {
	case *IntItem:
		major := uint8(majorUint)
		if v.Negative {
			major = majorNegInt
		}
		writeHead(buf, major, v.Magnitude)
		return nil

	case *BytesItem:
		writeHead(buf, majorBytes, uint64(len(v.Data)))
		buf.write(v.Data)
		return nil

	case *TextItem:
		writeHead(buf, majorText, uint64(len(v.Data)))
		buf.write([]byte(v.Data))
		return nil

	case *ArrayItem:
		writeHead(buf, majorArray, uint64(len(v.Elems)))
		for _, e := range v.Elems {
			if err := encodeItem(buf, e, c, depth+1); err != nil {
				return err
			}
		}
		return nil

	case *MapItem:
		writeHead(buf, majorMap, uint64(len(v.Pairs)))
		for _, p := range v.Pairs {
			if err := encodeItem(buf, p.Key, c, depth+1); err != nil {
				return err
			}
			if err := encodeItem(buf, p.Value, c, depth+1); err != nil {
				return err
			}
		}
		return nil

	case *TagItem:
		writeHead(buf, majorTag, v.Number)
		return encodeItem(buf, v.Child, c, depth+1)

	case *FloatItem:
		return encodeFloat(buf, v)

	case *SimpleItem:
		return encodeSimple(buf, v)

	default:
		return errUnsupported("encode: unrecognized Item implementation")
	}
}

// writeHead appends the shortest head byte (plus trailing argument bytes,
// if any) that can represent arg under major, per spec §4.3's preferred
// encoding rule. Grounded on the teacher's appendUintCore, which picks
// the same five size classes for the same reason: a decoder reading this
// package's own output should never see an over-long argument encoding.
func writeHead(buf *byteBuffer, major uint8, arg uint64) {
	switch {
	case arg <= addInfoDirectMax:
		buf.writeByte(makeHead(major, uint8(arg)))
	case arg <= 0xff:
		buf.writeByte(makeHead(major, addInfoUint8))
		buf.writeByte(uint8(arg))
	case arg <= 0xffff:
		buf.writeByte(makeHead(major, addInfoUint16))
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(arg))
		buf.write(tmp[:])
	case arg <= 0xffffffff:
		buf.writeByte(makeHead(major, addInfoUint32))
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(arg))
		buf.write(tmp[:])
	default:
		buf.writeByte(makeHead(major, addInfoUint64))
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], arg)
		buf.write(tmp[:])
	}
}

func encodeFloat(buf *byteBuffer, f *FloatItem) error {
	switch f.Width {
	case Float16:
		buf.writeByte(makeHead(majorSimple, simpleFloat16))
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(f.Bits))
		buf.write(tmp[:])
	case Float32Width:
		buf.writeByte(makeHead(majorSimple, simpleFloat32))
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(f.Bits))
		buf.write(tmp[:])
	case Float64Width:
		buf.writeByte(makeHead(majorSimple, simpleFloat64))
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], f.Bits)
		buf.write(tmp[:])
	default:
		return errUnsupported("encode: unrecognized float width")
	}
	return nil
}

func encodeSimple(buf *byteBuffer, s *SimpleItem) error {
	switch s.Value {
	case SimpleFalse:
		buf.writeByte(makeHead(majorSimple, simpleFalse))
	case SimpleTrue:
		buf.writeByte(makeHead(majorSimple, simpleTrue))
	case SimpleNull:
		buf.writeByte(makeHead(majorSimple, simpleNull))
	case SimpleUndefined:
		buf.writeByte(makeHead(majorSimple, simpleUndef))
	default:
		return errUnsupported("encode: unrecognized simple value")
	}
	return nil
}
