package zbor

import "encoding/binary"

// head is the parsed result of a single CBOR head byte plus its argument
// encoding, per spec §4.1.
type head struct {
	major   uint8
	addInfo uint8
	arg     uint64
}

// readHead parses the CBOR item head at data[pos:] and returns it along
// with the cursor position immediately after the head (one byte past the
// head byte itself, or past the trailing argument bytes for ai >= 24).
//
// Unlike the teacher's readUintCore, which assumes a specific expected
// major type and defers bounds checking to its caller, readHead is
// major-type-agnostic (the decoder dispatches on the result) and bounds
// checks every byte it reads, returning KindMalformed rather than
// panicking or reading out of bounds — spec §4.1 permits this defensive
// behavior explicitly, and spec §9 flags it as a required hardening
// point.
func readHead(data []byte, pos int) (h head, next int, err error) {
	if pos < 0 || pos >= len(data) {
		return head{}, pos, errMalformed("head: no bytes remaining")
	}
	major, addInfo := splitHead(data[pos])
	pos++

	switch {
	case addInfo <= addInfoDirectMax:
		return head{major: major, addInfo: addInfo, arg: uint64(addInfo)}, pos, nil
	case addInfo == addInfoUint8:
		if pos+1 > len(data) {
			return head{}, pos, errMalformed("head: truncated 1-byte argument")
		}
		return head{major: major, addInfo: addInfo, arg: uint64(data[pos])}, pos + 1, nil
	case addInfo == addInfoUint16:
		if pos+2 > len(data) {
			return head{}, pos, errMalformed("head: truncated 2-byte argument")
		}
		return head{major: major, addInfo: addInfo, arg: uint64(binary.BigEndian.Uint16(data[pos:]))}, pos + 2, nil
	case addInfo == addInfoUint32:
		if pos+4 > len(data) {
			return head{}, pos, errMalformed("head: truncated 4-byte argument")
		}
		return head{major: major, addInfo: addInfo, arg: uint64(binary.BigEndian.Uint32(data[pos:]))}, pos + 4, nil
	case addInfo == addInfoUint64:
		if pos+8 > len(data) {
			return head{}, pos, errMalformed("head: truncated 8-byte argument")
		}
		return head{major: major, addInfo: addInfo, arg: binary.BigEndian.Uint64(data[pos:])}, pos + 8, nil
	case addInfo >= addInfoReservedLo && addInfo <= addInfoReservedHi:
		return head{}, pos, errReserved(addInfo)
	default: // addInfo == addInfoIndefinite
		return head{}, pos, errUnsupported("indefinite-length items are not supported")
	}
}
