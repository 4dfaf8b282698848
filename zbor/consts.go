package zbor

// CBOR major types (the top 3 bits of an item's head byte).
const (
	majorUint   = 0 // unsigned integer
	majorNegInt = 1 // negative integer
	majorBytes  = 2 // byte string
	majorText   = 3 // text string (UTF-8, not validated by this package)
	majorArray  = 4 // array
	majorMap    = 5 // map
	majorTag    = 6 // semantic tag
	majorSimple = 7 // floats, simple values, break
)

// Additional information values (the low 5 bits of an item's head byte).
const (
	addInfoDirectMax  = 23 // largest value encoded directly in the head byte
	addInfoUint8      = 24 // one extra byte follows, big-endian
	addInfoUint16     = 25 // two extra bytes follow, big-endian
	addInfoUint32     = 26 // four extra bytes follow, big-endian
	addInfoUint64     = 27 // eight extra bytes follow, big-endian
	addInfoReservedLo = 28 // 28..30 are reserved
	addInfoReservedHi = 30
	addInfoIndefinite = 31 // indefinite-length / break; unsupported here
)

// Simple-value selectors under major type 7, additional info 20..27.
const (
	simpleFalse   = 20
	simpleTrue    = 21
	simpleNull    = 22
	simpleUndef   = 23
	simpleFloat16 = 25
	simpleFloat32 = 26
	simpleFloat64 = 27
)

// makeHead packs a major type and additional-information value into a
// single CBOR head byte.
func makeHead(major, addInfo uint8) byte {
	return byte((major << 5) | (addInfo & 0x1f))
}

// splitHead extracts the major type and additional-information fields
// from a CBOR head byte.
func splitHead(b byte) (major, addInfo uint8) {
	return b >> 5, b & 0x1f
}
