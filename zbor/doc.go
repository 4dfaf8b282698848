// Package zbor implements a decoder and encoder for Concise Binary Object
// Representation (CBOR), RFC 8949.
//
// The package is built around three layers, leaves first:
//
//   - a value tree ([Item] and its concrete variants) that owns its own
//     byte-string, text-string, child-array, and map-pair storage;
//   - a head reader that parses a CBOR item's major type and argument
//     across the five wire size classes;
//   - [Decode]/[DecodeAt] and [Encode], which walk the tree recursively.
//
// Only definite-length CBOR is supported: indefinite-length strings,
// arrays, and maps, and the "break" stop code, are not implemented and
// decode as [KindUnsupported] errors. Tag numbers are preserved verbatim;
// this package does not interpret tag semantics (RFC 3339 dates, bignums,
// and so on) — that is left to callers.
package zbor
