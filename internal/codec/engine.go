// Package codec provides the little-endian numeric codec used by every
// VPack container and scalar: fixed-width signed/unsigned integer and
// IEEE-754 double pack/unpack, plus an unsigned variable-length integer
// codec used by the compact container layouts.
//
// It extends Go's standard encoding/binary package by combining ByteOrder
// and AppendByteOrder into a unified EndianEngine interface, exactly as
// the teacher codebase this module is adapted from does. VPack's wire
// format is little-endian only (spec §3 invariant 2), so Engine always
// returns the little-endian implementation; the ByteOrder abstraction is
// kept because it lets the rest of the codebase depend on an interface
// instead of the concrete encoding/binary.littleEndian type, and it is
// exercised by both the Slice reader and the Builder writer.
package codec

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Engine is the byte order used on the VPack wire format: little-endian,
// always. Every multi-byte length field, integer payload, and double
// payload in the format is encoded with this engine.
func Engine() EndianEngine {
	return binary.LittleEndian
}
