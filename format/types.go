// Package format defines the byte-level contract of a VPack document: the
// head-byte tag table that maps every possible leading byte to a value type
// and payload layout, plus the small amount of pure arithmetic needed to
// compute a value's byte size from its head byte and a bounded lookahead.
//
// Nothing in this package allocates or touches more than the 9 bytes any
// head byte can require for its length lookahead. It is the single source
// of truth shared by the slice (reader) and builder (writer) packages, so
// the two halves of the format can never disagree about what a given head
// byte means.
package format

// ValueType identifies the kind of value a Slice's head byte encodes.
//
// The full VPack type system has more variants than the core of this module
// implements (External, Custom, Binary, UTCDate, BCD); those variants exist
// in this enum, but TypeOf maps their head bytes to Illegal and the
// slice/builder packages have no accessors for them, consistent with the
// module's "core" scope.
type ValueType uint8

const (
	None ValueType = iota
	Null
	Bool
	Double
	Array
	Object
	SmallInt
	Int
	UInt
	String
	MinKey
	MaxKey
	External
	Custom
	Binary
	UTCDate
	Illegal
	BCD
)

// String returns the human-readable name of a ValueType, used in error
// messages and debug output.
func (t ValueType) String() string {
	switch t {
	case None:
		return "None"
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Double:
		return "Double"
	case Array:
		return "Array"
	case Object:
		return "Object"
	case SmallInt:
		return "SmallInt"
	case Int:
		return "Int"
	case UInt:
		return "UInt"
	case String:
		return "String"
	case MinKey:
		return "MinKey"
	case MaxKey:
		return "MaxKey"
	case External:
		return "External"
	case Custom:
		return "Custom"
	case Binary:
		return "Binary"
	case UTCDate:
		return "UTCDate"
	case BCD:
		return "BCD"
	default:
		return "Illegal"
	}
}
