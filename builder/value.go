package builder

// kind distinguishes the payload carried by a Value.
type kind uint8

const (
	kindNull kind = iota
	kindBool
	kindDouble
	kindInt
	kindUInt
	kindString
	kindMinKey
	kindMaxKey
	kindArray
	kindObject
)

// Value is the tagged constructor accepted by Builder.Add/AddKey: either a
// scalar payload, a sentinel type (Null/MinKey/MaxKey), or a request to open
// a new Array/Object container (spec §4.3, §9 "Polymorphic Value"). Value
// deliberately has no implicit conversions between the integer categories:
// callers pick IntValue, UIntValue, or rely on SmallInt folding inside
// IntValue, exactly as spec §9 requires ("integer category selection ...
// is part of the contract").
type Value struct {
	kind kind
	b    bool
	f    float64
	i    int64
	u    uint64
	s    string
}

// NullValue constructs the Null sentinel.
func NullValue() Value { return Value{kind: kindNull} }

// MinKeyValue constructs the MinKey sentinel.
func MinKeyValue() Value { return Value{kind: kindMinKey} }

// MaxKeyValue constructs the MaxKey sentinel.
func MaxKeyValue() Value { return Value{kind: kindMaxKey} }

// BoolValue constructs a Bool scalar.
func BoolValue(v bool) Value { return Value{kind: kindBool, b: v} }

// DoubleValue constructs a Double scalar.
func DoubleValue(v float64) Value { return Value{kind: kindDouble, f: v} }

// IntValue constructs a signed integer scalar. Values in -6..9 are folded
// into the more compact SmallInt encoding by Builder.writeValue; the caller
// never has to choose between Int and SmallInt directly.
func IntValue(v int64) Value { return Value{kind: kindInt, i: v} }

// UIntValue constructs an unsigned integer scalar. Non-negative values in
// 0..9 are folded into SmallInt the same way IntValue's are.
func UIntValue(v uint64) Value { return Value{kind: kindUInt, u: v} }

// StringValue constructs a String scalar from raw bytes; embedded NULs are
// permitted and counted in length (spec §3 invariant 3).
func StringValue(v string) Value { return Value{kind: kindString, s: v} }

// ArrayValue requests that Add/AddKey open a new Array container.
func ArrayValue() Value { return Value{kind: kindArray} }

// ObjectValue requests that Add/AddKey open a new Object container.
func ObjectValue() Value { return Value{kind: kindObject} }
