// Package fromjson is the external JSON collaborator spec §6 names as
// Parser::from_json(text) -> Builder: only its contract (produce a valid
// sealed top-level Slice from JSON text) is relied upon by the core, so
// this package is kept separate from builder/slice and never imported by
// them. It is a thin bridge, not a general-purpose JSON engine (spec's
// Non-goals exclude "a JSON parser beyond the stated contract").
//
// Decoding uses github.com/json-iterator/go's low-level streaming
// iterator rather than unmarshaling into interface{} first, so a large
// JSON document is fed into the Builder one token at a time without an
// intermediate tree allocation — grounded in
// _examples/rpcpool-yellowstone-faithful's use of the same library for
// high-throughput JSON handling.
package fromjson

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vpack-go/vpack/builder"
)

// Parser is the interface spec §6 calls Parser::from_json: an external
// collaborator whose only obligation is to turn JSON text into a sealed
// Builder holding one top-level value.
type Parser interface {
	Parse(text string) (*builder.Builder, error)
}

// JSONParser implements Parser using json-iterator/go's streaming tokenizer.
type JSONParser struct{}

// Parse implements Parser.
func (JSONParser) Parse(text string) (*builder.Builder, error) {
	return FromJSON(text)
}

// FromJSON parses text and returns a sealed Builder whose Slice is the
// VPack encoding of the parsed document. The caller owns the returned
// Builder and is responsible for calling Release once done with it.
func FromJSON(text string) (*builder.Builder, error) {
	it := jsoniter.ParseString(jsoniter.ConfigDefault, text)

	b := builder.New()

	if err := decodeValue(it, b, "", false); err != nil {
		b.Release()

		return nil, fmt.Errorf("fromjson: %w", err)
	}

	if it.Error != nil && it.Error.Error() != "EOF" {
		b.Release()

		return nil, fmt.Errorf("fromjson: %w", it.Error)
	}

	return b, nil
}

// decodeValue reads exactly one JSON value from it and adds it to b,
// either as the next unkeyed element (hasKey false) or under key (hasKey
// true), recursing into arrays and objects.
func decodeValue(it *jsoniter.Iterator, b *builder.Builder, key string, hasKey bool) error {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.ReadNil()

		return addScalar(b, key, hasKey, builder.NullValue())

	case jsoniter.BoolValue:
		v := it.ReadBool()

		return addScalar(b, key, hasKey, builder.BoolValue(v))

	case jsoniter.NumberValue:
		return decodeNumber(it, b, key, hasKey)

	case jsoniter.StringValue:
		v := it.ReadString()

		return addScalar(b, key, hasKey, builder.StringValue(v))

	case jsoniter.ArrayValue:
		return decodeArray(it, b, key, hasKey)

	case jsoniter.ObjectValue:
		return decodeObject(it, b, key, hasKey)

	default:
		return fmt.Errorf("fromjson: unexpected token %v", it.WhatIsNext())
	}
}

func addScalar(b *builder.Builder, key string, hasKey bool, v builder.Value) error {
	if hasKey {
		return b.AddKey(key, v)
	}

	return b.Add(v)
}

// decodeNumber classifies a JSON number as the narrowest VPack scalar that
// represents it exactly: a plain-integer lexical form becomes Int (falling
// back to UInt if it overflows int64), anything with a fraction or
// exponent becomes Double.
func decodeNumber(it *jsoniter.Iterator, b *builder.Builder, key string, hasKey bool) error {
	s := string(it.ReadNumber())

	if !strings.ContainsAny(s, ".eE") {
		if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
			return addScalar(b, key, hasKey, builder.IntValue(iv))
		}

		if uv, err := strconv.ParseUint(s, 10, 64); err == nil {
			return addScalar(b, key, hasKey, builder.UIntValue(uv))
		}
	}

	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("fromjson: invalid number %q: %w", s, err)
	}

	return addScalar(b, key, hasKey, builder.DoubleValue(fv))
}

func decodeArray(it *jsoniter.Iterator, b *builder.Builder, key string, hasKey bool) error {
	if err := addScalar(b, key, hasKey, builder.ArrayValue()); err != nil {
		return err
	}

	for it.ReadArray() {
		if err := decodeValue(it, b, "", false); err != nil {
			return err
		}
	}

	return b.Close()
}

func decodeObject(it *jsoniter.Iterator, b *builder.Builder, key string, hasKey bool) error {
	if err := addScalar(b, key, hasKey, builder.ObjectValue()); err != nil {
		return err
	}

	for field := it.ReadObject(); field != ""; field = it.ReadObject() {
		if err := decodeValue(it, b, field, true); err != nil {
			return err
		}
	}

	return b.Close()
}
