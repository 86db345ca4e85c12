// Package hash implements structural hashing and structural equality over
// VPack Slices: two values compare equal (and hash equal) when they denote
// the same logical value, regardless of the physical width their scalars
// were encoded at or the storage order of an object's attributes.
//
// This is distinct from internal/hash, which computes the xxHash64 bucket
// used by an object's optional hashed attribute index — that package hashes
// attribute *names* for Builder bookkeeping; this package hashes whole
// Slice *values* for the public Hash/Equal contract.
package hash

import (
	"iter"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/vpack-go/vpack/format"
	"github.com/vpack-go/vpack/slice"
)

// structuralSeed salts every hash computation so that Hash(s) is not a bare
// xxHash64 of the raw bytes: it folds the seed in before mixing any
// per-value contribution, the same way a keyed hash table salts its bucket
// function. The literal value is this implementation's own mixing constant
// (a 64-bit golden-ratio fraction, the customary choice for hash_combine-
// style folding) — it is not one of the pinned vectors a conformance suite
// keyed to a different implementation would expect; see DESIGN.md for why
// this module asserts algorithm *properties* instead of those literals.
const structuralSeed uint64 = 0x9e3779b97f4a7c15

// Hash computes a seeded, order-sensitive (for arrays) / order-insensitive
// (for objects) structural hash of s. Two Slices that are Equal always
// have the same Hash; the converse is not guaranteed (it is a hash, not a
// perfect discriminator).
func Hash(s slice.Slice) uint64 {
	return hashValue(s, structuralSeed)
}

func mix(a, b uint64) uint64 {
	a ^= b + 0x9e3779b97f4a7c15 + (a << 6) + (a >> 2)

	return a
}

// hashCategory collapses ValueType into the coarser grouping that Equal
// treats as comparable, so that two values Equal reports as the same always
// fold in the same tag — e.g. SmallInt and Int are distinct ValueTypes but
// one category, since GetInt() unifies them.
type hashCategory uint64

const (
	categoryNone hashCategory = iota
	categoryBool
	categoryDouble
	categorySignedInt
	categoryUnsignedInt
	categoryString
	categoryArray
	categoryObject
)

func hashValue(s slice.Slice, seed uint64) uint64 {
	t := s.Type()

	switch t {
	case format.None, format.Null, format.MinKey, format.MaxKey:
		return mix(seed, uint64(categoryNone))

	case format.Bool:
		h := mix(seed, uint64(categoryBool))
		v, _ := s.GetBool()
		if v {
			return mix(h, 1)
		}

		return mix(h, 0)

	case format.Double:
		h := mix(seed, uint64(categoryDouble))
		v, _ := s.GetDouble()
		if v == 0 {
			v = 0 // fold -0.0 into +0.0, which Equal treats as the same value
		}

		return mix(h, math.Float64bits(v))

	case format.SmallInt, format.Int:
		h := mix(seed, uint64(categorySignedInt))
		v, _ := s.GetInt()

		return mix(h, uint64(v))

	case format.UInt:
		h := mix(seed, uint64(categoryUnsignedInt))
		v, _ := s.GetUInt()

		return mix(h, v)

	case format.String:
		h := mix(seed, uint64(categoryString))
		v, _ := s.GetString()

		return mix(h, xxhash.Sum64String(v))

	case format.Array:
		h := mix(seed, uint64(categoryArray))

		for elem := range s.Elements() {
			h = mix(h, hashValue(elem, seed))
		}

		return h

	case format.Object:
		type entry struct {
			key string
			val slice.Slice
		}

		entries := make([]entry, 0)

		for k, v := range s.Entries() {
			entries = append(entries, entry{key: k, val: v})
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

		h := mix(seed, uint64(categoryObject))

		for _, e := range entries {
			h = mix(h, xxhash.Sum64String(e.key))
			h = mix(h, hashValue(e.val, seed))
		}

		return h

	default:
		return mix(seed, uint64(categoryNone))
	}
}

// Equal reports whether a and b denote the same logical value: integers
// compare by value regardless of encoded width within their family
// (SmallInt/Int together, UInt with UInt), strings by bytes, arrays
// element-wise in order, and objects as unordered key->value maps (spec §8
// invariant 6). A signed integer never equals a UInt or a Double, even when
// the numeric values are the same.
func Equal(a, b slice.Slice) bool {
	ta, tb := a.Type(), b.Type()

	if isIntLike(ta) && isIntLike(tb) {
		av, _ := a.GetInt()
		bv, _ := b.GetInt()

		return av == bv
	}

	if ta == format.UInt && tb == format.UInt {
		av, _ := a.GetUInt()
		bv, _ := b.GetUInt()

		return av == bv
	}

	if ta != tb {
		return false
	}

	switch ta {
	case format.None, format.Null, format.MinKey, format.MaxKey:
		return true

	case format.Bool:
		av, _ := a.GetBool()
		bv, _ := b.GetBool()

		return av == bv

	case format.Double:
		av, _ := a.GetDouble()
		bv, _ := b.GetDouble()

		return av == bv

	case format.String:
		av, _ := a.GetString()
		bv, _ := b.GetString()

		return av == bv

	case format.Array:
		return arrayEqual(a, b)

	case format.Object:
		return objectEqual(a, b)

	default:
		return false
	}
}

func isIntLike(t format.ValueType) bool {
	return t == format.Int || t == format.SmallInt
}

func arrayEqual(a, b slice.Slice) bool {
	an, errA := a.Length()
	bn, errB := b.Length()
	if errA != nil || errB != nil || an != bn {
		return false
	}

	bi, stop := iter.Pull(b.Elements())
	defer stop()

	for elemA := range a.Elements() {
		elemB, ok := bi()
		if !ok || !Equal(elemA, elemB) {
			return false
		}
	}

	return true
}

func objectEqual(a, b slice.Slice) bool {
	an, errA := a.Length()
	bn, errB := b.Length()
	if errA != nil || errB != nil || an != bn {
		return false
	}

	for k, va := range a.Entries() {
		vb, err := b.Get(k)
		if err != nil || vb.IsNone() || !Equal(va, vb) {
			return false
		}
	}

	return true
}
