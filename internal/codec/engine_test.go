package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_IsLittleEndian(t *testing.T) {
	assert.Equal(t, binary.LittleEndian, Engine())
}

func TestReadUintLE(t *testing.T) {
	assert.Equal(t, uint64(0x4223), ReadUintLE([]byte{0x23, 0x42}, 2))
	assert.Equal(t, uint64(0xff), ReadUintLE([]byte{0xff}, 1))
}

func TestReadIntLE_SignExtension(t *testing.T) {
	assert.Equal(t, int64(0x4223), ReadIntLE([]byte{0x23, 0x42}, 2))
	assert.Equal(t, int64(-7645), ReadIntLE([]byte{0x23, 0xe2}, 2))
	assert.Equal(t, int64(-1), ReadIntLE([]byte{0xff}, 1))
}

func TestPutUintLE_RoundTrip(t *testing.T) {
	b := make([]byte, 4)
	PutUintLE(b, 0x01020304, 4)
	assert.Equal(t, uint64(0x01020304), ReadUintLE(b, 4))
}

func TestFloat64LE_RoundTrip(t *testing.T) {
	b := make([]byte, 8)
	PutFloat64LE(b, -345354.35532352)
	assert.Equal(t, -345354.35532352, ReadFloat64LE(b))
}

func TestFloat64LE_PreservesNaNBits(t *testing.T) {
	nan := math.Float64frombits(0x7ff8000000000001)
	b := make([]byte, 8)
	PutFloat64LE(b, nan)

	got := ReadFloat64LE(b)
	assert.Equal(t, math.Float64bits(nan), math.Float64bits(got))
}

func TestWidthFor(t *testing.T) {
	assert.Equal(t, 1, WidthFor(0))
	assert.Equal(t, 1, WidthFor(0xff))
	assert.Equal(t, 2, WidthFor(0x100))
	assert.Equal(t, 2, WidthFor(0xffff))
	assert.Equal(t, 4, WidthFor(0x10000))
	assert.Equal(t, 4, WidthFor(0xffffffff))
	assert.Equal(t, 8, WidthFor(0x100000000))
}

func TestUvarint_RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40} {
		buf := PutUvarint(nil, n)
		assert.Equal(t, UvarintSize(n), len(buf))

		got, consumed := ReadUvarint(buf)
		assert.Equal(t, n, got)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestUvarintFromEnd_RoundTrip(t *testing.T) {
	var buf []byte
	buf = append(buf, []byte("payload")...)
	buf = PutUvarintFromEnd(buf, 300)

	got, consumed := ReadUvarintFromEnd(buf)
	assert.Equal(t, uint64(300), got)
	assert.Equal(t, len(buf)-len("payload"), consumed)
}
