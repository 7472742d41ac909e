package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riginding/dora/internal/object"
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

func TestHeaderAge(t *testing.T) {
	var h object.Header
	h.Info = 3 << 1
	assert.EqualValues(t, 3, h.Age())

	h.Info = 15 << 1
	assert.EqualValues(t, 15, h.Age())

	h.Info = 0
	assert.EqualValues(t, 0, h.Age())

	h.Info = 0xFFFF
	assert.EqualValues(t, 15, h.Age())
}

func TestHeaderSetAge(t *testing.T) {
	var h object.Header
	h.SetAge(15)
	assert.EqualValues(t, 15, h.Age())

	h.SetAge(0)
	assert.EqualValues(t, 0, h.Age())

	h.SetAge(2)
	assert.EqualValues(t, 2, h.Age())
}

func TestHeaderSetAgeOver15Panics(t *testing.T) {
	var h object.Header
	assert.Panics(t, func() { h.SetAge(16) })
}

func TestHeaderMark(t *testing.T) {
	var h object.Header
	assert.False(t, h.Marked())
	h.SetMark(true)
	assert.True(t, h.Marked())
	h.SetMark(false)
	assert.False(t, h.Marked())
}

func TestSizeStaticClass(t *testing.T) {
	types.SetPointerWidth(8)
	info := vmiface.ClassInfo{StaticSize: 24}
	size, err := object.Size(info, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 24, size)
}

func TestSizeByteArray(t *testing.T) {
	types.SetPointerWidth(8)
	info := vmiface.ClassInfo{IsArray: true, ElementSize: 1}
	// header(16) + length word(8) + 5 bytes = 29, aligned up to 32.
	size, err := object.Size(info, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 32, size)
}

func TestSizeString(t *testing.T) {
	types.SetPointerWidth(8)
	info := vmiface.ClassInfo{IsString: true}
	// header(16) + length word(8) + 5 bytes + NUL(1) = 30, aligned up to 32.
	size, err := object.Size(info, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 32, size)
}

func TestSizeUnknownShapeErrors(t *testing.T) {
	types.SetPointerWidth(8)
	_, err := object.Size(vmiface.ClassInfo{}, 0)
	assert.ErrorIs(t, err, object.ErrUnknownShape)
}

func TestVisitReferenceFieldsObjectArray(t *testing.T) {
	types.SetPointerWidth(8)
	info := vmiface.ClassInfo{IsObjectArray: true}

	var slots []object.Slot
	object.VisitReferenceFields(info, 100, 3, func(s object.Slot) {
		slots = append(slots, s)
	})

	// base(100) + header(16) + length word(8) = 124, then stride 8.
	assert.Equal(t, []object.Slot{124, 132, 140}, slots)
}

func TestVisitReferenceFieldsFixedClass(t *testing.T) {
	info := vmiface.ClassInfo{RefFieldOffsets: []int64{16, 32}}

	var slots []object.Slot
	object.VisitReferenceFields(info, 100, 0, func(s object.Slot) {
		slots = append(slots, s)
	})

	assert.Equal(t, []object.Slot{116, 132}, slots)
}

type fakeAllocator struct {
	next int64
}

func (a *fakeAllocator) Alloc(size int64) (int64, error) {
	addr := a.next
	a.next += size
	return addr, nil
}

type fakeMemory struct {
	words map[int64]uint64
	bytes map[int64]byte
}

func newFakeMemory() *fakeMemory {
	return &fakeMemory{words: map[int64]uint64{}, bytes: map[int64]byte{}}
}

func (m *fakeMemory) WriteWord(addr int64, v uint64) { m.words[addr] = v }

func (m *fakeMemory) WriteBytes(addr int64, data []byte) {
	for i, b := range data {
		m.bytes[addr+int64(i)] = b
	}
}

func TestAllocString(t *testing.T) {
	types.SetPointerWidth(8)
	alloc := &fakeAllocator{}
	mem := newFakeMemory()
	stringClass := vmiface.ClassInfo{IsString: true}

	addr, err := object.AllocString(alloc, mem, 0xCAFE, stringClass, []byte("hi"))
	require.NoError(t, err)

	assert.EqualValues(t, 0xCAFE, mem.words[addr])
	assert.EqualValues(t, 2, mem.words[addr+object.HeaderSize()])
	assert.Equal(t, byte('h'), mem.bytes[addr+object.HeaderSize()+types.PointerWidth])
	assert.Equal(t, byte('i'), mem.bytes[addr+object.HeaderSize()+types.PointerWidth+1])
	assert.Equal(t, byte(0), mem.bytes[addr+object.HeaderSize()+types.PointerWidth+2])
}
