// Package buffer implements the cursor-based byte buffer used by every
// record type in the .sc codec: little-endian scalar read/write,
// length-prefixed ASCII strings, skip/fill padding, and tag framing.
//
// A Buffer pairs a read cursor with a write tail backed by a pooled,
// growable byte slice (github.com/sctoolkit/scfile/internal/pool),
// following the same amortized-growth strategy the teacher package uses
// for its columnar encoders.
package buffer

import (
	"github.com/sctoolkit/scfile/endian"
	"github.com/sctoolkit/scfile/errs"
	"github.com/sctoolkit/scfile/internal/pool"
)

// absentASCIILen is the length-prefix byte that denotes an empty or
// absent string on read, and is emitted for empty strings on write.
const absentASCIILen = 0xFF

// MaxASCIILen is the largest string length representable by the 1-byte
// prefix once 0xFF is reserved as the absent/empty marker.
const MaxASCIILen = 0xFE

// Buffer is a cursor over a growable byte vector. Reads advance an
// internal read position; writes always append to the tail.
//
// Buffer is not safe for concurrent use — callers own one Buffer per
// load or save operation, matching the codec's single-document
// concurrency model.
type Buffer struct {
	bb     *pool.ScratchBuffer
	engine endian.EndianEngine
	pos    int
	pooled bool
}

// New returns an empty Buffer ready for writing, backed by a pooled
// internal buffer. Call Release when done to return it to the pool.
func New(engine endian.EndianEngine) *Buffer {
	return &Buffer{
		bb:     pool.GetScratchBuffer(),
		engine: engine,
		pooled: true,
	}
}

// FromBytes wraps existing bytes for reading. The slice is referenced,
// not copied; writes append past the end as usual. Release is a no-op
// for a Buffer constructed this way since the backing slice isn't pooled.
func FromBytes(engine endian.EndianEngine, data []byte) *Buffer {
	bb := &pool.ScratchBuffer{B: data}
	return &Buffer{bb: bb, engine: engine}
}

// Release returns the internal buffer to the pool. The Buffer must not
// be used afterward.
func (b *Buffer) Release() {
	if b.pooled && b.bb != nil {
		pool.PutScratchBuffer(b.bb)
		b.bb = nil
	}
}

// Bytes returns the full written contents (from offset 0, not from the
// read cursor).
func (b *Buffer) Bytes() []byte { return b.bb.Bytes() }

// Len returns the total number of bytes written so far.
func (b *Buffer) Len() int { return b.bb.Len() }

// Pos returns the current read cursor position.
func (b *Buffer) Pos() int { return b.pos }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return b.bb.Len() - b.pos }

// Engine returns the endian engine this Buffer was constructed with, for
// callers that need to build a scratch Buffer in the same byte order.
func (b *Buffer) Engine() endian.EndianEngine { return b.engine }

func (b *Buffer) requireRead(n int) ([]byte, error) {
	if n < 0 || b.pos+n > b.bb.Len() {
		return nil, errs.ErrTruncated
	}
	p := b.bb.Bytes()[b.pos : b.pos+n]
	b.pos += n

	return p, nil
}

// ReadU8 reads one unsigned byte.
func (b *Buffer) ReadU8() (uint8, error) {
	p, err := b.requireRead(1)
	if err != nil {
		return 0, err
	}

	return p[0], nil
}

// ReadI8 reads one signed byte.
func (b *Buffer) ReadI8() (int8, error) {
	v, err := b.ReadU8()
	return int8(v), err //nolint:gosec
}

// ReadU16 reads a little-endian uint16.
func (b *Buffer) ReadU16() (uint16, error) {
	p, err := b.requireRead(2)
	if err != nil {
		return 0, err
	}

	return b.engine.Uint16(p), nil
}

// ReadI16 reads a little-endian int16.
func (b *Buffer) ReadI16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err //nolint:gosec
}

// ReadU32 reads a little-endian uint32.
func (b *Buffer) ReadU32() (uint32, error) {
	p, err := b.requireRead(4)
	if err != nil {
		return 0, err
	}

	return b.engine.Uint32(p), nil
}

// ReadI32 reads a little-endian int32.
func (b *Buffer) ReadI32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err //nolint:gosec
}

// ReadU64 reads a little-endian uint64.
func (b *Buffer) ReadU64() (uint64, error) {
	p, err := b.requireRead(8)
	if err != nil {
		return 0, err
	}

	return b.engine.Uint64(p), nil
}

// ReadF32 reads a little-endian IEEE-754 float32.
func (b *Buffer) ReadF32() (float32, error) {
	v, err := b.ReadU32()
	if err != nil {
		return 0, err
	}

	return f32frombits(v), nil
}

// ReadBytes reads and returns a copy of the next n bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	p, err := b.requireRead(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, p)

	return out, nil
}

// Skip advances the read cursor by n bytes without returning them.
func (b *Buffer) Skip(n int) error {
	_, err := b.requireRead(n)
	return err
}

// ReadASCII reads a 1-byte-length-prefixed ASCII string. A length byte of
// 0xFF denotes the empty/absent string and yields "".
func (b *Buffer) ReadASCII() (string, error) {
	n, err := b.ReadU8()
	if err != nil {
		return "", err
	}
	if n == absentASCIILen {
		return "", nil
	}
	p, err := b.requireRead(int(n))
	if err != nil {
		return "", err
	}

	return string(p), nil
}

// ReadTagHeader reads a tag's (id, payload length) header.
func (b *Buffer) ReadTagHeader() (id uint8, length int32, err error) {
	id, err = b.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	length, err = b.ReadI32()
	if err != nil {
		return 0, 0, err
	}
	if length < 0 {
		return 0, 0, errs.ErrNegativeLength
	}

	return id, length, nil
}

func (b *Buffer) grow(n int) {
	b.bb.Grow(n)
}

// WriteU8 appends one unsigned byte.
func (b *Buffer) WriteU8(v uint8) {
	b.grow(1)
	b.bb.MustWrite([]byte{v})
}

// WriteI8 appends one signed byte.
func (b *Buffer) WriteI8(v int8) { b.WriteU8(uint8(v)) } //nolint:gosec

// WriteU16 appends a little-endian uint16.
func (b *Buffer) WriteU16(v uint16) {
	b.grow(2)
	b.bb.B = b.engine.AppendUint16(b.bb.B, v)
}

// WriteI16 appends a little-endian int16.
func (b *Buffer) WriteI16(v int16) { b.WriteU16(uint16(v)) } //nolint:gosec

// WriteU32 appends a little-endian uint32.
func (b *Buffer) WriteU32(v uint32) {
	b.grow(4)
	b.bb.B = b.engine.AppendUint32(b.bb.B, v)
}

// WriteI32 appends a little-endian int32.
func (b *Buffer) WriteI32(v int32) { b.WriteU32(uint32(v)) } //nolint:gosec

// WriteU64 appends a little-endian uint64.
func (b *Buffer) WriteU64(v uint64) {
	b.grow(8)
	b.bb.B = b.engine.AppendUint64(b.bb.B, v)
}

// WriteF32 appends a little-endian IEEE-754 float32.
func (b *Buffer) WriteF32(v float32) {
	b.WriteU32(f32bits(v))
}

// WriteBytes appends p verbatim.
func (b *Buffer) WriteBytes(p []byte) {
	b.grow(len(p))
	b.bb.MustWrite(p)
}

// Fill appends n zero bytes.
func (b *Buffer) Fill(n int) {
	b.grow(n)
	for range n {
		b.bb.MustWrite([]byte{0})
	}
}

// WriteASCII appends a 1-byte-length-prefixed ASCII string. The empty
// string is written as the 0xFF absent marker with no following bytes.
func (b *Buffer) WriteASCII(s string) error {
	if len(s) == 0 {
		b.WriteU8(absentASCIILen)
		return nil
	}
	if len(s) > MaxASCIILen {
		return errs.ErrInvalidTextLength
	}
	b.WriteU8(uint8(len(s))) //nolint:gosec
	b.WriteBytes([]byte(s))

	return nil
}

// SaveTag emits a tag header (id, payload length) followed by payload.
// A nil or empty payload is framed with length 0.
func (b *Buffer) SaveTag(id uint8, payload []byte) {
	b.WriteU8(id)
	b.WriteI32(int32(len(payload))) //nolint:gosec
	if len(payload) > 0 {
		b.WriteBytes(payload)
	}
}

// Mark returns the current write length, for later use with SinceMark to
// self-check that a tag's declared length matches its actual payload size.
func (b *Buffer) Mark() int { return b.bb.Len() }

// SinceMark returns the bytes written since mark.
func (b *Buffer) SinceMark(mark int) []byte {
	return b.bb.Bytes()[mark:]
}
