package pixel

import "fmt"

// NotFound is returned by [ColorBuffer.Get] for an index outside of the buffer. Every packed color
// is a non-negative uint32, so NotFound never collides with a stored color.
const NotFound int64 = -1

// Ownership tells whether a ColorBuffer owns its byte store.
type Ownership uint8

const (
	// Owned storage was allocated by the buffer and is not shared.
	Owned Ownership = iota

	// Borrowed storage was supplied by the caller. Writes through the buffer are visible to every
	// other holder of the store, and the store lifetime is managed by whoever supplied it.
	Borrowed
)

func (o Ownership) String() string {
	if o == Borrowed {
		return "borrowed"
	}
	return "owned"
}

// ColorBuffer is a sequence of packed colors stored as raw bytes.
//
// Pixel i occupies bytes [i*Stride(), (i+1)*Stride()), high-order channel first. The length is
// always derived from the store size; trailing bytes that don't make a full pixel are ignored.
//
// A ColorBuffer is not safe for concurrent use.
type ColorBuffer struct {
	buf       []byte
	layout    Layout
	ownership Ownership
}

// NewColorBuffer allocates a zeroed buffer of length pixels.
func NewColorBuffer(length int, layout Layout) *ColorBuffer {
	if length < 0 {
		length = 0
	}
	return &ColorBuffer{
		buf:    make([]byte, length*layout.Stride()),
		layout: layout,
	}
}

// FromStore wraps store without copying it. The returned buffer is [Borrowed]: it aliases store,
// so any write through either side is visible to the other, with no synchronization.
func FromStore(store []byte, layout Layout) *ColorBuffer {
	return &ColorBuffer{
		buf:       store,
		layout:    layout,
		ownership: Borrowed,
	}
}

func (b *ColorBuffer) String() string {
	return fmt.Sprintf("%s buffer of %d pixels (%s)", b.layout, b.Len(), b.ownership)
}

// Layout of the packed colors.
func (b *ColorBuffer) Layout() Layout { return b.layout }

// Stride is the number of bytes per pixel.
func (b *ColorBuffer) Stride() int { return b.layout.Stride() }

// Len is the number of pixels.
func (b *ColorBuffer) Len() int { return len(b.buf) / b.layout.Stride() }

// Ownership of the byte store.
func (b *ColorBuffer) Ownership() Ownership { return b.ownership }

// Bytes returns the byte store, not a copy.
func (b *ColorBuffer) Bytes() []byte { return b.buf }

// Get returns the color at index as a non-negative value, or [NotFound].
func (b *ColorBuffer) Get(index int) int64 {
	if index < 0 || index >= b.Len() {
		if strict {
			panic(b.indexError(index))
		}
		return NotFound
	}
	return int64(b.get(index))
}

// Lookup returns the color at index, ok is false if index is out of range.
func (b *ColorBuffer) Lookup(index int) (c Color, ok bool) {
	if index < 0 || index >= b.Len() {
		return 0, false
	}
	return b.get(index), true
}

// Set the color at index. Out of range indices are ignored.
func (b *ColorBuffer) Set(index int, c Color) {
	if index < 0 || index >= b.Len() {
		if strict {
			panic(b.indexError(index))
		}
		return
	}
	b.set(index, c)
}

func (b *ColorBuffer) get(index int) Color {
	var (
		s = b.layout.Stride()
		c Color
	)
	for _, v := range b.buf[index*s : index*s+s] {
		c = c<<8 | Color(v)
	}
	return c
}

func (b *ColorBuffer) set(index int, c Color) {
	s := b.layout.Stride()
	for i := index*s + s - 1; i >= index*s; i-- {
		b.buf[i] = byte(c)
		c >>= 8
	}
}

func (b *ColorBuffer) indexError(index int) string {
	return fmt.Sprintf("pixel: index %d out of range [0:%d]", index, b.Len())
}

// Fill every pixel with c.
func (b *ColorBuffer) Fill(c Color) {
	n := b.Len()
	if n == 0 {
		return
	}
	b.set(0, c)
	s := b.layout.Stride()
	for i := s; i < n*s; i *= 2 {
		copy(b.buf[i:n*s], b.buf[:i])
	}
}

// Clear sets all bytes to zero.
func (b *ColorBuffer) Clear() {
	clear(b.buf)
}

// Clone returns an owned copy of the buffer.
func (b *ColorBuffer) Clone() *ColorBuffer {
	out := NewColorBuffer(b.Len(), b.layout)
	copy(out.buf, b.buf)
	return out
}

// Slice copies a range of pixels into a new owned buffer. Negative start and length count from
// the end of the buffer.
//
// The length is clamped to Len()-length-start, not Len()-start: Slice(0, Len()) is empty and a
// range is only copied in full when it fits twice in what remains after start. Use [Clone] to
// copy a whole buffer.
func (b *ColorBuffer) Slice(start, length int) *ColorBuffer {
	n := b.Len()
	if start < 0 {
		start += n
	}
	start = max(0, min(start, n))
	if length < 0 {
		length += n
	}
	length = max(0, min(length, n-length-start))

	s := b.layout.Stride()
	out := NewColorBuffer(length, b.layout)
	copy(out.buf, b.buf[start*s:(start+length)*s])
	return out
}

// Write copies src into the buffer starting at pixel offset.
//
// Buffers with the same layout are copied byte for byte. Otherwise every pixel is converted by
// reading it from src and setting it here: RGB pixels copied into an ARGB buffer get alpha 0,
// and ARGB pixels copied into an RGB buffer lose their alpha.
//
// Pixels that fall outside of the buffer are skipped, a negative offset skips the leading
// pixels of src.
func (b *ColorBuffer) Write(offset int, src *ColorBuffer) {
	var skip int
	if offset < 0 {
		skip, offset = -offset, 0
	}
	n := min(src.Len()-skip, b.Len()-offset)
	if n <= 0 {
		return
	}

	if b.layout == src.layout {
		s := b.layout.Stride()
		copy(b.buf[offset*s:(offset+n)*s], src.buf[skip*s:(skip+n)*s])
		return
	}
	for i := 0; i < n; i++ {
		b.set(offset+i, src.get(skip+i))
	}
}
