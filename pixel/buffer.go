package pixel

import (
	"image"
	"image/color"
	"image/draw"

	ximgdraw "golang.org/x/image/draw"

	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/format"
)

// blockSize is the tile edge used by the block memory layout.
const blockSize = 32

// Buffer holds a decoded image at full RGBA depth, addressable by (x, y).
// It is the common representation every packed format reads into and
// writes out of, and the thing Resize operates on for the external
// low-resolution texture variant.
type Buffer struct {
	Width, Height int
	Format        format.PixelFormat
	pixels        []RGBA
}

// New returns a zeroed Buffer of the given size and format.
func New(f format.PixelFormat, width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Format: f, pixels: make([]RGBA, width*height)}
}

// Get returns the pixel at (x, y).
func (b *Buffer) Get(x, y int) RGBA { return b.pixels[y*b.Width+x] }

// Set stores the pixel at (x, y).
func (b *Buffer) Set(x, y int, p RGBA) { b.pixels[y*b.Width+x] = p }

// HasAlpha reports whether b's format carries an alpha channel.
func (b *Buffer) HasAlpha() bool { return HasAlpha(b.Format) }

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Width: b.Width, Height: b.Height, Format: b.Format, pixels: make([]RGBA, len(b.pixels))}
	copy(out.pixels, b.pixels)

	return out
}

// ReadLinear decodes width*height pixels from r in row-major order.
func (b *Buffer) ReadLinear(r *buffer.Buffer) error {
	stride := BytesPerPixel(b.Format)
	for y := range b.Height {
		for x := range b.Width {
			raw, err := r.ReadBytes(stride)
			if err != nil {
				return err
			}
			p, err := Decode(b.Format, raw)
			if err != nil {
				return err
			}
			b.Set(x, y, p)
		}
	}

	return nil
}

// WriteLinear encodes b's pixels into w in row-major order.
func (b *Buffer) WriteLinear(w *buffer.Buffer) error {
	for y := range b.Height {
		for x := range b.Width {
			raw, err := Encode(b.Format, b.Get(x, y))
			if err != nil {
				return err
			}
			w.WriteBytes(raw)
		}
	}

	return nil
}

// blockCoords yields the (x, y) image coordinates in block-tiled order:
// 32x32 blocks in row-major order, row-major within each block, edge
// blocks truncated rather than padded.
func blockCoords(width, height int, yield func(x, y int) bool) {
	for by := 0; by < height; by += blockSize {
		bh := min(blockSize, height-by)
		for bx := 0; bx < width; bx += blockSize {
			bw := min(blockSize, width-bx)
			for y := range bh {
				for x := range bw {
					if !yield(bx+x, by+y) {
						return
					}
				}
			}
		}
	}
}

// ReadBlock decodes pixels from r in 32x32 block-tiled order, storing
// each decoded pixel at its true (x, y) image coordinate.
func (b *Buffer) ReadBlock(r *buffer.Buffer) error {
	stride := BytesPerPixel(b.Format)
	var readErr error
	blockCoords(b.Width, b.Height, func(x, y int) bool {
		raw, err := r.ReadBytes(stride)
		if err != nil {
			readErr = err
			return false
		}
		p, err := Decode(b.Format, raw)
		if err != nil {
			readErr = err
			return false
		}
		b.Set(x, y, p)

		return true
	})

	return readErr
}

// WriteBlock encodes b's pixels into w in 32x32 block-tiled order,
// re-reading each image coordinate rather than rearranging pixels.
func (b *Buffer) WriteBlock(w *buffer.Buffer) error {
	var writeErr error
	blockCoords(b.Width, b.Height, func(x, y int) bool {
		raw, err := Encode(b.Format, b.Get(x, y))
		if err != nil {
			writeErr = err
			return false
		}
		w.WriteBytes(raw)

		return true
	})

	return writeErr
}

// toImageRGBA converts b into a stdlib image.RGBA for use with
// golang.org/x/image/draw.
func (b *Buffer) toImageRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		for x := range b.Width {
			p := b.Get(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}

	return img
}

// Resize returns a new Buffer of the given dimensions, produced by
// bilinear-scaling b. This is the path the external lowres texture
// companion file's 0.5x variant is produced through.
func (b *Buffer) Resize(width, height int) *Buffer {
	src := b.toImageRGBA()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	ximgdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out := New(b.Format, width, height)
	for y := range height {
		for x := range width {
			c := dst.RGBAAt(x, y)
			out.Set(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}

	return out
}
