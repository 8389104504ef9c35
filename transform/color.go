package transform

import "github.com/sctoolkit/scfile/buffer"

// ColorTransform is an additive/multiplicative color adjustment applied
// to a displayed resource: out = in*Mul/255 + Add.
type ColorTransform struct {
	RedAdd, GreenAdd, BlueAdd       int8
	RedMul, GreenMul, BlueMul, AlphaMul uint8
}

// IdentityColor returns the no-op color transform.
func IdentityColor() ColorTransform {
	return ColorTransform{RedMul: 255, GreenMul: 255, BlueMul: 255, AlphaMul: 255}
}

// Write appends c's 7-byte wire representation to w.
func (c ColorTransform) Write(w *buffer.Buffer) {
	w.WriteI8(c.RedAdd)
	w.WriteI8(c.GreenAdd)
	w.WriteI8(c.BlueAdd)
	w.WriteU8(c.RedMul)
	w.WriteU8(c.GreenMul)
	w.WriteU8(c.BlueMul)
	w.WriteU8(c.AlphaMul)
}

// ReadColorTransform decodes a ColorTransform from r.
func ReadColorTransform(r *buffer.Buffer) (ColorTransform, error) {
	var c ColorTransform
	var err error

	if c.RedAdd, err = r.ReadI8(); err != nil {
		return ColorTransform{}, err
	}
	if c.GreenAdd, err = r.ReadI8(); err != nil {
		return ColorTransform{}, err
	}
	if c.BlueAdd, err = r.ReadI8(); err != nil {
		return ColorTransform{}, err
	}
	if c.RedMul, err = r.ReadU8(); err != nil {
		return ColorTransform{}, err
	}
	if c.GreenMul, err = r.ReadU8(); err != nil {
		return ColorTransform{}, err
	}
	if c.BlueMul, err = r.ReadU8(); err != nil {
		return ColorTransform{}, err
	}
	if c.AlphaMul, err = r.ReadU8(); err != nil {
		return ColorTransform{}, err
	}

	return c, nil
}
