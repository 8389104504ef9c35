package transform

import "github.com/sctoolkit/scfile/buffer"

// scaleCoeff and scaleTranslation are the fixed-point denominators the
// wire format scales Matrix's coefficient and translation fields by.
const (
	scaleCoeff      = 1024
	scaleTranslation = 20
)

// Matrix is an affine 2x3 transform: [a c tx; b d ty].
type Matrix struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

func roundScale(v, scale float64) int32 {
	if v >= 0 {
		return int32(v*scale + 0.5) //nolint:gosec
	}

	return int32(v*scale - 0.5) //nolint:gosec
}

// Write appends m's 24-byte wire representation to w.
func (m Matrix) Write(w *buffer.Buffer) {
	w.WriteI32(roundScale(m.A, scaleCoeff))
	w.WriteI32(roundScale(m.B, scaleCoeff))
	w.WriteI32(roundScale(m.C, scaleCoeff))
	w.WriteI32(roundScale(m.D, scaleCoeff))
	w.WriteI32(roundScale(m.TX, scaleTranslation))
	w.WriteI32(roundScale(m.TY, scaleTranslation))
}

// ReadMatrix decodes a Matrix from r.
func ReadMatrix(r *buffer.Buffer) (Matrix, error) {
	vals := [6]int32{}
	for i := range vals {
		v, err := r.ReadI32()
		if err != nil {
			return Matrix{}, err
		}
		vals[i] = v
	}

	return Matrix{
		A:  float64(vals[0]) / scaleCoeff,
		B:  float64(vals[1]) / scaleCoeff,
		C:  float64(vals[2]) / scaleCoeff,
		D:  float64(vals[3]) / scaleCoeff,
		TX: float64(vals[4]) / scaleTranslation,
		TY: float64(vals[5]) / scaleTranslation,
	}, nil
}
