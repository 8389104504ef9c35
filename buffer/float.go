package buffer

import "math"

// f32bits and f32frombits wrap the stdlib IEEE-754 bit conversions. No
// third-party library in the retrieval pack offers this beyond what
// math already provides, so this one sliver stays on the standard
// library.
func f32bits(v float32) uint32    { return math.Float32bits(v) }
func f32frombits(v uint32) float32 { return math.Float32frombits(v) }
