// Package transform implements the affine Matrix and ColorTransform
// records a TransformBank holds, and the bank sequence itself.
//
// Wire layout for both record kinds follows the SupercellSWF community
// format (see DESIGN.md's Open Question entry): a Matrix is six
// little-endian int32 fixed-point values, a ColorTransform is seven
// bytes of additive and multiplicative color terms.
package transform
