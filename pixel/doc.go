// Package pixel implements the eleven packed pixel formats a texture
// record may carry, the linear and 32x32-block memory layouts a payload
// may be arranged in, and a Buffer type holding a decoded RGBA image for
// resizing and re-encoding.
//
// # Formats
//
// Each format packs one pixel into 1, 2, or 4 bytes:
//
//	RGBA8888   4 bytes, one per channel
//	RGBA4444   2 bytes, 4-bit nibbles: (R<<12)|(G<<8)|(B<<4)|A
//	RGBA5551   2 bytes, 5-5-5-1:       (R<<11)|(G<<6)|(B<<1)|A
//	RGB565     2 bytes, 5-6-5:         (R<<11)|(G<<5)|B
//	LUMINANCE8A8  2 bytes: luminance, alpha
//	LUMINANCE8    1 byte: luminance
//
// Channel expansion back to 8 bits is v_out = round(v_in * 255 / max);
// Encode and Decode are exact inverses for every representable value,
// except that Encode writes any pixel whose alpha is zero (in a format
// with alpha) as all-zero channels.
//
// # Layouts
//
// ReadLinear/WriteLinear walk the image row-major. ReadBlock/WriteBlock
// tile it into 32x32 blocks, row-major block order and row-major within
// each block; edge blocks are simply shorter, never padded.
package pixel
