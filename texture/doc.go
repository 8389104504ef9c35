// Package texture implements the Texture record: the pixel-format,
// filter, and layout fields a texture tag carries, the tag-id table
// mapping (mag, min, linear, downscaling) to a wire tag id, and framing
// of the texture tag itself.
package texture
