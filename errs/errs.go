// Package errs collects the sentinel errors returned by the .sc codec.
//
// Every exported error is a package-level value created with errors.New,
// so callers compare with errors.Is rather than type assertions. Layers
// that add context wrap with %w so the sentinel survives across package
// boundaries (container wraps buffer, buffer wraps nothing further).
package errs

import "errors"

var (
	// ErrTruncated is returned when a read would pass the end of the buffer.
	ErrTruncated = errors.New("scfile: truncated read past end of buffer")

	// ErrNegativeLength is returned when a tag header declares a negative payload length.
	ErrNegativeLength = errors.New("scfile: tag declares negative payload length")

	// ErrCountOverflow is returned when the tag stream yields more resources
	// of a kind than the header declared.
	ErrCountOverflow = errors.New("scfile: resource count exceeds header-declared count")

	// ErrUnknownPixelFormat is returned when a pixel-format index read from
	// the stream falls outside [0,10].
	ErrUnknownPixelFormat = errors.New("scfile: unknown pixel format index")

	// ErrMissingExternalTexture is returned when an external texture file is
	// required but none of the highres/lowres/common candidates exist.
	ErrMissingExternalTexture = errors.New("scfile: no external texture file found")

	// ErrCompressionFailure is returned when decompression fails on payload
	// bytes passed to a non-None compression method.
	ErrCompressionFailure = errors.New("scfile: compression envelope failed")

	// ErrInvalidHeaderSize is returned when a fixed-size header blob has the wrong length.
	ErrInvalidHeaderSize = errors.New("scfile: invalid header size")

	// ErrInvalidTextLength is returned when an ASCII string is too long for its 1-byte length prefix.
	ErrInvalidTextLength = errors.New("scfile: invalid ASCII string length")

	// ErrDuplicateResourceID is returned when two resources in memory share an id.
	ErrDuplicateResourceID = errors.New("scfile: duplicate resource id")

	// ErrExportUnknownResource is returned when an export entry names a resource id that does not exist.
	ErrExportUnknownResource = errors.New("scfile: export references unknown resource id")

	// ErrNoPrimaryBank is returned when a document has no transform banks at all.
	ErrNoPrimaryBank = errors.New("scfile: document has no primary transform bank")
)
