package container

import (
	"fmt"

	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/compress"
	"github.com/sctoolkit/scfile/endian"
)

// LoadOption configures a single Load call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	sink ProgressSink
	fs   FileSystem
	name string
}

// WithSink attaches a progress sink to a Load/Save call.
func WithSink(sink ProgressSink) LoadOption {
	return func(c *loadConfig) { c.sink = sink }
}

// WithFileSystem attaches the FileSystem and base file name used to
// resolve external-texture companion files.
func WithFileSystem(fs FileSystem, name string) LoadOption {
	return func(c *loadConfig) { c.fs = fs; c.name = name }
}

// Load decodes raw (the full bytes of a .sc file, envelope included)
// into a Document. Texture pixel payloads present in an external
// companion file are resolved via WithFileSystem; without it, externally
// stored textures are left with nil Pixels.
func Load(raw []byte, opts ...LoadOption) (*Document, error) {
	cfg := loadConfig{sink: NoopSink{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	method, plain, err := compress.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("container: decompress: %w", err)
	}

	doc, err := New()
	if err != nil {
		return nil, err
	}
	doc.Compression = method

	r := buffer.FromBytes(endian.GetLittleEndianEngine(), plain)
	cfg.sink.Report(StateLoading, cfg.name)

	h, err := readHeader(r, doc)
	if err != nil {
		return nil, fmt.Errorf("container: header: %w", err)
	}

	st := &dispatchState{h: h, includePixels: true, sink: cfg.sink}
	if err := runDispatcher(r, doc, st); err != nil {
		return nil, fmt.Errorf("container: tag stream: %w", err)
	}

	if doc.HasExternalTexture && cfg.fs != nil {
		if err := loadExternalTextures(doc, cfg.fs, cfg.name); err != nil {
			return nil, err
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	cfg.sink.Report(StateLoadingFinish, cfg.name)

	return doc, nil
}
