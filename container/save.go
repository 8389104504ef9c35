package container

import (
	"fmt"

	"github.com/sctoolkit/scfile/compress"
)

// Save encodes doc into the full bytes of a .sc file (tag stream plus
// compression envelope). When doc.HasExternalTexture is set and
// WithFileSystem was given, the texture companion file(s) are written as
// a side effect and the returned bytes carry the main file only.
func Save(doc *Document, opts ...LoadOption) ([]byte, error) {
	cfg := loadConfig{sink: NoopSink{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.sink.Report(StateSaving, cfg.name)

	plain, err := writePayload(doc)
	if err != nil {
		return nil, err
	}

	if doc.HasExternalTexture && cfg.fs != nil {
		if err := saveExternalTextures(doc, cfg.fs, cfg.name); err != nil {
			return nil, err
		}
	}

	out, err := compress.Compress(doc.Compression, plain)
	if err != nil {
		return nil, fmt.Errorf("container: compress: %w", err)
	}

	cfg.sink.Report(StateSavingFinish, cfg.name)

	return out, nil
}
