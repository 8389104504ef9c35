package container

import (
	"github.com/sctoolkit/scfile/errs"
	"github.com/sctoolkit/scfile/format"
	"github.com/sctoolkit/scfile/internal/options"
	"github.com/sctoolkit/scfile/resource"
	"github.com/sctoolkit/scfile/texture"
	"github.com/sctoolkit/scfile/transform"
)

const (
	defaultHighresPostfix = "_highres"
	defaultLowresPostfix  = "_lowres"
)

// Document is the root aggregate of one .sc file: every resource,
// texture, and transform bank it carries, plus the flags controlling
// compression and external-texture layout.
type Document struct {
	Compression         format.CompressionType
	HasExternalTexture  bool
	UseLowresTexture    bool
	UseUncommonTexture  bool
	HighresPostfix      string
	LowresPostfix       string
	Textures            []texture.Texture
	Banks               []*transform.Bank
	Resources           map[uint16]resource.Resource
	Exports             map[uint16][]string
}

// Option configures a Document at construction time.
type Option = options.Option[*Document]

// New returns a Document with default postfixes, NONE compression, and
// a single empty primary bank.
func New(opts ...Option) (*Document, error) {
	d := &Document{
		HighresPostfix: defaultHighresPostfix,
		LowresPostfix:  defaultLowresPostfix,
		Resources:      make(map[uint16]resource.Resource),
		Exports:        make(map[uint16][]string),
		Banks:          []*transform.Bank{transform.NewBank("")},
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// WithCompression sets the envelope compression method.
func WithCompression(method format.CompressionType) Option {
	return options.NoError(func(d *Document) { d.Compression = method })
}

// WithExternalTexture enables the external-texture companion-file layout.
func WithExternalTexture(uncommon bool) Option {
	return options.NoError(func(d *Document) {
		d.HasExternalTexture = true
		d.UseUncommonTexture = uncommon
	})
}

// WithPostfixes overrides the highres/lowres companion-file postfixes.
func WithPostfixes(highres, lowres string) Option {
	return options.NoError(func(d *Document) {
		if highres != "" {
			d.HighresPostfix = highres
		}
		if lowres != "" {
			d.LowresPostfix = lowres
		}
	})
}

// PrimaryBank returns banks[0]. Every Document constructed via New has
// one; a Document decoded from a malformed stream with zero banks
// returns ErrNoPrimaryBank.
func (d *Document) PrimaryBank() (*transform.Bank, error) {
	if len(d.Banks) == 0 {
		return nil, errs.ErrNoPrimaryBank
	}

	return d.Banks[0], nil
}

// Validate checks that every export id resolves to an existing resource.
// Resource id uniqueness is guaranteed by the Resources map itself and is
// not checked here.
func (d *Document) Validate() error {
	for id := range d.Exports {
		if _, ok := d.Resources[id]; !ok {
			return errs.ErrExportUnknownResource
		}
	}

	return nil
}

// countsByKind tallies resources.
func (d *Document) countsByKind() map[resource.Kind]int {
	counts := make(map[resource.Kind]int, 4)
	for _, r := range d.Resources {
		counts[r.Kind]++
	}

	return counts
}
