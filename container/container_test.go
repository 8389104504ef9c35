package container

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sctoolkit/scfile/compress"
	"github.com/sctoolkit/scfile/format"
	"github.com/sctoolkit/scfile/pixel"
	"github.com/sctoolkit/scfile/resource"
	"github.com/sctoolkit/scfile/texture"
	"github.com/sctoolkit/scfile/transform"
)

// memFileSystem is an in-memory FileSystem stand-in for external-texture
// tests, so split-file resolution is exercised without touching disk.
type memFileSystem struct {
	files map[string][]byte
}

func newMemFileSystem() *memFileSystem {
	return &memFileSystem{files: make(map[string][]byte)}
}

func (m *memFileSystem) Stat(name string) bool {
	_, ok := m.files[name]
	return ok
}

func (m *memFileSystem) Open(name string) (io.ReadCloser, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

type memWriteCloser struct {
	fs   *memFileSystem
	name string
	buf  bytes.Buffer
}

func (w *memWriteCloser) Write(p []byte) (int, error) { return w.buf.Write(p) }
func (w *memWriteCloser) Close() error {
	w.fs.files[w.name] = w.buf.Bytes()
	return nil
}

func (m *memFileSystem) Create(name string) (io.WriteCloser, error) {
	return &memWriteCloser{fs: m, name: name}, nil
}

// S1: minimal empty document.
func TestSave_MinimalEmptyDocument(t *testing.T) {
	doc, err := New()
	require.NoError(t, err)

	out, err := Save(doc)
	require.NoError(t, err)

	want := []byte{
		0, 0, // shape count
		0, 0, // movie clip count
		0, 0, // texture count
		0, 0, // text field count
		0, 0, // primary matrix count
		0, 0, // primary color count
		0, 0, 0, 0, 0, // 5 reserved bytes
		0, 0, // export count
		0, 0, 0, 0, 0, // terminator tag (id=0, length=0)
	}
	require.Equal(t, want, out)

	loaded, err := Load(out)
	require.NoError(t, err)
	require.Equal(t, doc.HighresPostfix, loaded.HighresPostfix)
	require.Equal(t, doc.LowresPostfix, loaded.LowresPostfix)
	require.Empty(t, loaded.Textures)
	require.Empty(t, loaded.Resources)
	require.Len(t, loaded.Banks, 1)
}

// Document-level round trip (spec.md §8 property 1, invariant 5) must
// hold for every compression method, not just None: the detected method
// on load must match what was saved with, and the payload it wraps must
// still decode to an equal document.
func TestSaveLoad_CompressionMethodSurvivesRoundTrip(t *testing.T) {
	methods := []format.CompressionType{format.CompressionNone, format.CompressionLZMA, format.CompressionZstd}

	for _, method := range methods {
		t.Run(method.String(), func(t *testing.T) {
			doc, err := New(WithCompression(method))
			require.NoError(t, err)
			doc.Resources[3] = resource.Resource{Kind: resource.KindShape, TagID: 2, Payload: []byte{3, 0, 9}}

			out, err := Save(doc)
			require.NoError(t, err)

			loaded, err := Load(out)
			require.NoError(t, err)
			require.Equal(t, method, loaded.Compression)
			require.Equal(t, doc.Resources[3].Payload, loaded.Resources[3].Payload)
		})
	}
}

func addTexture2x2(doc *Document, linear bool) {
	buf := pixel.New(format.PixelFormatRGBA8888, 2, 2)
	for y := range 2 {
		for x := range 2 {
			buf.Set(x, y, pixel.RGBA{R: uint8(x*40 + 1), G: uint8(y*40 + 1), B: 7, A: 255}) //nolint:gosec
		}
	}
	doc.Textures = append(doc.Textures, texture.Texture{
		PixelFormat: format.PixelFormatRGBA8888,
		MagFilter:   format.FilterLinear,
		MinFilter:   format.FilterNearest,
		Linear:      linear,
		Downscaling: true,
		Width:       2,
		Height:      2,
		Pixels:      buf,
	})
}

// S2/S3: one 2x2 RGBA8 texture, linear and block layout produce an
// identical-length payload and round-trip to the same pixels.
func TestSaveLoad_SingleTextureLinearAndBlock(t *testing.T) {
	for _, linear := range []bool{true, false} {
		doc, err := New()
		require.NoError(t, err)
		addTexture2x2(doc, linear)

		out, err := Save(doc)
		require.NoError(t, err)

		loaded, err := Load(out)
		require.NoError(t, err)
		require.Len(t, loaded.Textures, 1)
		require.Equal(t, 2, loaded.Textures[0].Width)
		require.Equal(t, 2, loaded.Textures[0].Height)
		for y := range 2 {
			for x := range 2 {
				require.Equal(t, doc.Textures[0].Pixels.Get(x, y), loaded.Textures[0].Pixels.Get(x, y))
			}
		}
	}
}

// S4: external texture split-write/load round trip.
func TestSaveLoad_ExternalTexture(t *testing.T) {
	doc, err := New(WithExternalTexture(false))
	require.NoError(t, err)
	addTexture2x2(doc, true)

	fs := newMemFileSystem()
	out, err := Save(doc, WithFileSystem(fs, "foo.sc"))
	require.NoError(t, err)
	require.True(t, fs.Stat("foo_tex.sc"))

	loaded, err := Load(out, WithFileSystem(fs, "foo.sc"))
	require.NoError(t, err)
	require.Len(t, loaded.Textures, 1)
	require.NotNil(t, loaded.Textures[0].Pixels)
	require.Equal(t, doc.Textures[0].Pixels.Get(1, 1), loaded.Textures[0].Pixels.Get(1, 1))
}

// S4 (without a filesystem): the main file still frames texture tags,
// just without pixel payloads, and Load without WithFileSystem leaves
// Pixels nil rather than failing.
func TestSaveLoad_ExternalTextureNoFileSystemLeavesPixelsNil(t *testing.T) {
	doc, err := New(WithExternalTexture(false))
	require.NoError(t, err)
	addTexture2x2(doc, true)

	out, err := Save(doc)
	require.NoError(t, err)

	loaded, err := Load(out)
	require.NoError(t, err)
	require.Len(t, loaded.Textures, 1)
	require.Nil(t, loaded.Textures[0].Pixels)
}

// S5: postfix customisation with highres/lowres external companions.
func TestSaveLoad_UncommonPostfixes(t *testing.T) {
	doc, err := New(WithExternalTexture(true), WithPostfixes("_hd", "_sd"))
	require.NoError(t, err)
	addTexture2x2(doc, true)

	fs := newMemFileSystem()
	_, err = Save(doc, WithFileSystem(fs, "foo.sc"))
	require.NoError(t, err)
	require.True(t, fs.Stat("foo_hd_tex.sc"))
	require.True(t, fs.Stat("foo_sd_tex.sc"))
}

// External-file resolution precedence: highres wins when both exist.
func TestResolveExternalTexFile_HighresPrecedence(t *testing.T) {
	fs := newMemFileSystem()
	fs.files["foo_hd_tex.sc"] = []byte{0}
	fs.files["foo_sd_tex.sc"] = []byte{0}

	doc, err := New(WithExternalTexture(true), WithPostfixes("_hd", "_sd"))
	require.NoError(t, err)

	path, err := resolveExternalTexFile(doc, fs, "foo")
	require.NoError(t, err)
	require.Equal(t, "foo_hd_tex.sc", path)
}

func TestResolveExternalTexFile_MissingFailsCleanly(t *testing.T) {
	fs := newMemFileSystem()
	doc, err := New(WithExternalTexture(false))
	require.NoError(t, err)

	_, err = resolveExternalTexFile(doc, fs, "foo")
	require.Error(t, err)
}

// S6: two transform banks round trip.
func TestSaveLoad_TwoTransformBanks(t *testing.T) {
	doc, err := New()
	require.NoError(t, err)

	primary := doc.Banks[0]
	primary.Matrices = []transform.Matrix{transform.Identity(), transform.Identity(), transform.Identity()}
	primary.Colors = []transform.ColorTransform{transform.IdentityColor()}

	secondary := transform.NewBank("secondary")
	secondary.Matrices = []transform.Matrix{{A: 2, D: 2, TX: 10, TY: -5}}
	doc.Banks = append(doc.Banks, secondary)

	out, err := Save(doc)
	require.NoError(t, err)

	loaded, err := Load(out)
	require.NoError(t, err)
	require.Len(t, loaded.Banks, 2)
	require.Len(t, loaded.Banks[0].Matrices, 3)
	require.Len(t, loaded.Banks[0].Colors, 1)
	require.Len(t, loaded.Banks[1].Matrices, 1)
	require.Equal(t, "secondary", loaded.Banks[1].Name)
	require.InDelta(t, 2.0, loaded.Banks[1].Matrices[0].A, 1.0/1024)
	require.InDelta(t, 10.0, loaded.Banks[1].Matrices[0].TX, 1.0/20)
}

// Shapes and resources round trip with ids preserved across load/save.
func TestSaveLoad_ShapesAndExports(t *testing.T) {
	doc, err := New()
	require.NoError(t, err)

	doc.Resources[5] = resource.Resource{Kind: resource.KindShape, TagID: 2, Payload: []byte{5, 0, 1, 2, 3}}
	doc.Resources[7] = resource.Resource{Kind: resource.KindShape, TagID: 2, Payload: []byte{7, 0}}
	doc.Exports[5] = []string{"hero"}

	out, err := Save(doc)
	require.NoError(t, err)

	loaded, err := Load(out)
	require.NoError(t, err)
	require.Len(t, loaded.Resources, 2)
	require.Equal(t, []string{"hero"}, loaded.Exports[5])
	require.Equal(t, doc.Resources[5].Payload, loaded.Resources[5].Payload)
}

// Count enforcement: a crafted stream declaring N shapes but carrying
// N+1 shape tags fails with CountOverflow at the (N+1)-th.
func TestLoad_ShapeCountOverflowFails(t *testing.T) {
	doc, err := New()
	require.NoError(t, err)
	doc.Resources[1] = resource.Resource{Kind: resource.KindShape, TagID: 2, Payload: []byte{1, 0}}
	doc.Resources[2] = resource.Resource{Kind: resource.KindShape, TagID: 2, Payload: []byte{2, 0}}

	out, err := Save(doc)
	require.NoError(t, err)

	// writePayload wrote the header with shapeCount == 2 (from doc's
	// actual resource count); corrupt it down to 1 so the stream yields
	// one more shape tag than declared.
	corrupted := append([]byte(nil), out...)
	corrupted[0] = 1

	_, err = Load(corrupted)
	require.Error(t, err)
}

// Unknown-tag tolerance: an unrecognised tag id with a valid length,
// injected mid-stream, must not disturb the rest of the parse.
func TestLoad_UnknownTagIsSkipped(t *testing.T) {
	doc, err := New()
	require.NoError(t, err)
	doc.Resources[9] = resource.Resource{Kind: resource.KindShape, TagID: 2, Payload: []byte{9, 0, 1}}

	plain, err := writePayload(doc)
	require.NoError(t, err)

	// Splice an unknown tag (id 200, 3-byte payload) right before the
	// terminator (the terminator is the last 5 bytes: id 0, length 0).
	splicePoint := len(plain) - 5
	unknown := []byte{200, 3, 0, 0, 0, 0xAA, 0xBB, 0xCC}
	spliced := append(append(append([]byte(nil), plain[:splicePoint]...), unknown...), plain[splicePoint:]...)

	out, err := compress.Compress(format.CompressionNone, spliced)
	require.NoError(t, err)

	loaded, err := Load(out)
	require.NoError(t, err)
	require.Len(t, loaded.Resources, 1)
	require.Equal(t, []byte{9, 0, 1}, loaded.Resources[9].Payload)
}

func TestDocument_ValidateCatchesUnknownExport(t *testing.T) {
	doc, err := New()
	require.NoError(t, err)
	doc.Exports[42] = []string{"ghost"}

	require.Error(t, doc.Validate())
}
