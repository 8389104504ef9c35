package container

import (
	"fmt"
	"io"
	"strings"

	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/compress"
	"github.com/sctoolkit/scfile/endian"
	"github.com/sctoolkit/scfile/errs"
	"github.com/sctoolkit/scfile/texture"
)

const texSuffix = "_tex.sc"

func baseName(name string) string {
	return strings.TrimSuffix(name, ".sc")
}

func texNameWithPostfix(base, postfix string) string { return base + postfix + texSuffix }
func commonTexName(base string) string               { return base + texSuffix }

// resolveExternalTexFile implements spec.md §4.6's precedence: highres,
// then lowres, then common; MissingExternalTexture if none exist.
func resolveExternalTexFile(doc *Document, fs FileSystem, base string) (string, error) {
	if doc.UseUncommonTexture {
		hi := texNameWithPostfix(base, doc.HighresPostfix)
		if fs.Stat(hi) {
			return hi, nil
		}
		lo := texNameWithPostfix(base, doc.LowresPostfix)
		if fs.Stat(lo) {
			return lo, nil
		}
	}
	common := commonTexName(base)
	if fs.Stat(common) {
		return common, nil
	}

	return "", errs.ErrMissingExternalTexture
}

// loadExternalTextures reads the chosen companion file and fills in
// doc.Textures[i].Pixels by position, matching the main file's texture
// tag order.
func loadExternalTextures(doc *Document, fs FileSystem, name string) error {
	path, err := resolveExternalTexFile(doc, fs, baseName(name))
	if err != nil {
		return err
	}

	rc, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("container: open external texture file: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("container: read external texture file: %w", err)
	}

	_, plain, err := compress.Decompress(raw)
	if err != nil {
		return fmt.Errorf("container: decompress external texture file: %w", err)
	}

	r := buffer.FromBytes(endian.GetLittleEndianEngine(), plain)
	slot := 0
	for {
		id, length, err := r.ReadTagHeader()
		if err != nil {
			return err
		}
		if id == tagTerminator {
			break
		}
		if !contains(textureTagIDs, id) {
			if err := r.Skip(int(length)); err != nil {
				return err
			}
			continue
		}
		tex, err := texture.Read(id, length, r, true)
		if err != nil {
			return err
		}
		if slot < len(doc.Textures) {
			doc.Textures[slot].Pixels = tex.Pixels
		}
		slot++
	}

	return nil
}

// saveExternalTextures writes the companion file(s) for doc's textures,
// downscaling the lowres variant by 0.5x when UseUncommonTexture is set.
func saveExternalTextures(doc *Document, fs FileSystem, name string) error {
	base := baseName(name)

	if !doc.UseUncommonTexture {
		return writeTexFile(doc, fs, commonTexName(base), 1.0)
	}

	if err := writeTexFile(doc, fs, texNameWithPostfix(base, doc.HighresPostfix), 1.0); err != nil {
		return err
	}

	return writeTexFile(doc, fs, texNameWithPostfix(base, doc.LowresPostfix), 0.5)
}

func writeTexFile(doc *Document, fs FileSystem, name string, scale float64) error {
	w := buffer.New(endian.GetLittleEndianEngine())
	defer w.Release()

	for _, tex := range doc.Textures {
		t := tex
		if scale != 1.0 && t.Pixels != nil {
			nw := int(float64(t.Pixels.Width) * scale)
			nh := int(float64(t.Pixels.Height) * scale)
			resized := t.Pixels.Resize(nw, nh)
			t.Pixels = resized
			t.Width, t.Height = nw, nh
		}
		t.Write(w, true)
	}
	w.SaveTag(tagTerminator, nil)

	out, err := compress.Compress(doc.Compression, w.Bytes())
	if err != nil {
		return fmt.Errorf("container: compress external texture file: %w", err)
	}

	wc, err := fs.Create(name)
	if err != nil {
		return fmt.Errorf("container: create external texture file: %w", err)
	}
	defer wc.Close()

	_, err = wc.Write(out)

	return err
}
