package container

import (
	"sort"

	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/endian"
	"github.com/sctoolkit/scfile/resource"
)

// writePayload emits doc's full uncompressed tag stream (header through
// terminator), per spec.md §4.6's emit order.
func writePayload(doc *Document) ([]byte, error) {
	w := buffer.New(endian.GetLittleEndianEngine())
	defer w.Release()

	primary := doc.Banks[0]
	h := header{
		shapeCount:         countKind(doc, resource.KindShape),
		movieClipCount:     countKind(doc, resource.KindMovieClip),
		textureCount:       len(doc.Textures),
		textFieldCount:     countKind(doc, resource.KindTextField),
		primaryMatrixCount: len(primary.Matrices),
		primaryColorCount:  len(primary.Colors),
	}
	writeHeader(w, doc, h)

	if doc.UseUncommonTexture && (doc.HighresPostfix != defaultHighresPostfix || doc.LowresPostfix != defaultLowresPostfix) {
		w.SaveTag(tagPostfix, postfixPayload(doc))
	}
	if doc.UseLowresTexture {
		w.SaveTag(tagLowresMarker, nil)
	}
	if doc.UseUncommonTexture {
		w.SaveTag(tagUncommonMarker, nil)
	}
	if doc.HasExternalTexture {
		w.SaveTag(tagExternalTexture, nil)
	}

	for _, tex := range doc.Textures {
		tex.Write(w, !doc.HasExternalTexture)
	}

	modifiers := resourcesOfKind(doc, resource.KindMovieClipModifier)
	if len(modifiers) > 0 {
		mod := buffer.New(endian.GetLittleEndianEngine())
		mod.WriteU16(uint16(len(modifiers))) //nolint:gosec
		w.SaveTag(tagModifierBegin, mod.Bytes())
		mod.Release()
		for _, r := range modifiers {
			r.Write(w)
		}
	}

	for _, r := range resourcesOfKind(doc, resource.KindShape) {
		r.Write(w)
	}
	for _, r := range resourcesOfKind(doc, resource.KindTextField) {
		r.Write(w)
	}

	for i, bank := range doc.Banks {
		if i > 0 {
			nameBuf := buffer.New(endian.GetLittleEndianEngine())
			_ = nameBuf.WriteASCII(bank.Name)
			w.SaveTag(tagBankBegin, nameBuf.Bytes())
			nameBuf.Release()
		}
		for _, m := range bank.Matrices {
			mbuf := buffer.New(endian.GetLittleEndianEngine())
			m.Write(mbuf)
			w.SaveTag(matrixTagIDs[0], mbuf.Bytes())
			mbuf.Release()
		}
		for _, c := range bank.Colors {
			cbuf := buffer.New(endian.GetLittleEndianEngine())
			c.Write(cbuf)
			w.SaveTag(tagColorTransform, cbuf.Bytes())
			cbuf.Release()
		}
	}

	for _, r := range resourcesOfKind(doc, resource.KindMovieClip) {
		r.Write(w)
	}

	w.SaveTag(tagTerminator, nil)

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out, nil
}

func postfixPayload(doc *Document) []byte {
	buf := buffer.New(endian.GetLittleEndianEngine())
	defer buf.Release()
	_ = buf.WriteASCII(doc.HighresPostfix)
	_ = buf.WriteASCII(doc.LowresPostfix)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

func countKind(doc *Document, kind resource.Kind) int {
	n := 0
	for _, r := range doc.Resources {
		if r.Kind == kind {
			n++
		}
	}

	return n
}

// resourcesOfKind returns every resource of kind, in ascending id order.
func resourcesOfKind(doc *Document, kind resource.Kind) []resource.Resource {
	out := make([]resource.Resource, 0)
	for _, r := range doc.Resources {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}
