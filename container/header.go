package container

import (
	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/texture"
)

// reservedHeaderBytes is the fixed padding following the primary bank's
// counts, skipped on read and zero-filled on write.
const reservedHeaderBytes = 5

// header holds the fixed-layout fields read before the tag stream
// begins, plus the texture-placeholder count needed to size Textures.
type header struct {
	shapeCount, movieClipCount, textureCount, textFieldCount int
	primaryMatrixCount, primaryColorCount                    int
}

// readHeader consumes the fixed-layout header fields and the exports
// table (spec.md §4.6 step 1), returning the struct sizing counters used
// by the tag dispatcher. doc's Exports map is populated directly.
func readHeader(r *buffer.Buffer, doc *Document) (header, error) {
	var h header
	var err error

	u16 := func() (int, error) {
		v, e := r.ReadU16()
		return int(v), e
	}

	if h.shapeCount, err = u16(); err != nil {
		return h, err
	}
	if h.movieClipCount, err = u16(); err != nil {
		return h, err
	}
	if h.textureCount, err = u16(); err != nil {
		return h, err
	}
	if h.textFieldCount, err = u16(); err != nil {
		return h, err
	}
	if h.primaryMatrixCount, err = u16(); err != nil {
		return h, err
	}
	if h.primaryColorCount, err = u16(); err != nil {
		return h, err
	}

	if err := r.Skip(reservedHeaderBytes); err != nil {
		return h, err
	}

	exportCount, err := u16()
	if err != nil {
		return h, err
	}
	ids := make([]uint16, exportCount)
	for i := range ids {
		v, err := r.ReadU16()
		if err != nil {
			return h, err
		}
		ids[i] = v
	}
	for i := range ids {
		name, err := r.ReadASCII()
		if err != nil {
			return h, err
		}
		doc.Exports[ids[i]] = append(doc.Exports[ids[i]], name)
	}

	doc.Textures = make([]texture.Texture, 0, h.textureCount)

	return h, nil
}

// writeHeader emits the fixed-layout header fields and exports table.
func writeHeader(w *buffer.Buffer, doc *Document, h header) {
	w.WriteU16(uint16(h.shapeCount))      //nolint:gosec
	w.WriteU16(uint16(h.movieClipCount))  //nolint:gosec
	w.WriteU16(uint16(h.textureCount))    //nolint:gosec
	w.WriteU16(uint16(h.textFieldCount))  //nolint:gosec
	w.WriteU16(uint16(h.primaryMatrixCount)) //nolint:gosec
	w.WriteU16(uint16(h.primaryColorCount))  //nolint:gosec
	w.Fill(reservedHeaderBytes)

	uniqueIDs := make([]uint16, 0, len(doc.Exports))
	for id := range doc.Exports {
		uniqueIDs = append(uniqueIDs, id)
	}
	sortUint16(uniqueIDs)

	// The wire format is a flat (id, name) pair list: one id entry per
	// exported name, not per resource, so a resource with N export names
	// contributes N identical id entries.
	var ids []uint16
	var names []string
	for _, id := range uniqueIDs {
		for _, name := range doc.Exports[id] {
			ids = append(ids, id)
			names = append(names, name)
		}
	}

	w.WriteU16(uint16(len(ids))) //nolint:gosec
	for _, id := range ids {
		w.WriteU16(id)
	}
	for _, name := range names {
		_ = w.WriteASCII(name)
	}
}

func sortUint16(ids []uint16) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
