package container

import (
	"fmt"

	"github.com/sctoolkit/scfile/buffer"
	"github.com/sctoolkit/scfile/errs"
	"github.com/sctoolkit/scfile/resource"
	"github.com/sctoolkit/scfile/texture"
	"github.com/sctoolkit/scfile/transform"
)

// dispatchState tracks the counters the tag loop needs across
// iterations: how many resources of each kind have been seen against the
// header-declared ceiling, the next texture slot, and whether texture
// payloads are present in this stream. The bank currently receiving
// matrices/colors is tracked by runDispatcher itself.
type dispatchState struct {
	h header

	shapesSeen, movieClipsSeen, textFieldsSeen int
	modifiersSeen, modifiersExpected           int
	modifierBlockOpen                          bool

	nextTextureSlot int
	includePixels   bool
	sink            ProgressSink
}

// runDispatcher reads tag headers from r until the terminator, mutating
// doc per spec.md §4.5.
func runDispatcher(r *buffer.Buffer, doc *Document, st *dispatchState) error {
	bank := doc.Banks[0]

	for {
		id, length, err := r.ReadTagHeader()
		if err != nil {
			return err
		}

		switch {
		case id == tagTerminator:
			return nil

		case id == tagLowresMarker:
			doc.UseLowresTexture = true

		case id == tagExternalTexture:
			doc.HasExternalTexture = true
			st.includePixels = false

		case id == tagUncommonMarker:
			doc.UseUncommonTexture = true

		case id == tagPostfix:
			hi, err := r.ReadASCII()
			if err != nil {
				return err
			}
			lo, err := r.ReadASCII()
			if err != nil {
				return err
			}
			if hi != "" && lo != "" {
				doc.HighresPostfix = hi
				doc.LowresPostfix = lo
			}

		case contains(textureTagIDs, id):
			tex, err := texture.Read(id, length, r, st.includePixels)
			if err != nil {
				return err
			}
			if st.nextTextureSlot >= st.h.textureCount {
				return fmt.Errorf("%w: texture", errs.ErrCountOverflow)
			}
			doc.Textures = append(doc.Textures, tex)
			st.nextTextureSlot++
			st.sink.Report(StateTextureLoad, st.nextTextureSlot)

		case contains(shapeTagIDs, id):
			if st.shapesSeen >= st.h.shapeCount {
				return fmt.Errorf("%w: shape", errs.ErrCountOverflow)
			}
			res, err := resource.Read(resource.KindShape, id, length, r)
			if err != nil {
				return err
			}
			doc.Resources[res.ID()] = res
			st.shapesSeen++

		case contains(movieClipTagIDs, id):
			if st.movieClipsSeen >= st.h.movieClipCount {
				return fmt.Errorf("%w: movie clip", errs.ErrCountOverflow)
			}
			res, err := resource.Read(resource.KindMovieClip, id, length, r)
			if err != nil {
				return err
			}
			doc.Resources[res.ID()] = res
			st.movieClipsSeen++

		case contains(textFieldTagIDs, id):
			if st.textFieldsSeen >= st.h.textFieldCount {
				return fmt.Errorf("%w: text field", errs.ErrCountOverflow)
			}
			res, err := resource.Read(resource.KindTextField, id, length, r)
			if err != nil {
				return err
			}
			doc.Resources[res.ID()] = res
			st.textFieldsSeen++

		case contains(matrixTagIDs, id):
			m, err := transform.ReadMatrix(r)
			if err != nil {
				return err
			}
			bank.Matrices = append(bank.Matrices, m)

		case id == tagColorTransform:
			c, err := transform.ReadColorTransform(r)
			if err != nil {
				return err
			}
			bank.Colors = append(bank.Colors, c)

		case id == tagModifierBegin:
			count, err := r.ReadU16()
			if err != nil {
				return err
			}
			st.modifierBlockOpen = true
			st.modifiersExpected = int(count)
			st.modifiersSeen = 0

		case contains(modifierTagIDs, id):
			if st.modifiersSeen >= st.modifiersExpected {
				return fmt.Errorf("%w: modifier", errs.ErrCountOverflow)
			}
			res, err := resource.Read(resource.KindMovieClipModifier, id, length, r)
			if err != nil {
				return err
			}
			doc.Resources[res.ID()] = res
			st.modifiersSeen++

		case id == tagBankBegin:
			name, err := r.ReadASCII()
			if err != nil {
				return err
			}
			bank = transform.NewBank(name)
			doc.Banks = append(doc.Banks, bank)

		default:
			if err := r.Skip(int(length)); err != nil {
				return err
			}
		}
	}
}
