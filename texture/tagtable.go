package texture

import "github.com/sctoolkit/scfile/format"

// texRow is one row of the texture tag-id table (spec.md §4.4).
type texRow struct {
	id                 uint8
	mag, min           format.FilterMode
	linear, downscaling bool
}

// texRows is ordered by ascending tag id, which is also the order the
// writer must prefer when more than one row matches.
var texRows = []texRow{
	{id: 1, mag: format.FilterLinear, min: format.FilterNearest, linear: true, downscaling: true},
	{id: 16, mag: format.FilterLinear, min: format.FilterLinearMipmapNearest, linear: true, downscaling: true},
	{id: 19, mag: format.FilterLinear, min: format.FilterLinearMipmapNearest, linear: true, downscaling: false},
	{id: 24, mag: format.FilterLinear, min: format.FilterNearest, linear: true, downscaling: false},
	{id: 27, mag: format.FilterLinear, min: format.FilterNearest, linear: false, downscaling: false},
	{id: 28, mag: format.FilterLinear, min: format.FilterNearest, linear: false, downscaling: true},
	{id: 29, mag: format.FilterLinear, min: format.FilterLinearMipmapNearest, linear: false, downscaling: true},
	{id: 34, mag: format.FilterNearest, min: format.FilterNearest},
}

// IsTextureTag reports whether id is one of the eight texture tag ids.
func IsTextureTag(id uint8) bool {
	_, ok := lookupTag(id)
	return ok
}

func lookupTag(id uint8) (texRow, bool) {
	for _, row := range texRows {
		if row.id == id {
			return row, true
		}
	}

	return texRow{}, false
}

// filtersForTag returns the (mag, min, linear, downscaling) the table
// authoritatively assigns to a loaded texture tag id. Tag 34 ignores
// linear/downscaling on load, per the table's "(any)" cells; both are
// reported as false.
func filtersForTag(id uint8) (mag, min format.FilterMode, linear, downscaling bool, ok bool) {
	row, ok := lookupTag(id)
	if !ok {
		return 0, 0, false, false, false
	}

	return row.mag, row.min, row.linear, row.downscaling, true
}

// tagForFilters selects the minimal tag id whose row matches exactly; if
// none match, tag 1 is returned, per spec.md §4.4's write rule.
func tagForFilters(mag, min format.FilterMode, linear, downscaling bool) uint8 {
	for _, row := range texRows {
		if row.id == 34 {
			if mag == format.FilterNearest && min == format.FilterNearest {
				return row.id
			}
			continue
		}
		if row.mag == mag && row.min == min && row.linear == linear && row.downscaling == downscaling {
			return row.id
		}
	}

	return 1
}
