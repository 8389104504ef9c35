package container

// Tag ids recognised by the dispatcher (spec.md §4.4/§4.5).
const (
	tagTerminator       uint8 = 0
	tagLowresMarker     uint8 = 23
	tagExternalTexture  uint8 = 26
	tagUncommonMarker   uint8 = 30
	tagPostfix          uint8 = 32
	tagModifierBegin    uint8 = 37
	tagBankBegin        uint8 = 42
)

var textureTagIDs = []uint8{1, 16, 19, 24, 27, 28, 29, 34}
var shapeTagIDs = []uint8{2, 18}
var movieClipTagIDs = []uint8{3, 10, 12, 14, 35}
var textFieldTagIDs = []uint8{7, 15, 20, 21, 25, 33, 43, 44}
var matrixTagIDs = []uint8{8, 36}
var modifierTagIDs = []uint8{38, 39, 40}

const tagColorTransform uint8 = 9

func contains(ids []uint8, id uint8) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
