package dublincore

import "strings"

// TypeVocabulary enumerates the DCMI Type Vocabulary used by dc:type.
type TypeVocabulary int

const (
	TypeNone TypeVocabulary = iota
	TypeCollection
	TypeDataset
	TypeEvent
	TypeImage
	TypeInteractiveResource
	TypeMovingImage
	TypePhysicalObject
	TypeService
	TypeSoftware
	TypeSound
	TypeStillImage
	TypeText
)

// Static bidirectional mapping between enum values and the canonical DCMI
// identifiers written on the wire.
var typeNames = map[TypeVocabulary]string{
	TypeCollection:          "Collection",
	TypeDataset:             "Dataset",
	TypeEvent:               "Event",
	TypeImage:               "Image",
	TypeInteractiveResource: "InteractiveResource",
	TypeMovingImage:         "MovingImage",
	TypePhysicalObject:      "PhysicalObject",
	TypeService:             "Service",
	TypeSoftware:            "Software",
	TypeSound:               "Sound",
	TypeStillImage:          "StillImage",
	TypeText:                "Text",
}

var typesByName = func() map[string]TypeVocabulary {
	byName := make(map[string]TypeVocabulary, len(typeNames))
	for t, name := range typeNames {
		byName[strings.ToLower(name)] = t
	}
	return byName
}()

// String returns the canonical DCMI identifier, or an empty string for
// TypeNone.
func (t TypeVocabulary) String() string {
	return typeNames[t]
}

// ParseType maps a DCMI identifier to its enum value, case-insensitively.
func ParseType(s string) (TypeVocabulary, bool) {
	t, ok := typesByName[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}
