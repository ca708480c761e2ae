package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ParseList decodes a JSON column holding an ordered list of strings.
// Malformed or empty stored values degrade to an empty list instead of
// failing the read.
func ParseList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	return items
}

// ToList encodes an ordered list of strings for storage in a JSON column.
func ToList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
