package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"go", "sql"}, ParseList(datatypes.JSON(`["go","sql"]`)))
	assert.Equal(t, []string{}, ParseList(datatypes.JSON(`[]`)))
	assert.Equal(t, []string{}, ParseList(nil))
}

func TestParseListMalformed(t *testing.T) {
	// Bad stored values degrade to an empty list instead of erroring
	assert.Equal(t, []string{}, ParseList(datatypes.JSON(`{"not":"a list"}`)))
	assert.Equal(t, []string{}, ParseList(datatypes.JSON(`[unterminated`)))
	assert.Equal(t, []string{}, ParseList(datatypes.JSON(`"just a string"`)))
}

func TestToList(t *testing.T) {
	assert.Equal(t, datatypes.JSON(`["a","b"]`), ToList([]string{"a", "b"}))
	assert.Equal(t, datatypes.JSON(`[]`), ToList(nil))

	// Round trip preserves order
	assert.Equal(t, []string{"z", "a", "m"}, ParseList(ToList([]string{"z", "a", "m"})))
}
