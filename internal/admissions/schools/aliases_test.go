package schools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	assert.True(t, Matches("University of Toronto - St. George", "UofT"))
	assert.True(t, Matches("UWaterloo", "Waterloo"))
	assert.True(t, Matches("Queen's University", "Queens"))
	assert.True(t, Matches("Anything at all", AllKey))
	assert.False(t, Matches("McGill University", "Waterloo"))
	assert.False(t, Matches("Waterloo", "Atlantis"))
}

func TestListCoversEveryAlias(t *testing.T) {
	list := List()
	require.NotEmpty(t, list)
	assert.Equal(t, AllKey, list[0].Key)
	assert.Len(t, list, len(aliases))
	for _, u := range list {
		assert.True(t, Known(u.Key), u.Key)
	}
}
