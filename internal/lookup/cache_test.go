package lookup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := New("k1", "LotSizeUnits", "SquareFeet", at)

	assert.Equal(t, "k1", l.LookupKey)
	assert.Equal(t, "LotSizeUnits", l.LookupName)
	assert.Equal(t, "SquareFeet", l.LookupValue)
	assert.Equal(t, "SquareFeet", l.StandardLookupValue)
	assert.Equal(t, "Square Feet", l.LegacyOdataValue)
	assert.True(t, at.Equal(l.ModificationTimestamp))
}

func TestCache(t *testing.T) {
	now := time.Now()
	cache := NewCache([]Lookup{
		New("r1", "Roof", "Shingle", now),
		New("r2", "Roof", "Tile", now),
		New("h1", "Heating", "Radiant", now),
	})

	require.Equal(t, []string{"Heating", "Roof"}, cache.Names())
	assert.Equal(t, 3, cache.Len())
	assert.Len(t, cache.Entries("Roof"), 2)
	assert.Empty(t, cache.Entries("View"))

	v, ok := cache.Value("Roof", "r2")
	assert.True(t, ok)
	assert.Equal(t, "Tile", v)

	k, ok := cache.Key("Heating", "Radiant")
	assert.True(t, ok)
	assert.Equal(t, "h1", k)

	_, ok = cache.Value("Roof", "h1")
	assert.False(t, ok)
}

func TestCacheEmpty(t *testing.T) {
	cache := NewCache(nil)
	assert.Empty(t, cache.Names())
	assert.Zero(t, cache.Len())
}
