package sector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, "Technology", c.Lookup("NVDA"))
	assert.Equal(t, "Healthcare", c.Lookup("UNH"))
	assert.Equal(t, Unknown, c.Lookup("ZZZZ"))

	assert.True(t, c.Known("NVDA"))
	assert.False(t, c.Known("ZZZZ"))
}

func TestCatalogCustom(t *testing.T) {
	c := NewCatalog(map[string]string{"ABC": "Energy"})
	assert.Equal(t, "Energy", c.Lookup("ABC"))
	assert.False(t, c.Known("NVDA"))
}
