package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("Heavy Rain", "rain"))
	assert.True(t, HasAny("thunderstorm", "snow", "STORM"))
	assert.False(t, HasAny("Clear Sky", "cloud", "rain"))
	assert.False(t, HasAny("Clear Sky"))
}

func TestEqualsAny(t *testing.T) {
	assert.True(t, EqualsAny(" tamil nadu ", "Kerala", "Tamil Nadu"))
	assert.False(t, EqualsAny("Tamil", "Tamil Nadu"))
	assert.False(t, EqualsAny("", "Kerala"))
}
