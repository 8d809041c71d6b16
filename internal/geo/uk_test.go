package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCities(t *testing.T) {
	assert.Equal(t, []string{"Leeds"}, FilterCities("leeds", 10))
	assert.Equal(t, []string{"Leeds"}, FilterCities("  LEEDS  ", 10))

	// Substring match, not prefix: "ches" hits Chester, Chichester,
	// Colchester, Manchester and Winchester among others.
	matches := FilterCities("ches", 50)
	assert.Contains(t, matches, "Chester")
	assert.Contains(t, matches, "Manchester")
	assert.Contains(t, matches, "Winchester")

	assert.Empty(t, FilterCities("zzzz", 10))
}

func TestFilterCapsAtLimit(t *testing.T) {
	assert.Len(t, FilterCities("a", 3), 3)
	assert.Len(t, FilterTowns("a", 5), 5)
}

func TestFilterTowns(t *testing.T) {
	matches := FilterTowns("harro", 10)
	assert.Contains(t, matches, "Harrogate")
	assert.Contains(t, matches, "Harrow")
}

func TestHead(t *testing.T) {
	head := Head(Cities, 5)
	assert.Equal(t, []string{"Aberdeen", "Armagh", "Bangor", "Bath", "Belfast"}, head)

	assert.Len(t, Head([]string{"a", "b"}, 10), 2)
	assert.Empty(t, Head(Cities, 0))
	assert.Empty(t, Head(Cities, -1))
}
