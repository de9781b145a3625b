package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTLookup(t *testing.T) {
	assert.Equal(t, "Read more", T(English, "blog.readMore"))
	assert.Equal(t, "Ler mais", T(Portuguese, "blog.readMore"))
}

func TestTFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T(English, "no.such.key"))
	assert.Equal(t, "no.such.key", T(Portuguese, "no.such.key"))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("pt"))
	assert.False(t, Supported("de"))
	assert.False(t, Supported(""))
}

func TestBothLanguagesCarrySameKeys(t *testing.T) {
	en := translations[English]
	pt := translations[Portuguese]

	for k := range en {
		_, ok := pt[k]
		assert.True(t, ok, "missing pt translation for %q", k)
	}
	for k := range pt {
		_, ok := en[k]
		assert.True(t, ok, "missing en translation for %q", k)
	}
}

func TestTableAppliesFallback(t *testing.T) {
	table := Table(Portuguese)
	assert.Equal(t, "Ler mais", table["blog.readMore"])
	assert.NotEmpty(t, table["nav.home"])
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Jun 1, 2024", FormatDate(English, d))
	assert.Equal(t, "1 de jun de 2024", FormatDate(Portuguese, d))
}
