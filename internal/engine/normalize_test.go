package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CaseFolding(t *testing.T) {
	assert.Equal(t, Normalize("привіт"), Normalize("Привіт"))
	assert.Equal(t, Normalize("привіт"), Normalize("ПРИВІТ"))
	assert.Equal(t, "львів", Normalize("ЛЬВІВ"))
	assert.Equal(t, "hello", Normalize("HeLLo"))
}

func TestNormalize_Quotes(t *testing.T) {
	// усі варіанти апострофа — один семантичний символ
	assert.Equal(t, Normalize("словянськ"), Normalize("Слов’янськ"))
	assert.Equal(t, Normalize("словянськ"), Normalize("Слов'янськ"))
	assert.Equal(t, Normalize("пятихатки"), Normalize("П'ятихатки"))
	assert.Equal(t, Normalize("камянка"), Normalize("Кам`янка"))
}

func TestNormalize_Diacritics(t *testing.T) {
	assert.Equal(t, Normalize("chisinau"), Normalize("Chișinău"))
	assert.Equal(t, Normalize("киів"), Normalize("Київ"))
}

func TestNormalize_Whitespace(t *testing.T) {
	assert.Equal(t, "львів", Normalize("  Львів\t\n"))
	// internal whitespace is preserved
	assert.Equal(t, "кривии  ріг", Normalize("Кривий  Ріг"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Привіт",
		"з Києва до Львова",
		"Слов’янськ",
		"  mixed Текст 123  ",
		"Chișinău",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_Total(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("’'`\""))
}
