package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")
	assert.Equal("label start missing", From("label %v missing", "start"))
	assert.Equal("pc 12", From("pc %d", 12))

	SetLocales()
	assert.Equal(language.AmericanEnglish, Language())
	assert.Equal("register 40 out of range", From("register %d out of range", 40))
}

func TestSetLocales(t *testing.T) {
	assert := assert.New(t)
	defer SetLocales("en-US")

	table := [](struct {
		locales []string
		lang    language.Tag
		text    string
	}){
		{[]string{"de-DE"}, language.German, "Marke start fehlt"},
		{[]string{"de"}, language.German, "Marke start fehlt"},
		{[]string{"fr-FR", "de-AT"}, language.German, "Marke start fehlt"},
		{[]string{"en-GB"}, language.AmericanEnglish, "label start missing"},
		{[]string{"ja-JP"}, language.AmericanEnglish, "label start missing"},
	}

	for _, entry := range table {
		SetLocales(entry.locales...)
		assert.Equal(entry.lang, Language(), entry.locales)
		assert.Equal(entry.text, From("label %v missing", "start"), entry.locales)
	}

	// Untranslated keys print their source text.
	SetLocales("de-DE")
	assert.Equal("machine reset", From("machine reset"))
	assert.Equal("Zeile 3 'hlt x' zu viele Operanden", From("line %d '%v' %v", 3, "hlt x", From("excessive operands")))
}
