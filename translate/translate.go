// Package translate formats the diagnostics of the assembler and the
// virtual machine in the user's language.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer
var tag language.Tag

var messages = newCatalog()

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("pievm: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the catalog language that best matches locales.
// With no locales, or none that match, en-US is used.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	_, index := language.MatchStrings(matcher, locales...)
	tag = supported[index]
	printer = message.NewPrinter(tag, message.Catalog(messages))
}

// Language returns the language messages are printed in.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
