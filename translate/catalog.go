package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// supported lists the catalog languages, the source language first.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

var matcher = language.NewMatcher(supported)

var german = map[string]string{
	// Assembler
	"$(%v) is not a valid expression":                   "$(%v) ist kein gültiger Ausdruck",
	"'%v' is not a label name":                          "'%v' ist kein Markenname",
	"'%v' is not a number":                              "'%v' ist keine Zahl",
	"'%v' is not a register":                            "'%v' ist kein Register",
	"'%v' is not an opcode, operand, label or directive": "'%v' ist weder Opcode, Operand, Marke noch Direktive",
	"excessive operands":                                "zu viele Operanden",
	"immediate out of range":                            "Direktwert außerhalb des Bereichs",
	"instruction invalid":                               "ungültige Anweisung",
	"label %v missing":                                  "Marke %v fehlt",
	"label duplicated":                                  "Marke doppelt vergeben",
	"label offset out of range":                         "Markenadresse außerhalb des Bereichs",
	"line %d '%v' %v":                                   "Zeile %d '%v' %v",
	"opcode in operand position":                        "Opcode an Operandenposition",
	"operands exceed instruction width":                 "Operanden überschreiten die Befehlsbreite",

	// Machine
	"divide by zero":                   "Division durch Null",
	"fault at 0x%04x (%v) %v":          "Fehler bei 0x%04x (%v) %v",
	"heap allocation out of range":     "Heap-Zuweisung außerhalb des Bereichs",
	"instruction illegal":              "unzulässiger Befehl",
	"jump target out of range":         "Sprungziel außerhalb des Bereichs",
	"line %d %v":                       "Zeile %d %v",
	"program header invalid":           "ungültiger Programmkopf",
	"program length not a multiple of the instruction width": "Programmlänge ist kein Vielfaches der Befehlsbreite",
	"program truncated":                "Programm abgeschnitten",
	"register out of range":            "Register außerhalb des Bereichs",
}

// newCatalog builds the message catalog. Keys without a translation print
// as the en-US source text.
func newCatalog() catalog.Catalog {
	cat := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))

	for key, msg := range german {
		err := cat.SetString(language.German, key, msg)
		if err != nil {
			panic(err)
		}
	}

	return cat
}
