package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Combining marks are stripped after NFD decomposition so accented and
// plain forms compare equal. The same folding is applied to catalog names
// and to user input, so both sides of every comparison stay consistent.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Квадратні та «розумні» апострофи — один семантичний символ.
var quotes = strings.NewReplacer("’", "", "'", "", "`", "", "\"", "", "ʼ", "", "«", "", "»", "")

// Normalize canonicalizes raw user or catalog text: Unicode lower-casing
// (Cyrillic and Latin alike), apostrophe/quote stripping, combining-mark
// stripping, outer whitespace trim. Internal whitespace is left as is.
// Pure and total: any input, including empty, yields a string.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = quotes.Replace(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	return strings.TrimSpace(s)
}
