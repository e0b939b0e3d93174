package company

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// symbolWords spells out symbols that would otherwise be stripped.
var symbolWords = map[rune]string{
	'&': "and",
	'$': "dollar",
	'%': "percent",
	'<': "less",
	'>': "greater",
	'|': "or",
	'€': "euro",
	'£': "pound",
	'¥': "yen",
	'¢': "cent",
}

// letterFolds covers letters that have no decomposition to strip marks from.
var letterFolds = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'ø': "o", 'Ø': "O",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
}

// Slugify derives a company code from its name: accents are folded to their
// base letters, letters such as "ß" and "ø" are transliterated, a handful
// of symbols become words, everything other than
// ASCII letters and digits is dropped, and words are joined with "-" in
// lower case. "Café & Co." becomes "cafe-and-co".
func Slugify(name string) string {
	// transformers carry state, so build a fresh chain per call
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if word, ok := symbolWords[r]; ok {
			b.WriteString(word)
			continue
		}
		if letters, ok := letterFolds[r]; ok {
			b.WriteString(letters)
			continue
		}
		switch {
		case r == '-' || unicode.IsSpace(r):
			b.WriteByte(' ')
		case isASCIIAlnum(r):
			b.WriteRune(r)
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")
	return cases.Lower(language.Und).String(slug)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
