package services

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase search terms. A term is a maximal
// run of Arabic-script or ASCII-alphanumeric characters; everything
// else (punctuation, tashkeel marks outside the Arabic block, emoji)
// separates terms. Single-character terms and stop words are dropped,
// and Arabic terms are light-stemmed by stemArabic.
//
// The same function tokenizes indexed fields and queries, so a query
// term always has a chance to hit a posting.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var terms []string
	var current []rune

	flush := func() {
		if len(current) > 1 {
			term := string(current)
			if !isStopWord(term) {
				term = stemArabic(term)
				if len([]rune(term)) > 1 && !isStopWord(term) {
					terms = append(terms, term)
				}
			}
		}
		current = current[:0]
	}

	for _, r := range lower {
		if isTermRune(r) {
			current = append(current, r)
			continue
		}
		flush()
	}
	flush()

	return terms
}

// isTermRune reports whether r belongs inside a term.
func isTermRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	return unicode.Is(unicode.Arabic, r)
}

// stemArabic reduces common Arabic morphological variants to a shared
// stem so index and query terms can meet: the definite article (ال)
// comes off the front and a trailing taa marbuta (ة) off the end.
// الإجازات becomes إجازات and إجازة becomes إجاز, which the searcher's
// prefix rule then relates. Latin terms pass through unchanged.
func stemArabic(term string) string {
	runes := []rune(term)
	if len(runes) >= 4 && runes[0] == 'ا' && runes[1] == 'ل' {
		runes = runes[2:]
	}
	if len(runes) >= 3 && runes[len(runes)-1] == 'ة' {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func isStopWord(term string) bool {
	if _, ok := arabicStopWords[term]; ok {
		return true
	}
	_, ok := englishStopWords[term]
	return ok
}
