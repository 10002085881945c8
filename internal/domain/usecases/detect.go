// Package usecases contains application business rules.
// Clean Architecture: Usecases orchestrate entities and depend on port interfaces.
package usecases

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// Unique-letter classes. AZ/TR/PL share a Latin base with overlapping
// diacritics, so these checks must run before the stopword scan, and the
// schwa check must precede the Turkish one (ğ appears in both alphabets,
// ə only in Azerbaijani).
const (
	azUniqueLetters = "əƏ"
	trUniqueLetters = "ıİğĞ"
	plUniqueLetters = "ąĄćĆęĘłŁńŃóÓśŚźŹżŻ"
)

// letterRuns tokenizes lowercased text over the combined Latin-plus-diacritics alphabet.
var letterRuns = regexp.MustCompile(`[a-zəğıöçşüąćęłńóśźż]+`)

var azStopwords = wordSet(`
salam salammm necesen necəsən sağol sagol nə necə niyə harda harada burda bura indi elə belə özünü haqqinda haqqında
sən sen mən men varsan varsanmi varmı yaz de danış
`)

var trStopwords = wordSet(`
merhaba selam nasılsın iyiyim teşekkür ederim neden nasıl nerede burada şurada şimdi öyle böyle hakkında
sen ben yaz söyle anlat mısın misin nedir kimdir
`)

var plStopwords = wordSet(`
cześć siema dzień dobry jak dlaczego gdzie tutaj teraz proszę dziękuję o czym napisz powiedz kim co kiedy
`)

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// DetectLanguage classifies text into one of the five supported languages.
// It is a total function: any input, including empty or letter-free text,
// yields a language (English when nothing else decides).
func DetectLanguage(text string) entities.Language {
	t := strings.TrimSpace(text)

	for _, r := range t {
		if unicode.Is(unicode.Cyrillic, r) {
			return entities.LangRU
		}
	}

	if strings.ContainsAny(t, azUniqueLetters) {
		return entities.LangAZ
	}
	if strings.ContainsAny(t, trUniqueLetters) {
		return entities.LangTR
	}
	if strings.ContainsAny(t, plUniqueLetters) {
		return entities.LangPL
	}

	// Stopword scan, ordered by specificity so one language's common word
	// does not shadow another's.
	toks := letterRuns.FindAllString(strings.ToLower(t), -1)
	stopwordOrder := []struct {
		set  map[string]bool
		lang entities.Language
	}{
		{azStopwords, entities.LangAZ},
		{trStopwords, entities.LangTR},
		{plStopwords, entities.LangPL},
	}
	for _, candidate := range stopwordOrder {
		for _, tok := range toks {
			if candidate.set[tok] {
				return candidate.lang
			}
		}
	}

	// Any remaining Latin text, and text with no letters at all, defaults
	// to English.
	return entities.LangEN
}
