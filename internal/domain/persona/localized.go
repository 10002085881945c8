package persona

import (
	"fmt"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// Localized is a response string in all five supported languages.
// Keeping one exported field per language (instead of a map keyed by a
// runtime string) makes a missing translation visible at construction
// and validation time.
type Localized struct {
	AZ string
	TR string
	PL string
	RU string
	EN string
}

// For returns the variant for lang, defaulting to English for any
// unknown code (English is the universal default).
func (l Localized) For(lang entities.Language) string {
	switch lang {
	case entities.LangAZ:
		return l.AZ
	case entities.LangTR:
		return l.TR
	case entities.LangPL:
		return l.PL
	case entities.LangRU:
		return l.RU
	default:
		return l.EN
	}
}

// Validate reports which language is missing, if any.
func (l Localized) Validate() error {
	for _, lang := range entities.Languages {
		if l.For(lang) == "" {
			return fmt.Errorf("missing %s variant", lang)
		}
	}
	return nil
}

// StyleHints are the per-language directives appended to the user text
// before the generative call.
var StyleHints = Localized{
	EN: "Answer in English in a natural, first-person voice. 1–3 sentences. No bullet points.",
	RU: "Ответь по-русски естественно, от первого лица. 1–3 предложения. Без списков.",
	TR: "Türkçe, doğal ve birinci tekil şahıs konuş. 1–3 cümle. Listeleme yok.",
	PL: "Odpowiadaj po polsku, naturalnie w pierwszej osobie. 1–3 zdania. Bez wypunktowań.",
	AZ: "Cavabı Azərbaycan dilində, təbii və birinci şəxsdə ver. 1–3 cümlə. Siyahı istifadə etmə.",
}
