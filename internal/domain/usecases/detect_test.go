package usecases

import (
	"testing"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

func TestDetectLanguage_Cyrillic(t *testing.T) {
	cases := []string{
		"Привет, как дела?",
		"сколько тебе лет",
		"ok привет", // a single Cyrillic rune decides
	}
	for _, text := range cases {
		if got := DetectLanguage(text); got != entities.LangRU {
			t.Errorf("DetectLanguage(%q) = %s, want ru", text, got)
		}
	}
}

func TestDetectLanguage_UniqueLetters(t *testing.T) {
	cases := []struct {
		text string
		want entities.Language
	}{
		{"necəsən", entities.LangAZ},
		{"Əli haradadır", entities.LangAZ},
		{"nasılsın", entities.LangTR},
		{"İstanbul güzel", entities.LangTR},
		{"dağ yolu", entities.LangTR},
		{"cześć, co słychać", entities.LangPL},
		{"żółw", entities.LangPL},
	}
	for _, tc := range cases {
		if got := DetectLanguage(tc.text); got != tc.want {
			t.Errorf("DetectLanguage(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

// The schwa check runs before the Turkish one: ğ exists in both alphabets,
// so a word carrying both ə and ğ must classify as Azerbaijani.
func TestDetectLanguage_SchwaBeatsSharedLetters(t *testing.T) {
	if got := DetectLanguage("öyrəndiğim"); got != entities.LangAZ {
		t.Errorf("DetectLanguage(öyrəndiğim) = %s, want az", got)
	}
}

func TestDetectLanguage_Stopwords(t *testing.T) {
	cases := []struct {
		text string
		want entities.Language
	}{
		{"salam, sen varsan?", entities.LangAZ},
		{"merhaba nerede oturuyorsun", entities.LangTR},
		{"siema, co tam", entities.LangPL},
		// "sen" is in the Azerbaijani set too; the az scan runs first.
		{"sen kimsin", entities.LangAZ},
	}
	for _, tc := range cases {
		if got := DetectLanguage(tc.text); got != tc.want {
			t.Errorf("DetectLanguage(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestDetectLanguage_DefaultsToEnglish(t *testing.T) {
	cases := []string{
		"hello there",
		"what time is it",
		"",
		"   ",
		"12345 !?",
	}
	for _, text := range cases {
		if got := DetectLanguage(text); got != entities.LangEN {
			t.Errorf("DetectLanguage(%q) = %s, want en", text, got)
		}
	}
}
