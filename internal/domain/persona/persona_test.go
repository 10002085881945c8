package persona

import (
	"strings"
	"testing"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

func TestDefaultFactsValidate(t *testing.T) {
	if err := DefaultFacts().Validate(); err != nil {
		t.Fatalf("compiled-in facts must validate: %v", err)
	}
}

func TestFactsValidate_MissingField(t *testing.T) {
	f := DefaultFacts()
	f.Email = ""
	err := f.Validate()
	if err == nil {
		t.Fatal("expected an error for a missing required field")
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("error should name the missing field, got %v", err)
	}
}

func TestFactsValidate_IncompleteFamily(t *testing.T) {
	f := DefaultFacts()
	f.Family.Mother = ""
	if err := f.Validate(); err == nil {
		t.Fatal("expected an error for an incomplete family record")
	}
}

func TestLocalizedFor(t *testing.T) {
	l := Localized{AZ: "az", TR: "tr", PL: "pl", RU: "ru", EN: "en"}
	cases := []struct {
		lang entities.Language
		want string
	}{
		{entities.LangAZ, "az"},
		{entities.LangTR, "tr"},
		{entities.LangPL, "pl"},
		{entities.LangRU, "ru"},
		{entities.LangEN, "en"},
		{"de", "en"}, // unknown code falls back to English
		{"", "en"},
	}
	for _, tc := range cases {
		if got := l.For(tc.lang); got != tc.want {
			t.Errorf("For(%q) = %q, want %q", tc.lang, got, tc.want)
		}
	}
}

func TestLocalizedValidate(t *testing.T) {
	full := Localized{AZ: "a", TR: "b", PL: "c", RU: "d", EN: "e"}
	if err := full.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	missing := full
	missing.RU = ""
	err := missing.Validate()
	if err == nil {
		t.Fatal("expected an error for a missing variant")
	}
	if !strings.Contains(err.Error(), "ru") {
		t.Errorf("error should name the missing language, got %v", err)
	}
}

func TestStyleHintsCoverAllLanguages(t *testing.T) {
	if err := StyleHints.Validate(); err != nil {
		t.Fatalf("style hints: %v", err)
	}
}

func TestQACorpus(t *testing.T) {
	corpus := QACorpus(DefaultFacts())
	if len(corpus) == 0 {
		t.Fatal("corpus is empty")
	}
	if err := ValidateCorpus(corpus); err != nil {
		t.Fatalf("ValidateCorpus: %v", err)
	}
	// Facts flow into the answers.
	var sawAge bool
	for _, e := range corpus {
		if strings.Contains(e.Answer.EN, "23") {
			sawAge = true
		}
	}
	if !sawAge {
		t.Error("expected the age fact to surface in a corpus answer")
	}
}

func TestValidateCorpus_Gaps(t *testing.T) {
	bad := []QAEntry{{Question: "", Answer: Localized{AZ: "a", TR: "b", PL: "c", RU: "d", EN: "e"}}}
	if err := ValidateCorpus(bad); err == nil {
		t.Error("expected an error for an empty question")
	}

	bad = []QAEntry{{Question: "q", Answer: Localized{AZ: "a"}}}
	if err := ValidateCorpus(bad); err == nil {
		t.Error("expected an error for missing answer variants")
	}
}
