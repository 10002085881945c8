package usecases

import (
	"strings"
	"testing"
	"time"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
)

func newTestIntentMatcher(t *testing.T) *IntentMatcher {
	t.Helper()
	m, err := NewIntentMatcher(persona.DefaultFacts())
	if err != nil {
		t.Fatalf("NewIntentMatcher: %v", err)
	}
	return m
}

func TestIntentMatcher_SpokenLangsAzerbaijani(t *testing.T) {
	m := newTestIntentMatcher(t)

	resp, ok := m.Match("Hansı dillərdə danışırsan?", entities.LangAZ)
	if !ok {
		t.Fatal("expected a match for the spoken languages question")
	}
	want := "Azərbaycanca və türkcə sərbəst danışıram; ingilis və rus orta səviyyədədir; bir az da polyakca bilirəm."
	if resp != want {
		t.Errorf("resp = %q, want %q", resp, want)
	}
}

func TestIntentMatcher_AgeEnglish(t *testing.T) {
	m := newTestIntentMatcher(t)

	resp, ok := m.Match("How old are you?", entities.LangEN)
	if !ok {
		t.Fatal("expected a match for the age question")
	}
	if !strings.Contains(resp, "23") || !strings.Contains(resp, "2002-05-28") {
		t.Errorf("age reply should carry age and birthday, got %q", resp)
	}
}

func TestIntentMatcher_AgePolish(t *testing.T) {
	m := newTestIntentMatcher(t)

	resp, ok := m.Match("Cześć, ile masz lat?", entities.LangPL)
	if !ok {
		t.Fatal("expected a match for the Polish age question")
	}
	if !strings.Contains(resp, "Mam 23 lat") {
		t.Errorf("expected a Polish age reply, got %q", resp)
	}
}

// A question about the house must hit the housing intent even though it
// also mentions living; rule order decides.
func TestIntentMatcher_HouseBeforeWhereLive(t *testing.T) {
	m := newTestIntentMatcher(t)

	resp, ok := m.Match("Necə bir evdə yaşayırsan?", entities.LangAZ)
	if !ok {
		t.Fatal("expected a match for the house question")
	}
	if !strings.Contains(resp, "kirayə evdə") {
		t.Errorf("expected the housing answer, got %q", resp)
	}
}

func TestIntentMatcher_TodayDate(t *testing.T) {
	m := newTestIntentMatcher(t)
	m.now = func() time.Time {
		return time.Date(2026, time.January, 5, 9, 30, 0, 0, m.loc)
	}

	resp, ok := m.Match("What's the date?", entities.LangEN)
	if !ok {
		t.Fatal("expected a match for the date question")
	}
	if resp != "Today is January 05, 2026." {
		t.Errorf("resp = %q", resp)
	}

	resp, ok = m.Match("bu gün ayın neçəsidir", entities.LangAZ)
	if !ok {
		t.Fatal("expected a match for the Azerbaijani date question")
	}
	if resp != "Bu gün 05.01.2026-dir." {
		t.Errorf("resp = %q", resp)
	}
}

func TestIntentMatcher_TimeNow(t *testing.T) {
	m := newTestIntentMatcher(t)
	m.now = func() time.Time {
		return time.Date(2026, time.January, 5, 9, 30, 0, 0, m.loc)
	}

	resp, ok := m.Match("what time is it?", entities.LangEN)
	if !ok {
		t.Fatal("expected a match for the time question")
	}
	if resp != "Current time: 09:30 (Europe/Warsaw)." {
		t.Errorf("resp = %q", resp)
	}
}

func TestIntentMatcher_LocalizedFallsBackToEnglish(t *testing.T) {
	m := newTestIntentMatcher(t)

	resp, ok := m.Match("who are you", "de")
	if !ok {
		t.Fatal("expected a match")
	}
	if !strings.Contains(resp, "I'm Elvin") {
		t.Errorf("unsupported language should fall back to English, got %q", resp)
	}
}

func TestIntentMatcher_NoMatch(t *testing.T) {
	m := newTestIntentMatcher(t)

	cases := []string{
		"Can you recommend a good restaurant?",
		"",
		"Sabah hava necə olacaq?",
	}
	for _, text := range cases {
		if resp, ok := m.Match(text, entities.LangEN); ok {
			t.Errorf("Match(%q) matched unexpectedly with %q", text, resp)
		}
	}
}

func TestIntentMatcher_CaseInsensitive(t *testing.T) {
	m := newTestIntentMatcher(t)

	_, ok := m.Match("  HOW OLD ARE YOU?  ", entities.LangEN)
	if !ok {
		t.Error("matching should be case and whitespace insensitive")
	}
}
