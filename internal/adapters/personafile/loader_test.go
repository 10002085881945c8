package personafile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFacts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facts.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing facts file: %v", err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	facts, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if facts.FullName != "Elvin Babanlı" {
		t.Errorf("FullName = %q", facts.FullName)
	}
	if facts.Age != "23" || facts.Birthday != "2002-05-28" {
		t.Errorf("unexpected defaults: age=%q birthday=%q", facts.Age, facts.Birthday)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFacts(t, `{"age": "24", "current_city": "Kraków, Polşa"}`)

	facts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if facts.Age != "24" {
		t.Errorf("Age = %q, want the file's value", facts.Age)
	}
	if facts.CurrentCity != "Kraków, Polşa" {
		t.Errorf("CurrentCity = %q", facts.CurrentCity)
	}
	// Untouched fields keep their defaults.
	if facts.Email != "elvinbabanli0@gmail.com" {
		t.Errorf("Email = %q, want the default", facts.Email)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeFacts(t, `{"age": `)
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_InvalidFacts(t *testing.T) {
	path := writeFacts(t, `{"email": ""}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error when a required field is blanked")
	}
}
