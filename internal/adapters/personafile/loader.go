// Package personafile loads the persona facts record from a JSON file.
// Clean Architecture: Adapter feeding the immutable persona.Facts at startup.
package personafile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
)

// Load reads persona facts from path and validates them. Path "" returns
// the compiled-in defaults; anything else must parse and validate or the
// process should refuse to start.
func Load(path string) (*persona.Facts, error) {
	if path == "" {
		return persona.DefaultFacts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading facts file: %w", err)
	}

	facts := persona.DefaultFacts() // file fields override defaults
	if err := json.Unmarshal(data, facts); err != nil {
		return nil, fmt.Errorf("parsing facts file %s: %w", path, err)
	}
	if err := facts.Validate(); err != nil {
		return nil, fmt.Errorf("validating facts file %s: %w", path, err)
	}
	return facts, nil
}
