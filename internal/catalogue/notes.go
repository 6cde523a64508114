package catalogue

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed notes.yaml
var notesYAML []byte

type notesFile struct {
	Concepts []Concept `yaml:"concepts"`
}

// LoadNotes parses the embedded notes.
func LoadNotes() ([]Concept, error) {
	return parseNotes(notesYAML)
}

func parseNotes(data []byte) ([]Concept, error) {
	var f notesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse notes: %w", err)
	}
	for i, c := range f.Concepts {
		if c.Name == "" {
			return nil, fmt.Errorf("concept %d: name is required", i)
		}
		if _, err := ParseCategory(string(c.Category)); err != nil || c.Category == "" {
			return nil, fmt.Errorf("concept %s: invalid category %q", c.Name, c.Category)
		}
	}
	return f.Concepts, nil
}
