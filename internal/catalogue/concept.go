package catalogue

import (
	"context"
	"fmt"
	"io"

	"ooctl/internal/config"
	"ooctl/pkg/logging"
)

// Category groups concepts in listings.
type Category string

const (
	CategoryRelationship Category = "relationship"
	CategoryPrinciple    Category = "principle"
	CategoryPattern      Category = "pattern"
)

// Categories in display order.
var Categories = []Category{CategoryRelationship, CategoryPrinciple, CategoryPattern}

// ParseCategory validates a category name. The empty string means all.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", nil
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Env is what a demo gets from the composition root.
type Env struct {
	Out    io.Writer
	Logger *logging.Logger
	Config config.OoctlConfig
}

// Printf writes one line of demo trace.
func (e *Env) Printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format+"\n", args...)
}

// Demo runs a concept's example, writing its trace to env.Out.
type Demo func(ctx context.Context, env *Env) error

// Concept is one entry of the catalogue.
type Concept struct {
	Name     string   `yaml:"name" json:"name"`
	Title    string   `yaml:"title" json:"title"`
	Category Category `yaml:"category" json:"category"`
	Summary  string   `yaml:"summary" json:"summary"`
	Notes    string   `yaml:"notes" json:"notes"`
	Bad      string   `yaml:"bad,omitempty" json:"bad,omitempty"`
	Good     string   `yaml:"good,omitempty" json:"good,omitempty"`

	Demo Demo `yaml:"-" json:"-"`
}
