// Package templatemethod fixes the order of the steps for preparing a
// caffeine beverage and lets each recipe fill in the varying ones.
package templatemethod

import "fmt"

// Recipe supplies the steps that vary between beverages.
type Recipe interface {
	Name() string
	Brew() string
	AddCondiments() string
}

// CondimentChooser is an optional hook. Recipes that do not implement it
// always get condiments.
type CondimentChooser interface {
	WantsCondiments() bool
}

// Prepare is the template method. The invariant steps and their order live
// here; recipes cannot reorder them.
func Prepare(r Recipe) []string {
	steps := []string{
		"Boiling water",
		r.Brew(),
		"Pouring into cup",
	}
	if wantsCondiments(r) {
		steps = append(steps, r.AddCondiments())
	}
	return append(steps, fmt.Sprintf("%s is ready", r.Name()))
}

func wantsCondiments(r Recipe) bool {
	if c, ok := r.(CondimentChooser); ok {
		return c.WantsCondiments()
	}
	return true
}

type Tea struct{}

func (Tea) Name() string          { return "Tea" }
func (Tea) Brew() string          { return "Steeping the tea" }
func (Tea) AddCondiments() string { return "Adding lemon" }

// Coffee asks the customer whether to add condiments.
type Coffee struct {
	Black bool
}

func (Coffee) Name() string            { return "Coffee" }
func (Coffee) Brew() string            { return "Dripping coffee through filter" }
func (Coffee) AddCondiments() string   { return "Adding sugar and milk" }
func (c Coffee) WantsCondiments() bool { return !c.Black }
