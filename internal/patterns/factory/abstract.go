package factory

import (
	"fmt"
	"strings"

	"ooctl/internal/behavior"
)

// Button and Checkbox are the products of one widget family.
type Button interface {
	Render(label string) string
}

type Checkbox interface {
	Render(label string, checked bool) string
}

// WidgetFactory creates widgets that share one theme.
type WidgetFactory interface {
	Theme() string
	NewButton() Button
	NewCheckbox() Checkbox
}

type lightButton struct{}

func (lightButton) Render(label string) string { return fmt.Sprintf("( %s )", label) }

type lightCheckbox struct{}

func (lightCheckbox) Render(label string, checked bool) string {
	mark := " "
	if checked {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, label)
}

type darkButton struct{}

func (darkButton) Render(label string) string { return fmt.Sprintf("<< %s >>", strings.ToUpper(label)) }

type darkCheckbox struct{}

func (darkCheckbox) Render(label string, checked bool) string {
	mark := "○"
	if checked {
		mark = "●"
	}
	return fmt.Sprintf("%s %s", mark, strings.ToUpper(label))
}

type LightTheme struct{}

func (LightTheme) Theme() string         { return "light" }
func (LightTheme) NewButton() Button     { return lightButton{} }
func (LightTheme) NewCheckbox() Checkbox { return lightCheckbox{} }

type DarkTheme struct{}

func (DarkTheme) Theme() string         { return "dark" }
func (DarkTheme) NewButton() Button     { return darkButton{} }
func (DarkTheme) NewCheckbox() Checkbox { return darkCheckbox{} }

// ThemeByName resolves a widget factory.
func ThemeByName(name string) (WidgetFactory, bool) {
	switch name {
	case "light":
		return LightTheme{}, true
	case "dark":
		return DarkTheme{}, true
	}
	return nil, false
}

// Form is the client: it only knows the abstract factory.
type Form struct {
	factory behavior.Slot[WidgetFactory]
}

func NewForm(f WidgetFactory) *Form {
	form := &Form{factory: behavior.Named[WidgetFactory]("widget factory")}
	form.factory.Set(f)
	return form
}

// Render draws a subscribe form using widgets from a single family.
func (f *Form) Render(subscribed bool) ([]string, error) {
	wf, err := f.factory.Get()
	if err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	return []string{
		wf.NewCheckbox().Render("Subscribe to newsletter", subscribed),
		wf.NewButton().Render("Submit"),
	}, nil
}
