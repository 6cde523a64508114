// Package decorator wraps a Beverage in condiments that each add to its
// description and cost without changing the wrapped value.
package decorator

// Beverage is the component every decorator wraps. Costs are in cents.
// A decorator with nothing to wrap reports behavior.ErrUnbound.
type Beverage interface {
	Description() (string, error)
	Cost() (int, error)
}

// Base is a plain beverage with a fixed description and cost.
type Base struct {
	Name  string
	Price int
}

func (b Base) Description() (string, error) { return b.Name, nil }
func (b Base) Cost() (int, error)           { return b.Price, nil }

func Espresso() Beverage   { return Base{Name: "Espresso", Price: 199} }
func HouseBlend() Beverage { return Base{Name: "House Blend Coffee", Price: 89} }
func DarkRoast() Beverage  { return Base{Name: "Dark Roast Coffee", Price: 99} }
