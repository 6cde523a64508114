package decorator

import (
	"fmt"

	"ooctl/internal/behavior"
)

// Decorator wraps a beverage into a new one.
type Decorator func(Beverage) Beverage

// Surcharge adds a named, fixed increment on top of the wrapped beverage.
// The zero value wraps nothing.
type Surcharge struct {
	inner     behavior.Slot[Beverage]
	Name      string
	Increment int
}

// NewSurcharge wraps inner. A nil inner leaves the surcharge unbound.
func NewSurcharge(inner Beverage, name string, increment int) Surcharge {
	s := Surcharge{inner: behavior.Named[Beverage]("beverage"), Name: name, Increment: increment}
	s.inner.Set(inner)
	return s
}

func (s Surcharge) Description() (string, error) {
	inner, err := s.inner.Get()
	if err != nil {
		return "", fmt.Errorf("surcharge %s: %w", s.Name, err)
	}
	desc, err := inner.Description()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, %s", desc, s.Name), nil
}

func (s Surcharge) Cost() (int, error) {
	inner, err := s.inner.Get()
	if err != nil {
		return 0, fmt.Errorf("surcharge %s: %w", s.Name, err)
	}
	cost, err := inner.Cost()
	if err != nil {
		return 0, err
	}
	return cost + s.Increment, nil
}

// With returns a Decorator adding the given surcharge. A negative increment
// acts as a discount.
func With(name string, increment int) Decorator {
	return func(b Beverage) Beverage {
		return NewSurcharge(b, name, increment)
	}
}

var (
	Milk  = With("Milk", 10)
	Mocha = With("Mocha", 20)
	Whip  = With("Whip", 10)
	Soy   = With("Soy", 15)
)

// Wrap applies decorators in order: the first one is innermost.
func Wrap(b Beverage, decorators ...Decorator) Beverage {
	for _, d := range decorators {
		b = d(b)
	}
	return b
}

// Receipt returns the description and cost of b in one call.
func Receipt(b Beverage) (string, int, error) {
	if b == nil {
		return "", 0, fmt.Errorf("beverage: %w", behavior.ErrUnbound)
	}
	desc, err := b.Description()
	if err != nil {
		return "", 0, err
	}
	cost, err := b.Cost()
	if err != nil {
		return "", 0, err
	}
	return desc, cost, nil
}

// FormatCost renders cents as dollars, with a leading minus for negatives.
func FormatCost(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
