package factory

import (
	"errors"
	"fmt"
	"sort"

	"ooctl/internal/behavior"
)

// ErrUnknownTransport is returned when no creator is registered for a kind.
var ErrUnknownTransport = errors.New("unknown transport kind")

// Transport is the product created by the factory method.
type Transport interface {
	Deliver(cargo string) string
}

type Truck struct{}

func (Truck) Deliver(cargo string) string {
	return fmt.Sprintf("Delivering %s by land in a box", cargo)
}

type Ship struct{}

func (Ship) Deliver(cargo string) string {
	return fmt.Sprintf("Delivering %s by sea in a container", cargo)
}

// TransportFactory is the factory method a creator supplies.
type TransportFactory func() Transport

// Logistics is the creator. Its business logic only sees Transport.
type Logistics struct {
	Kind            string
	createTransport behavior.Slot[TransportFactory]
}

var creators = map[string]TransportFactory{
	"road": func() Transport { return Truck{} },
	"sea":  func() Transport { return Ship{} },
}

// NewLogistics returns the creator for kind.
func NewLogistics(kind string) (*Logistics, error) {
	f, ok := creators[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownTransport)
	}
	return NewCustomLogistics(kind, f), nil
}

// NewCustomLogistics builds a creator around an arbitrary factory method.
// A nil factory leaves the creator unbound.
func NewCustomLogistics(kind string, f TransportFactory) *Logistics {
	l := &Logistics{Kind: kind, createTransport: behavior.Named[TransportFactory]("transport factory")}
	l.createTransport.Set(f)
	return l
}

// PlanDelivery creates a transport through the factory method and uses it.
// A missing factory, or one that produces no transport, yields
// behavior.ErrUnbound.
func (l *Logistics) PlanDelivery(cargo string) (string, error) {
	create, err := l.createTransport.Get()
	if err != nil {
		return "", fmt.Errorf("logistics %s: %w", l.Kind, err)
	}
	product := behavior.Named[Transport]("transport")
	product.Set(create())
	t, err := product.Get()
	if err != nil {
		return "", fmt.Errorf("logistics %s: %w", l.Kind, err)
	}
	return t.Deliver(cargo), nil
}

// Kinds lists the registered transport kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(creators))
	for k := range creators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
