// Package strategy shows a subject whose flying and quacking are delegated
// to interchangeable behaviour objects selected at construction or rebound
// at runtime.
package strategy

import (
	"fmt"

	"ooctl/internal/behavior"
)

// Duck delegates flying and quacking to its current behaviours.
type Duck struct {
	Name string

	fly   behavior.Slot[FlyBehavior]
	quack behavior.Slot[QuackBehavior]
}

// NewDuck builds a duck. Either behaviour may be nil and attached later.
func NewDuck(name string, fly FlyBehavior, quack QuackBehavior) *Duck {
	d := &Duck{
		Name:  name,
		fly:   behavior.Named[FlyBehavior]("fly behavior"),
		quack: behavior.Named[QuackBehavior]("quack behavior"),
	}
	d.fly.Set(fly)
	d.quack.Set(quack)
	return d
}

func NewMallard() *Duck {
	return NewDuck("Mallard", FlyWithWings{}, Quack{})
}

func NewRubberDuck() *Duck {
	return NewDuck("Rubber duck", FlyNoWay{}, Squeak{})
}

func NewModelDuck() *Duck {
	return NewDuck("Model duck", FlyNoWay{}, Quack{})
}

func (d *Duck) PerformFly() (string, error) {
	f, err := d.fly.Get()
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.Name, err)
	}
	return f.Fly(), nil
}

func (d *Duck) PerformQuack() (string, error) {
	q, err := d.quack.Get()
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.Name, err)
	}
	return q.Quack(), nil
}

func (d *Duck) SetFlyBehavior(f FlyBehavior) {
	d.fly.Set(f)
}

func (d *Duck) SetQuackBehavior(q QuackBehavior) {
	d.quack.Set(q)
}

// Swim is shared by every duck and needs no collaborator.
func (d *Duck) Swim() string {
	return "All ducks float, even decoys!"
}
