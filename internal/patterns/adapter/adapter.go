// Package adapter makes a Turkey usable wherever a Duck is expected, and the
// other way round, without changing either type.
package adapter

import "strings"

// Duck is the target interface clients are written against.
type Duck interface {
	Quack() string
	Fly() string
}

// Turkey is the adaptee with an incompatible interface.
type Turkey interface {
	Gobble() string
	FlyShort() string
}

type MallardDuck struct{}

func (MallardDuck) Quack() string { return "Quack" }
func (MallardDuck) Fly() string   { return "I'm flying" }

type WildTurkey struct{}

func (WildTurkey) Gobble() string   { return "Gobble gobble" }
func (WildTurkey) FlyShort() string { return "I'm flying a short distance" }

// turkeyHops is how many short flights make up one duck-length flight.
const turkeyHops = 5

// TurkeyAdapter presents a Turkey as a Duck.
type TurkeyAdapter struct {
	Turkey Turkey
}

func (a TurkeyAdapter) Quack() string { return a.Turkey.Gobble() }

func (a TurkeyAdapter) Fly() string {
	hops := make([]string, turkeyHops)
	for i := range hops {
		hops[i] = a.Turkey.FlyShort()
	}
	return strings.Join(hops, "\n")
}

// DuckAdapter presents a Duck as a Turkey.
type DuckAdapter struct {
	Duck Duck
}

func (a DuckAdapter) Gobble() string   { return a.Duck.Quack() }
func (a DuckAdapter) FlyShort() string { return a.Duck.Fly() }

// Exercise uses any Duck the way a client would.
func Exercise(d Duck) []string {
	return []string{d.Quack(), d.Fly()}
}
