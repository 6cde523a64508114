package principles

import "fmt"

// Bird is what every bird can do. Flying is a separate, narrower
// capability so a Penguin never has to pretend.
type Bird interface {
	Name() string
	Eat() string
}

type Flyer interface {
	Bird
	Fly() string
}

type Swimmer interface {
	Bird
	Swim() string
}

type Sparrow struct{}

func (Sparrow) Name() string { return "Sparrow" }
func (Sparrow) Eat() string  { return "Sparrow pecks at seeds" }
func (Sparrow) Fly() string  { return "Sparrow flies away" }

type Penguin struct{}

func (Penguin) Name() string { return "Penguin" }
func (Penguin) Eat() string  { return "Penguin catches a fish" }
func (Penguin) Swim() string { return "Penguin dives into the water" }

// FeedAll works for every Bird.
func FeedAll(birds ...Bird) []string {
	out := make([]string, len(birds))
	for i, b := range birds {
		out[i] = b.Eat()
	}
	return out
}

// LaunchAll only accepts birds that can fly, so the compiler rejects a
// Penguin instead of a runtime failure.
func LaunchAll(flyers ...Flyer) []string {
	out := make([]string, len(flyers))
	for i, f := range flyers {
		out[i] = fmt.Sprintf("%s: %s", f.Name(), f.Fly())
	}
	return out
}
