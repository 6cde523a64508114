package relationships

import "fmt"

// Speaker is the behaviour each animal specialises.
type Speaker interface {
	Speak() string
}

// Animal carries the state and behaviour every animal shares.
type Animal struct {
	Name string
}

func (a Animal) Breathe() string { return fmt.Sprintf("%s is breathing", a.Name) }

// Dog embeds Animal, so Breathe is promoted, and adds its own Speak.
type Dog struct {
	Animal
}

func (d Dog) Speak() string { return fmt.Sprintf("%s says Woof", d.Name) }

type Cat struct {
	Animal
}

func (c Cat) Speak() string { return fmt.Sprintf("%s says Meow", c.Name) }

// Chorus lets every speaker speak in order.
func Chorus(speakers ...Speaker) []string {
	out := make([]string, len(speakers))
	for i, s := range speakers {
		out[i] = s.Speak()
	}
	return out
}
