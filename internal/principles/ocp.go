package principles

import "math"

// Shape is open for extension: a new shape adds a type, TotalArea never
// changes.
type Shape interface {
	Area() float64
}

type Rectangle struct{ Width, Height float64 }

func (r Rectangle) Area() float64 { return r.Width * r.Height }

type Circle struct{ Radius float64 }

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

type Triangle struct{ Base, Height float64 }

func (t Triangle) Area() float64 { return t.Base * t.Height / 2 }

func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
