package strategy

// FlyBehavior is the flying capability a Duck delegates to.
type FlyBehavior interface {
	Fly() string
}

// QuackBehavior is the quacking capability a Duck delegates to.
type QuackBehavior interface {
	Quack() string
}

type FlyWithWings struct{}

func (FlyWithWings) Fly() string { return "I'm flying!" }

type FlyNoWay struct{}

func (FlyNoWay) Fly() string { return "I can't fly." }

type FlyRocketPowered struct{}

func (FlyRocketPowered) Fly() string { return "I'm flying with a rocket!" }

type Quack struct{}

func (Quack) Quack() string { return "Quack!" }

type Squeak struct{}

func (Squeak) Quack() string { return "Squeak!" }

type MuteQuack struct{}

func (MuteQuack) Quack() string { return "<< Silence >>" }

// QuackByName resolves a quack variant from its configuration name.
func QuackByName(name string) (QuackBehavior, bool) {
	switch name {
	case "quack":
		return Quack{}, true
	case "squeak":
		return Squeak{}, true
	case "mute":
		return MuteQuack{}, true
	}
	return nil, false
}
