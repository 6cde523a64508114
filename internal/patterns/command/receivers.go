package command

import "fmt"

type Light struct {
	Location string
	On       bool
}

func (l *Light) TurnOn() string {
	l.On = true
	return fmt.Sprintf("%s light is on", l.Location)
}

func (l *Light) TurnOff() string {
	l.On = false
	return fmt.Sprintf("%s light is off", l.Location)
}

type GarageDoor struct {
	Open bool
}

func (g *GarageDoor) Up() string {
	g.Open = true
	return "Garage door is open"
}

func (g *GarageDoor) Down() string {
	g.Open = false
	return "Garage door is closed"
}

type Stereo struct {
	Volume int
	Input  string
}

func (s *Stereo) PlayCD(volume int) string {
	s.Input = "CD"
	s.Volume = volume
	return fmt.Sprintf("Stereo is playing CD at volume %d", volume)
}

func (s *Stereo) Off() string {
	s.Input = ""
	s.Volume = 0
	return "Stereo is off"
}

type LightOnCommand struct{ Light *Light }

func (c LightOnCommand) Execute() string { return c.Light.TurnOn() }

type LightOffCommand struct{ Light *Light }

func (c LightOffCommand) Execute() string { return c.Light.TurnOff() }

type GarageDoorUpCommand struct{ Door *GarageDoor }

func (c GarageDoorUpCommand) Execute() string { return c.Door.Up() }

type StereoOnWithCDCommand struct {
	Stereo *Stereo
	Volume int
}

func (c StereoOnWithCDCommand) Execute() string { return c.Stereo.PlayCD(c.Volume) }
