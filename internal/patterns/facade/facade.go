// Package facade hides a set of home theater components behind two
// high-level operations.
package facade

import "fmt"

// Trace records the steps the subsystems perform, in order.
type Trace struct {
	steps []string
}

func (t *Trace) add(format string, args ...any) {
	t.steps = append(t.steps, fmt.Sprintf(format, args...))
}

// Steps returns the recorded steps and resets the trace.
func (t *Trace) Steps() []string {
	out := t.steps
	t.steps = nil
	return out
}

type Amplifier struct {
	trace  *Trace
	volume int
}

func (a *Amplifier) On()  { a.trace.add("Amplifier on") }
func (a *Amplifier) Off() { a.trace.add("Amplifier off") }

func (a *Amplifier) SetVolume(v int) {
	a.volume = v
	a.trace.add("Amplifier setting volume to %d", v)
}

func (a *Amplifier) SetSurroundSound() { a.trace.add("Amplifier surround sound on") }

type Projector struct{ trace *Trace }

func (p *Projector) On()             { p.trace.add("Projector on") }
func (p *Projector) Off()            { p.trace.add("Projector off") }
func (p *Projector) WideScreenMode() { p.trace.add("Projector in widescreen mode (16x9 aspect ratio)") }

type Lights struct {
	trace *Trace
	level int
}

func (l *Lights) Dim(level int) {
	l.level = level
	l.trace.add("Theater ceiling lights dimming to %d%%", level)
}

func (l *Lights) On() {
	l.level = 100
	l.trace.add("Theater ceiling lights on")
}

type Player struct {
	trace *Trace
	movie string
}

func (p *Player) On() { p.trace.add("Streaming player on") }

func (p *Player) Play(movie string) {
	p.movie = movie
	p.trace.add("Streaming player playing %q", movie)
}

func (p *Player) Stop() {
	p.trace.add("Streaming player stopped %q", p.movie)
	p.movie = ""
}

func (p *Player) Off() { p.trace.add("Streaming player off") }

// HomeTheater is the facade.
type HomeTheater struct {
	trace     *Trace
	amp       *Amplifier
	projector *Projector
	lights    *Lights
	player    *Player
}

func NewHomeTheater() *HomeTheater {
	trace := &Trace{}
	return &HomeTheater{
		trace:     trace,
		amp:       &Amplifier{trace: trace},
		projector: &Projector{trace: trace},
		lights:    &Lights{trace: trace},
		player:    &Player{trace: trace},
	}
}

// WatchMovie runs the full start-up sequence and returns its steps.
func (h *HomeTheater) WatchMovie(title string) []string {
	h.lights.Dim(10)
	h.projector.On()
	h.projector.WideScreenMode()
	h.amp.On()
	h.amp.SetSurroundSound()
	h.amp.SetVolume(5)
	h.player.On()
	h.player.Play(title)
	return h.trace.Steps()
}

// EndMovie shuts everything down and returns its steps.
func (h *HomeTheater) EndMovie() []string {
	h.lights.On()
	h.projector.Off()
	h.amp.Off()
	h.player.Stop()
	h.player.Off()
	return h.trace.Steps()
}
