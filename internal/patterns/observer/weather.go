package observer

import (
	"fmt"
	"io"
	"math"
)

// Measurements is the state a WeatherStation broadcasts.
type Measurements struct {
	Temperature float64
	Humidity    float64
	Pressure    float64
}

// WeatherStation is the concrete subject of the weather example.
type WeatherStation struct {
	Subject[Measurements]

	current Measurements
}

func NewWeatherStation() *WeatherStation {
	return &WeatherStation{}
}

// SetMeasurements stores the new readings and notifies every display.
func (w *WeatherStation) SetMeasurements(m Measurements) {
	w.current = m
	w.Notify(m)
}

func (w *WeatherStation) Current() Measurements {
	return w.current
}

// CurrentConditionsDisplay prints the latest reading.
type CurrentConditionsDisplay struct {
	out io.Writer
}

func NewCurrentConditionsDisplay(out io.Writer) *CurrentConditionsDisplay {
	return &CurrentConditionsDisplay{out: out}
}

func (d *CurrentConditionsDisplay) Update(m Measurements) {
	fmt.Fprintf(d.out, "Current conditions: %.1fF degrees and %.1f%% humidity\n", m.Temperature, m.Humidity)
}

// StatisticsDisplay tracks min/max/avg temperature across updates.
type StatisticsDisplay struct {
	out   io.Writer
	min   float64
	max   float64
	sum   float64
	count int
}

func NewStatisticsDisplay(out io.Writer) *StatisticsDisplay {
	return &StatisticsDisplay{out: out, min: math.Inf(1), max: math.Inf(-1)}
}

func (d *StatisticsDisplay) Update(m Measurements) {
	d.sum += m.Temperature
	d.count++
	d.min = math.Min(d.min, m.Temperature)
	d.max = math.Max(d.max, m.Temperature)

	fmt.Fprintf(d.out, "Avg/Max/Min temperature = %.1f/%.1f/%.1f\n", d.Average(), d.max, d.min)
}

func (d *StatisticsDisplay) Average() float64 {
	if d.count == 0 {
		return 0
	}
	return d.sum / float64(d.count)
}

func (d *StatisticsDisplay) Min() float64 { return d.min }
func (d *StatisticsDisplay) Max() float64 { return d.max }
