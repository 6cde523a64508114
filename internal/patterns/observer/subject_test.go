package observer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject_NotifiesInAttachmentOrder(t *testing.T) {
	var s Subject[int]
	var calls []string

	s.Attach(ObserverFunc[int](func(v int) { calls = append(calls, "first") }))
	s.Attach(ObserverFunc[int](func(v int) { calls = append(calls, "second") }))
	s.Attach(ObserverFunc[int](func(v int) { calls = append(calls, "third") }))

	s.Notify(1)

	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestSubject_Detach(t *testing.T) {
	var s Subject[string]
	var got []string

	keep := s.Attach(ObserverFunc[string](func(v string) { got = append(got, "keep:"+v) }))
	drop := s.Attach(ObserverFunc[string](func(v string) { got = append(got, "drop:"+v) }))
	assert.NotEqual(t, keep.ID, drop.ID)

	require.True(t, s.Detach(drop))
	assert.False(t, s.Detach(drop), "detaching twice reports false")
	assert.Equal(t, 1, s.Len())

	s.Notify("x")
	assert.Equal(t, []string{"keep:x"}, got)
}

func TestSubject_DetachDuringNotifyAppliesToNextRound(t *testing.T) {
	var s Subject[int]
	var got []int
	var second Subscription

	s.Attach(ObserverFunc[int](func(v int) {
		got = append(got, v*10+1)
		s.Detach(second)
	}))
	second = s.Attach(ObserverFunc[int](func(v int) { got = append(got, v*10+2) }))

	s.Notify(1)
	s.Notify(2)

	assert.Equal(t, []int{11, 12, 21}, got)
}

func TestSubject_NotifyWithoutObservers(t *testing.T) {
	var s Subject[int]
	assert.NotPanics(t, func() { s.Notify(7) })
}

func TestWeatherStation(t *testing.T) {
	var buf bytes.Buffer
	station := NewWeatherStation()
	stats := NewStatisticsDisplay(&buf)

	station.Attach(NewCurrentConditionsDisplay(&buf))
	station.Attach(stats)

	station.SetMeasurements(Measurements{Temperature: 80, Humidity: 65, Pressure: 30.4})
	station.SetMeasurements(Measurements{Temperature: 82, Humidity: 70, Pressure: 29.2})
	station.SetMeasurements(Measurements{Temperature: 78, Humidity: 90, Pressure: 29.2})

	assert.Equal(t, 80.0, stats.Average())
	assert.Equal(t, 78.0, stats.Min())
	assert.Equal(t, 82.0, stats.Max())
	assert.Equal(t, 78.0, station.Current().Temperature)

	out := buf.String()
	assert.Contains(t, out, "Current conditions: 80.0F degrees and 65.0% humidity")
	assert.Contains(t, out, "Avg/Max/Min temperature = 80.0/82.0/78.0")
}
