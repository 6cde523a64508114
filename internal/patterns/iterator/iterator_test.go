package iterator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	it := FromSlice([]int{1, 2, 3})

	assert.Equal(t, []int{1, 2, 3}, Collect(it))
	assert.False(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestSeq_StopsEarly(t *testing.T) {
	var got []string
	for v := range Seq(FromSlice([]string{"a", "b", "c"})) {
		got = append(got, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDinerMenu_IsBounded(t *testing.T) {
	m := NewDinerMenu()
	require.NoError(t, m.Add(MenuItem{Name: "Pasta"}))
	require.NoError(t, m.Add(MenuItem{Name: "Steak"}))

	err := m.Add(MenuItem{Name: "One too many"})
	assert.ErrorIs(t, err, ErrMenuFull)
	assert.Len(t, Collect(m.CreateIterator()), maxDinerItems)
}

func TestDinerIterator_Exhausted(t *testing.T) {
	it := (&DinerMenu{}).CreateIterator()
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestWaitress(t *testing.T) {
	w := NewWaitress(NewPancakeHouseMenu(), NewDinerMenu())

	assert.Equal(t, []string{"K&B's Pancake Breakfast", "Blueberry Pancakes", "Vegetarian BLT"}, w.VegetarianItems())

	var buf bytes.Buffer
	w.PrintMenu(&buf)
	out := buf.String()
	assert.Contains(t, out, "BREAKFAST\n")
	assert.Contains(t, out, "LUNCH\n")
	assert.Contains(t, out, "  Hotdog, 3.05 -- ")
}
