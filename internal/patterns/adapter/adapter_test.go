package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurkeyAdapter_SatisfiesDuck(t *testing.T) {
	var d Duck = TurkeyAdapter{Turkey: WildTurkey{}}

	got := Exercise(d)

	assert.Equal(t, "Gobble gobble", got[0])
	assert.Equal(t, turkeyHops, strings.Count(got[1], "I'm flying a short distance"))
}

func TestDuckAdapter_SatisfiesTurkey(t *testing.T) {
	var tk Turkey = DuckAdapter{Duck: MallardDuck{}}

	assert.Equal(t, "Quack", tk.Gobble())
	assert.Equal(t, "I'm flying", tk.FlyShort())
}

func TestMallard(t *testing.T) {
	assert.Equal(t, []string{"Quack", "I'm flying"}, Exercise(MallardDuck{}))
}
