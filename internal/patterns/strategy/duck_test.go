package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ooctl/internal/behavior"
)

func TestDuck_Variants(t *testing.T) {
	tests := []struct {
		name      string
		duck      *Duck
		wantFly   string
		wantQuack string
	}{
		{"mallard", NewMallard(), "I'm flying!", "Quack!"},
		{"rubber", NewRubberDuck(), "I can't fly.", "Squeak!"},
		{"model", NewModelDuck(), "I can't fly.", "Quack!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fly, err := tt.duck.PerformFly()
			require.NoError(t, err)
			assert.Equal(t, tt.wantFly, fly)

			quack, err := tt.duck.PerformQuack()
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuack, quack)
		})
	}
}

func TestDuck_SetQuackBehaviorTakesEffectImmediately(t *testing.T) {
	d := NewMallard()

	got, err := d.PerformQuack()
	require.NoError(t, err)
	assert.Equal(t, "Quack!", got)

	d.SetQuackBehavior(Squeak{})
	got, err = d.PerformQuack()
	require.NoError(t, err)
	assert.Equal(t, "Squeak!", got)
}

func TestDuck_SetFlyBehaviorAtRuntime(t *testing.T) {
	d := NewModelDuck()
	d.SetFlyBehavior(FlyRocketPowered{})

	got, err := d.PerformFly()
	require.NoError(t, err)
	assert.Equal(t, "I'm flying with a rocket!", got)
}

func TestDuck_UnboundBehaviorIsAnError(t *testing.T) {
	d := NewDuck("Decoy", nil, nil)

	_, err := d.PerformQuack()
	assert.ErrorIs(t, err, behavior.ErrUnbound)
	assert.Contains(t, err.Error(), "Decoy")

	_, err = d.PerformFly()
	assert.ErrorIs(t, err, behavior.ErrUnbound)

	d.SetQuackBehavior(MuteQuack{})
	got, err := d.PerformQuack()
	require.NoError(t, err)
	assert.Equal(t, "<< Silence >>", got)
}

func TestQuackByName(t *testing.T) {
	q, ok := QuackByName("squeak")
	require.True(t, ok)
	assert.Equal(t, "Squeak!", q.Quack())

	_, ok = QuackByName("honk")
	assert.False(t, ok)
}
