package catalogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ooctl/internal/config"
)

func TestDemoStrategy_UsesConfiguredQuack(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Strategy.DefaultQuack = "mute"
	env, buf := newTestEnv(cfg)

	require.NoError(t, demoStrategy(context.Background(), env))

	out := buf.String()
	assert.Contains(t, out, "Mallard: I'm flying! Quack!")
	assert.Contains(t, out, "Mallard after rebinding to mute: << Silence >>")
	assert.Contains(t, out, "no collaborator attached")
}

func TestDemoStrategy_UnknownQuack(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Strategy.DefaultQuack = "honk"
	env, _ := newTestEnv(cfg)

	assert.Error(t, demoStrategy(context.Background(), env))
}

func TestDemoDecorator_StacksToConfiguredTotal(t *testing.T) {
	env, buf := newTestEnv(config.GetDefaultConfig())

	require.NoError(t, demoDecorator(context.Background(), env))
	assert.Contains(t, buf.String(), "after surcharge 2: Base, +20, +40 = 160")
}

func TestDemoMemento_Policies(t *testing.T) {
	cfg := config.GetDefaultConfig()
	env, buf := newTestEnv(cfg)
	require.NoError(t, demoMemento(context.Background(), env))
	assert.Contains(t, buf.String(), `Undo to "sentence": "Design patterns are reusable solutions"`)

	cfg.Memento.UndoPolicy = "restore-previous"
	env, buf = newTestEnv(cfg)
	require.NoError(t, demoMemento(context.Background(), env))
	assert.Contains(t, buf.String(), `Undo to "title": "Design patterns"`)
	assert.NotContains(t, buf.String(), `Undo to "sentence"`)
}

func TestDemoCommand_FewerSlotsThanBindings(t *testing.T) {
	cfg := config.GetDefaultConfig()
	slots := 1
	cfg.Remote.Slots = &slots
	env, buf := newTestEnv(cfg)

	require.NoError(t, demoCommand(context.Background(), env))
	assert.Equal(t, "slot 0: Kitchen light is on\n", buf.String())
}

func TestDemoDecorator_ZeroBaseCost(t *testing.T) {
	cfg := config.GetDefaultConfig()
	base := 0
	cfg.Decorator.BaseCost = &base
	env, buf := newTestEnv(cfg)

	require.NoError(t, demoDecorator(context.Background(), env))
	assert.Contains(t, buf.String(), "Base = 0\n")
	assert.Contains(t, buf.String(), "after surcharge 2: Base, +20, +40 = 60")
}

func TestDemoCommand_NoSlots(t *testing.T) {
	cfg := config.GetDefaultConfig()
	slots := 0
	cfg.Remote.Slots = &slots
	env, buf := newTestEnv(cfg)

	require.NoError(t, demoCommand(context.Background(), env))
	assert.Empty(t, buf.String())
}

func TestRenderForm(t *testing.T) {
	env, buf := newTestEnv(config.GetDefaultConfig())

	require.NoError(t, renderForm(env, "dark"))
	assert.Equal(t, "dark theme:\n  ● SUBSCRIBE TO NEWSLETTER\n  << SUBMIT >>\n", buf.String())

	buf.Reset()
	err := renderForm(env, "neon")
	assert.EqualError(t, err, `unknown widget theme "neon"`)
	assert.Empty(t, buf.String())
}
