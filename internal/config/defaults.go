package config

const (
	DefaultBaseCost    = 100
	DefaultRemoteSlots = 4
)

// GetDefaultConfig returns the compiled-in configuration.
func GetDefaultConfig() OoctlConfig {
	showNotes := true
	baseCost := DefaultBaseCost
	slots := DefaultRemoteSlots
	return OoctlConfig{
		LogLevel:  "info",
		LogFormat: "text",
		Strategy: StrategyConfig{
			DefaultQuack: "squeak",
		},
		Decorator: DecoratorConfig{
			BaseCost:   &baseCost,
			Surcharges: []int{20, 40},
		},
		Memento: MementoConfig{
			UndoPolicy: "restore-latest",
		},
		Remote: RemoteConfig{
			Slots: &slots,
		},
		TUI: TUIConfig{
			ShowNotes: &showNotes,
			Theme:     "auto",
		},
	}
}
