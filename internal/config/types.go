package config

// OoctlConfig is the top-level configuration.
type OoctlConfig struct {
	LogLevel  string          `yaml:"logLevel,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string          `yaml:"logFormat,omitempty" validate:"omitempty,oneof=text json"`
	Strategy  StrategyConfig  `yaml:"strategy,omitempty"`
	Decorator DecoratorConfig `yaml:"decorator,omitempty"`
	Memento   MementoConfig   `yaml:"memento,omitempty"`
	Remote    RemoteConfig    `yaml:"remote,omitempty"`
	TUI       TUIConfig       `yaml:"tui,omitempty"`
}

// StrategyConfig selects the quack variant rebound in the strategy demo.
type StrategyConfig struct {
	DefaultQuack string `yaml:"defaultQuack,omitempty" validate:"omitempty,oneof=quack squeak mute"`
}

// DecoratorConfig drives the cost-stacking demo. BaseCost is a pointer so an
// overlay can set it to 0.
type DecoratorConfig struct {
	BaseCost   *int  `yaml:"baseCost,omitempty" validate:"omitempty,gte=0"`
	Surcharges []int `yaml:"surcharges,omitempty" validate:"dive,gte=0"`
}

// MementoConfig selects which snapshot Undo restores.
type MementoConfig struct {
	UndoPolicy string `yaml:"undoPolicy,omitempty" validate:"omitempty,oneof=restore-latest restore-previous"`
}

// RemoteConfig sizes the command pattern's invoker. A pointer, like
// TUIConfig.ShowNotes, so 0 survives a merge.
type RemoteConfig struct {
	Slots *int `yaml:"slots,omitempty" validate:"omitempty,gte=0,lte=16"`
}

// TUIConfig holds browser preferences.
type TUIConfig struct {
	ShowNotes *bool  `yaml:"showNotes,omitempty"`
	Theme     string `yaml:"theme,omitempty" validate:"omitempty,oneof=auto dark light"`
}
