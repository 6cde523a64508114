// Package config provides configuration management for ooctl.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/ooctl/config.yaml)
//  3. Project configuration (./.ooctl/config.yaml)
//  4. An explicit file passed with --config
//
// # Configuration Structure
//
//	logLevel: info          # debug, info, warn, error
//	logFormat: text         # text or json
//	strategy:
//	  defaultQuack: quack   # quack, squeak or mute
//	decorator:
//	  baseCost: 100         # cents, used by the decorator demo
//	  surcharges: [20, 40]
//	memento:
//	  undoPolicy: restore-latest   # or restore-previous
//	remote:
//	  slots: 4
//	tui:
//	  showNotes: true
//
// # Environment Variable Expansion
//
// String values support environment variable expansion:
//
//	logLevel: "${OOCTL_LOG_LEVEL:-info}"
package config
