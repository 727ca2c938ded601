// Package config loads deckcalc configuration.
//
// Configuration is a versioned YAML document holding the server listen
// settings, the client's default server URL, the accepted dimension limits
// and the material constants used by the calculation engine. Every field
// has a default, so a missing file or a partial file is valid.
//
// # Configuration File Location
//
// Unless a path is given explicitly (--config), the file is read from:
//   - Linux: $XDG_CONFIG_HOME/deckcalc/config.yaml or $HOME/.config/deckcalc/config.yaml
//   - macOS: $HOME/.config/deckcalc/config.yaml
//   - Windows: %LOCALAPPDATA%\deckcalc\config.yaml
//
// # Precedence
//
// Defaults < config file < environment (DECKCALC_HOST, DECKCALC_PORT,
// DECKCALC_SERVER_URL) < command-line flags. Flags are applied by the
// commands in cmd/.
//
// # Example File
//
//	version: 1
//	server:
//	  port: 5000
//	  advertise: true
//	limits:
//	  min: 1
//	  max: 100
//	  step: 0.5
//	materials:
//	  deck_waste: 0.10
//	  framing_waste: 0.15
//	  stock_length_ft: 8
package config
