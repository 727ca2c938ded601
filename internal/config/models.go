package config

import "github.com/muurk/deckcalc/internal/estimate"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the entire configuration file.
type Config struct {
	Version   int                `yaml:"version"`
	Server    ServerConfig       `yaml:"server"`
	Client    ClientConfig       `yaml:"client"`
	Limits    estimate.Limits    `yaml:"limits"`
	Materials estimate.Materials `yaml:"materials"`
}

// ServerConfig holds the calculation server's listen settings.
type ServerConfig struct {
	Host         string   `yaml:"host"`                    // empty = all interfaces
	Port         int      `yaml:"port"`                    // HTTP port
	CORSOrigins  []string `yaml:"cors_origins,omitempty"`  // allowed browser origins
	Advertise    bool     `yaml:"advertise"`               // announce via mDNS
	InstanceName string   `yaml:"instance_name,omitempty"` // mDNS instance name
}

// ClientConfig holds defaults for the deckcalc CLI.
type ClientConfig struct {
	ServerURL string `yaml:"server_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Server: ServerConfig{
			Port:         DefaultPort,
			CORSOrigins:  []string{"*"},
			InstanceName: "deckcalc",
		},
		Client: ClientConfig{
			ServerURL: "http://localhost:5000",
		},
		Limits:    estimate.DefaultLimits(),
		Materials: estimate.DefaultMaterials(),
	}
}
