// Deckcalc-server is the calculation service for the floating deck calculator.
//
// It serves the calculator form page, answers POST /calculate with a bill of
// materials, streams estimates over a websocket and can announce itself on
// the local network via mDNS so the deckcalc CLI finds it without
// configuration.
//
// Usage:
//
//	deckcalc-server serve [flags]
//
// See 'deckcalc-server serve --help' for available options.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/config"
	"github.com/muurk/deckcalc/internal/logging"
	"github.com/muurk/deckcalc/internal/server"
	"github.com/muurk/deckcalc/internal/version"
)

const defaultEnvFile = ".env"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deckcalc-server",
	Short: "Floating Deck Calculator Server",
	Long: `A standalone HTTP service that estimates materials for floating decks.

The server renders the calculator form at /, answers JSON and form posts at
/calculate, streams estimates over /ws and reports its version at /health.

Note: For the terminal form and scripting, use the separate 'deckcalc' utility.`,
	Version: version.Version,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	configPath  string
	envFile     string
	host        string
	port        int
	logLevel    string
	advertise   bool
	corsOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculation server",
	Long: `Start the deckcalc HTTP server.

Settings are read from the config file (see 'deckcalc-server init-config'),
then from a .env file and DECKCALC_* environment variables, then from flags.
Later sources win.

With --advertise the server announces itself as _deckcalc._tcp on the local
network so 'deckcalc scan' can find it.`,
	Example: `  # Start on the default port (5000)
  deckcalc-server serve

  # Listen on localhost only with debug logging
  deckcalc-server serve --host 127.0.0.1 --log-level debug

  # Custom port, announced via mDNS
  deckcalc-server serve --port 8080 --advertise

  # Restrict browser origins
  deckcalc-server serve --cors-origin https://decks.example.com`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	serveCmd.Flags().StringVar(&envFile, "env-file", defaultEnvFile, "Path to .env file with DECKCALC_* variables")
	serveCmd.Flags().StringVar(&host, "host", "", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", config.DefaultPort, "Listen port")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the server via mDNS")
	serveCmd.Flags().StringSliceVar(&corsOrigins, "cors-origin", nil, "Allowed browser origin (repeatable, * for any)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadEnvFile(envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}

	if err := logging.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(); err != nil {
		logging.Error("Server stopped with error", zap.Error(err))
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// loadEnvFile loads DECKCALC_* variables from path. A missing default file
// is not an error; a missing file the user asked for is.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// loadConfig layers the config file, the environment and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = host
	}
	if flags.Changed("port") {
		cfg.Server.Port = port
	}
	if flags.Changed("advertise") {
		cfg.Server.Advertise = advertise
	}
	if flags.Changed("cors-origin") {
		cfg.Server.CORSOrigins = corsOrigins
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

var initOutput string

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default config file",
	Long: `Write the built-in configuration to a YAML file so it can be edited.

The file holds the listen settings, the accepted dimension range and the
material constants used by the calculator.`,
	Example: `  # Write to the user config dir
  deckcalc-server init-config

  # Write next to the binary
  deckcalc-server init-config --output ./config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initOutput
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}

		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default configuration to %s\n", path)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output path (default: user config dir)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deckcalc-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
