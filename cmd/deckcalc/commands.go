package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/client"
	"github.com/muurk/deckcalc/internal/config"
	"github.com/muurk/deckcalc/internal/discovery"
	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/form"
	"github.com/muurk/deckcalc/internal/logging"
	"github.com/muurk/deckcalc/internal/tui"
	"github.com/muurk/deckcalc/internal/ui"
)

// Shared flags
var (
	serverURL  string
	configPath string
	discover   bool
)

// Estimate and scan flags
var (
	length       string
	width        string
	use2x6       bool
	outputFormat string
	timeout      time.Duration
	scanTimeout  time.Duration
)

func init() {
	// Common flags for every command (persistent on root)
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server base URL (default from config or DECKCALC_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&discover, "discover", false, "Find a server via mDNS instead of using the configured URL")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(scanCmd)
}

// session is what every calculating command needs
type session struct {
	cfg       *config.Config
	serverURL string
	logger    *zap.Logger
}

// newSession loads .env, the config file and the environment, then picks
// the server: --server, else --discover, else the configured URL.
func newSession(ctx context.Context) (*session, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := logging.InitializeFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	url := cfg.Client.ServerURL
	switch {
	case serverURL != "":
		url = serverURL
	case discover:
		fmt.Println("Looking for a deckcalc server...")
		svc, err := discovery.NewScanner().FindFirst(ctx)
		if err != nil {
			return nil, fmt.Errorf("discovery failed: %w", err)
		}
		fmt.Printf("Using %s\n\n", svc)
		url = svc.BaseURL()
	}

	if url == "" {
		return nil, fmt.Errorf("no server configured; use --server or --discover")
	}

	return &session{cfg: cfg, serverURL: url, logger: logging.GetLogger()}, nil
}

func (s *session) client() *client.Client {
	return client.New(s.serverURL).WithLogger(s.logger)
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// formCmd launches the interactive form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Launch the interactive calculator form",
	Long: `Launch the terminal calculator form.

Type the deck length and width in feet, toggle 2x6 joists with space, and
press enter to calculate. Values are rounded to the nearest half foot and
kept between the configured limits when a field loses focus.`,
	Example: `  # Use the configured server
  deckcalc form

  # Use a specific server
  deckcalc form --server http://192.168.1.20:5000

  # Find a server on the local network
  deckcalc --discover`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer logging.Sync()

	return tui.Run(ctx, s.client(), tui.Options{
		ServerURL: s.serverURL,
		Limits:    s.cfg.Limits,
		Logger:    s.logger,
	})
}

// estimateCmd runs a single calculation
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Calculate materials for a deck",
	Long: `Calculate the materials for one deck and print them.

Dimensions are cleaned up the same way the form does it: stray characters
are dropped, values are rounded to the nearest half foot and kept between
the configured limits. The request is sent once; failures are not retried.`,
	Example: `  # 12 x 16 ft deck with the default 2x8 frame
  deckcalc estimate --length 12 --width 16

  # 2x6 joists at 12" spacing
  deckcalc estimate --length 10 --width 10 --2x6

  # JSON output for scripting
  deckcalc estimate --length 12 --width 16 --format json

  # Give up after 5 seconds
  deckcalc estimate --length 12 --width 16 --timeout 5s`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&length, "length", "l", "", "Deck length in feet")
	estimateCmd.Flags().StringVarP(&width, "width", "w", "", "Deck width in feet")
	estimateCmd.Flags().BoolVar(&use2x6, "2x6", false, "Use 2x6 joists at 12\" spacing")
	estimateCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")
	estimateCmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout (0 = no timeout)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if outputFormat != "detailed" && outputFormat != "json" {
		return fmt.Errorf("invalid format %q (use detailed or json)", outputFormat)
	}

	ctx, cancel := signalContext()
	defer cancel()

	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer logging.Sync()

	req, err := buildRequest(form.NewNormalizer(s.cfg.Limits))
	if err != nil {
		return err
	}

	if timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
		defer cancelTimeout()
	}

	if outputFormat == "json" {
		est, err := s.client().Calculate(ctx, req)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(est, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode estimate: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printer := ui.NewPrinter(os.Stdout)
	printer.PrintHeader("Estimate", "deckcalc estimate", []ui.Detail{
		{Key: "Server", Value: s.serverURL},
		{Key: "Length", Value: form.FormatNumber(req.Length) + " ft"},
		{Key: "Width", Value: form.FormatNumber(req.Width) + " ft"},
		{Key: "Framing", Value: framingChoice(req)},
	})

	est, err := s.client().Calculate(ctx, req)
	if err != nil {
		printer.PrintResult(ui.NewCalcFailure(s.serverURL, err))
		return fmt.Errorf("calculation failed: %w", err)
	}

	printer.PrintResult(ui.NewEstimateResult(req, est))
	return nil
}

// buildRequest normalizes the dimension flags and checks the minimum.
func buildRequest(n *form.Normalizer) (estimate.Request, error) {
	l, ok := n.Normalize(length)
	if !ok || l < n.Min {
		return estimate.Request{}, errors.New(form.ValidationMessage("length", n.Min))
	}
	w, ok := n.Normalize(width)
	if !ok || w < n.Min {
		return estimate.Request{}, errors.New(form.ValidationMessage("width", n.Min))
	}

	flag := use2x6
	return estimate.Request{Length: l, Width: w, Use2x6: &flag}, nil
}

func framingChoice(req estimate.Request) string {
	if req.UsesTwoBySix() {
		return "2x6 @ 12\" OC"
	}
	return "2x8 @ 16\" OC"
}

// scanCmd discovers servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for deckcalc servers on the network",
	Long: `Scan for deckcalc servers using mDNS/DNS-SD discovery.

Servers started with 'deckcalc-server serve --advertise' announce themselves
as _deckcalc._tcp and are listed with their address and version.`,
	Example: `  # Scan for 3 seconds (default)
  deckcalc scan

  # Longer scan for slow networks
  deckcalc scan --timeout 10s`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", discovery.DefaultScanTimeout, "Scan timeout")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	fmt.Printf("Scanning for deckcalc servers (timeout: %s)...\n\n", scanTimeout)

	services, err := discovery.Scan(ctx, scanTimeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(services) == 0 {
		fmt.Println("No servers found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Start a server with: deckcalc-server serve --advertise")
		fmt.Println("  - Check that this computer is on the same network")
		fmt.Println("  - Try increasing --timeout for slower networks")
		fmt.Println("  - Use --server to give the URL directly if discovery fails")
		return nil
	}

	printServices(os.Stdout, services)

	return nil
}

// printServices lists discovered servers. The Server line is the value
// to pass to --server.
func printServices(w io.Writer, services []*discovery.Service) {
	fmt.Fprintf(w, "Found %d server(s):\n\n", len(services))

	for i, svc := range services {
		fmt.Fprintf(w, "%d. %s\n", i+1, svc.Instance)
		fmt.Fprintf(w, "   Server:   %s\n", svc.BaseURL())
		fmt.Fprintf(w, "   Endpoint: %s\n", svc.CalculateURL())
		if v := svc.Version(); v != "" {
			fmt.Fprintf(w, "   Version:  %s\n", v)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Use 'deckcalc --server <server>' to open the form against a server")
	fmt.Fprintln(w, "Use 'deckcalc estimate --server <server> --length 12 --width 16' for a quick estimate")
}
