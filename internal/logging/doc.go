// Package logging provides structured logging for the deckcalc server and CLI.
//
// This package wraps a zap logger behind package-level helpers so the
// server, the calculation client and the form controller share one
// configuration.
//
// # Log Levels
//
//   - Debug: request and response bodies, websocket payloads
//   - Info: requests served, server lifecycle, discovery
//   - Warn: rejected input, failed submissions
//   - Error: startup failures, unexpected handler errors
//
// # Silent Mode
//
// CLI commands draw to the terminal, so logging is silent unless a level is
// given explicitly or via the DECKCALC_LOG_LEVEL environment variable:
//
//	DECKCALC_LOG_LEVEL=debug deckcalc estimate --length 12 --width 10
//
// # Usage Example
//
//	if err := logging.Initialize("info"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Info("Estimate served",
//	    zap.Float64("length", 12),
//	    zap.Int("deck_boards", 26),
//	)
//
// Components that take an explicit *zap.Logger should be handed
// logging.GetLogger() or a Named child of it.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned.
package logging
