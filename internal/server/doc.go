// Package server implements the deckcalc calculation service.
//
// The service is a gin HTTP server exposing the calculation endpoint the
// form controller submits to, plus a browser form and a websocket stream:
//
//	GET  /           form page ("Floating Deck Calculator")
//	POST /calculate  JSON estimate, or an HTML result page for form posts
//	GET  /ws         websocket; one Request JSON in, one Estimate JSON out
//	GET  /health     {"status":"ok","version":"..."}
//
// # Request Format
//
//	POST /calculate
//	Content-Type: application/json
//
//	{"length": 12, "width": 12.5, "use2x6": true}
//
// Dimensions outside the configured limits are rejected with 400 and an
// {"error": "..."} body.
//
// # Usage Example
//
//	cfg := config.Default()
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start blocks until SIGINT/SIGTERM or a listener error
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Middleware
//
// Every request gets an X-Request-ID (generated with google/uuid unless the
// client supplied one) and is logged through internal/logging with its
// status and latency. CORS is applied from the configured origin list.
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM the server withdraws its mDNS announcement, stops
// accepting connections and waits for in-flight requests to finish.
package server
