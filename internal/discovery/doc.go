// Package discovery finds and announces deckcalc calculation servers on the
// local network using multicast DNS.
//
// A running server registers itself as a "_deckcalc._tcp" service with TXT
// records describing the calculation endpoint:
//
//	path=/calculate
//	version=1.2.0
//
// The deckcalc CLI browses for the same service type so users do not need
// to know the server address.
//
// # Usage Example
//
//	// Announce a server listening on port 5000
//	adv, err := discovery.Advertise("deckcalc", 5000, version.Version)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer adv.Shutdown()
//
//	// Find servers for three seconds
//	services, err := discovery.NewScanner().Scan(ctx)
//	for _, svc := range services {
//	    fmt.Println(svc.BaseURL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Servers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
