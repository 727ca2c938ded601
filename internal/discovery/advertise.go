package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
)

// Advertiser announces a running server until shut down
type Advertiser struct {
	server *zeroconf.Server
}

// TXTRecords builds the TXT records published for a server
func TXTRecords(version string) []string {
	txt := []string{TXTPath + "=" + DefaultPath}
	if version != "" {
		txt = append(txt, TXTVersion+"="+version)
	}
	return txt
}

// Advertise registers the server on all multicast interfaces.
func Advertise(instance string, port int, version string) (*Advertiser, error) {
	if instance == "" {
		return nil, fmt.Errorf("instance name is required")
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}

	srv, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, TXTRecords(version), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return &Advertiser{server: srv}, nil
}

// Shutdown withdraws the announcement
func (a *Advertiser) Shutdown() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}
