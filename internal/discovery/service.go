package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Service is a calculation server found on the network
type Service struct {
	// Instance is the advertised instance name (e.g., "deckcalc")
	Instance string

	// Hostname is the mDNS hostname (e.g., "workshop.local.")
	Hostname string

	// IP is the preferred address, IPv4 when available
	IP string

	// Port is the HTTP port
	Port int

	// Metadata contains the TXT record data ("path", "version")
	Metadata map[string]string

	// DiscoveredAt is when the service was seen
	DiscoveredAt time.Time
}

// String returns a human-readable description of the service
func (s *Service) String() string {
	v := s.Version()
	if v == "" {
		v = "unknown version"
	}
	return fmt.Sprintf("%s (%s) at %s:%d, %s", s.Instance, s.Hostname, s.IP, s.Port, v)
}

// BaseURL returns the HTTP base URL of the server
func (s *Service) BaseURL() string {
	return "http://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
}

// CalculateURL returns the full calculation endpoint URL
func (s *Service) CalculateURL() string {
	path := s.GetMetadata(TXTPath)
	if path == "" {
		path = DefaultPath
	}
	return s.BaseURL() + path
}

// Version returns the advertised server version, if any
func (s *Service) Version() string {
	return s.GetMetadata(TXTVersion)
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Service) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}
