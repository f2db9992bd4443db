package types

import "time"

// ServerConfig holds settings for the inbound HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default "127.0.0.1:8000"). IPv4 loopback
	// avoids the Windows IPv6 connect delay browsers hit on "localhost".
	Addr string `json:"addr" yaml:"addr"`

	// WebDir is the directory the static frontend is served from.
	// Empty disables static serving; a missing directory is not an error.
	WebDir string `json:"web_dir" yaml:"web_dir"`
}

// UpstreamConfig holds settings for the outbound Semantic Scholar call.
type UpstreamConfig struct {
	// Timeout bounds one outbound request, measured from connection
	// initiation (default 10s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with outbound requests
	// (default "ResearchHub/1.0").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// APIKey is an optional Semantic Scholar API key. When set it is sent
	// as the x-api-key header, raising the allowed request rate; it changes
	// no other behavior.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// Config groups all research-hub configuration.
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server"`
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream"`
}
