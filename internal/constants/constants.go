package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DirectoryTimeout   = 15 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	// DefaultMatchCount is the match-window size requested when the
	// caller does not specify one.
	DefaultMatchCount = 10
	MaxMatchCount     = 30
)

const (
	// UpstreamRequestsPerSecond bounds how fast we hit the dashboard API.
	UpstreamRequestsPerSecond = 20
	UpstreamBurst             = 5
)

const (
	ShutdownTimeout = 5 * time.Second
)
