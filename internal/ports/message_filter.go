package ports

// MessageFilter defines the lifecycle of an inbound analysis surface
// (HTTP API, CLI report).
type MessageFilter interface {
	// Start starts the filter service
	Start() error

	// Stop stops the filter service
	Stop() error
}
