package core

// RuntimeConfig contains settings shared by every visualizer.
// Visualizer factories capture it when the registry is built, so the
// factories themselves stay argument-free.
type RuntimeConfig struct {
	Seed    int64 // RNG seed, 0 means seed from the current time
	QuitKey rune  // Key that leaves a running visualizer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:    0,
		QuitKey: 'q',
	}
}
