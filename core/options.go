package core

// StreamConfig defines common sample-stream settings shared by the
// signal generator and the measurement helpers.
type StreamConfig struct {
	SampleRate float64
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns defaults matching a typical tracking
// device: 120 samples per second.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate: 120,
	}
}

// WithSampleRate sets the nominal stream sample rate.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
