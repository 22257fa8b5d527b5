package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-oneeuro/core"
)

// Generator creates deterministic test streams from a shared configuration.
type Generator struct {
	cfg  core.StreamConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise and motion.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured stream generator.
func NewGenerator(opts ...core.StreamOption) *Generator {
	return &Generator{
		cfg:  core.ApplyStreamOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured stream generator with
// generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.StreamOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyStreamOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator stream configuration.
func (g *Generator) Config() core.StreamConfig {
	return g.cfg
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Motion generates a deterministic hand-motion-like trajectory in [-1, 1]:
// the signal chases a randomly re-placed target with a speed-limited
// exponential approach, yielding smooth strokes separated by rests.
func (g *Generator) Motion(maxSpeed float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("motion samples must be > 0: %d", samples)
	}
	if maxSpeed <= 0 {
		return nil, fmt.Errorf("motion max speed must be > 0: %f", maxSpeed)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("motion sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	rng := rand.New(rand.NewSource(g.seed))
	dt := 1 / g.cfg.SampleRate

	const approachRate = 4.0 // fraction of remaining distance per second

	out := make([]float64, samples)

	position := 0.0
	target := rng.Float64()*2 - 1
	nextChange := 0.0

	now := 0.0
	for i := range out {
		if now >= nextChange {
			target = rng.Float64()*2 - 1
			nextChange = now + 0.2 + 1.3*rng.Float64()
		}

		step := (target - position) * math.Min(1, approachRate*dt)

		limit := maxSpeed * dt
		step = core.Clamp(step, -limit, limit)

		position += step
		out[i] = position
		now += dt
	}

	return out, nil
}

// Timestamps generates a strictly increasing timestamp sequence at the
// configured sample rate with a deterministic per-sample interval jitter
// of up to jitterFrac of the nominal interval. jitterFrac must be in
// [0, 1).
func (g *Generator) Timestamps(jitterFrac float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("timestamps samples must be > 0: %d", samples)
	}
	if jitterFrac < 0 || jitterFrac >= 1 {
		return nil, fmt.Errorf("timestamps jitter fraction must be in [0, 1): %f", jitterFrac)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("timestamps sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	rng := rand.New(rand.NewSource(g.seed))
	nominal := 1 / g.cfg.SampleRate

	out := make([]float64, samples)

	now := 0.0
	for i := range out {
		interval := nominal * (1 + jitterFrac*(rng.Float64()*2-1))
		now += interval
		out[i] = now
	}

	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
