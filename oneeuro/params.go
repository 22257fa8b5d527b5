package oneeuro

// Useful tuning ranges. Values outside these ranges are accepted and
// mathematically defined; they are merely unusual.
const (
	// BetaHintMax is the upper end of the usual Beta tuning range.
	BetaHintMax = 2.0
	// MinCutoffHintMax is the upper end of the usual MinCutoff tuning range.
	MinCutoffHintMax = 10.0
)

// Params carries the two one-euro tuning parameters.
//
// MinCutoff is the baseline cutoff frequency at zero velocity: higher means
// less smoothing and less lag. Beta scales the additional cutoff increase
// with observed speed: higher means less lag on fast motion and more jitter
// at rest.
type Params struct {
	Beta      float64
	MinCutoff float64
}

// DefaultParams returns the reference defaults: Beta 0, MinCutoff 1.
func DefaultParams() Params {
	return Params{Beta: 0, MinCutoff: 1}
}

// Option mutates constructor parameters.
type Option func(*Params)

// WithBeta sets the speed coefficient.
func WithBeta(beta float64) Option {
	return func(p *Params) {
		p.Beta = beta
	}
}

// WithMinCutoff sets the baseline cutoff frequency.
func WithMinCutoff(minCutoff float64) Option {
	return func(p *Params) {
		p.MinCutoff = minCutoff
	}
}

// WithParams replaces both parameters wholesale.
func WithParams(params Params) Option {
	return func(p *Params) {
		*p = params
	}
}

func applyOptions(opts []Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}
