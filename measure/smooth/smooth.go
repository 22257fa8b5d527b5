package smooth

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-oneeuro/oneeuro"
)

// Config holds analysis parameters.
type Config struct {
	// SampleRate is the nominal rate of the uniform sample grid.
	SampleRate float64
	// FFTSize is the transform size for the band split; 0 selects the next
	// power of two at or above the stream length.
	FFTSize int
	// CrossoverHz separates the motion band from the jitter band; 0 selects
	// SampleRate/8.
	CrossoverHz float64
	// MaxLagSamples bounds the cross-correlation lag search; 0 selects a
	// quarter of the stream length.
	MaxLagSamples int
}

// Result holds smoothing metrics for one raw/filtered stream pair.
type Result struct {
	// RMSE is the root-mean-square difference between filtered and raw.
	RMSE float64
	// LagSamples and LagSeconds estimate the delay the filter introduced.
	LagSamples int
	LagSeconds float64
	// JitterIn and JitterOut are the jitter-band amplitudes of the raw and
	// the filtered stream; JitterReductionDB is their power ratio in dB
	// (positive means the filter removed jitter).
	JitterIn          float64
	JitterOut         float64
	JitterReductionDB float64
}

// Analyze computes smoothing metrics for a raw stream and its filtered
// counterpart, sampled on the same (near-)uniform grid.
func Analyze(raw, filtered []float64, cfg Config) (Result, error) {
	if len(raw) != len(filtered) {
		return Result{}, fmt.Errorf("smooth: stream lengths differ: %d vs %d", len(raw), len(filtered))
	}

	n := len(raw)
	if n < 8 {
		return Result{}, fmt.Errorf("smooth: stream too short: %d samples", n)
	}

	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("smooth: sample rate must be > 0: %f", cfg.SampleRate)
	}

	cfg = normalizeConfig(cfg, n)

	res := Result{
		RMSE:       rmse(raw, filtered),
		LagSamples: estimateLag(raw, filtered, cfg.MaxLagSamples),
	}
	res.LagSeconds = float64(res.LagSamples) / cfg.SampleRate

	inPower, err := bandPower(raw, cfg)
	if err != nil {
		return Result{}, err
	}

	outPower, err := bandPower(filtered, cfg)
	if err != nil {
		return Result{}, err
	}

	res.JitterIn = math.Sqrt(inPower)
	res.JitterOut = math.Sqrt(outPower)

	switch {
	case outPower == 0 && inPower == 0:
		res.JitterReductionDB = 0
	case outPower == 0:
		res.JitterReductionDB = math.Inf(1)
	default:
		res.JitterReductionDB = 10 * math.Log10(inPower/outPower)
	}

	return res, nil
}

// Evaluate runs a scalar one-euro filter over a timestamped stream and
// analyzes the outcome. It returns the filtered stream alongside the
// metrics. The filter is reseeded at the first raw sample.
func Evaluate(f *oneeuro.Filter[float64], times, raw []float64, cfg Config) ([]float64, Result, error) {
	if len(times) != len(raw) {
		return nil, Result{}, fmt.Errorf("smooth: timestamp count %d does not match %d samples", len(times), len(raw))
	}

	if len(raw) == 0 {
		return nil, Result{}, fmt.Errorf("smooth: empty stream")
	}

	f.ResetTo(raw[0])

	filtered := make([]float64, len(raw))
	for i, v := range raw {
		filtered[i] = f.Step(times[i], v)
	}

	res, err := Analyze(raw, filtered, cfg)
	if err != nil {
		return nil, Result{}, err
	}

	return filtered, res, nil
}

func normalizeConfig(cfg Config, n int) Config {
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = nextPowerOf2(n)
	}

	if cfg.CrossoverHz <= 0 {
		cfg.CrossoverHz = cfg.SampleRate / 8
	}

	if cfg.MaxLagSamples <= 0 || cfg.MaxLagSamples >= n {
		cfg.MaxLagSamples = n / 4
	}

	return cfg
}

func rmse(raw, filtered []float64) float64 {
	residual := make([]float64, len(raw))
	for i := range residual {
		residual[i] = filtered[i] - raw[i]
	}

	return math.Sqrt(vecmath.DotProduct(residual, residual) / float64(len(residual)))
}

// estimateLag returns the shift in [0, maxLag] at which the filtered
// stream best correlates with the raw stream. Both windows are demeaned
// and each correlation is normalized by the candidate window's norm, so
// neither a DC offset nor uneven window energy can displace the peak
// from the true shift.
func estimateLag(raw, filtered []float64, maxLag int) int {
	m := len(raw) - maxLag

	ref := demean(raw[:m])

	bestLag := 0

	bestScore := math.Inf(-1)

	win := make([]float64, m)
	for lag := 0; lag <= maxLag; lag++ {
		copy(win, filtered[lag:lag+m])

		mean := vecmath.Sum(win) / float64(m)
		for i := range win {
			win[i] -= mean
		}

		norm := math.Sqrt(vecmath.DotProduct(win, win))
		if norm == 0 {
			continue
		}

		score := vecmath.DotProduct(ref, win) / norm
		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}

	return bestLag
}

func demean(x []float64) []float64 {
	out := make([]float64, len(x))

	mean := vecmath.Sum(x) / float64(len(x))
	for i, v := range x {
		out[i] = v - mean
	}

	return out
}

// bandPower returns the total spectral power above the crossover
// frequency of the Hann-windowed, zero-padded stream.
func bandPower(x []float64, cfg Config) (float64, error) {
	fftSize := cfg.FFTSize
	if fftSize < len(x) {
		fftSize = nextPowerOf2(len(x))
	}

	buf := make([]float64, len(x))
	copy(buf, x)
	vecmath.MulBlockInPlace(buf, hann(len(x)))

	in := make([]complex128, fftSize)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("smooth: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("smooth: fft: %w", err)
	}

	half := fftSize/2 + 1

	re := make([]float64, half)

	im := make([]float64, half)
	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	binHz := cfg.SampleRate / float64(fftSize)

	loBin := int(math.Ceil(cfg.CrossoverHz / binHz))
	if loBin >= half {
		return 0, nil
	}

	if loBin < 1 {
		loBin = 1
	}

	return vecmath.Sum(power[loBin:half]), nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
