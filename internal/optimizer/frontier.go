package optimizer

import (
	"errors"
	"fmt"
	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/util"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// singular values below rcond * largest are treated as zero
	rcond = 1e-15
	// BC - A^2 within this fraction of BC means the frontier
	// has collapsed to a single point
	degenerateTol = 1e-9
	precision     = 3
)

// Allocation is a point on the efficient frontier. Weights and
// statistics are rounded to three decimals.
type Allocation struct {
	Weights domain.Weights
	Target  float64
	Mean    float64
	Stdev   float64
	Sharpe  float64

	// false when the ratio search ran out of evaluations
	Converged bool
	// the frontier was degenerate and the global minimum
	// variance portfolio was used regardless of target
	Degenerate bool
}

type Input struct {
	Symbols []string
	// mean period return per symbol, percent
	Mean []float64
	// sample covariance of period returns
	Covariance   [][]float64
	Period       int
	RiskFreeRate float64
	Logger       *zerolog.Logger
}

// Frontier solves the two-fund mean-variance problem in closed
// form. With Σ⁺ the pseudo-inverse of the covariance matrix and
//
//	A = 1ᵗΣ⁺μ, B = μᵗΣ⁺μ, C = 1ᵗΣ⁺1
//
// the minimum variance weights for expected return t and budget T
// are ((B·Σ⁺1 − A·Σ⁺μ)·T + (C·Σ⁺μ − A·Σ⁺1)·t) / (BC − A²).
type Frontier struct {
	symbols      []string
	mean         *mat.VecDense
	cov          *mat.SymDense
	pinvOnes     *mat.VecDense
	pinvMean     *mat.VecDense
	a, b, c, d   float64
	degenerate   bool
	period       int
	riskFreeRate float64
	logger       zerolog.Logger
}

func NewFrontier(in Input) (*Frontier, error) {
	n := len(in.Symbols)
	if n == 0 {
		return nil, fmt.Errorf("cannot build frontier with no symbols")
	}
	if len(in.Mean) != n || len(in.Covariance) != n {
		return nil, fmt.Errorf("expected %d means and covariance rows, received %d and %d", n, len(in.Mean), len(in.Covariance))
	}
	logger := zerolog.Nop()
	if in.Logger != nil {
		logger = *in.Logger
	}

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if len(in.Covariance[i]) != n {
			return nil, fmt.Errorf("covariance row %d has %d entries, expected %d", i, len(in.Covariance[i]), n)
		}
		if math.IsNaN(in.Mean[i]) || math.IsNaN(in.Covariance[i][i]) {
			return nil, folio_errors.ErrInsufficientData{Symbol: in.Symbols[i], Needed: 2}
		}
		for j := i; j < n; j++ {
			cov.SetSym(i, j, in.Covariance[i][j])
		}
	}
	mean := mat.NewVecDense(n, append([]float64{}, in.Mean...))

	pinv, err := pseudoInverse(cov)
	if err != nil {
		return nil, err
	}

	ones := mat.NewVecDense(n, ones(n))
	pinvOnes := mat.NewVecDense(n, nil)
	pinvOnes.MulVec(pinv, ones)
	pinvMean := mat.NewVecDense(n, nil)
	pinvMean.MulVec(pinv, mean)

	f := &Frontier{
		symbols:      append([]string{}, in.Symbols...),
		mean:         mean,
		cov:          cov,
		pinvOnes:     pinvOnes,
		pinvMean:     pinvMean,
		a:            mat.Dot(pinvOnes, mean),
		b:            mat.Dot(pinvMean, mean),
		c:            mat.Dot(pinvOnes, ones),
		period:       in.Period,
		riskFreeRate: in.RiskFreeRate,
		logger:       logger,
	}
	f.d = f.b*f.c - f.a*f.a
	f.degenerate = math.Abs(f.d) <= degenerateTol*math.Abs(f.b*f.c)
	if f.degenerate {
		f.logger.Warn().
			Strs("symbols", f.symbols).
			Float64("a", f.a).
			Float64("b", f.b).
			Float64("c", f.c).
			Msg("degenerate frontier, using global minimum variance portfolio")
	}

	return f, nil
}

// NewFrontierFromPrices estimates means and covariance from the
// period returns of the visible symbols in m.
func NewFrontierFromPrices(m *domain.PriceMatrix, period int, riskFreeRate float64, logger *zerolog.Logger) (*Frontier, error) {
	means, cov, err := metrics.MeanCovariance(m, period)
	if err != nil {
		return nil, err
	}
	return NewFrontier(Input{
		Symbols:      m.Symbols(),
		Mean:         means,
		Covariance:   cov,
		Period:       period,
		RiskFreeRate: riskFreeRate,
		Logger:       logger,
	})
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// pseudoInverse computes the Moore-Penrose inverse through SVD,
// so singular covariance matrices are handled without error.
func pseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errors.New("failed to factorize covariance matrix")
	}
	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	cutoff := 0.0
	if len(values) > 0 {
		cutoff = rcond * floats.Max(values)
	}
	inverted := make([]float64, len(values))
	for i, s := range values {
		if s > cutoff {
			inverted[i] = 1 / s
		}
	}

	var scaled mat.Dense
	scaled.Apply(func(i, j int, x float64) float64 {
		return x * inverted[j]
	}, &v)
	var out mat.Dense
	out.Mul(&scaled, u.T())

	return &out, nil
}

func (f *Frontier) Symbols() []string {
	return append([]string{}, f.symbols...)
}

func (f *Frontier) Degenerate() bool {
	return f.degenerate
}

// Bounds is the range of achievable single-asset mean returns
func (f *Frontier) Bounds() (float64, float64) {
	raw := f.mean.RawVector().Data
	return floats.Min(raw), floats.Max(raw)
}

// Weights returns unrounded minimum variance weights for the
// target return, in symbol order. They always sum to total.
func (f *Frontier) Weights(target, total float64) []float64 {
	n := len(f.symbols)
	out := mat.NewVecDense(n, nil)
	if f.degenerate {
		if math.Abs(f.c) > 0 {
			out.ScaleVec(total/f.c, f.pinvOnes)
		} else {
			// no usable covariance at all, spread evenly
			for i := 0; i < n; i++ {
				out.SetVec(i, total/float64(n))
			}
		}
		return out.RawVector().Data
	}

	var budget, tilt mat.VecDense
	budget.AddScaledVec(scaledVec(f.b, f.pinvOnes), -f.a, f.pinvMean)
	tilt.AddScaledVec(scaledVec(f.c, f.pinvMean), -f.a, f.pinvOnes)
	out.AddScaledVec(scaledVec(total/f.d, &budget), target/f.d, &tilt)

	return out.RawVector().Data
}

func scaledVec(alpha float64, v *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	out.ScaleVec(alpha, v)
	return out
}

// Moments returns the expected return and standard deviation of
// a portfolio with the given weights.
func (f *Frontier) Moments(weights []float64) (float64, float64) {
	w := mat.NewVecDense(len(weights), weights)
	mean := mat.Dot(w, f.mean)
	variance := mat.Inner(w, f.cov, w)
	return mean, math.Sqrt(math.Max(variance, 0))
}

// Optimize returns the minimum variance allocation of total with
// expected return target.
func (f *Frontier) Optimize(target, total float64) Allocation {
	return f.allocation(target, total, true)
}

func (f *Frontier) allocation(target, total float64, converged bool) Allocation {
	raw := f.Weights(target, total)
	mean, stdev := f.Moments(raw)

	weights := domain.Weights{}
	for i, s := range f.symbols {
		weights[s] = util.Round(raw[i], precision)
	}
	return Allocation{
		Weights:    weights,
		Target:     target,
		Mean:       util.Round(mean, precision),
		Stdev:      util.Round(stdev, precision),
		Sharpe:     util.Round(metrics.SharpeRatio(mean, stdev, f.period, f.riskFreeRate), precision),
		Converged:  converged,
		Degenerate: f.degenerate,
	}
}

// ratio is minimized to find the best return per unit of risk.
// Portfolios that do not make money are never preferred.
func (f *Frontier) ratio(target, total float64) float64 {
	mean, stdev := f.Moments(f.Weights(target, total))
	if mean <= 0 || math.IsNaN(mean) {
		return math.Inf(1)
	}
	return stdev / mean
}

// FindOptimalRatio searches the targets between the lowest and
// highest single-asset mean for the allocation with the smallest
// stdev to mean ratio.
func (f *Frontier) FindOptimalRatio(total float64) Allocation {
	lo, hi := f.Bounds()
	result := minimizeBounded(func(t float64) float64 {
		return f.ratio(t, total)
	}, lo, hi, defaultXTol, defaultMaxEval)

	if !result.Converged {
		f.logger.Warn().
			Strs("symbols", f.symbols).
			Int("evaluations", result.Evals).
			Float64("target", result.X).
			Msg("ratio search did not converge, using last iterate")
	}

	return f.allocation(result.X, total, result.Converged)
}
