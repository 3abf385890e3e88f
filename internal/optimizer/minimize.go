package optimizer

import "math"

const (
	defaultXTol    = 1e-5
	defaultMaxEval = 500
)

var goldenMean = 0.5 * (3 - math.Sqrt(5))
var sqrtEps = math.Sqrt(2.2e-16)

type minimizeResult struct {
	X         float64
	F         float64
	Evals     int
	Converged bool
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// minimizeBounded finds a local minimum of f on [lo, hi] using
// Brent's method: parabolic interpolation where the fit is
// trustworthy, golden section otherwise. Infinite values are fine;
// a parabola through them is rejected and a golden step is taken.
// When maxEval is hit the best point so far is returned with
// Converged unset.
func minimizeBounded(f func(float64) float64, lo, hi, xtol float64, maxEval int) minimizeResult {
	if lo > hi {
		lo, hi = hi, lo
	}
	a, b := lo, hi
	fulc := a + goldenMean*(b-a)
	nfc, xf := fulc, fulc
	rat, e := 0.0, 0.0
	x := xf
	fx := f(x)
	evals := 1
	ffulc, fnfc := fx, fx
	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + xtol/3
	tol2 := 2 * tol1

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		golden := true
		if math.Abs(e) > tol1 {
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			// comparisons against NaN are false, which sends us
			// down the golden section path
			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x = xf + rat
				if x-a < tol2 || b-x < tol2 {
					rat = tol1 * sign(xm-xf)
				}
			} else {
				golden = true
			}
		}
		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		x = xf + sign(rat)*math.Max(math.Abs(rat), tol1)
		fu := f(x)
		evals++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || nfc == xf {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || fulc == xf || fulc == nfc {
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + xtol/3
		tol2 = 2 * tol1

		if evals >= maxEval {
			return minimizeResult{X: xf, F: fx, Evals: evals, Converged: false}
		}
	}

	return minimizeResult{X: xf, F: fx, Evals: evals, Converged: true}
}
