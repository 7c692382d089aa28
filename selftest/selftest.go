package selftest

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/semafind/distcalc/distance"
)

var ErrCaseFailed = errors.New("distance case failed")

// Case is a single fixed input with its expected distance.
type Case struct {
	Name string         `json:"name"`
	A    distance.Point `json:"a"`
	B    distance.Point `json:"b"`
	Want float64        `json:"want"`
	Tol  float64        `json:"tolerance"`
}

// DefaultCases returns the fixed table checked before the program accepts
// user input. The first case expects sqrt(5) to seven decimal places, since
// 2.23607 is itself about 2e-6 away from it and would not pass at Epsilon.
func DefaultCases() []Case {
	return []Case{
		{Name: "given", A: distance.Point{X: 4, Y: 3}, B: distance.Point{X: 5, Y: 1}, Want: 2.2360680, Tol: distance.Epsilon},
		{Name: "triangle", A: distance.Point{X: 0, Y: 0}, B: distance.Point{X: 3, Y: 4}, Want: 5.0, Tol: distance.Epsilon},
		{Name: "zero", A: distance.Point{X: 2, Y: 2}, B: distance.Point{X: 2, Y: 2}, Want: 0.0, Tol: distance.Epsilon},
		{Name: "negative", A: distance.Point{X: -1, Y: -1}, B: distance.Point{X: 2, Y: 3}, Want: 5.0, Tol: distance.Epsilon},
	}
}

// ---------------------------

type Result struct {
	Case    Case    `json:"case"`
	Got     float64 `json:"got"`
	Passed  bool    `json:"passed"`
	Message string  `json:"message"`
}

// Check evaluates a single case against fn.
func Check(fn distance.DistFunc, c Case) Result {
	got := fn(c.A.X, c.A.Y, c.B.X, c.B.Y)
	res := Result{Case: c, Got: got, Passed: distance.ApproxEqual(got, c.Want, c.Tol)}
	if res.Passed {
		res.Message = "ok"
	} else {
		res.Message = fmt.Sprintf("distance(%d, %d, %d, %d) = %.7f, want %.7f within %g",
			c.A.X, c.A.Y, c.B.X, c.B.Y, got, c.Want, c.Tol)
	}
	return res
}

// ---------------------------

type Report struct {
	Results []Result `json:"results"`
}

// Run evaluates every case and collects all the results.
func Run(fn distance.DistFunc, cases []Case) Report {
	report := Report{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		report.Results = append(report.Results, Check(fn, c))
	}
	return report
}

func (r Report) Passed() bool {
	return len(r.Failures()) == 0
}

func (r Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins one error per failed case, or returns nil when everything passed.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failures() {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrCaseFailed, res.Case.Name, res.Message))
	}
	return errors.Join(errs...)
}

func (r Report) Log() {
	for _, res := range r.Results {
		if res.Passed {
			log.Debug().Str("case", res.Case.Name).Float64("got", res.Got).Msg("selftest passed")
		} else {
			log.Error().Str("case", res.Case.Name).Float64("got", res.Got).Float64("want", res.Case.Want).Msg(res.Message)
		}
	}
	log.Info().Int("cases", len(r.Results)).Int("failures", len(r.Failures())).Msg("selftest finished")
}

// RunFailFast stops at the first failing case and returns an error naming it.
func RunFailFast(fn distance.DistFunc, cases []Case) error {
	for _, c := range cases {
		if res := Check(fn, c); !res.Passed {
			return fmt.Errorf("%w: %s: %s", ErrCaseFailed, c.Name, res.Message)
		}
	}
	return nil
}
