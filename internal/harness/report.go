package harness

import (
	"fmt"
	"time"
)

// Mismatch is one output element outside tolerance.
type Mismatch struct {
	Operand string
	Index   int
	Got     float64
	Want    float64
}

// Diff is the absolute difference.
func (m Mismatch) Diff() float64 {
	d := m.Got - m.Want
	if d < 0 {
		return -d
	}
	return d
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s[%d] = %g, want %g", m.Operand, m.Index, m.Got, m.Want)
}

// ExampleResult is the outcome of replaying one example.
type ExampleResult struct {
	Index      int
	Err        error     // Execution failed before outputs could be compared
	Mismatches int       // Number of elements outside tolerance
	Worst      *Mismatch // Largest difference, nil when all elements match
	Duration   time.Duration
}

// Passed reports whether the example ran and every element matched.
func (r ExampleResult) Passed() bool {
	return r.Err == nil && r.Mismatches == 0
}

// FixtureResult collects the example results of one fixture.
type FixtureResult struct {
	Name     string
	Err      error // Compilation failed; no example ran
	Skipped  bool  // Not run because the run stopped early
	Examples []ExampleResult
	Duration time.Duration
}

// Passed reports whether the fixture compiled and every example passed.
func (r FixtureResult) Passed() bool {
	if r.Err != nil || r.Skipped {
		return false
	}
	for _, ex := range r.Examples {
		if !ex.Passed() {
			return false
		}
	}
	return true
}

// Report is the outcome of a Runner.Run.
type Report struct {
	RunID    string
	Started  time.Time
	Duration time.Duration
	Fixtures []FixtureResult // In the order given to Run

	Passed  int // Fixtures that passed
	Failed  int // Fixtures that failed
	Skipped int // Fixtures not run
}

// OK reports whether every fixture passed.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Skipped == 0
}

// Fixture returns the result for a fixture by name.
func (r *Report) Fixture(name string) (FixtureResult, bool) {
	for _, f := range r.Fixtures {
		if f.Name == name {
			return f, true
		}
	}
	return FixtureResult{}, false
}

func (r *Report) tally() {
	r.Passed, r.Failed, r.Skipped = 0, 0, 0
	for _, f := range r.Fixtures {
		switch {
		case f.Skipped:
			r.Skipped++
		case f.Passed():
			r.Passed++
		default:
			r.Failed++
		}
	}
}
