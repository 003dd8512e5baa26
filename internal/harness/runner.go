package harness

import (
	"context"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/born-ml/conformance/internal/backend/cpu"
	"github.com/born-ml/conformance/internal/executor"
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/operators"
	"github.com/born-ml/conformance/internal/tensor"
)

// errStop cancels the remaining fixtures in fail-fast mode.
var errStop = errors.New("stopped at first failure")

// Runner replays fixtures on the reference kernels.
type Runner struct {
	cfg      Config
	registry *operators.Registry
	backend  operators.Backend
}

// New creates a runner. A nil registry selects operators.NewRegistry().
func New(cfg Config, registry *operators.Registry) *Runner {
	if registry == nil {
		registry = operators.NewRegistry()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Runner{
		cfg:      cfg,
		registry: registry,
		backend:  cpu.NewWithConfig(cfg.Kernels),
	}
}

// Run replays every example of every fixture. Fixtures run concurrently on
// Config.Workers goroutines; results keep the order of fixtures.
//
// Failing examples are reported, not returned as errors. The error is non-nil
// only when ctx is cancelled, in which case the partial report is returned too.
func (r *Runner) Run(ctx context.Context, fixtures ...*fixture.Fixture) (*Report, error) {
	report := &Report{
		RunID:    uuid.NewString(),
		Started:  time.Now(),
		Fixtures: make([]FixtureResult, len(fixtures)),
	}
	for i, f := range fixtures {
		report.Fixtures[i] = FixtureResult{Name: f.Name(), Skipped: true}
	}
	klog.V(1).Infof("run %s: %d fixtures on %d workers", report.RunID, len(fixtures), r.cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, f := range fixtures {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			res := r.runFixture(gctx, f)
			report.Fixtures[i] = res
			if r.cfg.FailFast && !res.Passed() {
				return errStop
			}
			return nil
		})
	}
	err := g.Wait()

	report.Duration = time.Since(report.Started)
	report.tally()
	klog.V(1).Infof("run %s: %d passed, %d failed, %d skipped in %s",
		report.RunID, report.Passed, report.Failed, report.Skipped, report.Duration)

	if err != nil && !errors.Is(err, errStop) {
		return report, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return report, ctxErr
	}
	return report, nil
}

func (r *Runner) runFixture(ctx context.Context, f *fixture.Fixture) FixtureResult {
	start := time.Now()
	res := FixtureResult{Name: f.Name()}

	var prog *executor.Program
	var err error
	if exception := exceptions.Try(func() {
		prog, err = executor.Compile(f.Model(), r.registry, executor.WithBackend(r.backend))
	}); exception != nil {
		err = errors.WithMessage(panicError(exception), "compile")
	}
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		klog.Warningf("%s: %v", f.Name(), err)
		return res
	}

	for i, ex := range f.Examples() {
		if ctx.Err() != nil {
			res.Skipped = res.Passed()
			break
		}
		exRes := r.runExample(ctx, prog, f.Model(), ex)
		exRes.Index = i
		if exRes.Err != nil && ctx.Err() != nil && errors.Is(exRes.Err, ctx.Err()) {
			// Interrupted mid-run: the example neither passed nor failed.
			res.Skipped = res.Passed()
			break
		}
		if !exRes.Passed() {
			if exRes.Err != nil {
				klog.Warningf("%s: example %d: %v", f.Name(), i, exRes.Err)
			} else {
				klog.Warningf("%s: example %d: %d mismatches, worst %s", f.Name(), i, exRes.Mismatches, exRes.Worst)
			}
		}
		res.Examples = append(res.Examples, exRes)
	}

	res.Duration = time.Since(start)
	klog.V(1).Infof("%s: passed=%v (%d examples, %s)", f.Name(), res.Passed(), len(res.Examples), res.Duration)
	return res
}

func (r *Runner) runExample(ctx context.Context, prog *executor.Program, m *fixture.Model, ex fixture.Example) (res ExampleResult) {
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	inputs := make(map[string]*tensor.RawTensor, len(ex.Inputs))
	for ref, values := range ex.Inputs {
		o, _ := m.Operand(ref)
		t, err := fixture.TensorFor(o, values)
		if err != nil {
			res.Err = err
			return res
		}
		inputs[ref.Name()] = t
	}

	var outputs map[string]*tensor.RawTensor
	var runErr error
	// Kernels panic on shapes they cannot handle.
	if exception := exceptions.Try(func() { outputs, runErr = prog.Run(ctx, inputs) }); exception != nil {
		res.Err = panicError(exception)
		return res
	}
	if runErr != nil {
		res.Err = runErr
		return res
	}

	for _, ref := range ex.Outputs.Refs() {
		got, ok := outputs[ref.Name()]
		if !ok {
			res.Err = errors.Errorf("output %s was not produced", ref)
			return res
		}
		n, worst := compareOutput(ref.Name(), got, ex.Outputs[ref], r.cfg.tolerance(got.DType()))
		res.Mismatches += n
		if worst != nil && (res.Worst == nil || worst.Diff() > res.Worst.Diff()) {
			res.Worst = worst
		}
	}
	return res
}

// panicError converts a recovered panic value into an error.
func panicError(exception any) error {
	if err, ok := exception.(error); ok {
		return errors.WithMessage(err, "kernel panic")
	}
	return errors.Errorf("kernel panic: %v", exception)
}
