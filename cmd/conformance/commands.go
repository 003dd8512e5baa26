package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/born-ml/conformance/internal/executor"
	"github.com/born-ml/conformance/internal/fixture"
	"github.com/born-ml/conformance/internal/fixturefile"
	"github.com/born-ml/conformance/internal/harness"
	"github.com/born-ml/conformance/internal/operators"
	"github.com/born-ml/conformance/internal/suite"
)

// loadFixtures returns the built-in fixtures plus those under dir, filtered
// by a glob on the fixture name.
func loadFixtures(dir, filter string) ([]*fixture.Fixture, error) {
	registry := suite.Registry()
	if dir != "" {
		extra, err := fixturefile.LoadPaths(dir)
		if err != nil {
			return nil, err
		}
		for _, f := range extra {
			if err := registry.Add(f); err != nil {
				return nil, err
			}
		}
	}
	if filter == "" {
		return registry.Fixtures(), nil
	}
	return registry.Match(filter)
}

func cmdList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dir := fs.String("dir", "", "Directory of additional .hcl fixtures")
	filter := fs.String("filter", "", "Glob on fixture names")
	must.M(fs.Parse(args))

	fixtures, err := loadFixtures(*dir, *filter)
	if err != nil {
		klog.Errorf("%+v", err)
		return 1
	}

	t := newTable("Fixture", "Operations", "Operands", "Parameters", "Examples")
	for _, f := range fixtures {
		m := f.Model()
		t.Row(
			f.Name(),
			strings.Join(f.OperationTypes(), ", "),
			fmt.Sprint(len(m.Operands())),
			humanize.Bytes(uint64(m.ParameterBytes())),
			fmt.Sprint(f.NumExamples()),
		)
	}
	fmt.Println(t)
	fmt.Printf("%d fixtures\n", len(fixtures))
	return 0
}

func cmdRun(args []string) int {
	cfg := harness.DefaultConfig()
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dir := fs.String("dir", "", "Directory of additional .hcl fixtures")
	filter := fs.String("filter", "", "Glob on fixture names")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Fixtures replayed concurrently")
	fs.BoolVar(&cfg.FailFast, "fail-fast", cfg.FailFast, "Stop at the first failing fixture")
	must.M(fs.Parse(args))

	fixtures, err := loadFixtures(*dir, *filter)
	if err != nil {
		klog.Errorf("%+v", err)
		return 1
	}
	if len(fixtures) == 0 {
		klog.Errorf("no fixtures match %q", *filter)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := harness.New(cfg, operators.NewRegistry()).Run(ctx, fixtures...)
	if err != nil {
		klog.Errorf("run interrupted: %v", err)
	}
	printReport(report)
	if err != nil || !report.OK() {
		return 1
	}
	return 0
}

func printReport(report *harness.Report) {
	t := newTable("Fixture", "Status", "Examples", "Worst mismatch", "Time")
	for _, res := range report.Fixtures {
		status, detail := "PASS", ""
		switch {
		case res.Skipped:
			status = "SKIP"
		case res.Err != nil:
			status, detail = "ERROR", res.Err.Error()
		case !res.Passed():
			status = "FAIL"
			for _, ex := range res.Examples {
				if ex.Err != nil {
					detail = ex.Err.Error()
					break
				}
				if ex.Worst != nil {
					detail = ex.Worst.String()
					break
				}
			}
		}
		t.Row(res.Name, status, fmt.Sprint(len(res.Examples)), detail, res.Duration.String())
	}
	fmt.Println(t)
	fmt.Printf("run %s: %d passed, %d failed, %d skipped in %s\n",
		report.RunID, report.Passed, report.Failed, report.Skipped, report.Duration)
}

func cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	outDir := fs.String("o", "", "Output directory; one <name>.hcl per fixture. Default: stdout")
	must.M(fs.Parse(args))

	registry := suite.Registry()
	var fixtures []*fixture.Fixture
	if fs.NArg() == 0 {
		fixtures = registry.Fixtures()
	}
	for _, name := range fs.Args() {
		f, ok := registry.Get(name)
		if !ok {
			klog.Errorf("unknown fixture %q", name)
			return 1
		}
		fixtures = append(fixtures, f)
	}

	if *outDir == "" {
		src, err := fixturefile.Encode(fixtures...)
		if err != nil {
			klog.Errorf("%+v", err)
			return 1
		}
		must.M1(os.Stdout.Write(src))
		return 0
	}

	must.M(os.MkdirAll(*outDir, 0o755))
	for _, f := range fixtures {
		src, err := fixturefile.Encode(f)
		if err != nil {
			klog.Errorf("%+v", err)
			return 1
		}
		path := filepath.Join(*outDir, f.Name()+fixturefile.Ext)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			klog.Errorf("failed to write %s: %v", path, err)
			return 1
		}
		klog.V(1).Infof("wrote %s (%s)", path, humanize.Bytes(uint64(len(src))))
	}
	fmt.Printf("wrote %d fixtures to %s\n", len(fixtures), *outDir)
	return 0
}

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	must.M(fs.Parse(args))
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: conformance check <file or directory>...")
		return 2
	}

	fixtures, err := fixturefile.LoadPaths(fs.Args()...)
	if err != nil {
		klog.Errorf("%+v", err)
		return 1
	}
	if len(fixtures) == 0 {
		klog.Errorf("no %s fixtures found in %s", fixturefile.Ext, strings.Join(fs.Args(), " "))
		return 1
	}

	registry := operators.NewRegistry()
	failed := 0
	t := newTable("Fixture", "Operations", "Status")
	for _, f := range fixtures {
		status := "OK"
		if _, err := executor.Compile(f.Model(), registry); err != nil {
			status = err.Error()
			failed++
		}
		t.Row(f.Name(), strings.Join(f.OperationTypes(), ", "), status)
	}
	fmt.Println(t)
	fmt.Printf("%d fixtures checked, %d not runnable\n", len(fixtures), failed)
	if failed > 0 {
		return 1
	}
	return 0
}
