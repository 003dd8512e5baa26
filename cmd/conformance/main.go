// Package main provides the conformance CLI: it lists, runs, dumps and checks
// operator fixtures.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

type command struct {
	name    string
	summary string
	run     func(args []string) int
}

var commands = []command{
	{"list", "List fixtures", cmdList},
	{"run", "Replay fixtures on the reference kernels", cmdRun},
	{"dump", "Write fixtures as HCL", cmdDump},
	{"check", "Validate HCL fixture files", cmdCheck},
	{"version", "Show version", cmdVersion},
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: conformance [flags] <command> [args]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(out, "\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()
	defer klog.Flush()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name == name {
			code := c.run(args)
			klog.Flush()
			os.Exit(code)
		}
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}

func cmdVersion([]string) int {
	fmt.Printf("conformance %s\n", version)
	return 0
}
