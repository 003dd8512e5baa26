package fixturefile

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/conformance/internal/fixture"
)

// Ext is the fixture file extension.
const Ext = ".hcl"

// LoadFile decodes one fixture file.
func LoadFile(path string) ([]*fixture.Fixture, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read fixture file")
	}
	return Decode(path, src)
}

// LoadPaths decodes every .hcl file found under the given files and
// directories. Every path must exist; each file is read once even if
// reachable through several paths.
func LoadPaths(paths ...string) ([]*fixture.Fixture, error) {
	files, err := findFixtureFiles(paths)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("discovered %d fixture files", len(files))

	var fixtures []*fixture.Fixture
	for _, file := range files {
		fs, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		klog.V(2).Infof("%s: %d fixtures", file, len(fs))
		fixtures = append(fixtures, fs...)
	}
	return fixtures, nil
}

// findFixtureFiles walks all given paths and returns the fixture files in
// lexical order.
func findFixtureFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error accessing path %s", path)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == Ext {
				add(path)
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == Ext {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk %s", path)
		}
	}
	sort.Strings(files)
	return files, nil
}
