package servicetest

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// FixtureLoader reads and decodes JSON fixtures, typically to prepare POST
// request bodies in tests. It is symmetric to MockService: the loader
// feeds requests, the mock serves responses. Never used on production code
// paths.
type FixtureLoader struct {
	fs   afero.Fs
	root string
	ext  string
}

// NewFixtureLoader loads fixtures from root on the OS filesystem.
func NewFixtureLoader(root string) *FixtureLoader {
	return NewFixtureLoaderFS(afero.NewOsFs(), root)
}

// NewFixtureLoaderFS loads fixtures from root on the given filesystem.
func NewFixtureLoaderFS(fs afero.Fs, root string) *FixtureLoader {
	return &FixtureLoader{fs: fs, root: root, ext: fixtureExt}
}

// Load decodes {root}/{resource}.json into out (a pointer). Panics if the
// fixture is missing or does not decode; both indicate broken test setup.
func (l *FixtureLoader) Load(resource string, out any) {
	path := fmt.Sprintf("%s/%s.%s", l.root, resource, l.ext)
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		panic(fmt.Sprintf("could not read test data %s: %v", path, err))
	}
	if err := json.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("could not deserialize test data %s: %v", path, err))
	}
}

// LoadFixture decodes a fixture and returns it by value.
func LoadFixture[T any](l *FixtureLoader, resource string) T {
	var out T
	l.Load(resource, &out)
	return out
}
