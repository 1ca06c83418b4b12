package servicetest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/samvad-hq/dakiya/pkg/httpservice"
)

// Package servicetest provides network-free httpservice.Service
// implementations for unit-testing API clients.

const fixtureExt = "json"

// MockService implements httpservice.Service by serving canned JSON
// fixtures from a filesystem root instead of making network calls. A GET
// or POST of /users/foo resolves to {root}/users/foo.json.
//
// A missing fixture panics rather than returning an error: it means the
// test setup itself is broken, which should fail the test immediately
// instead of surfacing downstream as a confusing request error.
type MockService struct {
	fs   afero.Fs
	root string
	ext  string
}

// NewMockService serves fixtures from root on the OS filesystem. root is
// not checked for existence until a fixture is read.
func NewMockService(root string) *MockService {
	return NewMockServiceFS(afero.NewOsFs(), root)
}

// NewMockServiceFS serves fixtures from root on the given filesystem,
// which lets tests build fixture trees in memory.
func NewMockServiceFS(fs afero.Fs, root string) *MockService {
	return &MockService{fs: fs, root: root, ext: fixtureExt}
}

// Get returns the trimmed contents of the fixture mapped to uri. Panics if
// the fixture does not exist.
func (m *MockService) Get(_ context.Context, uri string) (string, error) {
	return strings.TrimSpace(m.loadResource(uri)), nil
}

// Post decodes the fixture mapped to uri into out, ignoring body and auth
// entirely. Panics if the fixture does not exist; returns a
// *SerializationError if its contents do not decode into out.
func (m *MockService) Post(_ context.Context, uri string, _ httpservice.Auth, _, out any) error {
	data := m.loadResource(uri)
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return &httpservice.SerializationError{Err: err}
	}
	return nil
}

func (m *MockService) loadResource(uri string) string {
	path := fmt.Sprintf("%s%s.%s", m.root, uri, m.ext)
	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		panic(fmt.Sprintf("could not read test data %s: %v", path, err))
	}
	return string(data)
}
