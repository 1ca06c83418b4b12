package servicetest

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/samvad-hq/dakiya/pkg/httpservice"
)

// Implementing Get and Post is all it takes to be a full Service.
var _ httpservice.Service = (*MockService)(nil)

type user struct {
	Username string `json:"username"`
}

func TestMockGetReturnsTrimmedFixture(t *testing.T) {
	svc := NewMockService("testdata/output")

	body, err := svc.Get(context.Background(), "/users/foo/about")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if body != `{"username": "foo"}` {
		t.Fatalf("body = %q", body)
	}
}

func TestMockGetPanicsOnMissingFixture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing fixture")
		}
	}()

	svc := NewMockService("testdata/output")
	svc.Get(context.Background(), "/no-resource")
}

func TestMockPostIgnoresBodyAndAuth(t *testing.T) {
	svc := NewMockService("testdata/output")
	loader := NewFixtureLoader("testdata/input")

	var data user
	loader.Load("user", &data)

	var out user
	err := svc.Post(context.Background(), "/users", httpservice.NewAuth("my-api-key"), data, &out)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if out.Username != "foo" {
		t.Fatalf("username = %q, want foo", out.Username)
	}

	// The response comes from the fixture regardless of what was sent.
	var again user
	err = svc.Post(context.Background(), "/users", httpservice.Auth{}, nil, &again)
	if err != nil {
		t.Fatalf("Post with zero inputs: %v", err)
	}
	if again != out {
		t.Fatalf("response depends on request inputs: %+v vs %+v", again, out)
	}
}

func TestMockPostPanicsOnMissingFixture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing fixture")
		}
	}()

	svc := NewMockService("testdata/output")
	var out user
	svc.Post(context.Background(), "/admin", httpservice.NewAuth("k"), user{}, &out)
}

func TestMockPostReturnsSerializationErrorOnBadFixture(t *testing.T) {
	svc := NewMockService("testdata/output")

	var out user
	err := svc.Post(context.Background(), "/corrupt", httpservice.NewAuth("k"), user{}, &out)

	var se *httpservice.SerializationError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SerializationError, got %T: %v", err, err)
	}
}

func TestMockServiceOnInMemoryFilesystem(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "fixtures/ping.json", []byte("\"pong\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc := NewMockServiceFS(fs, "fixtures")
	body, err := svc.Get(context.Background(), "/ping")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if body != `"pong"` {
		t.Fatalf("body = %q", body)
	}
}
