package profiles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/dakiya/pkg/httpservice"
)

// Package profiles loads named endpoint profiles from YAML so consumers
// can keep per-API client settings (base URL, identity, timeout) in config
// instead of code.

// Profile describes how to talk to one remote API.
type Profile struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	BaseURL        string `yaml:"base_url" json:"base_url"`
	Identity       string `yaml:"identity" json:"identity"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// Factory builds a client factory configured for this profile.
func (p Profile) Factory() *httpservice.ClientFactory {
	if p.TimeoutSeconds > 0 {
		return httpservice.NewClientFactoryTimeout(p.Identity, time.Duration(p.TimeoutSeconds)*time.Second)
	}
	return httpservice.NewClientFactory(p.Identity)
}

// Endpoint joins the profile base URL with a request path.
func (p Profile) Endpoint(path string) string {
	return strings.TrimRight(p.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

type registryFile struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// Registry holds the loaded profiles, indexed by lowercased id. Immutable
// after Load.
type Registry struct {
	profiles []Profile
	byID     map[string]Profile
}

// Load reads a profile registry from a YAML file.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profiles file: %w", err)
	}
	defer f.Close()
	return LoadFrom(f)
}

// LoadFrom reads a profile registry from YAML content.
func LoadFrom(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	reg := &Registry{byID: make(map[string]Profile, len(file.Profiles))}
	for _, p := range file.Profiles {
		if err := validate(p); err != nil {
			return nil, err
		}
		key := strings.ToLower(strings.TrimSpace(p.ID))
		if _, dup := reg.byID[key]; dup {
			return nil, fmt.Errorf("duplicate profile id %q", p.ID)
		}
		reg.byID[key] = p
		reg.profiles = append(reg.profiles, p)
	}
	return reg, nil
}

func validate(p Profile) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("profile is missing an id")
	}
	if strings.TrimSpace(p.BaseURL) == "" {
		return fmt.Errorf("profile %q is missing base_url", p.ID)
	}
	if p.TimeoutSeconds < 0 {
		return fmt.Errorf("profile %q has negative timeout_seconds", p.ID)
	}
	return nil
}

// Profiles returns a copy of the loaded profiles in file order.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// ProfileByID returns the profile with the given id, if present.
func (r *Registry) ProfileByID(id string) (Profile, bool) {
	p, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return p, ok
}
