package profiles

import (
	"strings"
	"testing"
)

const sampleYAML = `
profiles:
  - id: httpbin
    name: httpbin.org
    base_url: https://httpbin.org/
    identity: dakiya v0.1.0
    timeout_seconds: 15
  - id: internal-api
    base_url: https://api.example.com
    identity: dakiya v0.1.0
`

func TestLoadFromParsesProfiles(t *testing.T) {
	reg, err := LoadFrom(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if got := len(reg.Profiles()); got != 2 {
		t.Fatalf("loaded %d profiles, want 2", got)
	}

	p, ok := reg.ProfileByID("HTTPBin")
	if !ok {
		t.Fatalf("profile lookup is not case-insensitive")
	}
	if p.BaseURL != "https://httpbin.org/" {
		t.Fatalf("base_url = %q", p.BaseURL)
	}
}

func TestProfileEndpointJoinsCleanly(t *testing.T) {
	p := Profile{BaseURL: "https://httpbin.org/"}
	if got := p.Endpoint("/get"); got != "https://httpbin.org/get" {
		t.Fatalf("Endpoint = %q", got)
	}

	p.BaseURL = "https://httpbin.org"
	if got := p.Endpoint("get"); got != "https://httpbin.org/get" {
		t.Fatalf("Endpoint = %q", got)
	}
}

func TestProfileFactoryCarriesIdentity(t *testing.T) {
	reg, err := LoadFrom(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	p, _ := reg.ProfileByID("httpbin")
	f := p.Factory()
	if f.Identity() != "dakiya v0.1.0" {
		t.Fatalf("factory identity = %q", f.Identity())
	}
}

func TestLoadFromRejectsBadRegistries(t *testing.T) {
	cases := map[string]string{
		"missing id": `
profiles:
  - base_url: https://api.example.com
`,
		"missing base_url": `
profiles:
  - id: broken
`,
		"duplicate id": `
profiles:
  - id: twice
    base_url: https://a.example.com
  - id: TWICE
    base_url: https://b.example.com
`,
		"negative timeout": `
profiles:
  - id: slow
    base_url: https://api.example.com
    timeout_seconds: -5
`,
	}

	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFrom(strings.NewReader(yaml)); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}
