package endpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// fakeEnv is a map-backed Environment.
type fakeEnv struct {
	vars  map[string]string
	files map[string]bool
}

func (f fakeEnv) Getenv(key string) string    { return f.vars[key] }
func (f fakeEnv) FileExists(path string) bool { return f.files[path] }

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		marker     bool
		wantURL    string
		wantSource Source
	}{
		{
			name:       "override wins over container marker",
			override:   "http://localhost:9000",
			marker:     true,
			wantURL:    "http://localhost:9000",
			wantSource: SourceEnvironment,
		},
		{
			name:       "override without marker",
			override:   "https://staging.example.com/base/",
			wantURL:    "https://staging.example.com/base/",
			wantSource: SourceEnvironment,
		},
		{
			name:       "container marker without override",
			marker:     true,
			wantURL:    ContainerEndpoint,
			wantSource: SourceContainer,
		},
		{
			name:       "literal default",
			wantURL:    DefaultEndpoint,
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := fakeEnv{
				vars:  map[string]string{},
				files: map[string]bool{ContainerMarker: tt.marker},
			}
			if tt.override != "" {
				env.vars[EnvVar] = tt.override
			}

			url, source := ResolveWithSource(env)
			assert.Equal(t, tt.wantURL, url)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantURL, Resolve(env))
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("override > container marker > default", prop.ForAll(
		func(override string, marker bool) bool {
			env := fakeEnv{
				vars:  map[string]string{EnvVar: override},
				files: map[string]bool{ContainerMarker: marker},
			}
			got := Resolve(env)

			switch {
			case override != "":
				return got == override
			case marker:
				return got == ContainerEndpoint
			default:
				return got == DefaultEndpoint
			}
		},
		gen.OneGenOf(gen.Const(""), gen.AlphaString()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestOSEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "http://from-env:1234")

	env := OSEnvironment{}
	assert.Equal(t, "http://from-env:1234", env.Getenv(EnvVar))

	dir := t.TempDir()
	existing := filepath.Join(dir, "marker")
	if err := os.WriteFile(existing, nil, 0o600); err != nil {
		t.Fatalf("failed to create marker: %v", err)
	}

	assert.True(t, env.FileExists(existing))
	assert.False(t, env.FileExists(filepath.Join(dir, "missing")))
}
