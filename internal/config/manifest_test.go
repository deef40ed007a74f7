package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	buildwireerrors "github.com/alexisbeaulieu97/buildwire/pkg/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseManifestValid(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
name: demo
host_version: 1.2.0
capabilities:
  - binary
  - publish
configurations:
  - name: compile
    modules:
      - org.demo:core:1.0.0
      - org.demo:extras:2.1.0
  - name: runtime
available_modules:
  - org.demo:core:1.0.0
`)

	m, err := ParseManifest(path)
	require.NoError(t, err)
	require.Equal(t, "demo", m.Name)
	require.Equal(t, "1.2.0", m.HostVersion)
	require.Equal(t, []string{"binary", "publish"}, m.Capabilities)
	require.Len(t, m.Configurations, 2)
	require.Equal(t, []string{"org.demo:core:1.0.0", "org.demo:extras:2.1.0"}, m.Configurations[0].Modules)
	require.Equal(t, []string{"org.demo:core:1.0.0"}, m.AvailableModules)
}

func TestParseManifestMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	var perr *buildwireerrors.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseManifestInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "name: [unclosed")
	_, err := ParseManifest(path)

	var perr *buildwireerrors.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestValidateManifestFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest Manifest
	}{
		{
			name:     "missing name",
			manifest: Manifest{HostVersion: "1.0.0"},
		},
		{
			name:     "bad host version",
			manifest: Manifest{Name: "demo", HostVersion: "latest"},
		},
		{
			name: "bad capability id",
			manifest: Manifest{
				Name:         "demo",
				HostVersion:  "1.0.0",
				Capabilities: []string{"Not Valid"},
			},
		},
		{
			name: "bad module id",
			manifest: Manifest{
				Name:        "demo",
				HostVersion: "1.0.0",
				Configurations: []ConfigurationSpec{
					{Name: "compile", Modules: []string{"missing-separators"}},
				},
			},
		},
		{
			name: "duplicate configuration",
			manifest: Manifest{
				Name:        "demo",
				HostVersion: "1.0.0",
				Configurations: []ConfigurationSpec{
					{Name: "compile"},
					{Name: "compile"},
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateManifest(&tt.manifest)
			var verr *buildwireerrors.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateManifestNil(t *testing.T) {
	t.Parallel()

	err := ValidateManifest(nil)
	require.Error(t, err)
}
