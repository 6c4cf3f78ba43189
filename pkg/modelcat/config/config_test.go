package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "https://www.sciencebase.gov/catalog", c.Catalog.BaseURL)
	assert.Equal(t, "https://www.sciencebase.gov/directory", c.Directory.BaseURL)
	assert.Equal(t, 20, c.PageSize)
	assert.Empty(t, c.Catalog.Token)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  base_url: https://catalog.test.example.org
  token: secret
page_size: 50
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://catalog.test.example.org", c.Catalog.BaseURL)
	assert.Equal(t, "secret", c.Catalog.Token)
	assert.Equal(t, 50, c.PageSize)
	// Unset sections keep their defaults.
	assert.Equal(t, "https://www.sciencebase.gov/directory", c.Directory.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [nope"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
