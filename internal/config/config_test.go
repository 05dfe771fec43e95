package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "catalog.json", cfg.Catalog.Source)
	assert.Equal(t, "WhatsApp us", cfg.Site.CTA.General)
	assert.False(t, cfg.Dev)
}

func TestLoadExplicitMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	body := `
site:
  name: Print Corner Berlin
  base_url: https://prints.example.org/
catalog:
  source: data/catalog.json
cta:
  secondary: ""
  call: "Call the shop"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Print Corner Berlin", cfg.Site.Name)
	assert.Equal(t, "https://prints.example.org", cfg.Site.BaseURL)
	assert.Equal(t, "data/catalog.json", cfg.Catalog.Source)
	// explicit empty label disables the slot, untouched slots keep defaults
	assert.Empty(t, cfg.Site.CTA.Secondary)
	assert.Equal(t, "Call the shop", cfg.Site.CTA.Call)
	assert.Equal(t, "WhatsApp us", cfg.Site.CTA.General)
}

func TestEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", ":9090")
	t.Setenv("STOREFRONT_CATALOG", "https://prints.example.org/catalog.json")
	t.Setenv("STOREFRONT_DEV", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://prints.example.org/catalog.json", cfg.Catalog.Source)
	assert.True(t, cfg.Dev)
}

func TestStorefrontPortWinsOverPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STOREFRONT_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  source: \" \"\n"), 0o644))

	_, err := Load(path)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields(), "catalog.source")
}
