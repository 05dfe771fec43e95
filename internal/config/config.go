// Package config loads runtime configuration for the storefront binary from
// an optional storefront.yaml plus environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when no -config flag is given.
const DefaultFile = "storefront.yaml"

const (
	defaultPort              = "8080"
	defaultCatalogSource     = "catalog.json"
	defaultTemplatesDir      = "templates"
	defaultPublicDir         = "public"
	defaultSiteName          = "3D Print Corner"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Site    SiteConfig
	Dev     bool
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// CatalogConfig locates the catalog document (file path or HTTP URL).
type CatalogConfig struct {
	Source string
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	Name         string
	BaseURL      string
	TemplatesDir string
	PublicDir    string
	CTA          CTAConfig
}

// CTAConfig carries the labels for the storefront call-to-action slots. An
// empty label disables its slot; every slot is individually optional.
type CTAConfig struct {
	General     string
	Call        string
	ModelLink   string
	CustomQuote string
	Secondary   string
}

// ValidationError is returned when required configuration fields are missing
// or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// fileConfig mirrors the YAML document. Pointers distinguish "absent" from
// an explicit empty string, which disables a CTA slot.
type fileConfig struct {
	Site struct {
		Name    string `yaml:"name"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"site"`
	Catalog struct {
		Source string `yaml:"source"`
	} `yaml:"catalog"`
	CTA struct {
		General     *string `yaml:"general"`
		Call        *string `yaml:"call"`
		ModelLink   *string `yaml:"model_link"`
		CustomQuote *string `yaml:"custom_quote"`
		Secondary   *string `yaml:"secondary"`
	} `yaml:"cta"`
}

// Load builds the configuration: defaults, then the YAML file when present,
// then environment overrides. A missing DefaultFile is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		applyFile(cfg, fc)
	case os.IsNotExist(err) && !explicit:
		// optional file, keep defaults
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(cfg, os.Getenv)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              defaultPort,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
		},
		Catalog: CatalogConfig{Source: defaultCatalogSource},
		Site: SiteConfig{
			Name:         defaultSiteName,
			TemplatesDir: defaultTemplatesDir,
			PublicDir:    defaultPublicDir,
			CTA: CTAConfig{
				General:     "WhatsApp us",
				Call:        "Call",
				ModelLink:   "Send a model link",
				CustomQuote: "Custom quote",
				Secondary:   "Signal",
			},
		},
	}
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.Site.Name != "" {
		cfg.Site.Name = fc.Site.Name
	}
	if fc.Site.BaseURL != "" {
		cfg.Site.BaseURL = strings.TrimRight(fc.Site.BaseURL, "/")
	}
	if fc.Catalog.Source != "" {
		cfg.Catalog.Source = fc.Catalog.Source
	}
	if fc.CTA.General != nil {
		cfg.Site.CTA.General = *fc.CTA.General
	}
	if fc.CTA.Call != nil {
		cfg.Site.CTA.Call = *fc.CTA.Call
	}
	if fc.CTA.ModelLink != nil {
		cfg.Site.CTA.ModelLink = *fc.CTA.ModelLink
	}
	if fc.CTA.CustomQuote != nil {
		cfg.Site.CTA.CustomQuote = *fc.CTA.CustomQuote
	}
	if fc.CTA.Secondary != nil {
		cfg.Site.CTA.Secondary = *fc.CTA.Secondary
	}
}

func applyEnv(cfg *Config, getenv func(string) string) {
	// Port resolution: prefer STOREFRONT_PORT, then Cloud Run's PORT
	if v := getenv("STOREFRONT_PORT"); v != "" {
		cfg.Server.Port = strings.TrimPrefix(v, ":")
	} else if v := getenv("PORT"); v != "" {
		cfg.Server.Port = strings.TrimPrefix(v, ":")
	}
	if v := getenv("STOREFRONT_CATALOG"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := getenv("STOREFRONT_BASE_URL"); v != "" {
		cfg.Site.BaseURL = strings.TrimRight(v, "/")
	}
	if v := getenv("STOREFRONT_TEMPLATES"); v != "" {
		cfg.Site.TemplatesDir = v
	}
	if v := getenv("STOREFRONT_PUBLIC"); v != "" {
		cfg.Site.PublicDir = v
	}
	if getenv("STOREFRONT_DEV") != "" || getenv("DEV") != "" {
		cfg.Dev = true
	}
}

func (c *Config) validate() error {
	var missing []string
	if strings.TrimSpace(c.Server.Port) == "" {
		missing = append(missing, "server.port")
	}
	if strings.TrimSpace(c.Catalog.Source) == "" {
		missing = append(missing, "catalog.source")
	}
	if strings.TrimSpace(c.Site.TemplatesDir) == "" {
		missing = append(missing, "site.templates_dir")
	}
	if strings.TrimSpace(c.Site.PublicDir) == "" {
		missing = append(missing, "site.public_dir")
	}
	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}
