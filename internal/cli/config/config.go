package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/conduit-lang/crudgen/internal/artifact"
	"github.com/conduit-lang/crudgen/internal/column"
)

// FileName is the base name of the discovered configuration file.
const FileName = "crudgen"

// EnvPrefix prefixes environment overrides (CRUDGEN_NAMESPACE, CRUDGEN_PATHS_ROUTES, ...).
const EnvPrefix = "CRUDGEN"

var (
	namespacePattern  = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*(\\[A-Z][A-Za-z0-9]*)*$`)
	identifierPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// Config represents the crudgen configuration
type Config struct {
	BaseDir          string      `mapstructure:"base_dir"`
	Namespace        string      `mapstructure:"namespace"`
	Paths            PathsConfig `mapstructure:"paths"`
	TemplatesDir     string      `mapstructure:"templates_dir"`
	SoftDeleteRoutes bool        `mapstructure:"soft_delete_routes"`
	AuthEntity       string      `mapstructure:"auth_entity"`

	// File is the configuration file that was read, empty when only defaults
	// and environment overrides apply.
	File string `mapstructure:"-"`
}

// PathsConfig locates generated artifacts relative to BaseDir.
type PathsConfig struct {
	Requests  string `mapstructure:"requests"`
	Resources string `mapstructure:"resources"`
	Routes    string `mapstructure:"routes"`
}

// Load loads the configuration. An empty path looks for crudgen.yaml or
// crudgen.yml in the working directory and falls back to defaults when neither
// exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := artifact.DefaultLayout()
	v.SetDefault("base_dir", defaults.BaseDir)
	v.SetDefault("namespace", defaults.Namespace)
	v.SetDefault("paths.requests", filepath.ToSlash(defaults.Requests))
	v.SetDefault("paths.resources", filepath.ToSlash(defaults.Resources))
	v.SetDefault("paths.routes", filepath.ToSlash(defaults.Routes))
	v.SetDefault("templates_dir", "")
	v.SetDefault("soft_delete_routes", false)
	v.SetDefault("auth_entity", column.DefaultAuthEntity)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.File = v.ConfigFileUsed()

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Layout returns the artifact layout described by the configuration.
func (c *Config) Layout() artifact.Layout {
	return artifact.Layout{
		BaseDir:   c.BaseDir,
		Namespace: c.Namespace,
		Requests:  filepath.FromSlash(c.Paths.Requests),
		Resources: filepath.FromSlash(c.Paths.Resources),
		Routes:    filepath.FromSlash(c.Paths.Routes),
	}
}

// Policy returns the column exclusion policy.
func (c *Config) Policy() column.Policy {
	return column.Policy{AuthEntity: c.AuthEntity}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.BaseDir == "" {
		return fmt.Errorf("base_dir must not be empty")
	}

	if !namespacePattern.MatchString(cfg.Namespace) {
		return fmt.Errorf("namespace must be a PascalCase namespace such as 'App' or 'Acme\\Shop', got: %q", cfg.Namespace)
	}

	if !identifierPattern.MatchString(cfg.AuthEntity) {
		return fmt.Errorf("auth_entity must be a PascalCase entity name, got: %q", cfg.AuthEntity)
	}

	paths := []struct {
		key   string
		value string
	}{
		{"paths.requests", cfg.Paths.Requests},
		{"paths.resources", cfg.Paths.Resources},
		{"paths.routes", cfg.Paths.Routes},
	}
	for _, p := range paths {
		if p.value == "" {
			return fmt.Errorf("%s must not be empty", p.key)
		}
		if filepath.IsAbs(p.value) || strings.HasPrefix(p.value, "/") {
			return fmt.Errorf("%s must be relative to base_dir, got: %s", p.key, p.value)
		}
	}
	return nil
}
