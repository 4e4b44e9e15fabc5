// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

const (
	DefaultTitle       = "SDLXX - Modern C++ wrapper for Simple DirectMedia Layer (SDL2)"
	DefaultLicenseFile = "../LICENSE.md"
	DefaultIncludeDir  = "../include"
	DefaultPattern     = "**/*.h"
	DefaultLabel       = "Wrong header"
	DefaultLogLevel    = "warn"

	EnvPrefix = "HDRCHECK"
)

type Config struct {
	Banner   Banner `yaml:"banner" mapstructure:"banner"`
	Files    Files  `yaml:"files" mapstructure:"files"`
	Report   Report `yaml:"report" mapstructure:"report"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

type Banner struct {
	Title       string `yaml:"title" mapstructure:"title"`
	LicenseFile string `yaml:"license_file" mapstructure:"license_file"`
}

type Files struct {
	IncludeDir string `yaml:"include_dir" mapstructure:"include_dir"`
	Pattern    string `yaml:"pattern" mapstructure:"pattern"`
	GitTracked bool   `yaml:"git_tracked" mapstructure:"git_tracked"`
	Sort       bool   `yaml:"sort" mapstructure:"sort"`
}

type Report struct {
	Label    string `yaml:"label" mapstructure:"label"`
	Strict   bool   `yaml:"strict" mapstructure:"strict"`
	Diff     bool   `yaml:"diff" mapstructure:"diff"`
	Progress bool   `yaml:"progress" mapstructure:"progress"`
}

// Default returns the configuration used when no file, flag or env var overrides anything.
func Default() *Config {
	return &Config{
		Banner: Banner{
			Title:       DefaultTitle,
			LicenseFile: DefaultLicenseFile,
		},
		Files: Files{
			IncludeDir: DefaultIncludeDir,
			Pattern:    DefaultPattern,
		},
		Report: Report{
			Label:    DefaultLabel,
			Progress: true,
		},
		LogLevel: DefaultLogLevel,
	}
}

// SetDefaults registers every key of Default on v so env vars and Unmarshal see them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("banner.title", d.Banner.Title)
	v.SetDefault("banner.license_file", d.Banner.LicenseFile)
	v.SetDefault("files.include_dir", d.Files.IncludeDir)
	v.SetDefault("files.pattern", d.Files.Pattern)
	v.SetDefault("files.git_tracked", d.Files.GitTracked)
	v.SetDefault("files.sort", d.Files.Sort)
	v.SetDefault("report.label", d.Report.Label)
	v.SetDefault("report.strict", d.Report.Strict)
	v.SetDefault("report.diff", d.Report.Diff)
	v.SetDefault("report.progress", d.Report.Progress)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads the optional config file into v and unmarshals the merged result.
// An explicitly named file must exist; the default .hdrcheck.yaml may be absent.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".hdrcheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(c.Banner.LicenseFile) == "" {
		result = multierror.Append(result, errors.New("banner.license_file must not be empty"))
	}
	if strings.TrimSpace(c.Files.IncludeDir) == "" {
		result = multierror.Append(result, errors.New("files.include_dir must not be empty"))
	}
	if c.Files.Pattern == "" {
		result = multierror.Append(result, errors.New("files.pattern must not be empty"))
	} else if !doublestar.ValidatePattern(c.Files.Pattern) {
		result = multierror.Append(result, fmt.Errorf("files.pattern %q is not a valid glob", c.Files.Pattern))
	}
	if strings.TrimSpace(c.Report.Label) == "" {
		result = multierror.Append(result, errors.New("report.label must not be empty"))
	}

	if result == nil {
		return nil
	}
	return multierror.Prefix(result, "invalid config:")
}
