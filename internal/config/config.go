// Package config loads the optional .allure-owners.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/robotomize/go-allure-owners/internal/owners"
)

// FileName is looked up in the working directory and its parents when no explicit path is given.
const FileName = ".allure-owners.yaml"

const (
	DefaultResultsDir  = "allure-results"
	DefaultOutputDir   = "allure-report"
	DefaultWidgetLimit = owners.WidgetLimit
)

type Config struct {
	// Results are the allure results directories, one launch each.
	Results []string `yaml:"results"`

	// Output is the report directory receiving data/ and widgets/.
	Output      string `yaml:"output"`
	WidgetLimit int    `yaml:"widget_limit"`

	// Indent of the written JSON documents, empty for compact output.
	Indent string `yaml:"indent"`
}

func Default() *Config {
	return &Config{
		Results:     []string{DefaultResultsDir},
		Output:      DefaultOutputDir,
		WidgetLimit: DefaultWidgetLimit,
	}
}

// Load reads the config at pth. With an empty pth it searches FileName from dir upwards
// and falls back to Default when nothing is found.
func Load(pth, dir string) (*Config, error) {
	cfg := Default()

	if pth == "" {
		pth = find(dir)
		if pth == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(pth)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal %s: %w", pth, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", pth, err)
	}

	base := filepath.Dir(pth)
	for idx := range cfg.Results {
		cfg.Results[idx] = resolve(base, cfg.Results[idx])
	}
	cfg.Output = resolve(base, cfg.Output)

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if len(c.Results) == 0 {
		errs = append(errs, errors.New("no results directories"))
	}

	if c.Output == "" {
		errs = append(errs, errors.New("empty output directory"))
	}

	if c.WidgetLimit < 0 || c.WidgetLimit > owners.WidgetLimit {
		errs = append(errs, fmt.Errorf("widget_limit %d out of range [0, %d]", c.WidgetLimit, owners.WidgetLimit))
	}

	return errors.Join(errs...)
}

// resolve makes relative paths from the config file relative to its directory.
func resolve(base, pth string) string {
	if pth == "" || filepath.IsAbs(pth) {
		return pth
	}

	return filepath.Join(base, pth)
}

func find(dir string) string {
	if dir == "" {
		return ""
	}

	for {
		pth := filepath.Join(dir, FileName)
		if _, err := os.Stat(pth); err == nil {
			return pth
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
