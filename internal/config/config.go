package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/statusdeck/statusdeck/internal/logx"
)

// Kind selects the parsing adapter for a service.
type Kind string

const (
	StatuspageJSON Kind = "statuspage_json"
	GithubJSON     Kind = "github_json"
	GcpHTML        Kind = "gcp_html"
	ManualCheck    Kind = "manual_check"
)

func (k Kind) Valid() bool {
	switch k {
	case StatuspageJSON, GithubJSON, GcpHTML, ManualCheck:
		return true
	}
	return false
}

type Service struct {
	// A short display name, unique within the run
	Name string `yaml:"name"`
	// API endpoint or page to fetch
	URL string `yaml:"url"`
	// Optional: human-facing status page, opened on Enter. Defaults to URL.
	StatusURL string `yaml:"status_url"`
	// Provider type: statuspage_json|github_json|gcp_html|manual_check
	Type Kind `yaml:"type"`
	// Component to look up on multi-component pages (github_json, gcp_html)
	ComponentName string `yaml:"component_name"`
}

type Config struct {
	// How often to re-fetch all services
	Refresh time.Duration `yaml:"refresh"`
	// Per-request timeout
	Timeout time.Duration `yaml:"timeout"`
	// Optional HTTP user agent
	UserAgent string `yaml:"user_agent"`
	// Log level: debug|info|warn|error
	LogLevel string `yaml:"log_level"`

	Services []Service `yaml:"services"`
}

// Default returns the built-in service list used when no config file is given.
func Default() *Config {
	c := &Config{
		Services: []Service{
			{
				Name:          "GitHub Copilot",
				URL:           "https://www.githubstatus.com/api/v2/summary.json",
				StatusURL:     "https://www.githubstatus.com/",
				Type:          GithubJSON,
				ComponentName: "Copilot",
			},
			{
				Name:      "Cursor",
				URL:       "https://status.cursor.com/api/v2/status.json",
				StatusURL: "https://status.cursor.com/",
				Type:      StatuspageJSON,
			},
			{
				Name:      "Claude",
				URL:       "https://status.claude.com/api/v2/status.json",
				StatusURL: "https://status.claude.com/",
				Type:      StatuspageJSON,
			},
			{
				Name:          "Gemini Code Assist (GCP)",
				URL:           "https://status.cloud.google.com/",
				StatusURL:     "https://status.cloud.google.com/",
				Type:          GcpHTML,
				ComponentName: "Gemini Code Assist",
			},
		},
	}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Refresh == 0 {
		c.Refresh = 600 * time.Second
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "statusdeck/0.1"
	}
	for i := range c.Services {
		if c.Services[i].StatusURL == "" {
			c.Services[i].StatusURL = c.Services[i].URL
		}
	}
}

// Validate checks the static service list. Missing required fields, an
// unrecognized provider type, duplicate names, or an empty list are fatal.
// A github_json/gcp_html entry without component_name is only a warning;
// the adapter degrades to an error result at run time.
func (c *Config) Validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("no services configured")
	}
	seen := make(map[string]struct{}, len(c.Services))
	for i, s := range c.Services {
		if s.Name == "" {
			return fmt.Errorf("service %d: missing name", i)
		}
		if s.URL == "" {
			return fmt.Errorf("service %q: missing url", s.Name)
		}
		if s.Type == "" {
			return fmt.Errorf("service %q: missing type", s.Name)
		}
		if !s.Type.Valid() {
			return fmt.Errorf("service %q: unknown provider type: %s", s.Name, s.Type)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("duplicate service name: %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		if (s.Type == GithubJSON || s.Type == GcpHTML) && s.ComponentName == "" {
			logx.Warnf("service %q: type %s without component_name, status checks will fail", s.Name, s.Type)
		}
	}
	return nil
}
