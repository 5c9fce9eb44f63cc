package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up from the working directory upwards.
const ConfigFileName = "lox.yml"

var ErrConfigNotFound = errors.New("lox.yml not found")

// ColorMode selects when error reports are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the parsed contents of lox.yml.
type Config struct {
	Path        string
	Prompt      string
	ExitCommand string
	Color       ColorMode
	Banner      bool
	Trace       TraceConfig
}

// TraceConfig toggles diagnostic dumps written to the trace writer.
type TraceConfig struct {
	Tokens bool
	AST    bool
	Phases bool
	Env    bool
}

// DefaultConfig mirrors the behaviour without any config file.
func DefaultConfig() *Config {
	return &Config{
		Prompt:      "> ",
		ExitCommand: "exit",
		Color:       ColorAuto,
		Banner:      true,
	}
}

type configFile struct {
	Prompt      *string `yaml:"prompt"`
	ExitCommand *string `yaml:"exit_command"`
	Color       string  `yaml:"color"`
	Banner      *bool   `yaml:"banner"`
	Trace       struct {
		Tokens bool `yaml:"tokens"`
		AST    bool `yaml:"ast"`
		Phases bool `yaml:"phases"`
		Env    bool `yaml:"env"`
	} `yaml:"trace"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadConfig parses a config file from disk.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", absPath, err)
	}
	cfg.Path = absPath
	return cfg, nil
}

// DecodeConfig reads YAML from r. Unknown keys are rejected and an empty
// document yields the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg := raw.toConfig()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) toConfig() *Config {
	cfg := DefaultConfig()
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.ExitCommand != nil {
		cfg.ExitCommand = strings.TrimSpace(*raw.ExitCommand)
	}
	if raw.Color != "" {
		cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(raw.Color)))
	}
	if raw.Banner != nil {
		cfg.Banner = *raw.Banner
	}
	cfg.Trace = TraceConfig{Tokens: raw.Trace.Tokens, AST: raw.Trace.AST, Phases: raw.Trace.Phases, Env: raw.Trace.Env}
	return cfg
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.ExitCommand == "" {
		errs.Issues = append(errs.Issues, "exit_command must be a non-empty string")
	}
	if strings.ContainsAny(c.Prompt, "\n\r") {
		errs.Issues = append(errs.Issues, "prompt must not contain line breaks")
	}
	if !c.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("color has unsupported value %q (want auto, always or never)", c.Color))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FindConfig walks from start towards the filesystem root looking for
// ConfigFileName.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// ResolveConfig loads explicit when set, otherwise the nearest lox.yml above
// start, otherwise the defaults.
func ResolveConfig(explicit, start string) (*Config, error) {
	if explicit != "" {
		return LoadConfig(explicit)
	}
	path, err := FindConfig(start)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return LoadConfig(path)
}
