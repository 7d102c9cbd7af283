package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// defaultPlanFile is used when neither the config file nor the CLI names a
// remediation plan.
const defaultPlanFile = "remediation-plan.yaml"

// Settings is the top-level configuration for remediate.
type Settings struct {
	// PlanFile is the remediation-plan file, relative to the target path.
	PlanFile string `yaml:"plan_file"`
	// Verbose enables debug logging without the CLI flag.
	Verbose bool `yaml:"verbose"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() *Settings {
	return &Settings{PlanFile: defaultPlanFile}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables in the plan-file path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Defaults()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.PlanFile = ExpandEnv(cfg.PlanFile)
	if cfg.PlanFile == "" {
		cfg.PlanFile = defaultPlanFile
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path of the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".remediate.yaml",
		".remediate.yml",
		"remediate.yaml",
		"remediate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ExpandEnv expands ${ENV_VAR} references inside a configuration value.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
