// Package yaml provides YAML-based configuration parsing.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	StagingDir     string `yaml:"staging_dir"`
	LogLevel       string `yaml:"log_level"`
}

// DefaultConfig returns the built-in server settings.
func DefaultConfig() *entities.ServerConfig {
	return &entities.ServerConfig{
		ListenAddr:     entities.DefaultListenAddr,
		MaxUploadBytes: entities.DefaultMaxUploadBytes,
		LogLevel:       entities.DefaultLogLevel,
	}
}

// ConfigParser parses YAML server configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML config file into a ServerConfig entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.ServerConfig, error) {
	//nolint:gosec // G304: filePath is the operator-provided config path
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a ServerConfig entity. Omitted settings
// keep their defaults.
func (p *ConfigParser) Parse(data []byte) (*entities.ServerConfig, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.MaxUploadBytes < 0 {
		return nil, fmt.Errorf("max_upload_bytes must not be negative")
	}

	cfg := DefaultConfig()
	if raw.ListenAddr != "" {
		cfg.ListenAddr = raw.ListenAddr
	}
	if raw.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = raw.MaxUploadBytes
	}
	if raw.StagingDir != "" {
		cfg.StagingDir = raw.StagingDir
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}

	return cfg, nil
}
