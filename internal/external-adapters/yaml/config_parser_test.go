package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

func TestConfigParser_Parse_Full(t *testing.T) {
	parser := NewConfigParser()
	yamlData := []byte(`listen_addr: 127.0.0.1:9090
max_upload_bytes: 1048576
staging_dir: /var/tmp/sbomview
log_level: debug
`)

	cfg, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.ListenAddr != "127.0.0.1:9090" {
		t.Errorf("ListenAddr = %v, want 127.0.0.1:9090", cfg.ListenAddr)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Errorf("MaxUploadBytes = %d, want 1048576", cfg.MaxUploadBytes)
	}
	if cfg.StagingDir != "/var/tmp/sbomview" {
		t.Errorf("StagingDir = %v, want /var/tmp/sbomview", cfg.StagingDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestConfigParser_Parse_DefaultsForOmitted(t *testing.T) {
	parser := NewConfigParser()

	cfg, err := parser.Parse([]byte(`listen_addr: ":9999"`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %v, want :9999", cfg.ListenAddr)
	}
	if cfg.MaxUploadBytes != entities.DefaultMaxUploadBytes {
		t.Errorf("MaxUploadBytes = %d, want default %d", cfg.MaxUploadBytes, entities.DefaultMaxUploadBytes)
	}
	if cfg.LogLevel != entities.DefaultLogLevel {
		t.Errorf("LogLevel = %v, want default", cfg.LogLevel)
	}
	if cfg.StagingDir != "" {
		t.Errorf("StagingDir = %v, want empty (OS temp dir)", cfg.StagingDir)
	}
}

func TestConfigParser_Parse_NegativeLimit(t *testing.T) {
	parser := NewConfigParser()

	if _, err := parser.Parse([]byte(`max_upload_bytes: -1`)); err == nil {
		t.Error("Parse() should reject a negative upload limit")
	}
}

func TestConfigParser_Parse_InvalidYAML(t *testing.T) {
	parser := NewConfigParser()

	if _, err := parser.Parse([]byte("listen_addr: [broken yaml")); err == nil {
		t.Error("Parse() should return error for invalid YAML")
	}
}

func TestConfigParser_ParseFile(t *testing.T) {
	parser := NewConfigParser()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}

	if _, err := parser.ParseFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("ParseFile() should fail for a missing file")
	}
}
