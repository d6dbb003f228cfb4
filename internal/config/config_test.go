package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesTemplateAndAppliesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Engine.SIPFloor != 5000 {
		t.Errorf("sip floor = %.0f, want 5000", cfg.Engine.SIPFloor)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("config template was not created: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()

	content := "[engine]\nsip_floor = 2500.0\n\n[server]\nport = 9090\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Engine.SIPFloor != 2500 {
		t.Errorf("sip floor = %.0f, want 2500", cfg.Engine.SIPFloor)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ASSESSOR_PORT", "7070")
	t.Setenv("ASSESSOR_LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{
		Engine:  EngineConfig{SIPFloor: 5000},
		Server:  ServerConfig{Port: 99999},
		Logging: LoggingConfig{Level: "info"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("port 99999 accepted")
	}

	cfg.Server.Port = 8000
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown log level accepted")
	}
}
