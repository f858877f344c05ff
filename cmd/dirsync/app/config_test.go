package app

import (
	"os"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	if config.LogLevel == "" {
		t.Error("LogLevel not set to default")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading
// with the DIRSYNC prefix.
func TestConfig_EnvironmentVariables(t *testing.T) {
	oldScenario := os.Getenv("DIRSYNC_SCENARIO")
	oldLevel := os.Getenv("DIRSYNC_LOG_LEVEL")
	defer func() {
		os.Setenv("DIRSYNC_SCENARIO", oldScenario)
		os.Setenv("DIRSYNC_LOG_LEVEL", oldLevel)
	}()

	os.Setenv("DIRSYNC_SCENARIO", "fixtures/pull.yaml")
	os.Setenv("DIRSYNC_LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Scenario != "fixtures/pull.yaml" {
		t.Errorf("Scenario = %q, want fixtures/pull.yaml", config.Scenario)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
}

// TestLoadConfig_BadLogFormat verifies an unknown log format is rejected.
func TestLoadConfig_BadLogFormat(t *testing.T) {
	oldFormat, had := os.LookupEnv("DIRSYNC_LOG_FORMAT")
	defer func() {
		if had {
			os.Setenv("DIRSYNC_LOG_FORMAT", oldFormat)
		} else {
			os.Unsetenv("DIRSYNC_LOG_FORMAT")
		}
	}()

	os.Setenv("DIRSYNC_LOG_FORMAT", "xml")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() accepted an unknown log format")
	}
}
