package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level\nwant: %q\n got: %q", "info", cfg.LogLevel)
	}
	if cfg.Jobs != 4 {
		t.Fatalf("default jobs\nwant: 4\n got: %d", cfg.Jobs)
	}
	if cfg.AssumeYes {
		t.Fatal("assume-yes should default to false")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("KEYFMT_LOG_LEVEL", "debug")
	t.Setenv("KEYFMT_JOBS", "8")
	t.Setenv("KEYFMT_ASSUME_YES", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Jobs != 8 || !cfg.AssumeYes {
		t.Fatalf("environment not honoured: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("jobs", func(t *testing.T) {
		t.Setenv("KEYFMT_JOBS", "0")
		if _, err := Load(); err == nil {
			t.Fatal("zero jobs should fail validation")
		}
	})
	t.Run("log level", func(t *testing.T) {
		t.Setenv("KEYFMT_LOG_LEVEL", "loud")
		if _, err := Load(); err == nil {
			t.Fatal("unknown log level should fail validation")
		}
	})
}
