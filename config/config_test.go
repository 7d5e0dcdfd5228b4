package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-master/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Environment.Name != "test" {
		t.Errorf("Environment.Name = %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.Storage.Driver != "file" || cfg.Storage.Key != "tasks" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Voice.SessionTTL != 30*time.Minute || cfg.GoogleCalendar.EventDuration != time.Hour {
		t.Errorf("durations = %s, %s", cfg.Voice.SessionTTL, cfg.GoogleCalendar.EventDuration)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 0 {
		t.Errorf("TrustedProxies = %v, want none by default", cfg.HTTPServer.TrustedProxies)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	cfg, err := config.LoadFile(writeConfig(t, `
storage:
  driver: SQLite
  path: /tmp/tasks.db
timezone: Europe/Berlin
voice:
  session_ttl: 5m
  max_sessions: 10
http_server:
  trusted_proxies: ["10.0.0.1", "192.168.0.0/16"]
`))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "/tmp/tasks.db" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Timezone != "Europe/Berlin" || cfg.Voice.SessionTTL != 5*time.Minute || cfg.Voice.MaxSessions != 10 {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.HTTPServer.TrustedProxies; len(got) != 2 || got[0] != "10.0.0.1" || got[1] != "192.168.0.0/16" {
		t.Errorf("TrustedProxies = %v", got)
	}
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	cfg, err := config.LoadFile(writeConfig(t, "storage:\n  driver: file\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("Storage.Driver = %q, want env override", cfg.Storage.Driver)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown driver", "storage:\n  driver: redis\n", "storage.driver"},
		{"missing path", "storage:\n  driver: sqlite\n  path: \"\"\n", "storage.path"},
		{"bad timezone", "timezone: Mars/Olympus\n", "timezone"},
		{"zero ttl", "voice:\n  session_ttl: 0s\n", "voice.session_ttl"},
		{"rate limit without budget", "rate_limit:\n  enabled: true\n  requests_per_min: 0\n", "rate_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFile(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for an explicit missing file")
	}
}
