package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  out_dir: exports
services:
  - name: indeed
    display_name: Indeed
    table: indeed_jobs
    enabled: true
    url: https://example.com/search
    validation_words: [forklift]
    max_hours_window: 6
  - name: linkedin
    table: linkedin_jobs
    enabled: false
    url: https://example.com/li
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Services) != 2 {
		t.Fatalf("services = %d", len(cfg.Services))
	}

	svc := cfg.Services[0]
	if svc.Name != "indeed" || svc.Table != "indeed_jobs" || !svc.Enabled {
		t.Fatalf("unexpected descriptor: %+v", svc)
	}
	if svc.Window() != 6 {
		t.Fatalf("window = %d", svc.Window())
	}

	if got := cfg.EnabledServices(); len(got) != 1 || got[0].Name != "indeed" {
		t.Fatalf("enabled = %+v", got)
	}
	if cfg.App.OutDir != "exports" {
		t.Fatalf("out_dir = %q", cfg.App.OutDir)
	}
	if cfg.Scraper.Endpoint == "" {
		t.Fatal("scraper endpoint default missing")
	}
}

func TestWindow_DefaultWhenUnsetOrNonPositive(t *testing.T) {
	for _, v := range []int{0, -3} {
		s := ServiceDescriptor{MaxHoursWindow: v}
		if s.Window() != DefaultWindowHours {
			t.Fatalf("Window() = %d for max_hours_window=%d", s.Window(), v)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := Config{Services: []ServiceDescriptor{
		{Name: "indeed", Table: "indeed_jobs", URL: "https://x", Enabled: true},
	}}
	if err := Validate(ok); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no services", Config{}},
		{"empty name", Config{Services: []ServiceDescriptor{{Table: "t", URL: "u", Enabled: true}}}},
		{"duplicate names", Config{Services: []ServiceDescriptor{
			{Name: "a", Table: "t", URL: "u", Enabled: true},
			{Name: "a", Table: "t2", URL: "u2", Enabled: true},
		}}},
		{"enabled without table", Config{Services: []ServiceDescriptor{{Name: "a", URL: "u", Enabled: true}}}},
		{"enabled without url", Config{Services: []ServiceDescriptor{{Name: "a", Table: "t", Enabled: true}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidate_DisabledServiceMayBePartial(t *testing.T) {
	cfg := Config{Services: []ServiceDescriptor{
		{Name: "draft", Enabled: false},
		{Name: "indeed", Table: "indeed_jobs", URL: "https://x", Enabled: true},
	}}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
}

func TestEnsureUserConfig(t *testing.T) {
	dataDir := t.TempDir()
	defaultPath := writeConfig(t, "services: []\n")

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(userPath) != dataDir {
		t.Fatalf("user config outside data dir: %s", userPath)
	}

	// second call returns the existing copy without touching it
	if err := os.WriteFile(userPath, []byte("services: [] # edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	again, err := EnsureUserConfig(dataDir, defaultPath)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(again)
	if string(b) != "services: [] # edited\n" {
		t.Fatal("user edits were overwritten")
	}
}
