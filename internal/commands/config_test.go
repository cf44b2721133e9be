package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/diogo/helpline/internal/config"
)

func TestConfigCommand_OpensMenu(t *testing.T) {
	h := newTestHarness(t)

	if _, err := h.execute("config"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.tui.configCalls != 1 {
		t.Fatalf("expected the settings menu to open once, got %d", h.tui.configCalls)
	}
	if h.tui.config.BaseURL != config.DefaultConfig().BaseURL {
		t.Errorf("menu should receive the loaded config, got %+v", h.tui.config)
	}
}

func TestConfigShow(t *testing.T) {
	h := newTestHarness(t)

	out, err := h.execute("config", "show")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, _ := config.GetConfigPath()
	if !strings.HasPrefix(out, "# "+path+"\n") {
		t.Errorf("output should start with the config path, got:\n%s", out)
	}

	var cfg config.Config
	body := strings.SplitN(out, "\n", 2)[1]
	if err := json.Unmarshal([]byte(body), &cfg); err != nil {
		t.Fatalf("settings are not JSON: %v", err)
	}
	if cfg.BaseURL != config.DefaultConfig().BaseURL {
		t.Errorf("expected the default base URL, got %q", cfg.BaseURL)
	}
}

func TestConfigSet(t *testing.T) {
	h := newTestHarness(t)

	out, err := h.execute("config", "set", "base_url", "https://helpline.example.org/api")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "base_url = https://helpline.example.org/api") {
		t.Errorf("unexpected output %q", out)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseURL != "https://helpline.example.org/api" {
		t.Errorf("base_url should be saved, got %q", cfg.BaseURL)
	}
}

func TestConfigSet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown key", []string{"model", "x"}, "unknown config key"},
		{"invalid url", []string{"base_url", "not a url"}, "invalid base_url"},
		{"unknown theme", []string{"tui_theme", "nope"}, "unknown theme"},
		{"bad bool", []string{"copy_to_clipboard", "maybe"}, "true or false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)

			_, err := h.execute(append([]string{"config", "set"}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}

			path, _ := config.GetConfigPath()
			if cfg, _ := config.LoadConfig(); cfg.BaseURL != config.DefaultConfig().BaseURL {
				t.Errorf("config at %s should be unchanged", path)
			}
		})
	}
}

func TestConfigSet_RequiresKeyAndValue(t *testing.T) {
	h := newTestHarness(t)

	if _, err := h.execute("config", "set", "base_url"); err == nil {
		t.Error("expected an error with a missing value")
	}
}
