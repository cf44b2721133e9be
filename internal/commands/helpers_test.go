package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/helpline/internal/api"
	"github.com/diogo/helpline/internal/config"
	"github.com/diogo/helpline/internal/render"
	"github.com/diogo/helpline/internal/tui"
)

// fakeTUI records the calls the commands make into the terminal UI
type fakeTUI struct {
	chatCalls   int
	client      tui.ChatClient
	opts        tui.ChatOptions
	configCalls int
	config      config.Config
	err         error
}

func (f *fakeTUI) RunChat(ctx context.Context, client tui.ChatClient, opts tui.ChatOptions) error {
	f.chatCalls++
	f.client = client
	f.opts = opts
	return f.err
}

func (f *fakeTUI) RunConfig(cfg config.Config) error {
	f.configCalls++
	f.config = cfg
	return f.err
}

// testHarness wires the commands to a mock client and a fake TUI
type testHarness struct {
	deps   *Dependencies
	client *api.MockClient
	tui    *fakeTUI

	// cfg is the configuration the client factory last received
	cfg config.Config
}

// newTestHarness points HOME at a temporary directory so no real configuration is read
func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		render.UseTheme("tokyonight")
		tui.UpdateTheme()
	})

	h := &testHarness{client: &api.MockClient{}, tui: &fakeTUI{}}
	h.deps = &Dependencies{
		NewClient: func(cfg config.Config, logger *slog.Logger) (api.HelplineClientInterface, error) {
			h.cfg = cfg
			return h.client, nil
		},
		TUI:      h.tui,
		Location: time.UTC,
	}
	return h
}

// execute runs the command tree with args and returns what it printed
func (h *testHarness) execute(args ...string) (string, error) {
	cmd := NewRootCmd(h.deps)
	return executeCommand(cmd, args...)
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
