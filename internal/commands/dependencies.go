package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/diogo/helpline/internal/api"
	"github.com/diogo/helpline/internal/config"
	"github.com/diogo/helpline/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(ctx context.Context, client tui.ChatClient, opts tui.ChatOptions) error
	RunConfig(cfg config.Config) error
}

// ClientFactory builds the service client from the resolved configuration.
type ClientFactory func(cfg config.Config, logger *slog.Logger) (api.HelplineClientInterface, error)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewClient creates the helpline service client.
	NewClient ClientFactory

	// TUI is the terminal user interface.
	TUI TUIInterface

	// Location is the zone timestamps are printed in.
	Location *time.Location
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(ctx context.Context, client tui.ChatClient, opts tui.ChatOptions) error {
	return tui.RunChat(ctx, client, opts)
}

func (d *DefaultTUI) RunConfig(cfg config.Config) error {
	return tui.RunConfig(cfg)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewClient: newHTTPClient,
		TUI:       &DefaultTUI{},
		Location:  time.Local,
	}
}

func newHTTPClient(cfg config.Config, logger *slog.Logger) (api.HelplineClientInterface, error) {
	client, err := api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(time.Duration(cfg.RequestTimeout)*time.Second),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}
