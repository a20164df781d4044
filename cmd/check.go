package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gregm711/agent-domain-service-mcp/internal/config"
	"github.com/gregm711/agent-domain-service-mcp/internal/container"
	"github.com/gregm711/agent-domain-service-mcp/internal/shared/cmdutils"
	"github.com/gregm711/agent-domain-service-mcp/internal/tools"
)

var checkCmd = &cobra.Command{
	Use:   "check <domain>",
	Short: "Check a single domain without starting the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, err := container.New(cfg, version)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result := c.Dispatcher().Call(ctx, string(tools.ToolCheckDomain), map[string]any{"domain": args[0]})
	if len(result.Content) == 0 {
		return errors.New("empty response")
	}
	if result.IsError {
		return errors.New(result.Content[0].Text)
	}

	cmdutils.PrintResponse(result.Content[0].Text)
	return nil
}
