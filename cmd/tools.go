package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gregm711/agent-domain-service-mcp/internal/config"
	"github.com/gregm711/agent-domain-service-mcp/internal/container"
)

var toolsOutput string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().StringVarP(&toolsOutput, "output", "o", "table", "Output format: table, json or yaml")
}

func runTools(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, err := container.New(cfg, version)
	if err != nil {
		return err
	}
	defs := c.ToolRegistry().Definitions()

	switch toolsOutput {
	case "table":
		for _, def := range defs {
			fmt.Printf("%-22s %s\n", def["name"], def["description"])
		}
	case "json":
		data, err := json.MarshalIndent(defs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(defs)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown output format %q", toolsOutput)
	}
	return nil
}
