// Package container wires core domainmcp services using go.uber.org/dig.
package container

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/gregm711/agent-domain-service-mcp/internal/config"
	"github.com/gregm711/agent-domain-service-mcp/internal/mcp"
	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
	"github.com/gregm711/agent-domain-service-mcp/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client     *registrar.Client
	registry   *tools.Registry
	dispatcher *tools.Dispatcher
	server     *mcp.Server
}

func (c *Container) RegistrarClient() *registrar.Client { return c.client }
func (c *Container) ToolRegistry() *tools.Registry      { return c.registry }
func (c *Container) Dispatcher() *tools.Dispatcher      { return c.dispatcher }
func (c *Container) Server() *mcp.Server                { return c.server }

// New builds and wires all core services from cfg. version is stamped into
// the MCP server info returned during the initialize handshake.
func New(cfg *config.Config, version string) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistrarClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newToolRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(tools.NewDispatcher); err != nil {
		return nil, err
	}
	if err := d.Provide(func(reg *tools.Registry, disp *tools.Dispatcher) *mcp.Server {
		return mcp.NewServer(cfg.Server.Name, version, reg, disp)
	}); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *registrar.Client,
		registry *tools.Registry,
		dispatcher *tools.Dispatcher,
		server *mcp.Server,
	) {
		result = &Container{
			client:     client,
			registry:   registry,
			dispatcher: dispatcher,
			server:     server,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("wire services: %w", err)
	}
	return result, nil
}

func newRegistrarClient(cfg *config.Config) *registrar.Client {
	return registrar.NewClient(
		cfg.Registrar.BaseURL,
		cfg.Registrar.APIKey,
		cfg.Registrar.Timeout(),
	)
}

func newToolRegistry(client *registrar.Client) (*tools.Registry, error) {
	return tools.NewRegistryBuilder().
		WithTool(tools.NewCheckDomainTool(client)).
		WithTool(tools.NewExploreNameTool(client)).
		WithTool(tools.NewBrainstormDomainsTool(client)).
		WithTool(tools.NewAnalyzeDomainTool(client)).
		WithTool(tools.NewSearchDomainsTool(client)).
		WithTool(tools.NewListCategoriesTool(client)).
		Build()
}
