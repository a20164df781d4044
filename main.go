package main

import "github.com/gregm711/agent-domain-service-mcp/cmd"

func main() {
	cmd.Execute()
}
