package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// mcpConfig represents the structure of a .mcp.json file.
type mcpConfig struct {
	MCPServers map[string]json.RawMessage `json:"mcpServers"`
}

// mentorMCPEntry is the MCP server configuration for the mentor binary.
var mentorMCPEntry = json.RawMessage(`{
  "type": "http",
  "url": "http://localhost:8765"
}`)

// runInit registers the mentor MCP server in the target project's .mcp.json
// so agent frameworks pick the scoring tools up automatically.
func runInit(projectRoot string, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite an existing mentor entry")
	if err := fs.Parse(args); err != nil {
		return err
	}

	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}
	mcpPath := filepath.Join(abs, ".mcp.json")

	if err := mergeMCPConfig(mcpPath, *force); err != nil {
		return err
	}

	fmt.Println("\nSetup complete. Start the server with 'mentor -serve-mcp'.")
	return nil
}

// mergeMCPConfig creates or merges the mentor entry into .mcp.json.
func mergeMCPConfig(mcpPath string, force bool) error {
	var cfg mcpConfig

	data, err := os.ReadFile(mcpPath)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", mcpPath, err)
		}
	}

	if cfg.MCPServers == nil {
		cfg.MCPServers = make(map[string]json.RawMessage)
	}

	if _, exists := cfg.MCPServers["mentor"]; exists && !force {
		fmt.Printf("  skipped .mcp.json mentor entry (exists, use -force to overwrite)\n")
		return nil
	}

	cfg.MCPServers["mentor"] = mentorMCPEntry

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling .mcp.json: %w", err)
	}

	if err := os.WriteFile(mcpPath, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mcpPath, err)
	}

	action := "created"
	if data != nil {
		action = "updated"
	}
	fmt.Printf("  %s .mcp.json with mentor MCP server\n", action)
	return nil
}
