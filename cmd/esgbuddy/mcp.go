package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/esgbuddy/esgbuddy/internal/mcptool"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the compute_esg_scores tool over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cwd())
			return server.ServeStdio(mcptool.NewServer(version, cfg.Scoring.ContentIndexBaseRoute))
		},
	}
}
