package main

import (
	"os/signal"
	"syscall"

	"talent-match/internal/mcpserver"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the platform tools to an MCP client over stdio",
	Long:  "Expose get_platform_context and score_match to MCP clients. The process reads requests on stdin and writes responses on stdout.",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	c, log, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.New(c.Platform, c.Repos.Applicants, c.Repos.Projects, version, log.Named("mcp"))
	return srv.Run(ctx)
}
