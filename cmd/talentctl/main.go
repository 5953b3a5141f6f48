// Command talentctl runs maintenance tasks against the talent-match database
// and serves the MCP tools over stdio.
package main

import (
	"fmt"
	"os"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	logJSON bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "talentctl",
	Short:         "talent-match maintenance CLI",
	Long:          "Apply migrations, load demo data, prune notifications and expose the matcher to MCP clients.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openContainer loads config and connects the stores. Logs go to stderr so
// stdout stays clean for command output and the MCP transport.
func openContainer() (*app.Container, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewStderr(logJSON, verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	c, err := app.NewContainer(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return c, log, nil
}
