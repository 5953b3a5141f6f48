package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var clearNotificationsCmd = &cobra.Command{
	Use:   "clear-notifications",
	Short: "Delete every notification",
	RunE:  runClearNotifications,
}

func init() {
	rootCmd.AddCommand(clearNotificationsCmd)
}

func runClearNotifications(cmd *cobra.Command, _ []string) error {
	c, log, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	n, err := c.Repos.Notifications.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	log.Info("notifications cleared", zap.Int64("deleted", n))
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d notification(s)\n", n)
	return nil
}
