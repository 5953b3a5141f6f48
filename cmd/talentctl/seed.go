package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"talent-match/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedYes bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with the demo dataset",
	Long:  "Truncate users, profiles, projects, applications, CVs and notifications, then load two recruiters, four applicants and their projects.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVarP(&seedYes, "yes", "y", false, "Confirm that existing data will be deleted")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if !seedYes {
		return fmt.Errorf("seed deletes every row in the platform tables; pass --yes to continue")
	}

	c, log, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: log}).Run(ctx, c.DB); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "demo data loaded, every account uses password %q\n\n", seeder.DemoPassword)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tEMAIL\tNAME\tNOTE")
	for _, a := range (seeder.DemoSeeder{}).Accounts() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Role, a.Email, a.Name, a.Summary)
	}
	return w.Flush()
}
