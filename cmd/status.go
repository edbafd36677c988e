package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seedkit/hrseed/internal/config"
	"github.com/seedkit/hrseed/internal/loader"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show load status",
	Long: `Show whether the HR tables exist, how many rows each holds, and the
checksum of the seed batch this binary would load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx := context.Background()

		l, err := loader.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer l.Close()

		st, err := l.Status(ctx)
		if err != nil {
			return err
		}

		color.Cyan("📋 hrseed status (%s)", cfg.Database.Provider)
		for _, ts := range st.Tables {
			if !ts.Exists {
				color.Red("  ✗ %-12s missing", ts.Name)
				continue
			}
			color.Green("  ✓ %-12s %d rows", ts.Name, ts.Rows)
		}
		fmt.Printf("  dataset checksum: %s\n", st.DatasetChecksum)

		if st.Loaded {
			color.Green("✅ Seed data is fully loaded")
		} else {
			color.Yellow("⚠️  Seed data is not loaded, run 'hrseed load'")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
