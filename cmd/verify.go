package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seedkit/hrseed/internal/config"
	"github.com/seedkit/hrseed/internal/loader"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the loaded data against the seed batch invariants",
	Long: `Verify the loaded rows: exact row counts, distinct employee ids and
emails, and every non-null employee department reference resolving to a
seeded department.`,
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

		color.Cyan("🔍 Verifying seed data (%s)...", cfg.Database.Provider)
		if err := l.Verify(ctx); err != nil {
			color.Red("❌ Verification failed: %v", err)
			return err
		}

		color.Green("✅ All invariants hold")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
