package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedkit/hrseed/internal/config"
	"github.com/seedkit/hrseed/internal/loader"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the HR tables",
	Long: `
Drop the employees and departments tables, data included.

⚠️  WARNING: This permanently deletes the seeded data.

Use --force to skip the confirmation prompt.`,
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

		force, _ := cmd.Flags().GetBool("force")
		return l.Reset(ctx, force)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
